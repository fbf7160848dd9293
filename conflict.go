package scopewalk

// checkDeclarationConflict looks for an existing declaration of name in
// scope and, if one exists, decides whether the new declaration is a
// permitted redeclaration or must be reported.
func checkDeclarationConflict(scope *Scope, name Identifier, kind VariableKind, origin DeclaredVariableOrigin, sink Sink) {
	existing := scope.Declared.find(name.NormalizedName())
	if existing == nil {
		return
	}

	checkRedeclarationAssertions(existing.Kind, kind)

	if redeclarationPermitted(existing, kind, origin) {
		return
	}

	if existing.IsGlobal {
		sink.Report(Diagnostic{
			DiagnosticKind: RedeclarationOfGlobalVariable,
			Subject:        name,
		})

		return
	}

	sink.Report(Diagnostic{
		DiagnosticKind: RedeclarationOfVariable,
		Subject:        name,
		Declaration:    identifierPtr(existing.Name),
	})
}

// redeclarationPermitted reports whether newKind/newOrigin may coexist with
// an existing declaration of kind oldKind in the same scope.
func redeclarationPermitted(existing *DeclaredVariable, newKind VariableKind, newOrigin DeclaredVariableOrigin) bool {
	oldKind := existing.Kind

	switch {
	case oldKind == VariableKindFunction && (newKind == VariableKindParameter || newKind == VariableKindFunction || newKind == VariableKindVar):
		return true
	case oldKind == VariableKindParameter && (newKind == VariableKindFunction || newKind == VariableKindParameter || newKind == VariableKindVar):
		return true
	case oldKind == VariableKindVar && (newKind == VariableKindFunction || newKind == VariableKindVar):
		return true
	case oldKind == VariableKindCatch && newKind == VariableKindVar:
		return true
	case oldKind == VariableKindFunction && existing.Origin == DeclaredInDescendantScope:
		return true
	case newKind == VariableKindFunction && newOrigin == DeclaredInDescendantScope:
		return true
	default:
		return false
	}
}

// checkRedeclarationAssertions encodes the parser-contract assumptions
// behind the redeclaration table: they describe source-construct
// combinations a correct parser driver should never produce (e.g. a catch
// binding redeclared as an import), and exist to catch a driver bug rather
// than anything a well-formed program could trigger.
func checkRedeclarationAssertions(oldKind, newKind VariableKind) {
	switch oldKind {
	case VariableKindCatch:
		assert(newKind != VariableKindImport, "catch binding redeclared as import")
		assert(newKind != VariableKindParameter, "catch binding redeclared as parameter")
	case VariableKindClass, VariableKindConst, VariableKindFunction, VariableKindLet, VariableKindVar:
		assert(newKind != VariableKindCatch, "%s binding redeclared as catch", oldKind)
		assert(newKind != VariableKindParameter, "%s binding redeclared as parameter", oldKind)
	case VariableKindParameter:
		assert(newKind != VariableKindCatch, "parameter redeclared as catch")
		assert(newKind != VariableKindImport, "parameter redeclared as import")
	case VariableKindImport:
		// No further constraint documented.
	}
}

// checkAssignmentLegality applies the rules for assigning to an
// already-declared variable.
func checkAssignmentLegality(target *DeclaredVariable, assignment Identifier, isAssignedBeforeDeclaration bool, sink Sink) {
	switch target.Kind {
	case VariableKindConst, VariableKindImport:
		switch {
		case target.IsGlobal:
			sink.Report(Diagnostic{
				DiagnosticKind: AssignmentToConstGlobalVariable,
				Subject:        assignment,
			})
		case isAssignedBeforeDeclaration:
			sink.Report(Diagnostic{
				DiagnosticKind: AssignmentToConstVariableBeforeItsDeclaration,
				Subject:        assignment,
				Declaration:    identifierPtr(target.Name),
				VariableKind:   variableKindPtr(target.Kind),
			})
		default:
			sink.Report(Diagnostic{
				DiagnosticKind: AssignmentToConstVariable,
				Subject:        assignment,
				Declaration:    identifierPtr(target.Name),
				VariableKind:   variableKindPtr(target.Kind),
			})
		}

	case VariableKindCatch, VariableKindClass, VariableKindFunction, VariableKindLet, VariableKindParameter, VariableKindVar:
		if isAssignedBeforeDeclaration {
			sink.Report(Diagnostic{
				DiagnosticKind: AssignmentBeforeVariableDeclaration,
				Subject:        assignment,
				Declaration:    identifierPtr(target.Name),
			})
		}
	}
}
