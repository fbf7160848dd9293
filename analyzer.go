package scopewalk

// Analyzer is the event interface the parser drives. One Analyzer
// corresponds to one source module; it holds no state beyond its scope
// stack and diagnostic sink, and is not safe for concurrent use by more than
// one goroutine.
type Analyzer struct {
	stack *ScopeStack
	sink  Sink
}

// NewAnalyzer creates an Analyzer ready to receive events for a new
// CommonJS module. The module scope is pre-populated with the Node.js
// bindings; diagnostics are reported to sink as soon as they become
// decidable.
func NewAnalyzer(sink Sink) *Analyzer {
	a := &Analyzer{stack: newScopeStack(), sink: sink}
	declareModulePredefinedVariables(a.stack.module())

	return a
}

// NewScriptAnalyzer creates an Analyzer for a plain (non-module) script:
// its top-level scope is not pre-populated with the CommonJS bindings
// (require, module, exports, __dirname, __filename), matching a script
// loaded by a plain <script> tag rather than Node's module system.
func NewScriptAnalyzer(sink Sink) *Analyzer {
	return &Analyzer{stack: newScopeStack(), sink: sink}
}

func (a *Analyzer) EnterBlockScope()    { a.stack.push() }
func (a *Analyzer) EnterClassScope()    { a.stack.push() }
func (a *Analyzer) EnterForScope()      { a.stack.push() }
func (a *Analyzer) EnterFunctionScope() { a.stack.push() }

// EnterNamedFunctionScope pushes a fresh scope for a named function
// expression and remembers name as its self-name, visible only inside the
// function's own body.
func (a *Analyzer) EnterNamedFunctionScope(name Identifier) {
	current := a.stack.push()
	self := newLocalDeclaredVariable(name, VariableKindFunction, DeclaredInCurrentScope)
	current.functionExpressionSelfName = &self
}

// EnterFunctionScopeBody propagates uses recorded while visiting the
// parameter list (e.g. inside default-value initializers) up past the just-
// pushed function scope, without popping it, so that "arguments" and
// use-before-declaration are handled as if the parameters closed over the
// enclosing scope the moment the body starts.
func (a *Analyzer) EnterFunctionScopeBody() {
	current, parent := a.stack.current(), a.stack.parent()
	a.propagateVariableUses(current, parent, true, true)
}

func (a *Analyzer) ExitBlockScope() {
	current, parent := a.stack.current(), a.stack.parent()
	a.propagateVariableUses(current, parent, false, false)
	a.hoistDeclarations(current, parent)
	a.stack.pop()
}

func (a *Analyzer) ExitForScope() {
	current, parent := a.stack.current(), a.stack.parent()
	a.propagateVariableUses(current, parent, false, false)
	a.hoistDeclarations(current, parent)
	a.stack.pop()
}

func (a *Analyzer) ExitClassScope() {
	current, parent := a.stack.current(), a.stack.parent()
	a.propagateVariableUses(current, parent, false, false)

	for _, v := range current.Declared.All() {
		assert(v.Kind == VariableKindClass, "non-class declaration %q survived into a class scope's exit", v.Name.NormalizedName())
	}

	a.stack.pop()
}

func (a *Analyzer) ExitFunctionScope() {
	current, parent := a.stack.current(), a.stack.parent()
	a.propagateVariableUses(current, parent, true, true)
	a.stack.pop()
}

// VariableDeclaration handles a textual declaration in the current scope.
func (a *Analyzer) VariableDeclaration(name Identifier, kind VariableKind) {
	a.declareVariable(a.stack.current(), name, kind, DeclaredInCurrentScope)
}

func (a *Analyzer) VariableUse(name Identifier) { a.variableUse(name, UsedVariableKindUse) }

func (a *Analyzer) VariableAssignment(name Identifier) {
	a.variableUse(name, UsedVariableKindAssignment)
}

func (a *Analyzer) VariableTypeofUse(name Identifier) { a.variableUse(name, UsedVariableKindTypeof) }

func (a *Analyzer) VariableExportUse(name Identifier) { a.variableUse(name, UsedVariableKindExport) }

// PropertyDeclaration is a no-op: object/class member names are not lexical
// bindings.
func (a *Analyzer) PropertyDeclaration(name *Identifier) {}

// declareVariable checks the new declaration against the scope's existing
// declarations for a conflict, appends it, and then resolves any pending
// uses it satisfies.
func (a *Analyzer) declareVariable(scope *Scope, name Identifier, kind VariableKind, origin DeclaredVariableOrigin) {
	if origin == DeclaredInDescendantScope {
		assert(kind == VariableKindVar || kind == VariableKindFunction,
			"hoisted declaration %q has kind %s, want var or function", name.NormalizedName(), kind)
	}

	checkDeclarationConflict(scope, name, kind, origin, a.sink)
	declared := scope.Declared.add(name, kind, origin)

	scope.variablesUsed = filterUses(scope.variablesUsed, name.NormalizedName(), func(used UsedVariable) {
		a.resolvePendingSameScopeUse(used, declared, kind, origin, name)
	})

	scope.variablesUsedInDescendantScope = filterUses(scope.variablesUsedInDescendantScope, name.NormalizedName(), func(used UsedVariable) {
		a.resolvePendingDescendantScopeUse(used, declared)
	})
}

// resolvePendingSameScopeUse resolves a pending use recorded earlier in the
// same scope against the declaration that just satisfied it.
func (a *Analyzer) resolvePendingSameScopeUse(used UsedVariable, declared *DeclaredVariable, kind VariableKind, origin DeclaredVariableOrigin, declName Identifier) {
	if kind == VariableKindClass || kind == VariableKindConst || kind == VariableKindLet {
		switch used.Kind {
		case UsedVariableKindAssignment:
			checkAssignmentLegality(declared, used.Name, true, a.sink)
		case UsedVariableKindTypeof, UsedVariableKindUse:
			a.sink.Report(Diagnostic{
				DiagnosticKind: VariableUsedBeforeDeclaration,
				Subject:        used.Name,
				Declaration:    identifierPtr(declName),
			})
		case UsedVariableKindExport:
			// Use before declaration is legal for variable exports.
		}

		return
	}

	if kind == VariableKindFunction && origin == DeclaredInDescendantScope && used.Kind == UsedVariableKindUse {
		a.sink.Report(Diagnostic{
			DiagnosticKind: FunctionCallBeforeDeclarationInBlockedScope,
			Subject:        used.Name,
			Declaration:    identifierPtr(declName),
		})
	}
}

// resolvePendingDescendantScopeUse resolves a pending use that crossed a
// function boundary. Such a use never gets a use-before-declaration
// diagnostic, since the enclosing function may run after this declaration.
func (a *Analyzer) resolvePendingDescendantScopeUse(used UsedVariable, declared *DeclaredVariable) {
	if used.Kind == UsedVariableKindAssignment {
		checkAssignmentLegality(declared, used.Name, false, a.sink)
	}
}

// variableUse resolves name against the current scope's own declarations
// if possible, or else records it as a pending use for the propagation
// engine to settle when the scope exits.
func (a *Analyzer) variableUse(name Identifier, kind UsedVariableKind) {
	current := a.stack.current()
	if declared := current.Declared.find(name.NormalizedName()); declared != nil {
		if kind == UsedVariableKindAssignment {
			checkAssignmentLegality(declared, name, false, a.sink)
		}

		return
	}

	current.variablesUsed = append(current.variablesUsed, UsedVariable{Name: name, Kind: kind})
}

// filterUses removes every UsedVariable matching name from uses, invoking
// onMatch for each one, and returns the retained (non-matching) slice.
func filterUses(uses []UsedVariable, name string, onMatch func(UsedVariable)) []UsedVariable {
	kept := uses[:0]

	for _, used := range uses {
		if used.Name.NormalizedName() == name {
			onMatch(used)

			continue
		}

		kept = append(kept, used)
	}

	return kept
}
