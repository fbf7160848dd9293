package scopewalk

// EndOfModule settles every pending use that was never resolved by a scope
// exit against the global scope. It must be the last event delivered, and
// only once every other scope has been exited.
func (a *Analyzer) EndOfModule() {
	assert(a.stack.len() == 1, "end_of_module called with %d scopes still open, want 1", a.stack.len())

	module := a.stack.module()

	// The global scope's declarations are process-wide and read-only; its
	// pending-use lists are local to this call and thrown away once it
	// returns, so a by-value copy of the DeclaredVariableSet header is safe
	// (nothing below ever appends to the global scope's declarations).
	global := Scope{Declared: *globalScopeVariables()}
	a.propagateVariableUses(module, &global, false, false)

	shield := typeofShield(global.variablesUsed, global.variablesUsedInDescendantScope)
	isResolved := func(u UsedVariable) bool {
		return global.Declared.find(u.Name.NormalizedName()) != nil || shield[u.Name.NormalizedName()]
	}

	for _, used := range global.variablesUsed {
		if isResolved(used) {
			continue
		}

		switch used.Kind {
		case UsedVariableKindAssignment:
			a.sink.Report(Diagnostic{DiagnosticKind: AssignmentToUndeclaredVariable, Subject: used.Name})
		case UsedVariableKindUse, UsedVariableKindExport:
			a.sink.Report(Diagnostic{DiagnosticKind: UseOfUndeclaredVariable, Subject: used.Name})
		case UsedVariableKindTypeof:
			// 'typeof foo' alone never reports foo as undeclared.
		}
	}

	for _, used := range global.variablesUsedInDescendantScope {
		if isResolved(used) {
			continue
		}

		// Unlike the switch above, this branch treats an unresolved 'typeof'
		// like a plain use. It is never reached for one: every 'typeof' entry
		// puts its own name into the shield, so isResolved accepts it first.
		if used.Kind == UsedVariableKindAssignment {
			a.sink.Report(Diagnostic{DiagnosticKind: AssignmentToUndeclaredVariable, Subject: used.Name})
		} else {
			a.sink.Report(Diagnostic{DiagnosticKind: UseOfUndeclaredVariable, Subject: used.Name})
		}
	}
}

// typeofShield collects every name that appears in a typeof use across both
// of the global scope's pending-use lists.
func typeofShield(lists ...[]UsedVariable) map[string]bool {
	shield := make(map[string]bool)

	for _, list := range lists {
		for _, used := range list {
			if used.Kind == UsedVariableKindTypeof {
				shield[used.Name.NormalizedName()] = true
			}
		}
	}

	return shield
}
