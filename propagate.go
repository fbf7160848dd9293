package scopewalk

// propagateVariableUses drains current's two pending-use lists into parent,
// resolving whatever parent already declares and carrying the rest upward.
// It never searches beyond parent: no scope ever looks past its immediate
// parent at propagation time, which is what keeps the whole analysis a
// single pass.
func (a *Analyzer) propagateVariableUses(current, parent *Scope, allowUseBeforeDeclaration, consumeArguments bool) {
	for _, used := range current.variablesUsed {
		assert(current.Declared.find(used.Name.NormalizedName()) == nil,
			"use %q propagated while still declared in its own scope", used.Name.NormalizedName())

		switch target := parent.Declared.find(used.Name.NormalizedName()); {
		case target != nil:
			if used.Kind == UsedVariableKindAssignment {
				checkAssignmentLegality(target, used.Name, false, a.sink)
			}
		case consumeArguments && used.Name.NormalizedName() == "arguments":
			// Treated as an implicit parameter binding; resolved.
		case current.selfNameMatches(used.Name.NormalizedName()):
			// Resolved against the function expression's own name.
		case allowUseBeforeDeclaration:
			parent.variablesUsedInDescendantScope = append(parent.variablesUsedInDescendantScope, used)
		default:
			parent.variablesUsed = append(parent.variablesUsed, used)
		}
	}
	current.variablesUsed = current.variablesUsed[:0]

	for _, used := range current.variablesUsedInDescendantScope {
		switch target := parent.Declared.find(used.Name.NormalizedName()); {
		case target != nil:
			if used.Kind == UsedVariableKindAssignment {
				checkAssignmentLegality(target, used.Name, false, a.sink)
			}
		case current.selfNameMatches(used.Name.NormalizedName()):
			// Resolved against the function expression's own name.
		default:
			parent.variablesUsedInDescendantScope = append(parent.variablesUsedInDescendantScope, used)
		}
	}
	current.variablesUsedInDescendantScope = current.variablesUsedInDescendantScope[:0]
}

// hoistDeclarations is used only by exit_block_scope and exit_for_scope:
// every var/function declared directly in current is re-declared in parent
// with DeclaredInDescendantScope origin, reusing declareVariable so the
// hoisted declaration goes through the same conflict and pending-use
// resolution logic as a textual declaration would.
func (a *Analyzer) hoistDeclarations(current, parent *Scope) {
	for _, v := range current.Declared.All() {
		if v.Kind == VariableKindVar || v.Kind == VariableKindFunction {
			assert(!v.IsGlobal, "attempted to hoist a predefined global variable")
			a.declareVariable(parent, v.Name, v.Kind, DeclaredInDescendantScope)
		}
	}
}
