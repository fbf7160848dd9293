package scopewalk

import (
	"sync"

	"scopewalk/internal/globaldata"
)

var (
	globalVariablesOnce sync.Once
	globalVariables     DeclaredVariableSet
)

// globalScopeVariables returns the process-wide, read-only set of predefined
// global variables (ECMA-262 built-ins and host globals). It is built once,
// lazily, and shared by every Analyzer; callers must never mutate it.
func globalScopeVariables() *DeclaredVariableSet {
	globalVariablesOnce.Do(func() {
		for _, name := range globaldata.WritableGlobals {
			globalVariables.addPredefined(name, VariableKindFunction)
		}

		for _, name := range globaldata.NonWritableGlobals {
			globalVariables.addPredefined(name, VariableKindConst)
		}
	})

	return &globalVariables
}

// declareModulePredefinedVariables seeds a fresh module scope with the
// Node.js CommonJS bindings every module implicitly has.
func declareModulePredefinedVariables(module *Scope) {
	for _, name := range globaldata.ModuleWritables {
		module.Declared.addPredefined(name, VariableKindFunction)
	}
}
