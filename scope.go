package scopewalk

// Scope is one frame of the analyzer's scope stack. It pairs the variables
// declared directly in it with two pending-use lists: variablesUsed holds
// uses that are still eligible for a use-before-declaration diagnostic;
// variablesUsedInDescendantScope holds uses that crossed a function boundary
// on their way up and are therefore exempt (see propagate.go).
type Scope struct {
	Declared                       DeclaredVariableSet
	variablesUsed                  []UsedVariable
	variablesUsedInDescendantScope []UsedVariable

	// functionExpressionSelfName holds the self-name of a named function
	// expression, visible only while resolving uses inside that function's
	// own scope. nil for every other kind of scope.
	functionExpressionSelfName *DeclaredVariable
}

// clear wipes a Scope's contents so the pool can hand it out for a new
// nested scope without allocating.
func (s *Scope) clear() {
	s.Declared.clear()
	s.variablesUsed = s.variablesUsed[:0]
	s.variablesUsedInDescendantScope = s.variablesUsedInDescendantScope[:0]
	s.functionExpressionSelfName = nil
}

// selfNameMatches reports whether this scope's named-function-expression
// self-name (if any) is the name used.
func (s *Scope) selfNameMatches(name string) bool {
	return s.functionExpressionSelfName != nil && s.functionExpressionSelfName.Name.NormalizedName() == name
}
