package scopewalk

// DeclaredVariableSet is the ordered multiset of variables declared directly
// in one scope. Duplicates are kept on purpose: a conflicting redeclaration
// is reported at the point it's added (see checkDeclarationConflict), and
// erasing the loser would only complicate the bookkeeping for no benefit.
// find always returns the first entry with a matching name, mirroring how
// the original declaration keeps priority over anything redeclared on top
// of it.
type DeclaredVariableSet struct {
	variables []DeclaredVariable
}

// add appends a locally-declared variable and returns a pointer to its
// stored copy. The pointer is valid until the next add or clear on this
// set, since append may move the backing array.
func (s *DeclaredVariableSet) add(name Identifier, kind VariableKind, origin DeclaredVariableOrigin) *DeclaredVariable {
	s.variables = append(s.variables, newLocalDeclaredVariable(name, kind, origin))

	return &s.variables[len(s.variables)-1]
}

// addPredefined appends a predefined global or module variable.
func (s *DeclaredVariableSet) addPredefined(name string, kind VariableKind) {
	s.variables = append(s.variables, newPredefinedDeclaredVariable(name, kind))
}

// find returns the first declared variable with the given normalized name,
// or nil if none exists.
func (s *DeclaredVariableSet) find(name string) *DeclaredVariable {
	for i := range s.variables {
		if s.variables[i].Name.NormalizedName() == name {
			return &s.variables[i]
		}
	}

	return nil
}

// All returns the declared variables in declaration order. Callers must not
// retain the slice past the owning scope's next clear.
func (s *DeclaredVariableSet) All() []DeclaredVariable { return s.variables }

// clear empties the set in place, keeping its backing array for reuse.
func (s *DeclaredVariableSet) clear() { s.variables = s.variables[:0] }
