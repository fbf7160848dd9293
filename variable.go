package scopewalk

// VariableKind tags how a variable came to be declared. It never changes
// once a DeclaredVariable is created.
type VariableKind int

const (
	VariableKindVar VariableKind = iota
	VariableKindLet
	VariableKindConst
	VariableKindFunction
	VariableKindClass
	VariableKindImport
	VariableKindParameter
	VariableKindCatch
)

func (k VariableKind) String() string {
	switch k {
	case VariableKindVar:
		return "var"
	case VariableKindLet:
		return "let"
	case VariableKindConst:
		return "const"
	case VariableKindFunction:
		return "function"
	case VariableKindClass:
		return "class"
	case VariableKindImport:
		return "import"
	case VariableKindParameter:
		return "parameter"
	case VariableKindCatch:
		return "catch"
	default:
		return "unknown"
	}
}

// DeclaredVariableOrigin says whether a DeclaredVariable was textually
// declared in its scope, or hoisted up into it from a nested scope by the
// propagation engine.
type DeclaredVariableOrigin int

const (
	// DeclaredInCurrentScope marks a variable textually declared in the scope
	// that holds it.
	DeclaredInCurrentScope DeclaredVariableOrigin = iota

	// DeclaredInDescendantScope marks a var/function declaration hoisted up
	// from a nested block or for-scope. Only var and function declarations
	// may carry this origin; see declareVariable.
	DeclaredInDescendantScope
)

// DeclaredVariable is an entry in a scope's declared-variable multiset: a
// local binding, or a predefined global/module variable.
type DeclaredVariable struct {
	Name     Identifier
	Kind     VariableKind
	Origin   DeclaredVariableOrigin
	IsGlobal bool
}

// newLocalDeclaredVariable builds a DeclaredVariable for a textually- or
// hoist-declared local binding.
func newLocalDeclaredVariable(name Identifier, kind VariableKind, origin DeclaredVariableOrigin) DeclaredVariable {
	return DeclaredVariable{Name: name, Kind: kind, Origin: origin}
}

// newPredefinedDeclaredVariable builds a DeclaredVariable for a host/global
// or module-level predeclared binding. Predefined variables are always
// DeclaredInCurrentScope and are never reported as a "declared here" site.
func newPredefinedDeclaredVariable(name string, kind VariableKind) DeclaredVariable {
	return DeclaredVariable{
		Name:     Identifier{normalizedName: name},
		Kind:     kind,
		Origin:   DeclaredInCurrentScope,
		IsGlobal: true,
	}
}

// UsedVariableKind classifies why a name was referenced.
type UsedVariableKind int

const (
	UsedVariableKindUse UsedVariableKind = iota
	UsedVariableKindAssignment
	UsedVariableKindTypeof
	UsedVariableKindExport
)

func (k UsedVariableKind) String() string {
	switch k {
	case UsedVariableKindUse:
		return "use"
	case UsedVariableKindAssignment:
		return "assignment"
	case UsedVariableKindTypeof:
		return "typeof"
	case UsedVariableKindExport:
		return "export"
	default:
		return "unknown"
	}
}

// UsedVariable is a pending reference to a name that was not yet resolved
// against any declaration at the time it was recorded.
type UsedVariable struct {
	Name Identifier
	Kind UsedVariableKind
}
