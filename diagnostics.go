package scopewalk

// DiagnosticKind is a stable identifier for one of the analyzer's ten error
// conditions.
type DiagnosticKind int

const (
	UseOfUndeclaredVariable DiagnosticKind = iota
	AssignmentToUndeclaredVariable
	AssignmentToConstGlobalVariable
	AssignmentToConstVariable
	AssignmentToConstVariableBeforeItsDeclaration
	AssignmentBeforeVariableDeclaration
	VariableUsedBeforeDeclaration
	FunctionCallBeforeDeclarationInBlockedScope
	RedeclarationOfVariable
	RedeclarationOfGlobalVariable
)

func (k DiagnosticKind) String() string {
	switch k {
	case UseOfUndeclaredVariable:
		return "use_of_undeclared_variable"
	case AssignmentToUndeclaredVariable:
		return "assignment_to_undeclared_variable"
	case AssignmentToConstGlobalVariable:
		return "assignment_to_const_global_variable"
	case AssignmentToConstVariable:
		return "assignment_to_const_variable"
	case AssignmentToConstVariableBeforeItsDeclaration:
		return "assignment_to_const_variable_before_its_declaration"
	case AssignmentBeforeVariableDeclaration:
		return "assignment_before_variable_declaration"
	case VariableUsedBeforeDeclaration:
		return "variable_used_before_declaration"
	case FunctionCallBeforeDeclarationInBlockedScope:
		return "function_call_before_declaration_in_blocked_scope"
	case RedeclarationOfVariable:
		return "redeclaration_of_variable"
	case RedeclarationOfGlobalVariable:
		return "redeclaration_of_global_variable"
	default:
		return "unknown"
	}
}

// Diagnostic is one structured error record emitted to a Sink. Subject is
// always set; Declaration and VariableKind are set only for the
// diagnostics that carry a paired declaration site.
type Diagnostic struct {
	DiagnosticKind DiagnosticKind
	Subject        Identifier
	Declaration    *Identifier
	VariableKind   *VariableKind
}

// Sink receives diagnostics as the analyzer decides them, in the order
// they become decidable. It is the analyzer's only output interface;
// rendering and source-location formatting are an external collaborator's
// job.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// CollectingSink accumulates every reported diagnostic in order. It is handy
// for tests and for library callers who want the whole batch at once instead
// of a streaming callback.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (s *CollectingSink) Report(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

func variableKindPtr(k VariableKind) *VariableKind { return &k }

func identifierPtr(id Identifier) *Identifier { return &id }
