package scopewalk

import "fmt"

// assert enforces an internal invariant that a correct parser driver can
// never violate. Tripping it indicates a bug in the event sequence the
// driver fed the analyzer (an enter without a matching exit, a hoisted
// declaration with the wrong kind, ...), not a property of the source being
// linted, so it panics rather than reporting a Diagnostic.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("scopewalk: internal invariant violated: "+format, args...))
	}
}
