// Package scopewalk implements a single-pass lexical-scope analyzer for a
// JavaScript linter. It consumes a stream of scope-and-variable events from
// an upstream parser (see internal/driver for a minimal one) and reports
// variable-binding mistakes — undeclared names, use or assignment before
// declaration, assignment to constants, illegal redeclarations — to a Sink.
//
// The analyzer never builds a symbol table and never walks ancestor scopes
// on a use; every use is recorded locally and resolved by propagation at
// scope exit. This is what lets it run in one forward pass over the source
// despite JavaScript's hoisting and temporal-dead-zone rules.
package scopewalk
