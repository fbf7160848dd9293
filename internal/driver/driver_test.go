package driver

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"scopewalk"
)

// casesArchive bundles each scenario as a pair of files: "<name>/source.js"
// holds the program text, and "<name>/want.txt" lists the expected
// diagnostic kinds, one per line, in report order. An empty want.txt means
// no diagnostics are expected.
var casesArchive = txtar.Parse([]byte(`
-- plain/source.js --
var x = 3;
x;
-- plain/want.txt --

-- use-before-let/source.js --
x;
let x;
-- use-before-let/want.txt --
variable used before declaration

-- hoisted-function-in-block/source.js --
f();
{
  function f() {}
}
-- hoisted-function-in-block/want.txt --
function call before declaration in blocked scope

-- assign-to-const/source.js --
const k = 1;
k = 2;
-- assign-to-const/want.txt --
assignment to const variable

-- typeof-shield/source.js --
if (typeof maybe !== "undefined") {
  maybe;
}
-- typeof-shield/want.txt --

-- nested-function-closure/source.js --
function g() {
  return y;
}
let y = 1;
g();
-- nested-function-closure/want.txt --

-- redeclare-let/source.js --
let x;
let x;
-- redeclare-let/want.txt --
redeclaration of variable

-- undeclared-use/source.js --
neverDeclared;
-- undeclared-use/want.txt --
use of undeclared variable

-- class-method-and-field/source.js --
class Counter {
  count = 0;
  increment() {
    this.count = this.count + 1;
    return count;
  }
}
-- class-method-and-field/want.txt --
use of undeclared variable

-- for-of-loop/source.js --
const items = [1, 2, 3];
for (const item of items) {
  item;
}
-- for-of-loop/want.txt --

-- arrow-free-function-expr/source.js --
const make = function counter() {
  return counter;
};
make;
-- arrow-free-function-expr/want.txt --

-- import-bindings/source.js --
import def, { a, b as c } from "mod";
import * as ns from "other-mod";
def;
a;
c;
ns;
-- import-bindings/want.txt --

-- assign-to-import/source.js --
import name from "mod";
name = 1;
-- assign-to-import/want.txt --
assignment to const variable
`))

func filesByDir(ar *txtar.Archive) map[string]map[string]string {
	out := make(map[string]map[string]string)

	for _, f := range ar.Files {
		dir, name, found := strings.Cut(f.Name, "/")
		if !found {
			continue
		}

		if out[dir] == nil {
			out[dir] = make(map[string]string)
		}

		out[dir][name] = string(f.Data)
	}

	return out
}

func wantKindsFromText(t *testing.T, text string) []scopewalk.DiagnosticKind {
	t.Helper()

	names := map[string]scopewalk.DiagnosticKind{
		"use of undeclared variable":                          scopewalk.UseOfUndeclaredVariable,
		"assignment to undeclared variable":                   scopewalk.AssignmentToUndeclaredVariable,
		"assignment to const global variable":                 scopewalk.AssignmentToConstGlobalVariable,
		"assignment to const variable":                        scopewalk.AssignmentToConstVariable,
		"assignment to const variable before its declaration": scopewalk.AssignmentToConstVariableBeforeItsDeclaration,
		"assignment before variable declaration":              scopewalk.AssignmentBeforeVariableDeclaration,
		"variable used before declaration":                    scopewalk.VariableUsedBeforeDeclaration,
		"function call before declaration in blocked scope":   scopewalk.FunctionCallBeforeDeclarationInBlockedScope,
		"redeclaration of variable":                           scopewalk.RedeclarationOfVariable,
		"redeclaration of global variable":                    scopewalk.RedeclarationOfGlobalVariable,
	}

	var kinds []scopewalk.DiagnosticKind

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		kind, ok := names[line]
		if !ok {
			t.Fatalf("unknown diagnostic kind name %q", line)
		}

		kinds = append(kinds, kind)
	}

	return kinds
}

func TestCasesArchive(t *testing.T) {
	dirs := filesByDir(casesArchive)

	for name, files := range dirs {
		name, files := name, files

		t.Run(name, func(t *testing.T) {
			source, ok := files["source.js"]
			if !ok {
				t.Fatalf("case %q has no source.js", name)
			}

			sink := &scopewalk.CollectingSink{}
			a := scopewalk.NewAnalyzer(sink)

			if err := Analyze(source, a); err != nil {
				t.Fatalf("Analyze: %v", err)
			}

			want := wantKindsFromText(t, files["want.txt"])

			got := make([]scopewalk.DiagnosticKind, len(sink.Diagnostics))
			for i, d := range sink.Diagnostics {
				got[i] = d.DiagnosticKind
			}

			if len(got) != len(want) {
				t.Fatalf("got %v, want %v", got, want)
			}

			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("diagnostic %d: got %v, want %v (all: got=%v want=%v)", i, got[i], want[i], got, want)
				}
			}
		})
	}
}

func TestAnalyzeReportsStructuralParseErrors(t *testing.T) {
	sink := &scopewalk.CollectingSink{}
	a := scopewalk.NewAnalyzer(sink)

	if err := Analyze("let x = ;", a); err == nil {
		t.Fatal("expected a structural parse error, got nil")
	}
}
