// Command genglobals regenerates internal/globaldata/names.go from the
// newline-delimited name lists under internal/globaldata/testdata/globals,
// turning a plain list into Go source rather than hand-maintaining it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type list struct {
	file    string
	varName string
	doc     []string
}

var lists = []list{
	{
		file:    "writable.txt",
		varName: "WritableGlobals",
		doc: []string{
			"WritableGlobals are host/ECMA-262 globals a program may reassign. They are",
			`declared with kind "function" (the source's convention for "any writable`,
			`global not otherwise categorized").`,
		},
	},
	{
		file:    "nonwritable.txt",
		varName: "NonWritableGlobals",
		doc: []string{
			"NonWritableGlobals are globals a program may never reassign. They are",
			`declared with kind "const".`,
		},
	},
	{
		file:    "module.txt",
		varName: "ModuleWritables",
		doc: []string{
			"ModuleWritables are the Node.js CommonJS bindings every module scope",
			`pre-declares, with kind "function".`,
		},
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: genglobals <globaldata directory>")
		os.Exit(64)
	}

	dir := os.Args[1]

	if err := generate(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(dir string) error {
	out, err := os.Create(filepath.Join(dir, "names.go"))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "// Code generated by cmd/genglobals from testdata/globals. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// Package globaldata holds the plain name lists that seed the analyzer's")
	fmt.Fprintln(w, "// predefined global and module scopes. It exists so the lists are data, not")
	fmt.Fprintln(w, "// control flow: cmd/genglobals regenerates this file from the newline-delimited")
	fmt.Fprintln(w, "// lists under testdata/globals, and globals.go in the root package turns the")
	fmt.Fprintln(w, "// data into a DeclaredVariableSet exactly once.")
	fmt.Fprintln(w, "package globaldata")
	fmt.Fprintln(w)

	for _, l := range lists {
		names, err := readNames(filepath.Join(dir, "testdata", "globals", l.file))
		if err != nil {
			return err
		}

		for _, line := range l.doc {
			fmt.Fprintf(w, "// %s\n", line)
		}

		fmt.Fprintf(w, "var %s = []string{\n", l.varName)

		for _, name := range names {
			if name.comment {
				if name.text == "" {
					fmt.Fprintln(w)
				} else {
					fmt.Fprintf(w, "\t// %s\n", name.text)
				}

				continue
			}

			fmt.Fprintf(w, "\t%q,\n", name.text)
		}

		fmt.Fprintln(w, "}")
		fmt.Fprintln(w)
	}

	return w.Flush()
}

type entry struct {
	text    string
	comment bool
}

// readNames parses a testdata/globals list file: blank lines become spacer
// comments, "#"-prefixed lines become Go comments carried over from the
// source's grouping (e.g. "ECMA-262 18.1 ..."), everything else is a name.
func readNames(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []entry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		switch {
		case line == "":
			entries = append(entries, entry{comment: true})
		case strings.HasPrefix(line, "#"):
			entries = append(entries, entry{comment: true, text: strings.TrimSpace(strings.TrimPrefix(line, "#"))})
		default:
			entries = append(entries, entry{text: line})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
