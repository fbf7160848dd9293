// Command scopewalk runs the lexical-scope analyzer over one or more
// JavaScript files and reports variable-binding diagnostics, the way the
// teacher's glox command runs its interpreter over a single script.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"scopewalk"
	"scopewalk/internal/driver"
	"scopewalk/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("scopewalk", flag.ContinueOnError)
	formatFlag := fs.String("format", "text", `output format: "text" or "json"`)
	moduleFlag := fs.Bool("module", true, "treat input files as CommonJS modules (predeclares require/module/exports/__dirname/__filename)")

	if err := fs.Parse(args); err != nil {
		return 64
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "usage: scopewalk [-format text|json] [-module=false] file...")

		return 64
	}

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 64
	}

	logger := report.NewLogger(stderr)

	results := make([]report.File, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			diags, err := analyzeFile(path, *moduleFlag)
			if err != nil {
				logger.FileError(path, err)

				return err
			}

			results[i] = report.File{Path: path, Diagnostics: diags}

			return nil
		})
	}

	hadFailure := g.Wait() != nil

	if err := report.Write(stdout, format, results); err != nil {
		logger.Printf("writing output: %v", err)

		return 1
	}

	if hadFailure {
		return 1
	}

	for _, f := range results {
		if len(f.Diagnostics) > 0 {
			return 1
		}
	}

	return 0
}

// analyzeFile is the one Analyzer-worth of work a single goroutine owns: its
// own file, its own driver.Parser, and its own Analyzer, sharing nothing
// mutable with any other file's analysis.
func analyzeFile(path string, asModule bool) ([]scopewalk.Diagnostic, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sink := &scopewalk.CollectingSink{}

	var a *scopewalk.Analyzer
	if asModule {
		a = scopewalk.NewAnalyzer(sink)
	} else {
		a = scopewalk.NewScriptAnalyzer(sink)
	}

	if err := driver.Analyze(string(source), a); err != nil {
		return nil, err
	}

	return sink.Diagnostics, nil
}
