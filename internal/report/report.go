// Package report renders scopewalk.Diagnostic values for a CLI consumer and
// logs operational failures (file I/O, driver panics) that are not
// themselves part of the linting output, keeping "log a line and move on"
// operational errors separate from the program's actual output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"scopewalk"
)

// Format selects how diagnostics are rendered.
type Format int

const (
	Text Format = iota
	JSON
)

// ParseFormat maps a --format flag value to a Format, defaulting to Text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("report: unknown format %q, want \"text\" or \"json\"", s)
	}
}

// File pairs a path with the diagnostics found in it, for multi-file runs.
type File struct {
	Path        string
	Diagnostics []scopewalk.Diagnostic
}

// Write renders files to w in the given format, one diagnostic per line for
// Text, or a single JSON array for JSON.
func Write(w io.Writer, format Format, files []File) error {
	switch format {
	case JSON:
		return writeJSON(w, files)
	default:
		return writeText(w, files)
	}
}

func writeText(w io.Writer, files []File) error {
	for _, f := range files {
		for _, d := range f.Diagnostics {
			if _, err := fmt.Fprintln(w, formatLine(f.Path, d)); err != nil {
				return err
			}
		}
	}

	return nil
}

func formatLine(path string, d scopewalk.Diagnostic) string {
	line := fmt.Sprintf("%s: %s: %s", path, d.DiagnosticKind, d.Subject)
	if d.Declaration != nil {
		line += fmt.Sprintf(" (declared at %s)", *d.Declaration)
	}

	return line
}

// jsonDiagnostic is the wire shape for one diagnostic; scopewalk.Diagnostic
// itself has unexported fields on Identifier, so it cannot be marshaled
// directly.
type jsonDiagnostic struct {
	File        string `json:"file"`
	Kind        string `json:"kind"`
	Subject     string `json:"subject"`
	Declaration string `json:"declaration,omitempty"`
}

func writeJSON(w io.Writer, files []File) error {
	out := []jsonDiagnostic{}

	for _, f := range files {
		for _, d := range f.Diagnostics {
			jd := jsonDiagnostic{File: f.Path, Kind: d.DiagnosticKind.String(), Subject: d.Subject.NormalizedName()}
			if d.Declaration != nil {
				jd.Declaration = d.Declaration.NormalizedName()
			}

			out = append(out, jd)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Logger wraps the standard log package for operational messages that
// aren't linting output: a file that couldn't be read, or a driver that
// panicked on malformed input.
type Logger struct {
	*log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{Logger: log.New(w, "scopewalk: ", log.LstdFlags)}
}

func (l *Logger) FileError(path string, err error) {
	l.Printf("%s: %v", path, err)
}
