package internal

import (
	"os"

	"github.com/labstack/gommon/color"

	"cod/internal/ast"
)

// interpreterState stores the outcome of parsing one source
type interpreterState struct {
	source      string
	program     *ast.Program
	diagnostics []string
	err         error
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, diagnostics: make([]string, 0)}
}

// Valid returns true if the source parsed without diagnostics
func (s *interpreterState) Valid() bool {
	return len(s.diagnostics) == 0
}

// PrintErrors prints all parse diagnostics to stderr
func (s *interpreterState) PrintErrors(p IPrinter, c *color.Color) {
	if s.Valid() {
		return
	}
	p.Fprintln(os.Stderr, c.Red("Errores de análisis:"))
	for _, d := range s.diagnostics {
		p.Fprintln(os.Stderr, "\t"+d)
	}
}
