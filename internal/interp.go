package internal

import (
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"cod/internal/ast"
	"cod/internal/config"
	"cod/internal/evaluator"
	"cod/internal/lexer"
	"cod/internal/object"
	"cod/internal/parser"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter runs sources one after another on the same root environment,
// so bindings made by one run are visible to the next.
type Interpreter struct {
	env     *object.Environment
	eval    *evaluator.Evaluator
	printer IPrinter
	color   *color.Color
	log     *logrus.Logger
}

// NewInterpreter creates an interpreter session. A nil cfg uses the defaults.
func NewInterpreter(cfg *config.Config, p IPrinter) *Interpreter {
	if cfg == nil {
		cfg = config.Default()
	}

	log := logrus.New()
	log.Out = os.Stderr
	log.SetLevel(cfg.Level())

	c := color.New()
	if !cfg.Color {
		c.Disable()
	}

	return &Interpreter{
		env: object.NewEnvironment(nil),
		eval: evaluator.New(
			evaluator.WithMaxDepth(cfg.MaxDepth),
			evaluator.WithLogger(log),
		),
		printer: p,
		color:   c,
		log:     log,
	}
}

// Logger returns the logger shared by the session and its evaluator
func (in *Interpreter) Logger() *logrus.Logger {
	return in.log
}

// Env returns the root environment of the session
func (in *Interpreter) Env() *object.Environment {
	return in.env
}

func (in *Interpreter) parse(source string) *interpreterState {
	state := newInterpreterState(source)

	p := parser.New(lexer.New(source))
	state.program = p.ParseProgram()
	state.diagnostics = p.Diagnostics()
	state.err = p.Err()

	in.log.WithFields(logrus.Fields{
		"statements":  len(state.program.Statements),
		"diagnostics": len(state.diagnostics),
	}).Debug("parsed")

	return state
}

// Run parses and evaluates source. Parse diagnostics are returned as a
// single error and nothing is evaluated. Runtime errors are not Go errors,
// they come back as an *object.Error result.
func (in *Interpreter) Run(source string) (object.Object, error) {
	state := in.parse(source)
	if state.err != nil {
		return nil, state.err
	}

	result := in.eval.Evaluate(state.program, in.env)

	kind := object.Type("nada")
	if result != nil {
		kind = result.Type()
	}
	in.log.WithField("result", kind).Debug("evaluated")

	return result, nil
}

// RunAndPrint runs source and prints the result, or the diagnostics.
// It returns false when there were parse or runtime errors.
func (in *Interpreter) RunAndPrint(source string) bool {
	state := in.parse(source)
	if state.err != nil {
		state.PrintErrors(in.printer, in.color)
		return false
	}

	result := in.eval.Evaluate(state.program, in.env)
	if result == nil {
		return true
	}
	if object.IsError(result) {
		in.printer.Println(in.color.Red(result.Inspect()))
		return false
	}
	in.printer.Println(result.Inspect())
	return true
}

// Tree returns the s-expression form of source, one statement per line,
// or the parse diagnostics as an error.
func (in *Interpreter) Tree(source string) (string, error) {
	state := in.parse(source)
	if state.err != nil {
		return "", state.err
	}

	return ast.Sexpr(state.program), nil
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	cfg := config.Default()
	cfg.Color = false
	return NewInterpreter(cfg, p).RunAndPrint(source)
}
