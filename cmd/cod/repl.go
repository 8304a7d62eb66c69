package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"devt.de/krotik/common/termutil"

	"cod/internal"
	"cod/internal/config"
)

const exitLine = "salir"

func isExitLine(s string) bool {
	return strings.TrimSpace(s) == exitLine
}

// termPrinter writes through the console terminal so output lines up with
// the prompt while the tty is in raw mode
type termPrinter struct {
	term termutil.ConsoleLineTerminal
}

func (t termPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(t.term, a...)
}

func (t termPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(t.term, format, a...)
}

func (t termPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(t.term, a...)
}

// repl reads lines until salir or end of input. All lines share one
// interpreter, so bindings outlive the line that made them.
func repl(cfg *config.Config, o *options) error {
	clt, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	// Add history functionality
	clt, err = termutil.AddHistoryMixin(clt, cfg.HistoryFile, isExitLine)
	if err != nil {
		return err
	}

	if err = clt.StartTerm(); err != nil {
		return err
	}
	defer clt.StopTerm()

	p := termPrinter{clt}
	in := internal.NewInterpreter(cfg, p)

	fmt.Fprintln(clt, "¡Bienvenido!")
	fmt.Fprintf(clt, "Ingresa '%s' para salir.\n", exitLine)

	line, err := clt.NextLine()
	for err == nil && !isExitLine(line) {
		if strings.TrimSpace(line) != "" {
			run(in, o, line, p)
		}
		line, err = clt.NextLine()
	}

	fmt.Fprintln(clt, "¡Hasta luego!")
	return err
}
