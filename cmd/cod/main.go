package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sirupsen/logrus"

	"cod/internal"
	"cod/internal/config"
)

const usage = `Usage: cod [-c config.yaml] [-d] [-t] [-e code | file.cod]

Without a file or -e an interactive session is started.

options:
  -c FILE  read settings from a YAML file
  -e CODE  evaluate CODE and exit
  -t       print the syntax tree instead of evaluating
  -d       debug logging
  -h       show this help
`

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

type options struct {
	configFile string
	code       string
	file       string
	tree       bool
	debug      bool
	help       bool
}

// parseArgs reads the command line, argv[0] being the program name
func parseArgs(argv []string) (*options, error) {
	opts, optind, err := getopt.Getopts(argv, "c:e:tdh")
	if err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			o.configFile = opt.Value
		case 'e':
			o.code = opt.Value
		case 't':
			o.tree = true
		case 'd':
			o.debug = true
		default: // case 'h':
			o.help = true
		}
	}

	rest := argv[optind:]
	if len(rest) > 1 {
		return nil, fmt.Errorf("expected at most one source file, got %d", len(rest))
	}
	if len(rest) == 1 {
		if o.code != "" {
			return nil, fmt.Errorf("-e cannot be combined with a source file")
		}
		o.file = rest[0]
	}
	return o, nil
}

func loadConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return nil, err
		}
	}
	if o.debug {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	return cfg, nil
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", absPath, err)
	}
	return string(b), nil
}

// run executes one source in the mode selected by o
func run(in *internal.Interpreter, o *options, source string, p internal.IPrinter) int {
	if o.tree {
		tree, err := in.Tree(source)
		if err != nil {
			p.Fprintln(os.Stderr, err)
			return 1
		}
		p.Println(tree)
		return 0
	}
	if !in.RunAndPrint(source) {
		return 1
	}
	return 0
}

func main() {
	o, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if o.help {
		fmt.Print(usage)
		return
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if o.code == "" && o.file == "" {
		if err := repl(cfg, o); err != nil && err != io.EOF {
			fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
			os.Exit(1)
		}
		return
	}

	p := stdPrinter{}
	in := internal.NewInterpreter(cfg, p)

	source := o.code
	if o.file != "" {
		if source, err = readSource(o.file); err != nil {
			in.Logger().WithField("file", o.file).Error(err)
			os.Exit(1)
		}
	}

	os.Exit(run(in, o, source, p))
}
