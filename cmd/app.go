package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gocalc/internal/calculator"
)

const prompt = "Please enter a mathematical expression: "

var (
	errInvalidBase      = errors.New("Invalid base")
	errBaseNotSpecified = errors.New("Base not specified")
)

type CalcApp struct {
	opts *appOpts
}

// appArgs is the parsed command line.
type appArgs struct {
	base    int
	verbose bool
}

func NewCalcApp(options ...AppOption) *CalcApp {
	return &CalcApp{opts: newAppOpts(options...)}
}

// exitPanic is returned when the calculation panics.
const exitPanic = 2

func (app *CalcApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.opts.reporter.ReportPanic(r)
			code = exitPanic
		}
	}()

	parsed, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(app.opts.stdout, err)
		return 1
	}

	calc, err := calculator.New(
		calculator.WithBase(parsed.base),
		calculator.WithVerbose(parsed.verbose),
	)
	if err != nil {
		app.opts.reporter.ReportError(err)
		return 1
	}

	source, err := app.readExpression()
	if err != nil {
		app.opts.reporter.ReportError(err)
		return 1
	}

	if err := app.run(calc, source); err != nil {
		app.opts.reporter.ReportError(err)
		return 1
	}

	return 0
}

// parseArgs understands "-b <base>" and "-v".
// A well formed base outside the supported range falls back to 10.
func parseArgs(args []string) (appArgs, error) {
	parsed := appArgs{base: calculator.DefaultBase}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-b":
			if i+1 >= len(args) {
				return parsed, errBaseNotSpecified
			}
			i++
			base, err := parseBase(args[i])
			if err != nil {
				return parsed, err
			}
			parsed.base = base
		case "-v":
			parsed.verbose = true
		default:
			return parsed, fmt.Errorf("Invalid argument \"%s\"", args[i])
		}
	}

	return parsed, nil
}

func parseBase(arg string) (int, error) {
	if arg == "" {
		return 0, errInvalidBase
	}
	for _, c := range arg {
		if c < '0' || c > '9' {
			return 0, errInvalidBase
		}
	}

	base, err := strconv.Atoi(arg)
	if err != nil || base < calculator.MinBase || base > calculator.MaxBase {
		return calculator.DefaultBase, nil
	}
	return base, nil
}

// newReadline prompts through readline on a terminal. Readline draws no
// prompt for piped input, so the prompt is written ahead of the read instead.
func newReadline(opts *appOpts) (LineReader, error) {
	interactive := isTerminal(opts.stdin)
	cfg := &readline.Config{
		Prompt:         prompt,
		Stdin:          io.NopCloser(opts.stdin),
		Stdout:         opts.stdout,
		Stderr:         opts.stderr,
		FuncIsTerminal: func() bool { return interactive },
	}
	if !interactive {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	if interactive {
		return rl, nil
	}
	return &promptedReader{LineReader: rl, w: opts.stdout}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

type promptedReader struct {
	LineReader
	w io.Writer
}

func (p *promptedReader) Readline() (string, error) {
	if _, err := io.WriteString(p.w, prompt); err != nil {
		return "", err
	}
	return p.LineReader.Readline()
}

func (app *CalcApp) readExpression() (string, error) {
	rl, err := app.opts.lineReader(app.opts)
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, io.EOF) {
		return line, nil
	}
	return line, err
}

func (app *CalcApp) run(calc *calculator.Calculator, source string) error {
	result, err := calc.Calculate(source)
	if err != nil {
		return err
	}

	for _, line := range result.Trace {
		fmt.Fprintln(app.opts.stdout, line)
	}
	fmt.Fprintf(app.opts.stdout, "%s = %v\n", source, result.Value)

	return nil
}
