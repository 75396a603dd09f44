package cmd

import (
	"io"
	"os"

	"github.com/leonardinius/gocalc/internal/calcerrors"
)

// LineReader reads a single line of input. *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type appOpts struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	reporter   calcerrors.ErrReporter
	lineReader func(opts *appOpts) (LineReader, error)
}

var defaultAppOpts = appOpts{
	stdin:      os.Stdin,
	stdout:     os.Stdout,
	stderr:     os.Stderr,
	lineReader: newReadline,
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r calcerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

// WithLineReader replaces the interactive prompt, used by tests.
func WithLineReader(r LineReader) AppOption {
	return func(opts *appOpts) {
		opts.lineReader = func(*appOpts) (LineReader, error) { return r, nil }
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = calcerrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
