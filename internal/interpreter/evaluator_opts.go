package interpreter

import (
	"io"
)

const (
	MinBase     = 2
	MaxBase     = 36
	DefaultBase = 10
)

type evaluatorOpts struct {
	base        int
	verbose     bool
	traceWriter io.Writer
}

var defaultEvaluatorOpts = evaluatorOpts{
	base: DefaultBase,
}

type EvaluatorOption func(*evaluatorOpts)

// WithBase sets the numeral base used to parse number tokens.
func WithBase(base int) EvaluatorOption {
	return func(opts *evaluatorOpts) {
		opts.base = base
	}
}

// WithVerbose enables a trace line per binary operation.
func WithVerbose(verbose bool) EvaluatorOption {
	return func(opts *evaluatorOpts) {
		opts.verbose = verbose
	}
}

// WithTraceWriter streams trace lines to w as they are produced.
// Lines are still collected in Result.Trace.
func WithTraceWriter(w io.Writer) EvaluatorOption {
	return func(opts *evaluatorOpts) {
		opts.traceWriter = w
	}
}

func newEvaluatorOpts(options ...EvaluatorOption) *evaluatorOpts {
	opts := defaultEvaluatorOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
