// Package neko is the embeddable entry point to the neko interpreter:
// a small wrapper around internal/interp that exposes a stable,
// options-configured Engine to host applications, mirroring the
// teacher's pkg/dwscript facade (New/WithOutput/Eval/Compile/Run) over
// this language's smaller, dynamically-typed core (spec.md §2).
package neko

import (
	"bytes"
	"io"

	"github.com/nekolang/neko/internal/interp"
)

// Engine is a configured neko interpreter session. Successive Eval
// calls share one persistent global scope and environment, so a name
// declared in one call is visible to the next — the same behavior a
// REPL relies on (spec.md §4.4/§4.5).
type Engine struct {
	interp *interp.Interpreter
	buf    *bytes.Buffer // non-nil only when no WithOutput option was given
}

// Option configures an Engine at construction time.
type Option func(*config)

type config struct {
	out io.Writer
}

// WithOutput redirects the `print` built-in's output to w for the
// lifetime of the Engine. Without this option, Eval captures each
// call's output into its Result instead.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// New creates an Engine. It never fails today — the error return is
// kept so a future option (e.g. a resource limit) can reject
// construction without breaking callers, matching the teacher's
// pkg/dwscript.New signature.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{}
	if cfg.out != nil {
		e.interp = interp.New(cfg.out)
	} else {
		e.buf = &bytes.Buffer{}
		e.interp = interp.New(e.buf)
	}
	return e, nil
}

// Result is the outcome of evaluating one piece of source text.
type Result struct {
	// Output is the text written by `print` during this call. It is
	// only ever populated when the Engine was constructed without
	// WithOutput; otherwise output went straight to the caller's writer
	// and Output is empty.
	Output string
	// Value is the displayed form of the input's final expression value
	// (spec.md §6 Display(quote=true)), or "none" for a declaration or
	// an empty input.
	Value string
}

// Eval lexes, parses, analyzes and evaluates source against the
// Engine's persistent session state.
func (e *Engine) Eval(source string) (*Result, error) {
	before := 0
	if e.buf != nil {
		before = e.buf.Len()
	}

	val, err := e.interp.Interpret(source)
	if err != nil {
		return nil, err
	}

	res := &Result{Value: val.Display(true)}
	if e.buf != nil {
		res.Output = e.buf.String()[before:]
	}
	return res, nil
}

// Program is source text that Compile has already validated once.
type Program struct {
	source string
}

// Compile parses, analyzes and evaluates source once against a
// throwaway session whose `print` output is discarded, so parse,
// semantic and runtime errors surface immediately, independent of the
// Engine's persistent state. The returned Program can be Run any number
// of times; each Run
// executes against its own fresh interpreter, so repeated declarations
// across runs never collide (spec.md has no notion of a compiled
// artifact distinct from source, so this stays a thin validation step
// rather than a cached bytecode form — see DESIGN.md).
func (e *Engine) Compile(source string) (*Program, error) {
	scratch := interp.New(io.Discard)
	if _, err := scratch.Interpret(source); err != nil {
		return nil, err
	}
	return &Program{source: source}, nil
}

// Run executes a compiled Program against a fresh session, independent
// of both the Engine's persistent state and any other Run of the same
// Program.
func (e *Engine) Run(p *Program) (*Result, error) {
	var buf bytes.Buffer
	fresh := interp.New(&buf)

	val, err := fresh.Interpret(p.source)
	if err != nil {
		return nil, err
	}
	return &Result{Output: buf.String(), Value: val.Display(true)}, nil
}
