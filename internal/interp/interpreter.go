package interp

import (
	"io"

	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/lexer"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/parser"
	"github.com/nekolang/neko/internal/semantic"
)

// Interpreter is the long-lived entry point spec.md §2 describes:
// `interpret(text, options)` lexes and parses text into an AST, runs
// the semantic analyzer against the accumulated scope table, and then
// walks the AST with the accumulated environment. Both tables persist
// across calls so a REPL session sees declarations from earlier inputs
// (spec.md §4.4, §4.5).
//
// Grounded on the teacher's internal/interp/interpreter.go (a struct
// wrapping a persistent scope/environment pair plus an Eval entry
// point) and original_source/src/main.rs, which drives the same
// lex-parse-analyze-eval pipeline per REPL line.
type Interpreter struct {
	scope *semantic.SymbolTable
	env   *Environment
	out   io.Writer
}

// New creates an Interpreter with its own global scope and environment,
// with the built-in functions of spec.md §4.7 already registered.
// Output from the `print` built-in is written to out.
func New(out io.Writer) *Interpreter {
	i := &Interpreter{scope: semantic.NewGlobal(), env: NewEnvironment(), out: out}
	i.registerBuiltins()
	return i
}

// Interpret lexes, parses, analyzes and evaluates text against the
// interpreter's persistent state, equivalent to
// InterpretWithOptions(text, Options{}).
func (i *Interpreter) Interpret(text string) (Value, *nerr.Error) {
	return i.InterpretWithOptions(text, Options{})
}

// InterpretWithOptions is Interpret with explicit Options. With
// DisableCalls and DisableDeclaration both set, evaluating a partial
// line as a preview can never run side-effecting calls or accumulate a
// duplicate declaration (spec.md §6).
func (i *Interpreter) InterpretWithOptions(text string, opts Options) (Value, *nerr.Error) {
	l := lexer.New(text)
	p := parser.New(l, text)

	program, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return i.Run(program, opts)
}

// Run analyzes and evaluates an already-parsed program against the
// interpreter's persistent state. Exposed so a caller that needs the
// AST itself (the CLI's --dump-ast flag, for instance) can parse once
// and both inspect and execute the same tree, rather than parsing
// twice.
func (i *Interpreter) Run(program *ast.Compound, opts Options) (Value, *nerr.Error) {
	analyzer := semantic.New(i.scope)
	analyzer.Options = semantic.Options{DisableDeclaration: opts.DisableDeclaration}
	if err := analyzer.Analyze(program); err != nil {
		return nil, err
	}

	return i.eval(program, i.env, opts)
}
