// Package ast defines the abstract syntax tree produced by the parser
// and walked by the semantic analyzer and evaluator.
//
// Node shape follows spec.md §3: a tagged variant with one Go struct per
// tag (grounded on the teacher's internal/ast.Node root-interface style,
// and on original_source/src/ast.rs's node set — BinOperator,
// UnaryOperator, VariabeDecleration, Lambda, FunctionCall, and the dead
// Object/Index/SetPropertyExpr variants this implementation makes live,
// see DESIGN.md). Each node owns its children; the tree is acyclic.
package ast

import "github.com/nekolang/neko/internal/token"

// Node is the root interface every AST node implements.
type Node interface {
	// Pos returns the source position the node originates from, used
	// for error reporting.
	Pos() token.Position
	// String renders the node for debugging and AST dumps.
	String() string
}

type Base struct {
	At token.Position
}

func (b Base) Pos() token.Position { return b.At }

// NumberLit is a numeric literal.
type NumberLit struct {
	Base
	Value float64
}

// StringLit is a string literal. Content is stored without its
// delimiting quotes; no escape processing occurs (spec.md §4.1).
type StringLit struct {
	Base
	Value string
}

// BoolLit is a `true`/`false` literal.
type BoolLit struct {
	Base
	Value bool
}

// NoneLit is the `none` literal.
type NoneLit struct {
	Base
}

// Identifier is a bare name reference.
type Identifier struct {
	Base
	Name string
}

// Compound is the top-level sequence of declarations/statements that
// make up a whole program or REPL input.
type Compound struct {
	Base
	Stmts []Node
}

// Block is a brace-delimited function/lambda body.
type Block struct {
	Base
	Stmts []Node
}

// VarDecl is `let name;` or `let name = value;`. Value is nil when no
// initializer was given.
type VarDecl struct {
	Base
	Name  string
	Value Node
}

// Assign is `name = expr;`, including the desugared form of compound
// assignment operators (spec.md §4.2): `name += expr` becomes
// Assign{Name: name, Expr: BinOp{Identifier{name}, Add, expr}}.
type Assign struct {
	Base
	Name string
	Expr Node
}

// BinOp is a binary operator application. Op is the full token (not
// just the operator tag) so that `and`/`or`, which the lexer produces
// as Keyword tokens, can appear here alongside true Operator tokens.
type BinOp struct {
	Base
	Left  Node
	Right Node
	Op    token.Token
}

// UnaryOp is a prefix operator application (`+`, `-`, `not`).
type UnaryOp struct {
	Base
	Expr Node
	Op   token.Token
}

// FunctionDecl is `function name(params) { body }`.
type FunctionDecl struct {
	Base
	Name   string
	Params []string
	Body   *Block
}

// Lambda is `|params| body` or `||body`. ID is a stable, unique,
// parser-issued name (spec.md §9 prefers a counter over the reference's
// pointer-derived string) used by the semantic pass to name the
// lambda's scope and by the evaluator to additionally bind the created
// function value under a synthetic name.
type Lambda struct {
	Base
	ID     string
	Params []string
	Body   Node // *Block, or a bare expression when lambdaBody is not a block
}

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	Base
	Callee Node
	Args   []Node
}

// ExprStmt marks a statement-level expression; it carries no semantics
// of its own beyond delimiting statement boundaries (spec.md §3).
type ExprStmt struct {
	Base
	Inner Node
}

// ObjectField is one `key: value` pair of an object literal, kept as a
// slice (rather than a map) so that source order is preserved in AST
// dumps. The runtime Object value lists its fields in sorted key order.
type ObjectField struct {
	Key   string
	Value Node
}

// ObjectLit is a `{ key: value, ... }` object literal (spec.md §9: a
// reserved node this implementation makes live).
type ObjectLit struct {
	Base
	Fields []ObjectField
}

// Index is `target.key` property read.
type Index struct {
	Base
	Target Node
	Key    string
}

// SetProperty is `target.key = value` property write.
type SetProperty struct {
	Base
	Target Node
	Key    string
	Value  Node
}

var (
	_ Node = (*NumberLit)(nil)
	_ Node = (*StringLit)(nil)
	_ Node = (*BoolLit)(nil)
	_ Node = (*NoneLit)(nil)
	_ Node = (*Identifier)(nil)
	_ Node = (*Compound)(nil)
	_ Node = (*Block)(nil)
	_ Node = (*VarDecl)(nil)
	_ Node = (*Assign)(nil)
	_ Node = (*BinOp)(nil)
	_ Node = (*UnaryOp)(nil)
	_ Node = (*FunctionDecl)(nil)
	_ Node = (*Lambda)(nil)
	_ Node = (*FunctionCall)(nil)
	_ Node = (*ExprStmt)(nil)
	_ Node = (*ObjectLit)(nil)
	_ Node = (*Index)(nil)
	_ Node = (*SetProperty)(nil)
)
