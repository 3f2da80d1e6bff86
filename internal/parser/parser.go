// Package parser implements a hand-written recursive-descent parser for
// neko, turning a token sequence into an AST (spec.md §4.2).
//
// Grounded on the teacher's internal/parser/parser.go (single-token
// lookahead cursor, an Errors() accumulator pattern) and on
// original_source/src/parser.rs for the grammar shape itself
// (precedence-climbing binary expressions, the `|`/`||` lambda
// disambiguation). Unlike the teacher, which recovers from parse errors
// to keep checking the rest of a file, this parser stops at the first
// error (spec.md §4.2: "no error recovery — parsing terminates"),
// matching original_source/src/parser.rs.
package parser

import (
	"strconv"

	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/lexer"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/token"
)

// Parser holds the full token sequence for a single parse and a cursor
// into it. Tokenizing eagerly (rather than pulling from the lexer lazily)
// is what lets peek(offset) look past the current token, which the
// lambda disambiguation after `|` in parseExpression needs.
type Parser struct {
	tokens    []token.Token
	source    string
	pos       int
	lambdaSeq int
}

// New creates a Parser over the tokens produced by l. source is kept
// only so parse errors can render a caret under the offending line.
func New(l *lexer.Lexer, source string) *Parser {
	return &Parser{tokens: l.Tokens(), source: source}
}

// Parse parses the whole input as a program: a sequence of top-level
// declarations/statements (spec.md §4.2 `program`).
func (p *Parser) Parse() (*ast.Compound, *nerr.Error) {
	start := p.cur().Pos
	var stmts []ast.Node
	for p.cur().Type != token.EOF {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Base: ast.Base{At: start}, Stmts: stmts}, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) *nerr.Error {
	return nerr.At(nerr.SyntaxError, pos, p.source, format, args...)
}

// expect consumes the current token if it has the given type, or
// returns a SyntaxError naming what was expected and what was found.
func (p *Parser) expect(tt token.Type) (token.Token, *nerr.Error) {
	if p.cur().Type != tt {
		return token.Token{}, p.errorf(p.cur().Pos, nerr.MsgExpectedToken, tt, describe(p.cur()))
	}
	return p.advance(), nil
}

func describe(t token.Token) string {
	if t.Type == token.EOF {
		return "end of input"
	}
	return t.String()
}

// nextLambdaID returns a stable, unique name for a lambda expression,
// used by the semantic pass to name its scope (spec.md §9 prefers a
// parser-issued counter over the reference's pointer-derived string).
func (p *Parser) nextLambdaID() string {
	p.lambdaSeq++
	return "lambda#" + strconv.Itoa(p.lambdaSeq)
}
