package parser

import (
	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/token"
)

// parseExpression implements `expression := lambda | assignment`. A
// leading `|` or `||` always starts a lambda; spec.md §4.2 requires
// one token of lookahead beyond the current token to disambiguate a
// single `|` (lambda parameter list) from a syntax error, since this
// grammar has no infix use for bare `|`.
func (p *Parser) parseExpression() (ast.Node, *nerr.Error) {
	cur := p.cur()
	if cur.Type == token.Operator && cur.Op == token.OrOr {
		return p.parseLambda(nil, p.advance().Pos)
	}
	if cur.Type == token.Operator && cur.Op == token.BitOr {
		if p.peek(1).Type != token.Identifier {
			return nil, p.errorf(p.peek(1).Pos, nerr.MsgLambdaNeedsIdent, describe(p.peek(1)))
		}
		return p.parsePipedLambda()
	}
	return p.parseAssignment()
}

func (p *Parser) parsePipedLambda() (ast.Node, *nerr.Error) {
	start := p.advance().Pos // opening '|'
	var params []string
	for {
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		params = append(params, name.Literal)
		if p.cur().Type == token.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectPipe(); err != nil {
		return nil, err
	}
	return p.parseLambda(params, start)
}

// expectPipe consumes a closing '|' operator token (Operator(BitOr)).
func (p *Parser) expectPipe() (token.Token, *nerr.Error) {
	if p.cur().Type != token.Operator || p.cur().Op != token.BitOr {
		return token.Token{}, p.errorf(p.cur().Pos, nerr.MsgExpectedToken, "'|'", describe(p.cur()))
	}
	return p.advance(), nil
}

// parseLambda parses the body of a lambda once its (possibly empty)
// parameter list and delimiting pipes have already been consumed:
// `lambdaBody := block | expression`.
func (p *Parser) parseLambda(params []string, start token.Position) (ast.Node, *nerr.Error) {
	id := p.nextLambdaID()

	var body ast.Node
	var err *nerr.Error
	if p.cur().Type == token.LBrace {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseExpression()
	}
	if err != nil {
		return nil, err
	}

	return &ast.Lambda{Base: ast.Base{At: start}, ID: id, Params: params, Body: body}, nil
}

// isAssignOp reports whether op is one of the operator tokens that
// introduce an assignment once a valid target has been parsed.
func isAssignOp(op token.Op) bool {
	switch op {
	case token.Assign, token.AddAssign, token.SubAssign, token.MulAssign,
		token.DivAssign, token.ModAssign, token.PowAssign:
		return true
	}
	return false
}

// parseAssignment implements:
//
//	assignment := logicalOr ( ('='|'+='|'-='|'*='|'/='|'%='|'**=') expression )?
//
// A compound operator desugars per spec.md §4.2: `x += e` becomes
// `x = x + e`. Any left-hand side other than a bare identifier is a
// syntax error (spec.md: "Assignment targets other than a bare
// identifier produce a syntax error").
func (p *Parser) parseAssignment() (ast.Node, *nerr.Error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	cur := p.cur()
	if cur.Type != token.Operator || !isAssignOp(cur.Op) {
		return left, nil
	}

	ident, ok := left.(*ast.Identifier)
	if !ok {
		return nil, p.errorf(left.Pos(), nerr.MsgInvalidAssignTarget, left.String())
	}

	opTok := p.advance()
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if base, isCompound := opTok.Op.Base(); isCompound {
		rhs = &ast.BinOp{
			Base:  ast.Base{At: opTok.Pos},
			Left:  &ast.Identifier{Base: ast.Base{At: ident.Pos()}, Name: ident.Name},
			Op:    token.Token{Type: token.Operator, Op: base, Pos: opTok.Pos},
			Right: rhs,
		}
	}

	return &ast.Assign{Base: ast.Base{At: ident.Pos()}, Name: ident.Name, Expr: rhs}, nil
}

type binOpLevel struct {
	kind     token.Type
	ops      []token.Op
	keywords []token.Kw
}

func matchesLevel(t token.Token, lvl binOpLevel) bool {
	if t.Type != lvl.kind {
		return false
	}
	if lvl.kind == token.Operator {
		for _, op := range lvl.ops {
			if t.Op == op {
				return true
			}
		}
		return false
	}
	for _, kw := range lvl.keywords {
		if t.Kw == kw {
			return true
		}
	}
	return false
}

// parseLeftAssoc implements one precedence level of a left-associative
// binary-operator chain: `next ( OP next )*`.
func (p *Parser) parseLeftAssoc(lvl binOpLevel, next func() (ast.Node, *nerr.Error)) (ast.Node, *nerr.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for matchesLevel(p.cur(), lvl) {
		opTok := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Base: ast.Base{At: opTok.Pos}, Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLogicalOr() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Keyword, keywords: []token.Kw{token.Or}}, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Keyword, keywords: []token.Kw{token.And}}, p.parseEquality)
}

func (p *Parser) parseEquality() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Operator, ops: []token.Op{token.Eq, token.Ne}}, p.parseComparison)
}

func (p *Parser) parseComparison() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Operator, ops: []token.Op{token.Lt, token.Le, token.Gt, token.Ge}}, p.parseAddition)
}

func (p *Parser) parseAddition() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Operator, ops: []token.Op{token.Add, token.Sub}}, p.parseMultiplication)
}

func (p *Parser) parseMultiplication() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Operator, ops: []token.Op{token.Mul, token.Div, token.Mod}}, p.parseExponent)
}

// parseExponent implements `exponent := unary ( '**' unary )*`: `**` is
// left-associative, a deliberate departure from the usual right-assoc
// convention that spec.md §4.2 calls out explicitly to preserve.
func (p *Parser) parseExponent() (ast.Node, *nerr.Error) {
	return p.parseLeftAssoc(binOpLevel{kind: token.Operator, ops: []token.Op{token.Pow}}, p.parseUnary)
}

// parseUnary implements `unary := ('+'|'-'|'not') unary | call`.
func (p *Parser) parseUnary() (ast.Node, *nerr.Error) {
	cur := p.cur()
	if cur.Type == token.Operator && (cur.Op == token.Add || cur.Op == token.Sub || cur.Op == token.Not) {
		opTok := p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Base: ast.Base{At: opTok.Pos}, Op: opTok, Expr: expr}, nil
	}
	return p.parseCall()
}

// parseCall implements `call := primary ( '(' argList? ')' )*`, extended
// (spec.md §9) with a postfix `.key` / `.key = value` suffix so the
// reserved Index/SetProperty nodes become reachable syntax.
func (p *Parser) parseCall() (ast.Node, *nerr.Error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case token.LParen:
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case token.Dot:
			dot := p.advance()
			key, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			if p.cur().Type == token.Operator && p.cur().Op == token.Assign {
				p.advance()
				value, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				return &ast.SetProperty{Base: ast.Base{At: dot.Pos}, Target: expr, Key: key.Literal, Value: value}, nil
			}
			expr = &ast.Index{Base: ast.Base{At: dot.Pos}, Target: expr, Key: key.Literal}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Node) (ast.Node, *nerr.Error) {
	start, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	var args []ast.Node
	if p.cur().Type != token.RParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Type == token.Comma {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Base: ast.Base{At: start.Pos}, Callee: callee, Args: args}, nil
}

// parsePrimary implements `primary := NUMBER | STRING | BOOL | IDENT |
// '(' expression ')'`, plus the reserved object-literal extension.
func (p *Parser) parsePrimary() (ast.Node, *nerr.Error) {
	cur := p.cur()
	switch cur.Type {
	case token.Number:
		p.advance()
		return &ast.NumberLit{Base: ast.Base{At: cur.Pos}, Value: cur.Num}, nil
	case token.String:
		p.advance()
		return &ast.StringLit{Base: ast.Base{At: cur.Pos}, Value: cur.Literal}, nil
	case token.Boolean:
		p.advance()
		return &ast.BoolLit{Base: ast.Base{At: cur.Pos}, Value: cur.Bool}, nil
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Base: ast.Base{At: cur.Pos}, Name: cur.Literal}, nil
	case token.Keyword:
		if cur.Kw == token.None {
			p.advance()
			return &ast.NoneLit{Base: ast.Base{At: cur.Pos}}, nil
		}
	case token.LParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBrace:
		return p.parseObjectLit()
	}
	return nil, p.errorf(cur.Pos, nerr.MsgExpectedToken, "an expression", describe(cur))
}

// parseObjectLit parses `{ key: value, ... }` (spec.md §9: the reserved
// Object node, made live).
func (p *Parser) parseObjectLit() (ast.Node, *nerr.Error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	var fields []ast.ObjectField
	if p.cur().Type != token.RBrace {
		for {
			key, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.ObjectField{Key: key.Literal, Value: value})
			if p.cur().Type == token.Comma {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.ObjectLit{Base: ast.Base{At: start.Pos}, Fields: fields}, nil
}
