package parser

import (
	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/token"
)

// parseDeclaration implements `declaration := varDecl | funcDecl | exprStmt`.
func (p *Parser) parseDeclaration() (ast.Node, *nerr.Error) {
	cur := p.cur()
	if cur.Type == token.Keyword && cur.Kw == token.Let {
		return p.parseVarDecl()
	}
	if cur.Type == token.Keyword && cur.Kw == token.Function {
		return p.parseFuncDecl()
	}
	return p.parseExprStmt()
}

// parseVarDecl implements `varDecl := 'let' IDENT ('=' expression)? ';'`.
func (p *Parser) parseVarDecl() (ast.Node, *nerr.Error) {
	start := p.advance().Pos // 'let'

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	var value ast.Node
	if p.cur().Type == token.Operator && p.cur().Op == token.Assign {
		p.advance()
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.VarDecl{Base: ast.Base{At: start}, Name: name.Literal, Value: value}, nil
}

// parseFuncDecl implements `funcDecl := 'function' IDENT paramList block`.
func (p *Parser) parseFuncDecl() (ast.Node, *nerr.Error) {
	start := p.advance().Pos // 'function'

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParenParamList()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{Base: ast.Base{At: start}, Name: name.Literal, Params: params, Body: body}, nil
}

// parseExprStmt implements `exprStmt := expression ';'`.
func (p *Parser) parseExprStmt() (ast.Node, *nerr.Error) {
	start := p.cur().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Base: ast.Base{At: start}, Inner: expr}, nil
}

// parseParenParamList parses a parenthesized, comma-separated identifier
// list, as used by function declarations and call argument lists'
// sibling, the formal-parameter list.
func (p *Parser) parseParenParamList() ([]string, *nerr.Error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []string
	if p.cur().Type != token.RParen {
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
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseBlock parses a brace-delimited sequence of declarations.
func (p *Parser) parseBlock() (*ast.Block, *nerr.Error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Type != token.RBrace && p.cur().Type != token.EOF {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Base: ast.Base{At: start.Pos}, Stmts: stmts}, nil
}
