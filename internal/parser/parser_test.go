package parser

import (
	"testing"

	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Compound {
	t.Helper()
	program, err := New(lexer.New(src), src).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return program
}

func TestParseVarDecl(t *testing.T) {
	program := mustParse(t, "let x = 1;")
	decl, ok := program.Stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", program.Stmts[0])
	}
	if decl.Name != "x" {
		t.Errorf("got name %q, want x", decl.Name)
	}
	if _, ok := decl.Value.(*ast.NumberLit); !ok {
		t.Errorf("got value %T, want *ast.NumberLit", decl.Value)
	}
}

func TestParseVarDeclNoInitializer(t *testing.T) {
	program := mustParse(t, "let x;")
	decl := program.Stmts[0].(*ast.VarDecl)
	if decl.Value != nil {
		t.Errorf("got value %v, want nil", decl.Value)
	}
}

func TestParseFunctionDecl(t *testing.T) {
	program := mustParse(t, "function add(a, b) { a + b; }")
	decl, ok := program.Stmts[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", program.Stmts[0])
	}
	if decl.Name != "add" || len(decl.Params) != 2 {
		t.Errorf("got %+v", decl)
	}
}

func TestParseCompoundAssignDesugars(t *testing.T) {
	program := mustParse(t, "x += 1;")
	stmt := program.Stmts[0].(*ast.ExprStmt)
	assign := stmt.Inner.(*ast.Assign)
	bin, ok := assign.Expr.(*ast.BinOp)
	if !ok {
		t.Fatalf("got %T, want desugared *ast.BinOp", assign.Expr)
	}
	if ident, ok := bin.Left.(*ast.Identifier); !ok || ident.Name != "x" {
		t.Errorf("desugared left operand: got %+v, want Identifier x", bin.Left)
	}
}

func TestParseExponentLeftAssociative(t *testing.T) {
	// 2 ** 3 ** 2 must parse as (2 ** 3) ** 2, a deliberate departure
	// from the conventional right-associative '**'.
	program := mustParse(t, "2 ** 3 ** 2;")
	stmt := program.Stmts[0].(*ast.ExprStmt)
	outer := stmt.Inner.(*ast.BinOp)
	inner, ok := outer.Left.(*ast.BinOp)
	if !ok {
		t.Fatalf("got left %T, want nested *ast.BinOp (left-assoc)", outer.Left)
	}
	if lit, ok := inner.Left.(*ast.NumberLit); !ok || lit.Value != 2 {
		t.Errorf("innermost left operand: got %+v, want 2", inner.Left)
	}
}

func TestParsePipedLambda(t *testing.T) {
	program := mustParse(t, "let f = |x, y| x + y;")
	decl := program.Stmts[0].(*ast.VarDecl)
	lambda, ok := decl.Value.(*ast.Lambda)
	if !ok {
		t.Fatalf("got %T, want *ast.Lambda", decl.Value)
	}
	if len(lambda.Params) != 2 || lambda.Params[0] != "x" || lambda.Params[1] != "y" {
		t.Errorf("got params %v", lambda.Params)
	}
	if lambda.ID == "" {
		t.Error("expected a non-empty synthetic lambda ID")
	}
}

func TestParseEmptyPipedLambda(t *testing.T) {
	program := mustParse(t, "let f = ||1;")
	decl := program.Stmts[0].(*ast.VarDecl)
	lambda, ok := decl.Value.(*ast.Lambda)
	if !ok {
		t.Fatalf("got %T, want *ast.Lambda", decl.Value)
	}
	if len(lambda.Params) != 0 {
		t.Errorf("got params %v, want none", lambda.Params)
	}
}

func TestParseLambdaDistinctIDs(t *testing.T) {
	program := mustParse(t, "let a = ||1; let b = ||2;")
	first := program.Stmts[0].(*ast.VarDecl).Value.(*ast.Lambda)
	second := program.Stmts[1].(*ast.VarDecl).Value.(*ast.Lambda)
	if first.ID == second.ID {
		t.Errorf("expected distinct lambda IDs, both got %q", first.ID)
	}
}

func TestParseFunctionCallChaining(t *testing.T) {
	program := mustParse(t, "f(1, 2)(3);")
	stmt := program.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.Inner.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionCall", stmt.Inner)
	}
	if _, ok := outer.Callee.(*ast.FunctionCall); !ok {
		t.Fatalf("got callee %T, want nested *ast.FunctionCall", outer.Callee)
	}
}

func TestParseObjectLiteralAndPropertyAccess(t *testing.T) {
	program := mustParse(t, "let o = { a: 1, b: 2 }; o.a;")
	decl := program.Stmts[0].(*ast.VarDecl)
	obj, ok := decl.Value.(*ast.ObjectLit)
	if !ok {
		t.Fatalf("got %T, want *ast.ObjectLit", decl.Value)
	}
	if len(obj.Fields) != 2 || obj.Fields[0].Key != "a" {
		t.Errorf("got fields %+v", obj.Fields)
	}

	stmt := program.Stmts[1].(*ast.ExprStmt)
	idx, ok := stmt.Inner.(*ast.Index)
	if !ok {
		t.Fatalf("got %T, want *ast.Index", stmt.Inner)
	}
	if idx.Key != "a" {
		t.Errorf("got key %q, want a", idx.Key)
	}
}

func TestParsePropertySet(t *testing.T) {
	program := mustParse(t, "o.a = 5;")
	stmt := program.Stmts[0].(*ast.ExprStmt)
	set, ok := stmt.Inner.(*ast.SetProperty)
	if !ok {
		t.Fatalf("got %T, want *ast.SetProperty", stmt.Inner)
	}
	if set.Key != "a" {
		t.Errorf("got key %q, want a", set.Key)
	}
}

func TestParseInvalidAssignTargetIsSyntaxError(t *testing.T) {
	_, err := New(lexer.New("1 + 1 = 2;"), "1 + 1 = 2;").Parse()
	if err == nil {
		t.Fatal("expected a syntax error for a non-identifier assignment target")
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	_, err := New(lexer.New("let x = ;"), "let x = ;").Parse()
	if err == nil {
		t.Fatal("expected a syntax error for a missing initializer expression")
	}
}
