package semantic

import (
	"testing"

	"github.com/nekolang/neko/internal/lexer"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/parser"
)

func analyze(t *testing.T, scope *SymbolTable, src string) *nerr.Error {
	t.Helper()
	program, perr := parser.New(lexer.New(src), src).Parse()
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	return New(scope).Analyze(program)
}

func TestAnalyzeValidDeclarationsAndUses(t *testing.T) {
	scope := NewGlobal()
	if err := analyze(t, scope, "let x = 1; let y = x + 1;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeUndefinedIdentifier(t *testing.T) {
	scope := NewGlobal()
	err := analyze(t, scope, "let x = y;")
	if err == nil || err.Kind != nerr.ReferenceError {
		t.Fatalf("got %v, want a ReferenceError", err)
	}
}

func TestAnalyzeDuplicateDeclarationSameScope(t *testing.T) {
	scope := NewGlobal()
	err := analyze(t, scope, "let x = 1; let x = 2;")
	if err == nil || err.Kind != nerr.SyntaxError {
		t.Fatalf("got %v, want a SyntaxError for duplicate declaration", err)
	}
}

func TestAnalyzeAssignToUndefined(t *testing.T) {
	scope := NewGlobal()
	err := analyze(t, scope, "x = 1;")
	if err == nil || err.Kind != nerr.ReferenceError {
		t.Fatalf("got %v, want a ReferenceError", err)
	}
}

func TestAnalyzeFunctionParamsScoped(t *testing.T) {
	scope := NewGlobal()
	if err := analyze(t, scope, "function add(a, b) { a + b; }"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scope.LookUp("a", true); ok {
		t.Error("parameter 'a' must not leak into the global scope")
	}
}

func TestAnalyzeLambdaParamsScoped(t *testing.T) {
	scope := NewGlobal()
	if err := analyze(t, scope, "let f = |x| x + 1;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scope.LookUp("x", true); ok {
		t.Error("lambda parameter 'x' must not leak into the global scope")
	}
}

func TestAnalyzeFunctionBodyScopePoppedOnError(t *testing.T) {
	scope := NewGlobal()
	src := "function f() { let q = undefinedName; }"
	program, perr := parser.New(lexer.New(src), src).Parse()
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	analyzer := New(scope)
	err := analyzer.Analyze(program)
	if err == nil {
		t.Fatal("expected an error from the undefined reference")
	}
	if analyzer.scope != scope || analyzer.scope.ScopeLevel != 1 {
		t.Fatalf("scope not unwound after error: level %d, want 1", analyzer.scope.ScopeLevel)
	}
	if _, ok := scope.LookUp("f", true); !ok {
		t.Error("function name should still be registered even though its body errored")
	}
}

func TestAnalyzeDisableDeclarationSkipsRegistration(t *testing.T) {
	scope := NewGlobal()
	analyzer := New(scope)
	analyzer.Options = Options{DisableDeclaration: true}

	program, perr := parser.New(lexer.New("let preview = 1;"), "let preview = 1;").Parse()
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if err := analyzer.Analyze(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scope.LookUp("preview", true); ok {
		t.Error("DisableDeclaration must not register the name")
	}
}

func TestAnalyzeRedeclarationRejectedAcrossCalls(t *testing.T) {
	// Simulates successive REPL inputs sharing one persistent scope.
	scope := NewGlobal()
	if err := analyze(t, scope, "let x = 1;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := analyze(t, scope, "let x = 2;")
	if err == nil || err.Kind != nerr.SyntaxError {
		t.Fatalf("got %v, want SyntaxError: redeclaring 'x' in the same persistent scope", err)
	}
}
