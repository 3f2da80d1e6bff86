package lexer

import (
	"testing"

	"github.com/nekolang/neko/internal/token"
)

func tokenTypes(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestTokensBasicDeclaration(t *testing.T) {
	toks := New(`let x = 1 + 2;`).Tokens()
	want := []token.Type{
		token.Keyword, token.Identifier, token.Operator, token.Number,
		token.Operator, token.Number, token.Semicolon, token.EOF,
	}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanNumber(t *testing.T) {
	toks := New("3.14").Tokens()
	if toks[0].Type != token.Number || toks[0].Num != 3.14 {
		t.Fatalf("got %+v, want Number 3.14", toks[0])
	}
}

func TestScanStringNoEscapes(t *testing.T) {
	toks := New(`"a\nb"`).Tokens()
	if toks[0].Type != token.String || toks[0].Literal != `a\nb` {
		t.Fatalf("got %+v, want raw literal a\\nb (no escape processing)", toks[0])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	toks := New(`"abc`).Tokens()
	if toks[0].Type != token.String || toks[0].Literal != "abc" {
		t.Fatalf("got %+v, want the accumulated buffer for an unterminated literal", toks[0])
	}
	if toks[1].Type != token.EOF {
		t.Fatalf("expected EOF after the unterminated string, got %+v", toks[1])
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := New("let function and or none foo").Tokens()
	wantKw := []token.Kw{token.Let, token.Function, token.And, token.Or, token.None}
	for i, kw := range wantKw {
		if toks[i].Type != token.Keyword || toks[i].Kw != kw {
			t.Errorf("token %d: got %+v, want keyword %v", i, toks[i], kw)
		}
	}
	if toks[5].Type != token.Identifier || toks[5].Literal != "foo" {
		t.Errorf("token 5: got %+v, want Identifier foo", toks[5])
	}
}

func TestScanBooleansAndNot(t *testing.T) {
	toks := New("true false not").Tokens()
	if !toks[0].Bool || toks[0].Type != token.Boolean {
		t.Errorf("got %+v, want Boolean true", toks[0])
	}
	if toks[1].Bool || toks[1].Type != token.Boolean {
		t.Errorf("got %+v, want Boolean false", toks[1])
	}
	if toks[2].Type != token.Operator || toks[2].Op != token.Not {
		t.Errorf("got %+v, want Operator(Not)", toks[2])
	}
}

func TestScanOperators(t *testing.T) {
	src := "+ - * / % ** += -= *= /= %= **= == != < <= > >= | ||"
	wantOps := []token.Op{
		token.Add, token.Sub, token.Mul, token.Div, token.Mod, token.Pow,
		token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign, token.ModAssign, token.PowAssign,
		token.Eq, token.Ne, token.Lt, token.Le, token.Gt, token.Ge, token.BitOr, token.OrOr,
	}
	toks := New(src).Tokens()
	for i, op := range wantOps {
		if toks[i].Type != token.Operator || toks[i].Op != op {
			t.Errorf("token %d: got %+v, want Operator %v", i, toks[i], op)
		}
	}
}

func TestScanObjectLiteralPunctuation(t *testing.T) {
	toks := New("{ a: 1 }.a").Tokens()
	wantTypes := []token.Type{
		token.LBrace, token.Identifier, token.Colon, token.Number, token.RBrace,
		token.Dot, token.Identifier, token.EOF,
	}
	got := tokenTypes(toks)
	for i, want := range wantTypes {
		if got[i] != want {
			t.Errorf("token %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestScanUnknownCharacter(t *testing.T) {
	toks := New("@").Tokens()
	if toks[0].Type != token.Unknown {
		t.Fatalf("got %+v, want Unknown", toks[0])
	}
}
