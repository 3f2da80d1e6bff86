package semantic

import "testing"

func TestSymbolTableInsertAndLookUp(t *testing.T) {
	global := NewGlobal()
	global.Insert(Symbol{Name: "x", Kind: VarSymbol})

	sym, ok := global.LookUp("x", false)
	if !ok || sym.Kind != VarSymbol {
		t.Fatalf("got %+v, %v", sym, ok)
	}
}

func TestSymbolTableChildSeesParent(t *testing.T) {
	global := NewGlobal()
	global.Insert(Symbol{Name: "x", Kind: VarSymbol})
	child := NewChild(global, "inner")

	if _, ok := child.LookUp("x", false); !ok {
		t.Error("child scope should resolve a parent-scope symbol")
	}
	if _, ok := child.LookUp("x", true); ok {
		t.Error("currentOnly lookup must not walk into the parent scope")
	}
}

func TestSymbolTableChildShadowsParent(t *testing.T) {
	global := NewGlobal()
	global.Insert(Symbol{Name: "x", Kind: VarSymbol})
	child := NewChild(global, "inner")
	child.Insert(Symbol{Name: "x", Kind: FunctionSymbol})

	sym, _ := child.LookUp("x", false)
	if sym.Kind != FunctionSymbol {
		t.Errorf("got %v, want the child's shadowing FunctionSymbol", sym.Kind)
	}
	parentSym, _ := global.LookUp("x", false)
	if parentSym.Kind != VarSymbol {
		t.Error("shadowing in the child must not mutate the parent's entry")
	}
}

func TestSymbolTableRemove(t *testing.T) {
	global := NewGlobal()
	global.Insert(Symbol{Name: "x", Kind: VarSymbol})
	global.Remove("x")

	if _, ok := global.LookUp("x", false); ok {
		t.Error("expected 'x' to be gone after Remove")
	}
}

func TestSymbolTableScopeLevels(t *testing.T) {
	global := NewGlobal()
	if global.ScopeLevel != 1 {
		t.Fatalf("got global ScopeLevel %d, want 1", global.ScopeLevel)
	}
	child := NewChild(global, "inner")
	if child.ScopeLevel != 2 {
		t.Fatalf("got child ScopeLevel %d, want 2", child.ScopeLevel)
	}
	if child.Parent() != global {
		t.Error("child.Parent() should return the global table")
	}
}
