package treeedit

import (
	"testing"

	"surge/internal/treeedit/adapt"
)

func TestGetSymbolResolvesFnDeclaration(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn foo() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fn := sf.GetRootNode().FindDescendantOfKind(adapt.KindItemFn)
	if fn == nil {
		t.Fatalf("expected a fn item")
	}
	sym, ok := fn.GetSymbol()
	if !ok || sym == nil {
		t.Fatalf("expected a symbol for the fn declaration")
	}
	if got := sym.GetName(); got != "foo" {
		t.Fatalf("GetName() = %q, want %q", got, "foo")
	}
	if !sym.Equals(sym) {
		t.Fatalf("expected a symbol to equal itself")
	}
	if sym.GetAliasedSymbol() != sym {
		t.Fatalf("GetAliasedSymbol should return the same wrapper for a non-import symbol")
	}
	if got := sym.GetOriginalName(); got != "foo" {
		t.Fatalf("GetOriginalName() = %q, want %q for a non-import symbol", got, "foo")
	}
}

func TestGetSymbolCacheInvalidatedAcrossEdit(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn a() {}\nfn b() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	first := sf.GetRootNode().FindDescendantOfKind(adapt.KindItemFn)
	sym, ok := first.GetSymbol()
	if !ok || sym.GetName() != "a" {
		t.Fatalf("expected the first fn's symbol to resolve to %q", "a")
	}

	if err := sf.ReplaceText(first.GetRange(), "fn renamed() {}"); err != nil {
		t.Fatalf("ReplaceText: %v", err)
	}

	renamed := sf.GetRootNode().FindDescendantOfKind(adapt.KindItemFn)
	newSym, ok := renamed.GetSymbol()
	if !ok || newSym.GetName() != "renamed" {
		t.Fatalf("expected the post-edit fn's symbol to resolve to %q, got ok=%v", "renamed", ok)
	}
}

func TestGetSymbolOnNonDeclarationNodeFails(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn a() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	block := sf.GetRootNode().FindDescendantOfKind(adapt.KindStmtBlock)
	if block == nil {
		t.Fatalf("expected a block")
	}
	if _, ok := block.GetSymbol(); ok {
		t.Fatalf("expected no symbol for a non-declaration node")
	}
}
