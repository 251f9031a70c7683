package treeedit

import (
	"testing"

	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
)

func TestFactoryReplaceKeyMissingSource(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn foo() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	bogus := adapt.NodeID{Kind: adapt.KindItemFn, Raw: 9999}
	target := adapt.NodeID{Kind: adapt.KindItemFn, Raw: 1}
	if err := sf.factory.replaceKey(bogus, target); err == nil {
		t.Fatalf("expected an error replacing an uncached key")
	} else if !errs.Is(err, errs.InvalidOperation) {
		t.Fatalf("expected InvalidOperation, got %v", err)
	}
}

func TestFactoryReplaceKeyCollision(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn foo() {}\nfn bar() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	root := sf.GetRootNode()
	children := root.GetChildren()
	if len(children) == 0 {
		t.Fatalf("expected the file's top-level syntax list")
	}
	items := children[0].GetChildren()
	if len(items) < 2 {
		t.Fatalf("expected two fn items, got %d", len(items))
	}

	a, b := items[0].NodeID(), items[1].NodeID()
	if err := sf.factory.replaceKey(a, b); err == nil {
		t.Fatalf("expected an error replacing into an already-occupied key")
	} else if !errs.Is(err, errs.InvalidOperation) {
		t.Fatalf("expected InvalidOperation, got %v", err)
	}
}

func TestFactoryGetOrCreateReturnsSameWrapper(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn foo() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := sf.GetRootNode()
	b := sf.GetRootNode()
	if a != b {
		t.Fatalf("expected GetRootNode to return the same cached wrapper twice")
	}
}
