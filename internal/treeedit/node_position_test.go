package treeedit

import (
	"testing"

	"surge/internal/treeedit/adapt"
)

func TestPositionalQueriesAndIterators(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn a() {}\nfn b() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := sf.GetRootNode()

	if root.GetPos() != root.GetStart() {
		t.Fatalf("GetPos should coincide with GetStart (no trivia tracking)")
	}
	if root.GetFullWidth() != root.GetWidth() {
		t.Fatalf("GetFullWidth should coincide with GetWidth (no trivia tracking)")
	}
	if got, want := root.GetWidth(), root.GetEnd()-root.GetStart(); got != want {
		t.Fatalf("GetWidth() = %d, want %d", got, want)
	}
	if !root.ContainsRange(root.GetStart(), root.GetEnd()) {
		t.Fatalf("root should contain its own full range")
	}

	fns := []*Node{}
	for d := range root.GetDescendantsIterator() {
		if d.IsKind(adapt.KindItemFn) {
			fns = append(fns, d)
		}
	}
	if len(fns) != 2 {
		t.Fatalf("expected 2 fn items via iterator, got %d", len(fns))
	}

	child := root.GetChildAtPos(fns[0].GetStart())
	if child == nil {
		t.Fatalf("expected a child at the first fn's start")
	}

	exact := root.GetDescendantAtStartWithWidth(fns[1].GetStart(), fns[1].GetWidth())
	if exact == nil || exact.GetStart() != fns[1].GetStart() || exact.GetEnd() != fns[1].GetEnd() {
		t.Fatalf("expected GetDescendantAtStartWithWidth to find the second fn exactly")
	}

	if got := root.GetDescendantAtStartWithWidth(fns[1].GetStart(), fns[1].GetWidth()+50); got != nil {
		t.Fatalf("expected no match for a width that doesn't correspond to any node")
	}
}

func TestGetParentSyntaxListAndAncestors(t *testing.T) {
	sf, err := Parse("f.sg", []byte("fn a() {}\nfn b() {}\n"), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fn := sf.GetRootNode().FindDescendantOfKind(adapt.KindItemFn)
	if fn == nil {
		t.Fatalf("expected a fn item")
	}
	list := fn.GetParentSyntaxList()
	if list == nil || !list.IsKind(adapt.KindSyntaxList) {
		t.Fatalf("expected fn's parent syntax list")
	}
	ancestors := fn.GetAncestors()
	if len(ancestors) == 0 || ancestors[len(ancestors)-1] != sf.GetRootNode() {
		t.Fatalf("expected the file root to be fn's outermost ancestor")
	}
}
