package treeedit_test

import (
	"strings"
	"testing"

	"surge/internal/treeedit"
	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/refactor"
	"surge/internal/treeedit/treeedittest"
)

func mustParse(t *testing.T, text string) *treeedit.SourceFile {
	t.Helper()
	sf, err := treeedit.Parse("scenario.sg", []byte(text), treeedit.DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants failed on initial parse: %v", err)
	}
	return sf
}

func findDescendant(t *testing.T, sf *treeedit.SourceFile, kind adapt.NodeKind) *treeedit.Node {
	t.Helper()
	n := sf.GetRootNode().FindDescendantOfKind(kind)
	if n == nil {
		t.Fatalf("no descendant of kind %v found", kind)
	}
	return n
}

// Scenario 1: add the pub modifier to a function.
func TestSetExported_AddsPub(t *testing.T) {
	sf := mustParse(t, "fn foo() {}\n")
	fn := findDescendant(t, sf, adapt.KindItemFn)
	root := sf.GetRootNode()

	if err := refactor.SetExported(fn, true); err != nil {
		t.Fatalf("SetExported: %v", err)
	}
	if got, want := sf.GetFullText(), "pub fn foo() {}\n"; got != want {
		t.Fatalf("text after SetExported: got %q, want %q", got, want)
	}
	if err := treeedittest.CheckIdentityPreserved(root, sf.GetRootNode()); err != nil {
		t.Fatalf("root identity: %v", err)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
	if !fn.IsDisposed() && !fn.HasPubKeyword() {
		t.Fatalf("expected the surviving fn wrapper to report HasPubKeyword() == true")
	}
}

// Scenario 1b: SetExported is idempotent when already exported.
func TestSetExported_AlreadyExportedIsNoop(t *testing.T) {
	sf := mustParse(t, "pub fn foo() {}\n")
	fn := findDescendant(t, sf, adapt.KindItemFn)
	before := sf.GetFullText()
	if err := refactor.SetExported(fn, true); err != nil {
		t.Fatalf("SetExported: %v", err)
	}
	if sf.GetFullText() != before {
		t.Fatalf("expected no-op edit, text changed: %q -> %q", before, sf.GetFullText())
	}
}

// Scenario 2: remove a single-line attribute.
func TestRemoveAttr_SingleLine(t *testing.T) {
	sf := mustParse(t, "@deprecated\nfn foo() {}\n")
	attr := findDescendant(t, sf, adapt.KindAttr)

	if err := refactor.RemoveAttr(attr); err != nil {
		t.Fatalf("RemoveAttr: %v", err)
	}
	if got, want := sf.GetFullText(), "fn foo() {}\n"; got != want {
		t.Fatalf("text after RemoveAttr: got %q, want %q", got, want)
	}
	if !attr.IsDisposed() {
		t.Fatalf("expected the removed attribute's wrapper to be disposed")
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
}

// Scenario 2b: remove one of two attributes while the other attribute's
// wrapper is also live. Exercises the ChildIndexNodeHandler removal path
// against a real trailing sibling, which TestRemoveAttr_SingleLine's
// one-attribute file never reaches.
func TestRemoveAttr_TwoAttributes_SurvivingSiblingKeepsIdentity(t *testing.T) {
	sf := mustParse(t, "@a\n@b\nfn f() {}\n")
	fn := findDescendant(t, sf, adapt.KindItemFn)
	attrs := fn.GetAttrs()
	if len(attrs) != 2 {
		t.Fatalf("expected two attributes, got %d", len(attrs))
	}
	first, second := attrs[0], attrs[1]

	if err := refactor.RemoveAttr(first); err != nil {
		t.Fatalf("RemoveAttr: %v", err)
	}
	if got, want := sf.GetFullText(), "@b\nfn f() {}\n"; got != want {
		t.Fatalf("text after RemoveAttr: got %q, want %q", got, want)
	}
	if !first.IsDisposed() {
		t.Fatalf("expected the removed attribute's wrapper to be disposed")
	}
	if second.IsDisposed() {
		t.Fatalf("expected the surviving attribute's wrapper to remain live")
	}
	if got, want := second.GetText(), "@b"; got != want {
		t.Fatalf("surviving attribute text: got %q, want %q", got, want)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
}

// Scenario 3: replace an identifier's text in place.
func TestReplaceText_RenamesIdentifier(t *testing.T) {
	sf := mustParse(t, "fn foo() {\n    let x = old;\n}\n")
	ident := sf.GetRootNode().FindDescendantOfKind(adapt.KindExprIdent)
	if ident == nil {
		t.Fatalf("expected to find the `old` identifier expression")
	}
	if got := ident.GetText(); got != "old" {
		t.Fatalf("expected identifier text %q, got %q", "old", got)
	}

	if err := sf.ReplaceText(ident.GetRange(), "new_value"); err != nil {
		t.Fatalf("ReplaceText: %v", err)
	}
	want := "fn foo() {\n    let x = new_value;\n}\n"
	if got := sf.GetFullText(); got != want {
		t.Fatalf("text after ReplaceText: got %q, want %q", got, want)
	}
	if !ident.IsDisposed() {
		if got := ident.GetText(); got != "new_value" {
			t.Fatalf("surviving identifier wrapper's text: got %q, want %q", got, "new_value")
		}
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
}

func TestNodeReplaceWithText_RenamesIdentifierThroughTheNode(t *testing.T) {
	sf := mustParse(t, "fn foo() {\n    let x = old;\n}\n")
	ident := sf.GetRootNode().FindDescendantOfKind(adapt.KindExprIdent)
	if ident == nil {
		t.Fatalf("expected to find the `old` identifier expression")
	}

	if err := ident.ReplaceWithText("renamed"); err != nil {
		t.Fatalf("ReplaceWithText: %v", err)
	}
	want := "fn foo() {\n    let x = renamed;\n}\n"
	if got := sf.GetFullText(); got != want {
		t.Fatalf("text after ReplaceWithText: got %q, want %q", got, want)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
}

func TestNodeReplaceWithText_DisposedNodeErrors(t *testing.T) {
	sf := mustParse(t, "fn foo() {}\n")
	fn := findDescendant(t, sf, adapt.KindItemFn)
	fn.Dispose()

	if err := fn.ReplaceWithText("fn bar() {}"); err == nil {
		t.Fatalf("expected an error replacing text on a disposed node")
	}
}

// Scenario 4: insert a statement into a function body's block.
func TestInsertStatement_IntoFunctionBody(t *testing.T) {
	sf := mustParse(t, "fn a() {\n}\n")
	body := findDescendant(t, sf, adapt.KindStmtBlock)

	if err := refactor.InsertStatement(body, 0, "\n    let m = 1;"); err != nil {
		t.Fatalf("InsertStatement: %v", err)
	}
	want := "fn a() {\n    let m = 1;\n}\n"
	if got := sf.GetFullText(); got != want {
		t.Fatalf("text after InsertStatement: got %q, want %q", got, want)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
	if !body.IsDisposed() {
		newLet := body.FindDescendantOfKind(adapt.KindStmtLet)
		if newLet == nil {
			t.Fatalf("expected the surviving body wrapper to have a let-statement descendant")
		}
	}
}

// Scenario 4b: inserting after an existing statement keeps both in order.
func TestInsertStatement_AfterExistingStatement(t *testing.T) {
	sf := mustParse(t, "fn a() {\n    let m = 1;\n}\n")
	body := findDescendant(t, sf, adapt.KindStmtBlock)

	if err := refactor.InsertStatement(body, 1, "\n    let n = 2;"); err != nil {
		t.Fatalf("InsertStatement: %v", err)
	}
	want := "fn a() {\n    let m = 1;\n    let n = 2;\n}\n"
	if got := sf.GetFullText(); got != want {
		t.Fatalf("text after InsertStatement: got %q, want %q", got, want)
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}
}

// An edit confined to one function must not disturb wrappers rooted in a
// sibling function, even though the insertion renumbers fn b's body block
// (a rename chain the reconciler must apply without a transient collision).
func TestApplyEdit_SurvivesUnrelatedNodesWithIdentityPreserved(t *testing.T) {
	sf := mustParse(t, "fn a() {\n    let m = 1;\n}\nfn b() {}\n")
	bFn := sf.GetRootNode().GetChildren()[0].GetChildAtIndex(1)
	if bFn == nil || !bFn.IsKind(adapt.KindItemFn) {
		t.Fatalf("expected to resolve the second fn item")
	}

	aBody := findDescendant(t, sf, adapt.KindStmtBlock)
	if err := refactor.InsertStatement(aBody, 1, "\n    let extra = 2;"); err != nil {
		t.Fatalf("InsertStatement: %v", err)
	}
	if bFn.IsDisposed() {
		t.Fatalf("editing fn a's body should not disturb fn b's wrapper")
	}
	if got := bFn.GetText(); !strings.HasPrefix(got, "fn b()") {
		t.Fatalf("fn b wrapper text drifted: %q", got)
	}
}

// Scenario 6: unwrap a redundant nested block.
func TestUnwrapBlock_LiftsNestedStatements(t *testing.T) {
	sf := mustParse(t, "fn n() {\n    { let x = 1; }\n}\n")
	body := findDescendant(t, sf, adapt.KindStmtBlock)
	list := body.FindChildOfKind(adapt.KindSyntaxList)
	if list == nil || list.GetChildCount() != 1 {
		t.Fatalf("expected fn body's statement list to hold exactly the nested block")
	}
	inner := list.GetChildAtIndex(0)
	if inner == nil || !inner.IsKind(adapt.KindStmtBlock) {
		t.Fatalf("expected the sole statement to be a nested block, got %v", inner)
	}

	if err := refactor.UnwrapBlock(inner); err != nil {
		t.Fatalf("UnwrapBlock: %v", err)
	}
	want := "fn n() {\n    let x = 1;\n}\n"
	if got := sf.GetFullText(); got != want {
		t.Fatalf("text after UnwrapBlock: got %q, want %q", got, want)
	}
	if !inner.IsDisposed() {
		t.Fatalf("expected the unwrapped block's own wrapper to be disposed")
	}
	if err := treeedittest.CheckAll(sf); err != nil {
		t.Fatalf("invariants after edit: %v", err)
	}

	survivor := sf.GetRootNode().FindDescendantOfKind(adapt.KindStmtLet)
	if survivor == nil {
		t.Fatalf("expected the let statement to survive the unwrap")
	}
	if got := survivor.GetText(); got != "let x = 1;" {
		t.Fatalf("surviving let statement text: got %q, want %q", got, "let x = 1;")
	}
}
