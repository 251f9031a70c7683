// Package refactor holds client-facing convenience helpers built purely on
// internal/treeedit's edit primitives (EditPlan, ApplyEdit, the NodeHandler
// implementations). None of them touch adapt or the parser directly.
package refactor

import (
	"surge/internal/treeedit"
	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
)

// SetExported adds or removes the `pub` modifier on a function item,
// matching Node.HasPubKeyword's own notion of "exported". A no-op if the
// function already has the requested visibility.
func SetExported(node *treeedit.Node, exported bool) error {
	if node == nil || node.IsDisposed() || !node.IsKind(adapt.KindItemFn) {
		return errs.InvalidOperationf("SetExported", "node is nil, disposed, or not a function")
	}
	if node.HasPubKeyword() == exported {
		return nil
	}

	sf := node.GetSourceFile()
	start := node.GetStart()

	if exported {
		return sf.ReplaceText(treeedit.Range{Pos: start, End: start}, "pub ")
	}

	const prefix = "pub "
	text := sf.GetFullText()
	if start+len(prefix) > len(text) || text[start:start+len(prefix)] != prefix {
		return errs.InvalidOperationf("SetExported", "expected %q immediately before the function keyword", prefix)
	}
	return sf.ReplaceText(treeedit.Range{Pos: start, End: start + len(prefix)}, "")
}

// RemoveAttr deletes a single attribute from its item's attribute list. If
// the attribute occupies its own line, the trailing newline (and any
// indentation before the next line's first token) is removed along with it,
// so deleting a whole-line attribute doesn't leave a blank line behind.
func RemoveAttr(node *treeedit.Node) error {
	if node == nil || node.IsDisposed() || !node.IsKind(adapt.KindAttr) {
		return errs.InvalidOperationf("RemoveAttr", "node is nil, disposed, or not an attribute")
	}
	list := node.GetParent()
	if list == nil || !list.IsKind(adapt.KindSyntaxList) {
		return errs.InvalidOperationf("RemoveAttr", "attribute has no attribute-list parent")
	}
	index := list.ChildIndex(node)
	if index < 0 {
		return errs.InvalidOperationf("RemoveAttr", "attribute not found among its list's siblings")
	}

	sf := node.GetSourceFile()
	text := sf.GetFullText()
	start := node.GetStart()
	end := node.GetEnd()

	scan := treeedit.SkipHorizontalWhitespace(text, end)
	if scan < len(text) && text[scan] == '\n' {
		end = scan + 1
	}

	plan := treeedit.EditPlan{Pos: start, ReplacingLength: end - start, InsertItemsCount: 0}
	handler := treeedit.ChildIndexNodeHandler{Parent: list.NodeID(), At: index, Count: -1, Removed: node.NodeID()}
	return sf.ApplyEdit(plan, handler)
}

// InsertStatement inserts statementText as a new statement at position index
// within block's own statement list (0 inserts before the first statement,
// GetChildCount() appends after the last).
func InsertStatement(block *treeedit.Node, index int, statementText string) error {
	if block == nil || block.IsDisposed() || !block.IsKind(adapt.KindStmtBlock) {
		return errs.InvalidOperationf("InsertStatement", "node is nil, disposed, or not a block")
	}
	list := block.FindChildOfKind(adapt.KindSyntaxList)
	if list == nil {
		return errs.InvalidOperationf("InsertStatement", "block has no statement list")
	}

	plan, err := treeedit.InsertIntoParent(list, index, statementText, 1)
	if err != nil {
		return err
	}
	handler := treeedit.ChildIndexNodeHandler{Parent: list.NodeID(), At: index, Count: 1}
	return block.GetSourceFile().ApplyEdit(plan, handler)
}

// UnwrapBlock removes a redundant nested block, splicing its statements
// directly into the position it used to occupy in its enclosing statement
// list. Backed by UnwrapParentHandler so the lifted statements' wrappers
// keep their identity across the edit.
func UnwrapBlock(block *treeedit.Node) error {
	if block == nil || block.IsDisposed() || !block.IsKind(adapt.KindStmtBlock) {
		return errs.InvalidOperationf("UnwrapBlock", "node is nil, disposed, or not a block")
	}
	list := block.FindChildOfKind(adapt.KindSyntaxList)
	if list == nil {
		return errs.InvalidOperationf("UnwrapBlock", "block has no statement list")
	}

	sf := block.GetSourceFile()
	text := sf.GetFullText()
	children := list.GetChildren()

	var inner string
	if len(children) > 0 {
		inner = text[children[0].GetStart():children[len(children)-1].GetEnd()]
	}

	blockRange := block.GetRange()
	plan := treeedit.EditPlan{
		Pos:              blockRange.Pos,
		ReplacingLength:  blockRange.Len(),
		NewText:          inner,
		InsertItemsCount: len(children),
	}
	return sf.ApplyEdit(plan, treeedit.UnwrapParentHandler{Removed: block.NodeID()})
}
