package treeedit

import "surge/internal/treeedit/errs"

// EditPlan describes a single textual edit: replace the byte range
// [Pos, Pos+ReplacingLength) of a SourceFile's current text with NewText.
// It carries no reference to any wrapper or arena ID — planning is purely a
// text-and-position computation, decoupled from reconciliation.
type EditPlan struct {
	Pos              int
	ReplacingLength  int
	NewText          string
	InsertItemsCount int
}

func (p EditPlan) End() int { return p.Pos + p.ReplacingLength }

// Apply returns the text that results from applying p to text.
func (p EditPlan) Apply(text []byte) []byte {
	out := make([]byte, 0, len(text)-p.ReplacingLength+len(p.NewText))
	out = append(out, text[:p.Pos]...)
	out = append(out, p.NewText...)
	out = append(out, text[p.End():]...)
	return out
}

// InsertIntoParent is the exported form of insertIntoParent, for callers
// outside this package (internal/treeedit/refactor) building their own
// NodeHandler around the resulting plan.
func InsertIntoParent(parent *Node, childIndex int, newText string, insertItemsCount int) (EditPlan, error) {
	return insertIntoParent(parent, childIndex, newText, insertItemsCount)
}

// insertIntoParent computes the EditPlan for inserting newText as
// insertItemsCount new sibling(s) at position childIndex among parent's
// existing children. When parent currently has no
// children, the insertion point is placed right after parent's first '{' if
// one exists in its range, mirroring how a fresh block/body gets its first
// statement inserted.
func insertIntoParent(parent *Node, childIndex int, newText string, insertItemsCount int) (EditPlan, error) {
	if parent == nil || parent.IsDisposed() {
		return EditPlan{}, errs.InvalidOperationf("insertIntoParent", "parent is nil or disposed")
	}
	count := parent.GetChildCount()
	if childIndex < 0 || childIndex > count {
		return EditPlan{}, errs.ArgumentErrorf("insertIntoParent", "childIndex %d out of range [0,%d]", childIndex, count)
	}

	var pos int
	switch {
	case childIndex < count:
		pos = parent.GetChildAtIndex(childIndex).GetStart()
	case count > 0:
		pos = parent.GetChildAtIndex(count - 1).GetEnd()
	default:
		if brace := insertPointAfterOpenBrace(parent.sf.text, parent.GetRange()); brace >= 0 {
			pos = brace
		} else {
			pos = parent.GetEnd()
		}
	}

	return EditPlan{Pos: pos, ReplacingLength: 0, NewText: newText, InsertItemsCount: insertItemsCount}, nil
}

// replaceNodeText computes the EditPlan for replacing node's own text with newText.
func replaceNodeText(node *Node, newText string) (EditPlan, error) {
	if node == nil || node.IsDisposed() {
		return EditPlan{}, errs.InvalidOperationf("replaceNodeText", "node is nil or disposed")
	}
	r := node.GetRange()
	return EditPlan{Pos: r.Pos, ReplacingLength: r.Len(), NewText: newText, InsertItemsCount: 1}, nil
}

// removeNode computes the EditPlan for deleting node's text outright.
func removeNode(node *Node) (EditPlan, error) {
	if node == nil || node.IsDisposed() {
		return EditPlan{}, errs.InvalidOperationf("removeNode", "node is nil or disposed")
	}
	r := node.GetRange()
	return EditPlan{Pos: r.Pos, ReplacingLength: r.Len(), NewText: "", InsertItemsCount: 0}, nil
}
