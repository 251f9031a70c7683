// Package treeedittest holds invariant checks shared by internal/treeedit's
// own tests.
package treeedittest

import (
	"fmt"

	"surge/internal/treeedit"
	"surge/internal/treeedit/errs"
)

// CheckAll runs every structural invariant check against sf's current tree
// and returns the first failure encountered.
func CheckAll(sf *treeedit.SourceFile) error {
	if err := CheckStructuralInvariants(sf); err != nil {
		return err
	}
	if err := CheckDescendantsLaw(sf); err != nil {
		return err
	}
	if err := CheckDescendantAtPosLaw(sf); err != nil {
		return err
	}
	return nil
}

// CheckStructuralInvariants walks the tree from its root and verifies:
//  1. the root has no parent
//  2. every child's ChildIndex position round-trips through its parent's
//     GetChildAtIndex
//  3. every child's range is fully contained in its parent's range
//  4. siblings are ordered left-to-right by start position and never overlap
func CheckStructuralInvariants(sf *treeedit.SourceFile) error {
	root := sf.GetRootNode()
	if root.GetParent() != nil {
		return fmt.Errorf("treeedittest: root node has a non-nil parent")
	}
	return walkStructural(root)
}

func walkStructural(n *treeedit.Node) error {
	children := n.GetChildren()
	parentRange := n.GetRange()

	prevEnd := -1
	for i, child := range children {
		if got := n.ChildIndex(child); got != i {
			return fmt.Errorf("treeedittest: child at position %d resolves ChildIndex()=%d", i, got)
		}
		if got := n.GetChildAtIndex(i); got != child {
			return fmt.Errorf("treeedittest: GetChildAtIndex(%d) did not return the same wrapper as GetChildren()[%d]", i, i)
		}
		if p := child.GetParent(); p != n {
			return fmt.Errorf("treeedittest: child's GetParent() does not point back to its own parent wrapper")
		}
		cr := child.GetRange()
		if !parentRange.Contains(cr) {
			return fmt.Errorf("treeedittest: child range %+v is not contained in parent range %+v", cr, parentRange)
		}
		if cr.Pos < prevEnd {
			return fmt.Errorf("treeedittest: sibling %d overlaps or precedes the previous sibling (start=%d, prevEnd=%d)", i, cr.Pos, prevEnd)
		}
		prevEnd = cr.End
		if err := walkStructural(child); err != nil {
			return err
		}
	}
	return nil
}

// CheckDescendantsLaw verifies GetDescendants() equals a preorder traversal
// of GetChildren() applied recursively, for every node in the tree.
func CheckDescendantsLaw(sf *treeedit.SourceFile) error {
	return walkDescendantsLaw(sf.GetRootNode())
}

func walkDescendantsLaw(n *treeedit.Node) error {
	want := preorder(n)
	got := n.GetDescendants()
	if len(got) != len(want) {
		return fmt.Errorf("treeedittest: GetDescendants() returned %d nodes, preorder walk found %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("treeedittest: GetDescendants()[%d] does not match preorder-of-GetChildren()[%d]", i, i)
		}
	}
	for _, child := range n.GetChildren() {
		if err := walkDescendantsLaw(child); err != nil {
			return err
		}
	}
	return nil
}

func preorder(n *treeedit.Node) []*treeedit.Node {
	var out []*treeedit.Node
	for _, child := range n.GetChildren() {
		out = append(out, child)
		out = append(out, preorder(child)...)
	}
	return out
}

// CheckDescendantAtPosLaw samples every node boundary in the tree and
// verifies GetDescendantAtPos(pos) always returns a node whose range
// contains pos, and that it is the innermost such node (no child of the
// result also covers pos under GetDescendantAtPos's half-open rule, where
// only the last child also claims its own end offset).
func CheckDescendantAtPosLaw(sf *treeedit.SourceFile) error {
	root := sf.GetRootNode()
	positions := collectPositions(root)
	for _, pos := range positions {
		found := sf.GetDescendantAtPos(pos)
		if found == nil {
			return fmt.Errorf("treeedittest: GetDescendantAtPos(%d) returned nil for a position inside the root's own range", pos)
		}
		r := found.GetRange()
		if pos < r.Pos || pos > r.End {
			return fmt.Errorf("treeedittest: GetDescendantAtPos(%d) returned a node with range %+v that does not contain pos", pos, r)
		}
		children := found.GetChildren()
		for i, child := range children {
			cr := child.GetRange()
			if cr.ContainsPos(pos) || (i == len(children)-1 && cr.End == pos) {
				return fmt.Errorf("treeedittest: GetDescendantAtPos(%d) returned %+v, but its child %+v also contains pos", pos, r, cr)
			}
		}
	}
	return nil
}

func collectPositions(n *treeedit.Node) []int {
	r := n.GetRange()
	positions := []int{r.Pos, r.End}
	for _, child := range n.GetChildren() {
		positions = append(positions, collectPositions(child)...)
	}
	return positions
}

// CheckDisposeIdempotence verifies calling Dispose more than once on the
// same wrapper is a no-op, and that a disposed node reports IsDisposed and
// panics with an errs.InvalidOperation on every navigation query instead of
// silently answering with a zero value.
func CheckDisposeIdempotence(n *treeedit.Node) error {
	n.Dispose()
	if !n.IsDisposed() {
		return fmt.Errorf("treeedittest: node is not IsDisposed() after Dispose()")
	}
	n.Dispose()
	if !n.IsDisposed() {
		return fmt.Errorf("treeedittest: second Dispose() call changed disposed state")
	}
	if err := expectDisposedPanic("GetParent", func() { n.GetParent() }); err != nil {
		return err
	}
	if err := expectDisposedPanic("GetChildren", func() { n.GetChildren() }); err != nil {
		return err
	}
	return nil
}

// expectDisposedPanic calls fn and requires it to panic with an
// errs.InvalidOperation, the contract every disposed-node query now upholds.
func expectDisposedPanic(op string, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			err = fmt.Errorf("treeedittest: disposed node's %s() did not panic", op)
			return
		}
		e, ok := r.(error)
		if !ok || !errs.Is(e, errs.InvalidOperation) {
			err = fmt.Errorf("treeedittest: disposed node's %s() panicked with %v, want an errs.InvalidOperation", op, r)
		}
	}()
	fn()
	return nil
}

// CheckIdentityPreserved verifies that before and after wrapper is the same
// *treeedit.Node pointer, the identity-preservation contract an edit must
// uphold for every node the edit did not touch.
func CheckIdentityPreserved(before, after *treeedit.Node) error {
	if before != after {
		return fmt.Errorf("treeedittest: wrapper identity changed across edit (before=%p after=%p)", before, after)
	}
	if after.IsDisposed() {
		return fmt.Errorf("treeedittest: wrapper expected to survive the edit was disposed")
	}
	return nil
}
