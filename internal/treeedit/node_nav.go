package treeedit

import (
	"iter"

	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
)

// GetParent returns the node's structural parent, or nil at the file root.
// Panics if n is disposed.
func (n *Node) GetParent() *Node {
	n.orDisposed("GetParent")
	parent := n.sf.index.Parent(n.id)
	if !parent.IsValid() {
		return nil
	}
	return n.sf.factory.getOrCreate(parent)
}

// GetParentOrThrow is GetParent, failing loudly at the file root instead of
// silently returning nil. Panics if n is disposed, same as GetParent.
func (n *Node) GetParentOrThrow() (*Node, error) {
	if p := n.GetParent(); p != nil {
		return p, nil
	}
	return nil, errs.InvalidOperationf("GetParentOrThrow", "node has no parent (file root)")
}

// GetChildrenIterator yields the same sequence as GetChildren without
// materializing the whole slice up front. Panics if n is disposed.
func (n *Node) GetChildrenIterator() iter.Seq[*Node] {
	n.orDisposed("GetChildrenIterator")
	return func(yield func(*Node) bool) {
		for _, id := range n.sf.index.Children(n.id) {
			if !yield(n.sf.factory.getOrCreate(id)) {
				return
			}
		}
	}
}

// GetAncestors returns n's ancestor chain, closest first, up to (but not
// including) the file root's own parent (which does not exist).
func (n *Node) GetAncestors() []*Node {
	var out []*Node
	for cur := n.GetParent(); cur != nil; cur = cur.GetParent() {
		out = append(out, cur)
	}
	return out
}

// GetDescendantsIterator yields the same preorder sequence as GetDescendants
// without materializing the whole slice up front. Panics if n is disposed.
func (n *Node) GetDescendantsIterator() iter.Seq[*Node] {
	n.orDisposed("GetDescendantsIterator")
	return func(yield func(*Node) bool) {
		var walk func(id adapt.NodeID) bool
		walk = func(id adapt.NodeID) bool {
			for _, childID := range n.sf.index.Children(id) {
				if !yield(n.sf.factory.getOrCreate(childID)) {
					return false
				}
				if !walk(childID) {
					return false
				}
			}
			return true
		}
		walk(n.id)
	}
}

// siblingSet returns n's parent's children and n's own index within them, or
// (nil, -1) if n is the root. Panics if n is disposed (via GetParent).
func (n *Node) siblingSet() ([]*Node, int) {
	parent := n.GetParent()
	if parent == nil {
		return nil, -1
	}
	siblings := parent.GetChildren()
	for i, s := range siblings {
		if s.id == n.id {
			return siblings, i
		}
	}
	return siblings, -1
}

// GetPreviousSibling returns the direct child immediately before n within
// its parent, or nil if n is first or the root. Panics if n is disposed.
func (n *Node) GetPreviousSibling() *Node {
	siblings, i := n.siblingSet()
	if i <= 0 {
		return nil
	}
	return siblings[i-1]
}

// GetPreviousSiblings returns every sibling before n, closest first.
func (n *Node) GetPreviousSiblings() []*Node {
	siblings, i := n.siblingSet()
	if i <= 0 {
		return nil
	}
	out := make([]*Node, i)
	for j := 0; j < i; j++ {
		out[j] = siblings[i-1-j]
	}
	return out
}

// GetNextSibling returns the direct child immediately after n within its
// parent, or nil if n is last or the root. Panics if n is disposed.
func (n *Node) GetNextSibling() *Node {
	siblings, i := n.siblingSet()
	if i < 0 || i >= len(siblings)-1 {
		return nil
	}
	return siblings[i+1]
}

// GetNextSiblings returns every sibling after n, closest first.
func (n *Node) GetNextSiblings() []*Node {
	siblings, i := n.siblingSet()
	if i < 0 {
		return nil
	}
	return append([]*Node(nil), siblings[i+1:]...)
}

// GetParentSyntaxList returns n's own parent if that parent is itself a
// grouping KindSyntaxList (e.g. an item's parent when the item sits directly
// in the file's top-level item list), or nil otherwise. Unlike ts-morph's
// compiler tree, this adapter never hides a SyntaxList behind its owning
// body node — GetChildren already surfaces it like any other child — so
// GetParent() itself is the list when one is present; there's no separate
// skip-and-find step.
func (n *Node) GetParentSyntaxList() *Node {
	p := n.GetParent()
	if p != nil && p.IsKind(adapt.KindSyntaxList) {
		return p
	}
	return nil
}

// GetChildSyntaxList returns the first direct KindSyntaxList child, the
// canonical insertion point for a body-bearing node (block, item list, ...).
func (n *Node) GetChildSyntaxList() *Node {
	return n.FindChildOfKind(adapt.KindSyntaxList)
}

// GetChildren returns the node's direct structural children, in source
// order. Synthetic KindSyntaxList grouping nodes are surfaced like any other
// child. Panics if n is disposed.
func (n *Node) GetChildren() []*Node {
	n.orDisposed("GetChildren")
	ids := n.sf.index.Children(n.id)
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.sf.factory.getOrCreate(id))
	}
	return out
}

// GetChildCount returns len(GetChildren()) without allocating wrappers for
// children not already cached. Panics if n is disposed.
func (n *Node) GetChildCount() int {
	n.orDisposed("GetChildCount")
	return len(n.sf.index.Children(n.id))
}

// GetChildAtIndex returns the child at position idx, or nil if out of range.
// Panics if n is disposed.
func (n *Node) GetChildAtIndex(idx int) *Node {
	n.orDisposed("GetChildAtIndex")
	ids := n.sf.index.Children(n.id)
	if idx < 0 || idx >= len(ids) {
		return nil
	}
	return n.sf.factory.getOrCreate(ids[idx])
}

// ChildIndex returns child's position within n.GetChildren(), or -1 if child
// is nil or not a direct child of n. Panics if n is disposed.
func (n *Node) ChildIndex(child *Node) int {
	n.orDisposed("ChildIndex")
	if child == nil {
		return -1
	}
	return n.sf.index.ChildIndex(n.id, child.id)
}

// GetDescendants returns every descendant of n in preorder — the same order
// as a depth-first walk of GetChildren() applied recursively, matching the
// GetDescendants()-equals-preorder-of-GetChildren() law. Panics if n is
// disposed.
func (n *Node) GetDescendants() []*Node {
	n.orDisposed("GetDescendants")
	var out []*Node
	var walk func(id adapt.NodeID)
	walk = func(id adapt.NodeID) {
		for _, childID := range n.sf.index.Children(id) {
			out = append(out, n.sf.factory.getOrCreate(childID))
			walk(childID)
		}
	}
	walk(n.id)
	return out
}

// GetDescendantAtPos returns the innermost descendant (or n itself) whose
// range contains byte offset pos, or nil if pos falls outside n's range.
// Panics if n is disposed.
func (n *Node) GetDescendantAtPos(pos int) *Node {
	n.orDisposed("GetDescendantAtPos")
	r := n.GetRange()
	if pos < r.Pos || pos > r.End {
		return nil
	}
	current := n
	for {
		next := childCoveringPos(current.GetChildren(), pos)
		if next == nil {
			return current
		}
		current = next
	}
}

// childCoveringPos picks the child covering pos under the half-open rule
// c.GetStart() <= pos < c.GetEnd(), so at an exact sibling boundary (one
// child's End equal to the next child's Pos) only the child that starts
// there matches — never both. pos exactly at the End of the last child (no
// following sibling to claim it, e.g. the very last position in the file)
// falls through to that last child instead of matching nothing, so an
// end-of-range position still resolves to a concrete leaf.
func childCoveringPos(children []*Node, pos int) *Node {
	for _, c := range children {
		if c.GetRange().ContainsPos(pos) {
			return c
		}
	}
	if n := len(children); n > 0 && children[n-1].GetEnd() == pos {
		return children[n-1]
	}
	return nil
}

// GetFirstToken returns the leftmost leaf descendant, or n itself if it has
// no children. Panics if n is disposed.
func (n *Node) GetFirstToken() (*Node, bool) {
	n.orDisposed("GetFirstToken")
	current := n
	for {
		children := current.GetChildren()
		if len(children) == 0 {
			return current, true
		}
		current = children[0]
	}
}

// GetLastToken returns the rightmost leaf descendant, or (nil, false) if n
// has no descendants at all to bottom out on (e.g. an empty syntax list).
// Panics if n is disposed.
func (n *Node) GetLastToken() (*Node, bool) {
	n.orDisposed("GetLastToken")
	current := n
	for {
		children := current.GetChildren()
		if len(children) == 0 {
			if current == n && n.GetChildCount() == 0 {
				return nil, false
			}
			return current, true
		}
		current = children[len(children)-1]
	}
}
