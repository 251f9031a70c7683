package treeedit

import (
	"surge/internal/ast"
	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
)

// IsKind reports whether the node's structural kind is k.
func (n *Node) IsKind(k adapt.NodeKind) bool { return n.Kind() == k }

// FindChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FindChildOfKind(k adapt.NodeKind) *Node {
	for _, c := range n.GetChildren() {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// FindDescendantOfKind returns the first descendant (preorder) of the given kind, or nil.
func (n *Node) FindDescendantOfKind(k adapt.NodeKind) *Node {
	for _, d := range n.GetDescendants() {
		if d.Kind() == k {
			return d
		}
	}
	return nil
}

// orThrow turns a possibly-nil lookup result into an InvalidOperation naming
// the kind that was being searched for, the shared tail of every ...OrThrow
// accessor below.
func orThrow(op string, want adapt.NodeKind, found *Node) (*Node, error) {
	if found == nil {
		return nil, errs.InvalidOperationf(op, "no node of kind %s found", want)
	}
	return found, nil
}

// FirstChildByKind returns the first direct child of kind k, scanning every
// child (an alias for FindChildOfKind under the ...ByKind naming family).
func (n *Node) FirstChildByKind(k adapt.NodeKind) *Node { return n.FindChildOfKind(k) }

// FirstChildByKindOrThrow is FirstChildByKind, failing if no child matches.
func (n *Node) FirstChildByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("FirstChildByKindOrThrow", k, n.FirstChildByKind(k))
}

// FirstChildIfKind returns n's first child only if that child itself is of
// kind k, without scanning past it.
func (n *Node) FirstChildIfKind(k adapt.NodeKind) *Node {
	c := n.GetChildAtIndex(0)
	if c != nil && c.IsKind(k) {
		return c
	}
	return nil
}

// FirstChildIfKindOrThrow is FirstChildIfKind, failing if the first child
// doesn't match.
func (n *Node) FirstChildIfKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("FirstChildIfKindOrThrow", k, n.FirstChildIfKind(k))
}

// LastChildByKind returns the last direct child of kind k, scanning from the
// end.
func (n *Node) LastChildByKind(k adapt.NodeKind) *Node {
	children := n.GetChildren()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].IsKind(k) {
			return children[i]
		}
	}
	return nil
}

// LastChildByKindOrThrow is LastChildByKind, failing if no child matches.
func (n *Node) LastChildByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("LastChildByKindOrThrow", k, n.LastChildByKind(k))
}

// LastChildIfKind returns n's last child only if that child itself is of
// kind k.
func (n *Node) LastChildIfKind(k adapt.NodeKind) *Node {
	children := n.GetChildren()
	if len(children) == 0 {
		return nil
	}
	last := children[len(children)-1]
	if last.IsKind(k) {
		return last
	}
	return nil
}

// LastChildIfKindOrThrow is LastChildIfKind, failing if the last child
// doesn't match.
func (n *Node) LastChildIfKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("LastChildIfKindOrThrow", k, n.LastChildIfKind(k))
}

// AncestorByKind returns the closest ancestor of kind k.
func (n *Node) AncestorByKind(k adapt.NodeKind) *Node {
	for _, a := range n.GetAncestors() {
		if a.IsKind(k) {
			return a
		}
	}
	return nil
}

// AncestorByKindOrThrow is AncestorByKind, failing if no ancestor matches.
func (n *Node) AncestorByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("AncestorByKindOrThrow", k, n.AncestorByKind(k))
}

// ParentIfKind returns n's immediate parent only if it is of kind k, the
// "immediate candidate" ancestor variant.
func (n *Node) ParentIfKind(k adapt.NodeKind) *Node {
	p := n.GetParent()
	if p != nil && p.IsKind(k) {
		return p
	}
	return nil
}

// ParentIfKindOrThrow is ParentIfKind, failing if the parent doesn't match.
func (n *Node) ParentIfKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("ParentIfKindOrThrow", k, n.ParentIfKind(k))
}

// DescendantByKind is FindDescendantOfKind under the ...ByKind naming
// family: the first descendant of kind k in preorder.
func (n *Node) DescendantByKind(k adapt.NodeKind) *Node { return n.FindDescendantOfKind(k) }

// DescendantByKindOrThrow is DescendantByKind, failing if none matches.
func (n *Node) DescendantByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("DescendantByKindOrThrow", k, n.DescendantByKind(k))
}

// NextSiblingByKind scans n's following siblings and returns the first of
// kind k.
func (n *Node) NextSiblingByKind(k adapt.NodeKind) *Node {
	for _, s := range n.GetNextSiblings() {
		if s.IsKind(k) {
			return s
		}
	}
	return nil
}

// NextSiblingByKindOrThrow is NextSiblingByKind, failing if none matches.
func (n *Node) NextSiblingByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("NextSiblingByKindOrThrow", k, n.NextSiblingByKind(k))
}

// NextSiblingIfKind returns n's immediate next sibling only if it is of kind
// k.
func (n *Node) NextSiblingIfKind(k adapt.NodeKind) *Node {
	s := n.GetNextSibling()
	if s != nil && s.IsKind(k) {
		return s
	}
	return nil
}

// NextSiblingIfKindOrThrow is NextSiblingIfKind, failing if it doesn't match.
func (n *Node) NextSiblingIfKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("NextSiblingIfKindOrThrow", k, n.NextSiblingIfKind(k))
}

// PreviousSiblingByKind scans n's preceding siblings, closest first, and
// returns the first of kind k.
func (n *Node) PreviousSiblingByKind(k adapt.NodeKind) *Node {
	for _, s := range n.GetPreviousSiblings() {
		if s.IsKind(k) {
			return s
		}
	}
	return nil
}

// PreviousSiblingByKindOrThrow is PreviousSiblingByKind, failing if none
// matches.
func (n *Node) PreviousSiblingByKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("PreviousSiblingByKindOrThrow", k, n.PreviousSiblingByKind(k))
}

// PreviousSiblingIfKind returns n's immediate previous sibling only if it is
// of kind k.
func (n *Node) PreviousSiblingIfKind(k adapt.NodeKind) *Node {
	s := n.GetPreviousSibling()
	if s != nil && s.IsKind(k) {
		return s
	}
	return nil
}

// PreviousSiblingIfKindOrThrow is PreviousSiblingIfKind, failing if it
// doesn't match.
func (n *Node) PreviousSiblingIfKindOrThrow(k adapt.NodeKind) (*Node, error) {
	return orThrow("PreviousSiblingIfKindOrThrow", k, n.PreviousSiblingIfKind(k))
}

// GetName returns the identifier text of an item-shaped node (fn, let,
// const, tag, type), or "" if n is not name-bearing. Panics if n is
// disposed.
func (n *Node) GetName() string {
	n.orDisposed("GetName")
	b := n.sf.builder
	switch n.id.Kind {
	case adapt.KindItemFn:
		if fn, ok := b.Items.Fn(ast.ItemID(n.id.Raw)); ok {
			name, _ := b.StringsInterner.Lookup(fn.Name)
			return name
		}
	case adapt.KindItemLet:
		if let := b.Items.Lets.Get(uint32(b.Items.Get(ast.ItemID(n.id.Raw)).Payload)); let != nil {
			name, _ := b.StringsInterner.Lookup(let.Name)
			return name
		}
	case adapt.KindItemConst:
		if c := b.Items.Consts.Get(uint32(b.Items.Get(ast.ItemID(n.id.Raw)).Payload)); c != nil {
			name, _ := b.StringsInterner.Lookup(c.Name)
			return name
		}
	case adapt.KindItemTag:
		if tag := b.Items.Tags.Get(uint32(b.Items.Get(ast.ItemID(n.id.Raw)).Payload)); tag != nil {
			name, _ := b.StringsInterner.Lookup(tag.Name)
			return name
		}
	case adapt.KindItemTypeAlias, adapt.KindItemTypeStruct, adapt.KindItemTypeUnion:
		if typeItem, ok := b.Items.Type(ast.ItemID(n.id.Raw)); ok {
			name, _ := b.StringsInterner.Lookup(typeItem.Name)
			return name
		}
	case adapt.KindExprIdent:
		return adapt.IdentName(n.sf.index, n.id)
	}
	return ""
}

// GetIndentationText returns the whitespace prefix of the line n starts on,
// the text a caller should prepend when inserting a sibling statement at n's
// own nesting depth. Panics if n is disposed.
func (n *Node) GetIndentationText() string {
	n.orDisposed("GetIndentationText")
	return indentOf(n.sf.text, n.GetStart())
}

// GetIndentationWidth returns GetIndentationText's rendered terminal column
// width, tabs expanded, for callers that need to align rather than just
// reproduce the indentation (e.g. a gutter that mirrors source nesting).
func (n *Node) GetIndentationWidth() int {
	return indentWidth(n.GetIndentationText())
}

// IsFirstNodeOnLine reports whether n is the first non-whitespace token on
// its line, i.e. nothing but indentation precedes it. Panics if n is
// disposed.
func (n *Node) IsFirstNodeOnLine() bool {
	n.orDisposed("IsFirstNodeOnLine")
	start := n.GetStart()
	lineBegin := lineStart(n.sf.text, start)
	return leadingWhitespaceEnd(n.sf.text, lineBegin) == start
}

// HasPubKeyword reports whether a fn-item node carries the `pub` modifier.
// Panics if n is disposed.
func (n *Node) HasPubKeyword() bool {
	n.orDisposed("HasPubKeyword")
	if n.id.Kind != adapt.KindItemFn {
		return false
	}
	fn, ok := n.sf.builder.Items.Fn(ast.ItemID(n.id.Raw))
	return ok && fn.Flags.IsPublic()
}

// GetAttrs returns the attribute wrapper children of an item or param node
// (the first KindSyntaxList child, by construction of the adapter).
func (n *Node) GetAttrs() []*Node {
	list := n.FindChildOfKind(adapt.KindSyntaxList)
	if list == nil {
		return nil
	}
	var attrs []*Node
	for _, c := range list.GetChildren() {
		if c.Kind() == adapt.KindAttr {
			attrs = append(attrs, c)
		}
	}
	return attrs
}
