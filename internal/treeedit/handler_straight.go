package treeedit

import "surge/internal/treeedit/adapt"

// StraightNodeHandler matches wrappers to the new tree purely by structural
// path (kind + child index at every level), with no awareness of what edit
// produced the new tree. It is correct whenever the edit did not change any
// sibling counts on the path from the root down to a given wrapper — the
// common case for text-only replacements (e.g. renaming an identifier,
// flipping a modifier) that don't add or remove syntax nodes above the edit
// point.
type StraightNodeHandler struct{}

func (StraightNodeHandler) handleNode(rc *reconciliation, oldID adapt.NodeID) (adapt.NodeID, bool) {
	path := computePath(rc.oldIndex, oldID)
	target := resolvePath(rc.newIndex, path)
	return target, target.IsValid()
}
