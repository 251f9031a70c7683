package treeedit

import "surge/internal/treeedit/adapt"

// UnwrapParentHandler backs refactor.UnwrapBlock: Removed is a block-shaped
// node (a single KindSyntaxList child holding its statements) being deleted
// from the tree, with that syntax list's contents spliced directly into the
// list that used to hold Removed, at the position Removed occupied. Wrappers
// for Removed itself are disposed; wrappers for its statements are
// re-rooted one level up (skipping the removed block and its inner list in
// the path) and shifted into place among their new siblings. Everything
// else falls back to StraightNodeHandler.
type UnwrapParentHandler struct {
	Base    StraightNodeHandler
	Removed adapt.NodeID
}

func (h UnwrapParentHandler) handleNode(rc *reconciliation, oldID adapt.NodeID) (adapt.NodeID, bool) {
	if oldID == h.Removed {
		return adapt.NoNodeID, false
	}

	path := computePath(rc.oldIndex, oldID)
	removedPath := computePath(rc.oldIndex, h.Removed)

	if !pathHasPrefix(path, removedPath) {
		return h.Base.handleNode(rc, oldID)
	}
	// path = removedPath + {KindSyntaxList, 0} + rest...
	if len(path) < len(removedPath)+2 {
		return adapt.NoNodeID, false
	}

	rest := path[len(removedPath)+1:]
	innerIndex := rest[0].index
	outerPath := removedPath[:len(removedPath)-1]
	removedIdxInOuter := removedPath[len(removedPath)-1].index

	adjusted := make([]pathStep, 0, len(outerPath)+len(rest))
	adjusted = append(adjusted, outerPath...)
	adjusted = append(adjusted, pathStep{kind: rest[0].kind, index: removedIdxInOuter + innerIndex})
	adjusted = append(adjusted, rest[1:]...)

	target := resolvePath(rc.newIndex, adjusted)
	return target, target.IsValid()
}
