package treeedit

import "surge/internal/treeedit/adapt"

// ChildIndexNodeHandler adjusts for an insertion or removal of Count
// siblings at position At under Parent (identified in the pre-edit tree).
// Any wrapper whose path passes through Parent at a step index >= At is
// shifted by Count before delegating to StraightNodeHandler, so trailing
// siblings of the edit point still resolve to their correct (now-shifted)
// new position instead of colliding with freshly inserted nodes.
//
// For a removal (Count < 0), Removed must name the exact wrapper occupying
// the removed position itself, so it is disposed unconditionally instead of
// falling through the same step.index >= At shift as its trailing siblings
// — without that check, the removed node's own old path (step.index == At)
// would resolve to the same shifted position as the next surviving sibling,
// and both wrappers would race to claim it in reconcile.
type ChildIndexNodeHandler struct {
	Base    StraightNodeHandler
	Parent  adapt.NodeID
	At      int
	Count   int
	Removed adapt.NodeID
}

func (h ChildIndexNodeHandler) handleNode(rc *reconciliation, oldID adapt.NodeID) (adapt.NodeID, bool) {
	if h.Removed.IsValid() && oldID == h.Removed {
		return adapt.NoNodeID, false
	}

	path := computePath(rc.oldIndex, oldID)
	parentPath := computePath(rc.oldIndex, h.Parent)

	if pathHasPrefix(path, parentPath) && len(path) > len(parentPath) {
		adjusted := append([]pathStep(nil), path...)
		step := &adjusted[len(parentPath)]
		if step.index >= h.At {
			step.index += h.Count
		}
		target := resolvePath(rc.newIndex, adjusted)
		if target.IsValid() {
			return target, true
		}
	}
	return h.Base.handleNode(rc, oldID)
}
