package treeedit

import (
	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
)

// pathStep is one (kind, position-among-siblings) hop from a node's parent.
type pathStep struct {
	kind  adapt.NodeKind
	index int
}

// computePath returns the root-to-id sequence of steps identifying id's
// structural position, used as the cross-parse-stable "nodeKey" spec.md
// assumes an opaque compiler node would already carry.
func computePath(ix *adapt.Index, id adapt.NodeID) []pathStep {
	var steps []pathStep
	for id.IsValid() {
		parent := ix.Parent(id)
		if !parent.IsValid() {
			break
		}
		idx := ix.ChildIndex(parent, id)
		steps = append([]pathStep{{kind: id.Kind, index: idx}}, steps...)
		id = parent
	}
	return steps
}

// resolvePath walks ix from its root following steps, returning the node at
// the end of the walk, or adapt.NoNodeID if the shape diverges partway.
func resolvePath(ix *adapt.Index, steps []pathStep) adapt.NodeID {
	current := ix.Root
	for _, step := range steps {
		children := ix.Children(current)
		if step.index < 0 || step.index >= len(children) {
			return adapt.NoNodeID
		}
		child := children[step.index]
		if child.Kind != step.kind {
			return adapt.NoNodeID
		}
		current = child
	}
	return current
}

func pathHasPrefix(path, prefix []pathStep) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, step := range prefix {
		if path[i] != step {
			return false
		}
	}
	return true
}

// reconciliation carries the before/after indexes a NodeHandler resolves
// wrapper positions against.
type reconciliation struct {
	oldIndex *adapt.Index
	newIndex *adapt.Index
}

// NodeHandler decides, for a wrapper previously bound to oldID in
// rc.oldIndex, whether it survives the edit and if so where it now lives in
// rc.newIndex. Returning (_, false) tells the reconciler to dispose the
// wrapper. StraightNodeHandler is the base case: plain structural-path
// matching with no knowledge of what edit happened. ChildIndexNodeHandler
// and UnwrapParentHandler wrap it, adjusting paths for insertions and
// parent-removal respectively before falling back to it.
type NodeHandler interface {
	handleNode(rc *reconciliation, oldID adapt.NodeID) (adapt.NodeID, bool)
}

// reconcile walks every wrapper currently cached in sf.factory, resolves its
// new position via handler, and either re-keys it in sf.factory or
// disposes it. Resolution against handler is entirely read-only against rc;
// every disposal and rename is computed into a plan first and only applied
// to sf.factory once the whole pass has confirmed no two wrappers resolve to
// the same new position, so a collision leaves sf.factory exactly as it was
// before reconcile was called (matching the same all-or-nothing contract
// SourceFile.ApplyEdit gives sf.text/sf.index).
func reconcile(sf *SourceFile, oldIndex, newIndex *adapt.Index, handler NodeHandler) error {
	rc := &reconciliation{oldIndex: oldIndex, newIndex: newIndex}

	oldIDs := make([]adapt.NodeID, 0, sf.factory.len())
	for id := range sf.factory.nodes {
		oldIDs = append(oldIDs, id)
	}

	type rename struct {
		oldID, newID adapt.NodeID
	}
	var disposals []adapt.NodeID
	var renames []rename
	claimedBy := make(map[adapt.NodeID]adapt.NodeID, len(oldIDs))

	for _, oldID := range oldIDs {
		if _, ok := sf.factory.get(oldID); !ok {
			continue
		}
		newID, survives := handler.handleNode(rc, oldID)
		if !survives || !newID.IsValid() {
			disposals = append(disposals, oldID)
			continue
		}
		if prevOld, taken := claimedBy[newID]; taken {
			return errs.TreeReplacementErrorf("reconcile", "wrappers at %+v and %+v both resolve to new position %+v", prevOld, oldID, newID)
		}
		claimedBy[newID] = oldID
		if newID != oldID {
			renames = append(renames, rename{oldID: oldID, newID: newID})
		}
	}

	for _, oldID := range disposals {
		if node, ok := sf.factory.get(oldID); ok {
			node.markDisposed()
		}
		sf.factory.evict(oldID)
	}
	// Every survivor's new key was claimed exactly once above, so lifting all
	// renamed wrappers out before re-inserting any lets chains (a->b while
	// b->c) and swaps go through without a transient key collision.
	moved := make([]*Node, len(renames))
	for i, r := range renames {
		moved[i] = sf.factory.nodes[r.oldID]
		delete(sf.factory.nodes, r.oldID)
	}
	for i, r := range renames {
		moved[i].id = r.newID
		sf.factory.nodes[r.newID] = moved[i]
	}
	return nil
}
