package treeedit

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fortio.org/safecast"
)

const snapshotSchemaVersion uint16 = 1

// SnapshotPayload is the on-disk record of a SourceFile's tree shape at the
// moment it was captured, written by `cmd/treeedit snapshot` and read by
// `cmd/treeedit check --cache` to compare a rebuilt tree against a
// previously accepted shape without re-deriving it from the text every run.
type SnapshotPayload struct {
	Schema      uint16
	Path        string
	ContentHash string
	NodeCount   int
	Shape       []SnapshotNode
}

// SnapshotNode is one flattened preorder entry of a captured tree. Start/End
// are stored as uint32 for the same reason source.FileSet's own on-disk
// records are: a stable wire width regardless of the host int size.
type SnapshotNode struct {
	Kind  uint16
	Start uint32
	End   uint32
	Depth int
}

// SnapshotCache persists SnapshotPayloads to a directory, keyed by content
// hash.
type SnapshotCache struct {
	mu  sync.RWMutex
	dir string
}

func NewSnapshotCache(dir string) *SnapshotCache {
	return &SnapshotCache{dir: dir}
}

func contentHash(text []byte) string {
	sum := sha256.Sum256(text)
	return fmt.Sprintf("%x", sum)
}

func (c *SnapshotCache) pathFor(hash string) string {
	return filepath.Join(c.dir, hash+".snap")
}

// Save captures sf's current tree shape and writes it under the file's
// content hash.
func (c *SnapshotCache) Save(sf *SourceFile) error {
	payload := SnapshotPayload{
		Schema:      snapshotSchemaVersion,
		Path:        sf.path,
		ContentHash: contentHash(sf.text),
	}
	root := sf.factory.getOrCreate(sf.index.Root)
	var walkErr error
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if walkErr != nil {
			return
		}
		start, err := safecast.Conv[uint32](n.GetStart())
		if err != nil {
			walkErr = fmt.Errorf("snapshot: node start offset: %w", err)
			return
		}
		end, err := safecast.Conv[uint32](n.GetEnd())
		if err != nil {
			walkErr = fmt.Errorf("snapshot: node end offset: %w", err)
			return
		}
		payload.Shape = append(payload.Shape, SnapshotNode{
			Kind:  uint16(n.Kind()),
			Start: start,
			End:   end,
			Depth: depth,
		})
		for _, child := range n.GetChildren() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	if walkErr != nil {
		return walkErr
	}
	payload.NodeCount = len(payload.Shape)

	encoded, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: mkdir: %w", err)
	}
	// #nosec G306 -- snapshot cache entries are not sensitive
	return os.WriteFile(c.pathFor(payload.ContentHash), encoded, 0o644)
}

// Load reads back the snapshot for the given content hash, if present.
func (c *SnapshotCache) Load(hash string) (*SnapshotPayload, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- path is derived from a sha256 hash, not user input
	data, err := os.ReadFile(c.pathFor(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("snapshot: read: %w", err)
	}
	var payload SnapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("snapshot: unmarshal: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, false, fmt.Errorf("snapshot: schema mismatch: have %d want %d", payload.Schema, snapshotSchemaVersion)
	}
	return &payload, true, nil
}
