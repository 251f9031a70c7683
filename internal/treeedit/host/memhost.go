package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemHost is an in-memory Host, for tests that would otherwise need a
// scratch directory on disk.
type MemHost struct {
	mu    sync.RWMutex
	files map[string][]byte
	cwd   string
}

func NewMemHost() *MemHost {
	return &MemHost{files: make(map[string][]byte), cwd: "/"}
}

func (h *MemHost) ReadFile(path string) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	data, ok := h.files[path]
	if !ok {
		return nil, fmt.Errorf("memhost: %q: no such file", path)
	}
	return append([]byte(nil), data...), nil
}

func (h *MemHost) WriteFile(path string, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[path] = append([]byte(nil), data...)
	return nil
}

func (h *MemHost) Mkdir(string) error { return nil }

func (h *MemHost) FileExists(path string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.files[path]
	return ok
}

func (h *MemHost) DirectoryExists(path string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	prefix := strings.TrimSuffix(path, "/") + "/"
	for p := range h.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (h *MemHost) GetCurrentDirectory() (string, error) { return h.cwd, nil }

func (h *MemHost) Glob(patterns []string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		for p := range h.files {
			ok, err := filepath.Match(pattern, p)
			if err != nil {
				return nil, err
			}
			if ok {
				if _, dup := seen[p]; !dup {
					seen[p] = struct{}{}
					out = append(out, p)
				}
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (h *MemHost) ReadFileAsync(ctx context.Context, path string) <-chan Result[[]byte] {
	ch := make(chan Result[[]byte], 1)
	go func() {
		defer close(ch)
		data, err := h.ReadFile(path)
		select {
		case ch <- Result[[]byte]{Value: data, Err: err}:
		case <-ctx.Done():
		}
	}()
	return ch
}

func (h *MemHost) WriteFileAsync(ctx context.Context, path string, data []byte) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		err := h.WriteFile(path, data)
		select {
		case ch <- err:
		case <-ctx.Done():
		}
	}()
	return ch
}
