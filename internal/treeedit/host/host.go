// Package host narrows filesystem access down to what internal/treeedit
// needs, so callers can substitute an in-memory double in tests instead of
// touching a real disk.
package host

import (
	"context"
	"os"
	"path/filepath"
)

// Host is the filesystem surface internal/treeedit and cmd/treeedit depend on.
type Host interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Mkdir(path string) error
	FileExists(path string) bool
	DirectoryExists(path string) bool
	GetCurrentDirectory() (string, error)
	Glob(patterns []string) ([]string, error)

	ReadFileAsync(ctx context.Context, path string) <-chan Result[[]byte]
	WriteFileAsync(ctx context.Context, path string, data []byte) <-chan error
}

// Result carries either a value or an error over a channel, since Go has no
// built-in sum type for that.
type Result[T any] struct {
	Value T
	Err   error
}

// OSHost is the default Host, backed directly by the os package.
type OSHost struct{}

func (OSHost) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is provided by the treeedit client, same trust
	// boundary as internal/source.FileSet.Load
	return os.ReadFile(path)
}

func (OSHost) WriteFile(path string, data []byte) error {
	// #nosec G306 -- treeedit writes back the user's own source files
	return os.WriteFile(path, data, 0o644)
}

func (OSHost) Mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (OSHost) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OSHost) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSHost) GetCurrentDirectory() (string, error) {
	return os.Getwd()
}

func (OSHost) Glob(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (h OSHost) ReadFileAsync(ctx context.Context, path string) <-chan Result[[]byte] {
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

func (h OSHost) WriteFileAsync(ctx context.Context, path string, data []byte) <-chan error {
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
