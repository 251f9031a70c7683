package treeedit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no treeedit.toml found in this or any parent directory"

// Manifest is the on-disk configuration cmd/treeedit loads before running a
// batch command, found by walking up from the current directory looking for
// a treeedit.toml project file.
type Manifest struct {
	Path     string
	Settings ManipulationSettings
	Includes []string
}

// ManipulationConfig is the toml-decodable form of ManipulationSettings.
type ManipulationConfig struct {
	Indent   string `toml:"indent"`
	NewLine  string `toml:"newline"` // "lf" or "crlf"
	Includes []string `toml:"include"`
}

func (c ManipulationConfig) ToSettings() ManipulationSettings {
	s := DefaultManipulationSettings()
	if c.Indent != "" {
		s.IndentationText = c.Indent
	}
	if c.NewLine == "crlf" {
		s.NewLineKind = NewLineCRLF
	}
	return s
}

// FindManifest walks upward from startDir looking for treeedit.toml.
func FindManifest(startDir string) (string, bool, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, "treeedit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadManifest loads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var cfg ManipulationConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Settings: cfg.ToSettings(), Includes: cfg.Includes}, nil
}
