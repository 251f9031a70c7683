package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"surge/internal/treeedit"
)

var rootCmd = &cobra.Command{
	Use:   "treeedit",
	Short: "Structural editing tool for Surge source trees",
	Long:  `treeedit reparses Surge files into an immutable, wrapper-cached tree and applies structural edits without disturbing unrelated node identities.`,
}

var (
	colorFlag    string
	cacheDirFlag string
)

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(snapshotCmd)

	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", ".treeedit-cache", "directory for tree snapshots")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color flag against whether stdout is a
// terminal, honoring an explicit "on"/"off" override before falling back
// to auto-detection.
func colorEnabled() bool {
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// resolveSettings looks for a treeedit.toml above the current directory and
// applies it as the base ManipulationSettings, falling back to hardcoded
// defaults when none is found. A missing manifest is not an error; a
// malformed one is.
func resolveSettings() (treeedit.ManipulationSettings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return treeedit.DefaultManipulationSettings(), nil
	}
	path, found, err := treeedit.FindManifest(cwd)
	if err != nil || !found {
		return treeedit.DefaultManipulationSettings(), err
	}
	manifest, err := treeedit.LoadManifest(path)
	if err != nil {
		return treeedit.ManipulationSettings{}, err
	}
	return manifest.Settings, nil
}
