package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"surge/internal/treeedit"
	"surge/internal/treeedit/host"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [files...]",
	Short: "Record each file's current wrapper-tree shape to the cache directory",
	Long: `snapshot parses each given file and writes its tree shape (node kinds,
byte ranges, depth) to --cache-dir under the file's content hash, for later
comparison with "treeedit check --cache".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnapshot,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return fmt.Errorf("treeedit snapshot: %w", err)
	}

	h := host.OSHost{}
	cache := treeedit.NewSnapshotCache(cacheDirFlag)

	for _, path := range args {
		sf, err := treeedit.LoadFromHost(h, path, settings)
		if err != nil {
			return fmt.Errorf("treeedit snapshot: %s: %w", path, err)
		}
		if err := cache.Save(sf); err != nil {
			sf.Close()
			return fmt.Errorf("treeedit snapshot: %s: %w", path, err)
		}
		sf.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
	}
	return nil
}
