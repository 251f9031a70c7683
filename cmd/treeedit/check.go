package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"surge/internal/treeedit"
	"surge/internal/treeedit/host"
	"surge/internal/treeedit/treeedittest"
)

var (
	checkJobs        int
	checkUseCache    bool
	checkUpdateCache bool
)

func init() {
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "number of files to check concurrently (0 = GOMAXPROCS)")
	checkCmd.Flags().BoolVar(&checkUseCache, "cache", false, "compare each file's tree shape against a saved snapshot")
	checkCmd.Flags().BoolVar(&checkUpdateCache, "update-cache", false, "write a fresh snapshot for each file instead of comparing")
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse files and verify wrapper-tree structural invariants",
	Long: `check reparses each given file, builds its wrapper tree, and verifies the
structural invariants internal/treeedit's own tests rely on: parent/child
consistency, sibling ordering, and the descendant-at-position law. With
--cache it also compares the tree's shape against a previously saved
snapshot, keyed by content hash.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

type checkResult struct {
	path string
	err  error
}

func runCheck(cmd *cobra.Command, args []string) error {
	color.NoColor = !colorEnabled()

	settings, err := resolveSettings()
	if err != nil {
		return fmt.Errorf("treeedit check: %w", err)
	}

	h := host.OSHost{}
	files, err := h.Glob(args)
	if err != nil {
		return fmt.Errorf("treeedit check: %w", err)
	}
	if len(files) == 0 {
		files = args
	}

	jobs := checkJobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]checkResult, len(files))
	cache := treeedit.NewSnapshotCache(cacheDirFlag)

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = checkResult{path: path, err: checkOne(h, path, settings, cache)}
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil && err != context.Canceled {
		return fmt.Errorf("treeedit check: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", color.RedString("FAIL"), r.path, r.err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), r.path)
	}
	if failed > 0 {
		return fmt.Errorf("treeedit check: %d of %d files failed", failed, len(files))
	}
	return nil
}

func checkOne(h host.Host, path string, settings treeedit.ManipulationSettings, cache *treeedit.SnapshotCache) error {
	sf, err := treeedit.LoadFromHost(h, path, settings)
	if err != nil {
		return err
	}
	defer sf.Close()

	if err := treeedittest.CheckAll(sf); err != nil {
		return err
	}

	if checkUpdateCache {
		return cache.Save(sf)
	}
	if checkUseCache {
		return compareSnapshot(sf, cache)
	}
	return nil
}

func compareSnapshot(sf *treeedit.SourceFile, cache *treeedit.SnapshotCache) error {
	hash := sha256Hex(sf.GetFullText())
	prev, ok, err := cache.Load(hash)
	if err != nil {
		return err
	}
	if !ok {
		return cache.Save(sf)
	}
	if prev.Path != sf.GetFilePath() {
		return fmt.Errorf("snapshot recorded for %q, current file is %q", prev.Path, sf.GetFilePath())
	}
	var shape []treeedit.SnapshotNode
	var walk func(n *treeedit.Node, depth int)
	walk = func(n *treeedit.Node, depth int) {
		// #nosec G115 -- offsets of a file whose snapshot Save already accepted fit in uint32
		shape = append(shape, treeedit.SnapshotNode{Kind: uint16(n.Kind()), Start: uint32(n.GetStart()), End: uint32(n.GetEnd()), Depth: depth})
		for _, c := range n.GetChildren() {
			walk(c, depth+1)
		}
	}
	walk(sf.GetRootNode(), 0)
	if !slices.Equal(shape, prev.Shape) {
		return fmt.Errorf("tree shape (%d nodes) differs from the saved snapshot (%d nodes)", len(shape), len(prev.Shape))
	}
	return nil
}

func sha256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}
