package treeedit

import (
	"fmt"
	"strconv"
	"time"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
	"surge/internal/symbols"
	"surge/internal/trace"
	"surge/internal/treeedit/adapt"
	"surge/internal/treeedit/errs"
	"surge/internal/treeedit/host"
)

// SourceFile owns one file's authoritative text, its current parse, the
// structural adapt.Index built over that parse, and the wrapper cache bound
// to it. Every wrapper a client holds traces back to exactly one SourceFile.
type SourceFile struct {
	path     string
	text     []byte
	fs       *source.FileSet
	srcID    source.FileID
	builder  *ast.Builder
	astFile  ast.FileID
	index    *adapt.Index
	factory  *factory
	settings ManipulationSettings
	tracer   trace.Tracer
	closed   bool
	symbols  *symbols.Result
}

// symbolTable resolves and caches sf's symbol table against its current
// builder/astFile, matching spec.md §6's "symbol/type query layer" binding.
// The cache is invalidated by ApplyEdit and Close, since both replace or
// discard the builder the resolve pass ran against.
func (sf *SourceFile) symbolTable() *symbols.Result {
	if sf.symbols == nil {
		result := symbols.ResolveFile(sf.builder, sf.astFile, symbols.ResolveOptions{})
		sf.symbols = &result
	}
	return sf.symbols
}

// Parse creates a SourceFile from in-memory text.
func Parse(path string, text []byte, settings ManipulationSettings) (*SourceFile, error) {
	fs := source.NewFileSet()
	srcID := fs.AddVirtual(path, text)
	builder := ast.NewBuilder(ast.Hints{})

	astFile, err := reparseInto(fs, srcID, builder)
	if err != nil {
		return nil, err
	}

	sf := &SourceFile{
		path:     path,
		text:     append([]byte(nil), text...),
		fs:       fs,
		srcID:    srcID,
		builder:  builder,
		astFile:  astFile,
		settings: settings,
		tracer:   trace.Nop,
	}
	sf.factory = newFactory(sf)
	sf.index = adapt.Build(builder, astFile)
	return sf, nil
}

// LoadFromHost reads path through h and parses it.
func LoadFromHost(h host.Host, path string, settings ManipulationSettings) (*SourceFile, error) {
	data, err := h.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.FileNotFound, "LoadFromHost", path, err)
	}
	return Parse(path, data, settings)
}

func reparseInto(fs *source.FileSet, srcID source.FileID, builder *ast.Builder) (ast.FileID, error) {
	file := fs.Get(srcID)
	if file == nil {
		return ast.NoFileID, errs.FileNotFoundf("reparse", "file id %d not present in file set", srcID)
	}
	lx := lexer.New(file, lexer.Options{})
	bag := diag.NewBag(0)
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return result.File, nil
}

// GetFilePath returns the file's path as given to Parse/LoadFromHost.
func (sf *SourceFile) GetFilePath() string { return sf.path }

// GetFullText returns the file's current authoritative text.
func (sf *SourceFile) GetFullText() string { return string(sf.text) }

// GetSettings returns the manipulation settings this file was created with.
func (sf *SourceFile) GetSettings() ManipulationSettings { return sf.settings }

// GetRootNode returns the wrapper for the file's own root node.
func (sf *SourceFile) GetRootNode() *Node {
	return sf.factory.getOrCreate(sf.index.Root)
}

// GetDescendantAtPos returns the innermost node at byte offset pos.
func (sf *SourceFile) GetDescendantAtPos(pos int) *Node {
	return sf.GetRootNode().GetDescendantAtPos(pos)
}

// ApplyEdit performs spec.md §4.6's four steps: patch the text, reparse,
// reconcile the old and new structural index against handler, and rebind
// every surviving wrapper's SourceFile pointer (a no-op here since wrappers
// already reference sf directly rather than embedding a snapshot of it).
func (sf *SourceFile) ApplyEdit(plan EditPlan, handler NodeHandler) error {
	if sf.closed {
		return errs.InvalidOperationf("ApplyEdit", "source file %q is closed", sf.path)
	}
	if plan.Pos < 0 || plan.End() > len(sf.text) || plan.Pos > plan.End() {
		return errs.ArgumentErrorf("ApplyEdit", "edit range [%d,%d) out of bounds for %d-byte file", plan.Pos, plan.End(), len(sf.text))
	}

	oldIndex := sf.index
	newText := plan.Apply(sf.text)
	delta := len(newText) - len(sf.text)

	start := time.Now()
	sf.emitPoint("treeedit.edit.planned", sf.path, map[string]string{
		"delta": strconv.Itoa(delta),
	})

	newFS := source.NewFileSet()
	newSrcID := newFS.AddVirtual(sf.path, newText)
	newBuilder := ast.NewBuilder(ast.Hints{})
	newAstFile, err := reparseInto(newFS, newSrcID, newBuilder)
	if err != nil {
		return err
	}
	newIndex := adapt.Build(newBuilder, newAstFile)

	if err := reconcile(sf, oldIndex, newIndex, handler); err != nil {
		sf.emitError("treeedit.reconcile.mismatch", sf.path, map[string]string{
			"error": err.Error(),
		})
		return errs.Wrap(errs.TreeReplacementError, "ApplyEdit", "reconciliation failed", err)
	}

	sf.emitPoint("treeedit.edit.applied", sf.path, map[string]string{
		"delta":       strconv.Itoa(delta),
		"reparseTook": time.Since(start).String(),
	})

	sf.text = newText
	sf.fs = newFS
	sf.srcID = newSrcID
	sf.builder = newBuilder
	sf.astFile = newAstFile
	sf.index = newIndex
	sf.symbols = nil
	return nil
}

// ReplaceText edits the byte range r to newText using StraightNodeHandler,
// the general-purpose case for edits that don't add or remove sibling nodes
// (e.g. renaming an identifier in place).
func (sf *SourceFile) ReplaceText(r Range, newText string) error {
	plan := EditPlan{Pos: r.Pos, ReplacingLength: r.Len(), NewText: newText, InsertItemsCount: 1}
	return sf.ApplyEdit(plan, StraightNodeHandler{})
}

// Save writes the file's current text through h.
func (sf *SourceFile) Save(h host.Host) error {
	if err := h.WriteFile(sf.path, sf.text); err != nil {
		return fmt.Errorf("treeedit: save %q: %w", sf.path, err)
	}
	return nil
}

// Close disposes every wrapper this file has handed out and evicts its
// symbol/type-adjacent caches (here: the wrapper factory itself) — the same
// "invalidate everything derived from this file" contract a content-hash
// mismatch triggers.
func (sf *SourceFile) Close() {
	if sf.closed {
		return
	}
	for id := range sf.factory.nodes {
		if n, ok := sf.factory.get(id); ok {
			n.markDisposed()
		}
	}
	sf.factory.nodes = make(map[adapt.NodeID]*Node)
	sf.symbols = nil
	sf.closed = true
}
