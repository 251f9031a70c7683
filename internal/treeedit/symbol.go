package treeedit

import (
	"surge/internal/ast"
	"surge/internal/source"
	"surge/internal/symbols"
	"surge/internal/treeedit/adapt"
)

// SymbolWrapper is a stable handle over one entry in a SourceFile's resolved
// symbol table, the treeedit-side analog of spec.md §6's compiler symbol
// query layer. Two wrappers obtained from the same SourceFile compare equal
// (via Equals) exactly when they name the same symbols.SymbolID.
type SymbolWrapper struct {
	sf *SourceFile
	id symbols.SymbolID
}

func (w *SymbolWrapper) symbol() *symbols.Symbol {
	result := w.sf.symbolTable()
	if result == nil || result.Table == nil {
		return nil
	}
	return result.Table.Symbols.Get(w.id)
}

// GetName returns the symbol's bound name (post-alias, i.e. the name visible
// in this file's scope).
func (w *SymbolWrapper) GetName() string {
	sym := w.symbol()
	if sym == nil {
		return ""
	}
	name, _ := w.sf.builder.StringsInterner.Lookup(sym.Name)
	return name
}

// GetAliasedSymbol resolves an import alias to the symbol carrying its
// original name. Surge's single-file resolver records the pre-alias name
// (Symbol.ImportName) directly on the alias's own symbol record rather than
// allocating a separate SymbolID for a declaration that lives in another
// file or module — that declaration is outside any single SourceFile's
// resolve pass — so unlike a cross-file compiler symbol table there is no
// second wrapper to return here. GetAliasedSymbol therefore returns w
// itself; GetOriginalName exposes the pre-alias name it would otherwise
// carry.
func (w *SymbolWrapper) GetAliasedSymbol() *SymbolWrapper { return w }

// GetOriginalName returns the name an import symbol was declared under
// before aliasing (e.g. `import foo as bar` binds "bar" with GetName() and
// records "foo" here), or GetName() for every other symbol kind.
func (w *SymbolWrapper) GetOriginalName() string {
	sym := w.symbol()
	if sym == nil || sym.Kind != symbols.SymbolImport || sym.ImportName == source.NoStringID {
		return w.GetName()
	}
	name, _ := w.sf.builder.StringsInterner.Lookup(sym.ImportName)
	return name
}

// Equals reports whether w and other name the same symbol table entry in the
// same SourceFile.
func (w *SymbolWrapper) Equals(other *SymbolWrapper) bool {
	return w != nil && other != nil && w.sf == other.sf && w.id == other.id
}

// GetSymbol resolves the declaration symbol bound to an item-shaped node
// (fn, let, const, tag, type, import), or (nil, false) if n isn't a
// declaration node or the declaration was never bound (a resolve error, or a
// node kind the single-file resolver doesn't track, e.g. expressions and
// statements — spec.md's getSymbolAtLocation covers arbitrary reference
// sites, which would need full use-site binding resolution beyond what
// symbols.ResolveFile computes for one file in isolation).
func (n *Node) GetSymbol() (*SymbolWrapper, bool) {
	if n.disposed {
		return nil, false
	}
	switch n.id.Kind {
	case adapt.KindItemFn, adapt.KindItemLet, adapt.KindItemConst, adapt.KindItemTag,
		adapt.KindItemTypeAlias, adapt.KindItemTypeStruct, adapt.KindItemTypeUnion, adapt.KindItemImport:
	default:
		return nil, false
	}
	result := n.sf.symbolTable()
	if result == nil {
		return nil, false
	}
	ids, ok := result.ItemSymbols[ast.ItemID(n.id.Raw)]
	if !ok || len(ids) == 0 {
		return nil, false
	}
	return &SymbolWrapper{sf: n.sf, id: ids[0]}, true
}
