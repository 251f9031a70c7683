// Package adapt synthesizes the parent/child/kind/span relationships that
// internal/treeedit's wrapper layer needs, over Surge's flat arena AST
// (internal/ast), which has no native getChildren()/parent the way the
// wrapper layer assumes of its underlying tree. It is rebuilt once per parse
// and is never mutated in place; edits always go through a fresh parse and a
// fresh Index.
package adapt

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// NodeKind names the structural role of a node inside an Index. It stands in
// for spec.md's opaque "compiler node kind" query.
type NodeKind uint16

const (
	KindInvalid NodeKind = iota
	KindFile
	KindSyntaxList

	KindItemFn
	KindItemLet
	KindItemConst
	KindItemTypeAlias
	KindItemTypeStruct
	KindItemTypeUnion
	KindItemTag
	KindItemExtern
	KindItemPragma
	KindItemImport
	KindItemMacro
	KindItemContract

	KindAttr
	KindFnParam
	KindTypeStructField
	KindTypeUnionMember

	KindStmtBlock
	KindStmtLet
	KindStmtConst
	KindStmtExpr
	KindStmtReturn
	KindStmtBreak
	KindStmtContinue
	KindStmtIf
	KindStmtWhile
	KindStmtForClassic
	KindStmtForIn
	KindStmtDrop
	KindStmtSignal

	KindExprIdent
	KindExprLit
	KindExprCall
	KindExprBinary
	KindExprUnary
	KindExprCast
	KindExprGroup
	KindExprTuple
	KindExprArray
	KindExprMap
	KindExprIndex
	KindExprMember
	KindExprTupleIndex
	KindExprTernary
	KindExprAwait
	KindExprTask
	KindExprSpawn
	KindExprParallel
	KindExprSpread
	KindExprCompare
	KindExprSelect
	KindExprRace
	KindExprStruct
	KindExprAsync
	KindExprBlock
	KindExprRangeLit
)

// NodeID is a structural identity valid within a single Index. Two nodes at
// the same source position, of the same kind, produced by two independent
// parses of related text are not guaranteed to share a NodeID; the
// reconciler (internal/treeedit/reconcile.go), not this package, is
// responsible for matching nodes across parses.
type NodeID struct {
	Kind NodeKind
	Raw  uint32
}

// NoNodeID is the zero value; never a valid node.
var NoNodeID = NodeID{}

func (id NodeID) IsValid() bool { return id.Kind != KindInvalid }

type info struct {
	id       NodeID
	parent   NodeID
	children []NodeID
	span     source.Span
}

// Index is the structural view of one parsed file.
type Index struct {
	Builder *ast.Builder
	File    ast.FileID
	Root    NodeID

	byID    map[NodeID]*info
	listSeq uint32
}

// Kind returns the structural kind of id.
func (ix *Index) Kind(id NodeID) NodeKind { return id.Kind }

// Span returns the source span covering id and all its descendants.
func (ix *Index) Span(id NodeID) source.Span {
	if in := ix.byID[id]; in != nil {
		return in.span
	}
	return source.Span{}
}

// Parent returns the structural parent of id, or NoNodeID for the root.
func (ix *Index) Parent(id NodeID) NodeID {
	if in := ix.byID[id]; in != nil {
		return in.parent
	}
	return NoNodeID
}

// Children returns the direct structural children of id, in source order.
func (ix *Index) Children(id NodeID) []NodeID {
	if in := ix.byID[id]; in != nil {
		return in.children
	}
	return nil
}

// ChildIndex returns the position of child within its parent's Children, or -1.
func (ix *Index) ChildIndex(parent, child NodeID) int {
	for i, c := range ix.Children(parent) {
		if c == child {
			return i
		}
	}
	return -1
}

func (ix *Index) nextList() uint32 {
	ix.listSeq++
	return ix.listSeq
}

func (ix *Index) register(parent NodeID, id NodeID, span source.Span, children []NodeID) {
	ix.byID[id] = &info{id: id, parent: parent, children: children, span: span}
}

// Build walks the file identified by fileID and synthesizes an Index over it.
func Build(b *ast.Builder, fileID ast.FileID) *Index {
	ix := &Index{Builder: b, File: fileID, byID: make(map[NodeID]*info)}
	file := b.Files.Get(fileID)
	if file == nil {
		return ix
	}
	root := NodeID{Kind: KindFile, Raw: uint32(fileID)}
	ix.Root = root

	itemList := ix.newList(root, file.Span)
	items := make([]NodeID, 0, len(file.Items))
	for _, itemID := range file.Items {
		items = append(items, ix.buildItem(itemList, itemID))
	}
	ix.byID[itemList].children = items
	ix.register(NoNodeID, root, file.Span, []NodeID{itemList})
	return ix
}

func (ix *Index) newList(parent NodeID, span source.Span) NodeID {
	id := NodeID{Kind: KindSyntaxList, Raw: ix.nextList()}
	ix.register(parent, id, span, nil)
	return id
}

func attrsList(ix *Index, parent NodeID, b *ast.Builder, start ast.AttrID, count uint32, span source.Span) NodeID {
	list := ix.newList(parent, span)
	if count == 0 {
		return list
	}
	children := make([]NodeID, 0, count)
	base := uint32(start)
	for off := range count {
		id := NodeID{Kind: KindAttr, Raw: base + off}
		attr := b.Items.Attrs.Get(base + off)
		attrSpan := span
		if attr != nil {
			attrSpan = attr.Span
		}
		ix.register(list, id, attrSpan, nil)
		children = append(children, id)
	}
	ix.byID[list].children = children
	return list
}

func (ix *Index) buildItem(parent NodeID, itemID ast.ItemID) NodeID {
	b := ix.Builder
	item := b.Items.Get(itemID)
	if item == nil {
		return NoNodeID
	}
	switch item.Kind {
	case ast.ItemFn:
		return ix.buildFn(parent, itemID)
	case ast.ItemLet:
		id := NodeID{Kind: KindItemLet, Raw: uint32(itemID)}
		let := b.Items.Lets.Get(uint32(item.Payload))
		children := []NodeID{}
		if let != nil {
			attrList := attrsList(ix, id, b, let.AttrStart, let.AttrCount, item.Span)
			children = append(children, attrList)
			if let.Value.IsValid() {
				children = append(children, ix.buildExpr(id, let.Value))
			}
		}
		ix.register(parent, id, item.Span, children)
		return id
	case ast.ItemConst:
		id := NodeID{Kind: KindItemConst, Raw: uint32(itemID)}
		c := b.Items.Consts.Get(uint32(item.Payload))
		children := []NodeID{}
		if c != nil {
			children = append(children, attrsList(ix, id, b, c.AttrStart, c.AttrCount, item.Span))
			if c.Value.IsValid() {
				children = append(children, ix.buildExpr(id, c.Value))
			}
		}
		ix.register(parent, id, item.Span, children)
		return id
	case ast.ItemType:
		return ix.buildType(parent, itemID)
	case ast.ItemTag:
		id := NodeID{Kind: KindItemTag, Raw: uint32(itemID)}
		tag := b.Items.Tags.Get(uint32(item.Payload))
		children := []NodeID{}
		if tag != nil {
			children = append(children, attrsList(ix, id, b, tag.AttrStart, tag.AttrCount, item.Span))
		}
		ix.register(parent, id, item.Span, children)
		return id
	case ast.ItemExtern:
		id := NodeID{Kind: KindItemExtern, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	case ast.ItemImport:
		id := NodeID{Kind: KindItemImport, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	case ast.ItemPragma:
		id := NodeID{Kind: KindItemPragma, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	case ast.ItemMacro:
		id := NodeID{Kind: KindItemMacro, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	case ast.ItemContract:
		id := NodeID{Kind: KindItemContract, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	default:
		return NoNodeID
	}
}

func (ix *Index) buildFn(parent NodeID, itemID ast.ItemID) NodeID {
	b := ix.Builder
	id := NodeID{Kind: KindItemFn, Raw: uint32(itemID)}
	fn, ok := b.Items.Fn(itemID)
	item := b.Items.Get(itemID)
	children := []NodeID{}
	if ok && fn != nil {
		children = append(children, attrsList(ix, id, b, fn.AttrStart, fn.AttrCount, item.Span))
		paramList := ix.newList(id, item.Span)
		paramChildren := make([]NodeID, 0, fn.ParamsCount)
		for off := range fn.ParamsCount {
			param := b.Items.FnParamAt(fn.ParamsStart, off)
			pid := NodeID{Kind: KindFnParam, Raw: uint32(fn.ParamsStart) + off}
			pspan := item.Span
			pchildren := []NodeID{}
			if param != nil {
				pspan = param.Span
				pchildren = append(pchildren, attrsList(ix, pid, b, param.AttrStart, param.AttrCount, pspan))
				if param.Default.IsValid() {
					pchildren = append(pchildren, ix.buildExpr(pid, param.Default))
				}
			}
			ix.register(paramList, pid, pspan, pchildren)
			paramChildren = append(paramChildren, pid)
		}
		ix.byID[paramList].children = paramChildren
		children = append(children, paramList)
		if fn.Body.IsValid() {
			children = append(children, ix.buildStmt(id, fn.Body))
		}
	}
	ix.register(parent, id, item.Span, children)
	return id
}

func (ix *Index) buildType(parent NodeID, itemID ast.ItemID) NodeID {
	b := ix.Builder
	item := b.Items.Get(itemID)
	typeItem, ok := b.Items.Type(itemID)
	if !ok || typeItem == nil {
		id := NodeID{Kind: KindItemTypeAlias, Raw: uint32(itemID)}
		ix.register(parent, id, item.Span, nil)
		return id
	}
	switch typeItem.Kind {
	case ast.TypeDeclStruct:
		id := NodeID{Kind: KindItemTypeStruct, Raw: uint32(itemID)}
		children := []NodeID{attrsList(ix, id, b, typeItem.AttrStart, typeItem.AttrCount, item.Span)}
		if structDecl := b.Items.TypeStruct(typeItem); structDecl != nil {
			fieldList := ix.newList(id, structDecl.BodySpan)
			fieldChildren := make([]NodeID, 0, structDecl.FieldsCount)
			for off := range structDecl.FieldsCount {
				field := b.Items.StructField(ast.TypeFieldID(uint32(structDecl.FieldsStart) + off))
				fid := NodeID{Kind: KindTypeStructField, Raw: uint32(structDecl.FieldsStart) + off}
				fspan := item.Span
				if field != nil {
					fspan = field.Span
				}
				ix.register(fieldList, fid, fspan, nil)
				fieldChildren = append(fieldChildren, fid)
			}
			ix.byID[fieldList].children = fieldChildren
			children = append(children, fieldList)
		}
		ix.register(parent, id, item.Span, children)
		return id
	case ast.TypeDeclUnion:
		id := NodeID{Kind: KindItemTypeUnion, Raw: uint32(itemID)}
		children := []NodeID{attrsList(ix, id, b, typeItem.AttrStart, typeItem.AttrCount, item.Span)}
		if unionDecl := b.Items.TypeUnion(typeItem); unionDecl != nil {
			memberList := ix.newList(id, unionDecl.BodySpan)
			memberChildren := make([]NodeID, 0, unionDecl.MembersCount)
			for off := range unionDecl.MembersCount {
				member := b.Items.UnionMember(ast.TypeUnionMemberID(uint32(unionDecl.MembersStart) + off))
				mid := NodeID{Kind: KindTypeUnionMember, Raw: uint32(unionDecl.MembersStart) + off}
				mspan := item.Span
				if member != nil {
					mspan = member.Span
				}
				ix.register(memberList, mid, mspan, nil)
				memberChildren = append(memberChildren, mid)
			}
			ix.byID[memberList].children = memberChildren
			children = append(children, memberList)
		}
		ix.register(parent, id, item.Span, children)
		return id
	default:
		id := NodeID{Kind: KindItemTypeAlias, Raw: uint32(itemID)}
		children := []NodeID{attrsList(ix, id, b, typeItem.AttrStart, typeItem.AttrCount, item.Span)}
		ix.register(parent, id, item.Span, children)
		return id
	}
}

func (ix *Index) buildStmt(parent NodeID, stmtID ast.StmtID) NodeID {
	b := ix.Builder
	stmt := b.Stmts.Get(stmtID)
	if stmt == nil {
		return NoNodeID
	}
	var kind NodeKind
	var children []NodeID
	switch stmt.Kind {
	case ast.StmtBlock:
		kind = KindStmtBlock
		id := NodeID{Kind: kind, Raw: uint32(stmtID)}
		list := ix.newList(id, stmt.Span)
		if data := b.Stmts.Block(stmtID); data != nil {
			cs := make([]NodeID, 0, len(data.Stmts))
			for _, s := range data.Stmts {
				cs = append(cs, ix.buildStmt(list, s))
			}
			ix.byID[list].children = cs
		}
		ix.register(parent, id, stmt.Span, []NodeID{list})
		return id
	case ast.StmtLet:
		kind = KindStmtLet
		if data := b.Stmts.Let(stmtID); data != nil && data.Value.IsValid() {
			id := NodeID{Kind: kind, Raw: uint32(stmtID)}
			children = []NodeID{ix.buildExpr(id, data.Value)}
		}
	case ast.StmtConst:
		kind = KindStmtConst
		if data := b.Stmts.Const(stmtID); data != nil && data.Value.IsValid() {
			id := NodeID{Kind: kind, Raw: uint32(stmtID)}
			children = []NodeID{ix.buildExpr(id, data.Value)}
		}
	case ast.StmtExpr:
		kind = KindStmtExpr
		if data := b.Stmts.Expr(stmtID); data != nil {
			id := NodeID{Kind: kind, Raw: uint32(stmtID)}
			children = []NodeID{ix.buildExpr(id, data.Expr)}
		}
	case ast.StmtReturn:
		kind = KindStmtReturn
		if data := b.Stmts.Return(stmtID); data != nil && data.Expr.IsValid() {
			id := NodeID{Kind: kind, Raw: uint32(stmtID)}
			children = []NodeID{ix.buildExpr(id, data.Expr)}
		}
	case ast.StmtBreak:
		kind = KindStmtBreak
	case ast.StmtContinue:
		kind = KindStmtContinue
	case ast.StmtIf:
		kind = KindStmtIf
		id := NodeID{Kind: kind, Raw: uint32(stmtID)}
		if data := b.Stmts.If(stmtID); data != nil {
			children = append(children, ix.buildExpr(id, data.Cond))
			if data.Then.IsValid() {
				children = append(children, ix.buildStmt(id, data.Then))
			}
			if data.Else.IsValid() {
				children = append(children, ix.buildStmt(id, data.Else))
			}
		}
	case ast.StmtWhile:
		kind = KindStmtWhile
		id := NodeID{Kind: kind, Raw: uint32(stmtID)}
		if data := b.Stmts.While(stmtID); data != nil {
			children = append(children, ix.buildExpr(id, data.Cond))
			if data.Body.IsValid() {
				children = append(children, ix.buildStmt(id, data.Body))
			}
		}
	case ast.StmtForClassic:
		kind = KindStmtForClassic
		id := NodeID{Kind: kind, Raw: uint32(stmtID)}
		if data := b.Stmts.ForClassic(stmtID); data != nil {
			if data.Init.IsValid() {
				children = append(children, ix.buildStmt(id, data.Init))
			}
			if data.Cond.IsValid() {
				children = append(children, ix.buildExpr(id, data.Cond))
			}
			if data.Post.IsValid() {
				children = append(children, ix.buildExpr(id, data.Post))
			}
			if data.Body.IsValid() {
				children = append(children, ix.buildStmt(id, data.Body))
			}
		}
	case ast.StmtForIn:
		kind = KindStmtForIn
		id := NodeID{Kind: kind, Raw: uint32(stmtID)}
		if data := b.Stmts.ForIn(stmtID); data != nil {
			children = append(children, ix.buildExpr(id, data.Iterable))
			if data.Body.IsValid() {
				children = append(children, ix.buildStmt(id, data.Body))
			}
		}
	case ast.StmtDrop:
		kind = KindStmtDrop
		if data := b.Stmts.Drop(stmtID); data != nil {
			id := NodeID{Kind: kind, Raw: uint32(stmtID)}
			children = []NodeID{ix.buildExpr(id, data.Expr)}
		}
	case ast.StmtSignal:
		kind = KindStmtSignal
	default:
		kind = KindInvalid
	}
	id := NodeID{Kind: kind, Raw: uint32(stmtID)}
	ix.register(parent, id, stmt.Span, children)
	return id
}

func (ix *Index) buildExpr(parent NodeID, exprID ast.ExprID) NodeID {
	b := ix.Builder
	expr := b.Exprs.Get(exprID)
	if expr == nil {
		return NoNodeID
	}
	kindOf := func(k ast.ExprKind) NodeKind {
		switch k {
		case ast.ExprIdent:
			return KindExprIdent
		case ast.ExprLit:
			return KindExprLit
		case ast.ExprCall:
			return KindExprCall
		case ast.ExprBinary:
			return KindExprBinary
		case ast.ExprUnary:
			return KindExprUnary
		case ast.ExprCast:
			return KindExprCast
		case ast.ExprGroup:
			return KindExprGroup
		case ast.ExprTuple:
			return KindExprTuple
		case ast.ExprArray:
			return KindExprArray
		case ast.ExprMap:
			return KindExprMap
		case ast.ExprIndex:
			return KindExprIndex
		case ast.ExprMember:
			return KindExprMember
		case ast.ExprTupleIndex:
			return KindExprTupleIndex
		case ast.ExprTernary:
			return KindExprTernary
		case ast.ExprAwait:
			return KindExprAwait
		case ast.ExprTask:
			return KindExprTask
		case ast.ExprSpawn:
			return KindExprSpawn
		case ast.ExprParallel:
			return KindExprParallel
		case ast.ExprSpread:
			return KindExprSpread
		case ast.ExprCompare:
			return KindExprCompare
		case ast.ExprSelect:
			return KindExprSelect
		case ast.ExprRace:
			return KindExprRace
		case ast.ExprStruct:
			return KindExprStruct
		case ast.ExprAsync:
			return KindExprAsync
		case ast.ExprBlock:
			return KindExprBlock
		case ast.ExprRangeLit:
			return KindExprRangeLit
		default:
			return KindInvalid
		}
	}
	kind := kindOf(expr.Kind)
	id := NodeID{Kind: kind, Raw: uint32(exprID)}
	var children []NodeID
	switch expr.Kind {
	case ast.ExprBinary:
		if d, ok := b.Exprs.Binary(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Left), ix.buildExpr(id, d.Right))
		}
	case ast.ExprUnary:
		if d, ok := b.Exprs.Unary(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Operand))
		}
	case ast.ExprCast:
		if d, ok := b.Exprs.Cast(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
		}
	case ast.ExprCall:
		if d, ok := b.Exprs.Call(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Target))
			for _, arg := range d.Args {
				if arg.Value.IsValid() {
					children = append(children, ix.buildExpr(id, arg.Value))
				}
			}
		}
	case ast.ExprIndex:
		if d, ok := b.Exprs.Index(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Target), ix.buildExpr(id, d.Index))
		}
	case ast.ExprMember:
		if d, ok := b.Exprs.Member(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Target))
		}
	case ast.ExprTupleIndex:
		if d, ok := b.Exprs.TupleIndex(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Target))
		}
	case ast.ExprAwait:
		if d, ok := b.Exprs.Await(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
		}
	case ast.ExprTernary:
		if d, ok := b.Exprs.Ternary(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Cond), ix.buildExpr(id, d.TrueExpr), ix.buildExpr(id, d.FalseExpr))
		}
	case ast.ExprGroup:
		if d, ok := b.Exprs.Group(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Inner))
		}
	case ast.ExprTuple:
		if d, ok := b.Exprs.Tuple(exprID); ok {
			for _, e := range d.Elements {
				children = append(children, ix.buildExpr(id, e))
			}
		}
	case ast.ExprArray:
		if d, ok := b.Exprs.Array(exprID); ok {
			for _, e := range d.Elements {
				children = append(children, ix.buildExpr(id, e))
			}
		}
	case ast.ExprRangeLit:
		if d, ok := b.Exprs.RangeLit(exprID); ok {
			if d.Start.IsValid() {
				children = append(children, ix.buildExpr(id, d.Start))
			}
			if d.End.IsValid() {
				children = append(children, ix.buildExpr(id, d.End))
			}
		}
	case ast.ExprSpread:
		if d, ok := b.Exprs.Spread(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
		}
	case ast.ExprTask:
		if d, ok := b.Exprs.Task(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
		}
	case ast.ExprSpawn:
		if d, ok := b.Exprs.Spawn(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
		}
	case ast.ExprParallel:
		if d, ok := b.Exprs.Parallel(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Iterable))
			if d.Init.IsValid() {
				children = append(children, ix.buildExpr(id, d.Init))
			}
			for _, a := range d.Args {
				children = append(children, ix.buildExpr(id, a))
			}
			if d.Body.IsValid() {
				children = append(children, ix.buildExpr(id, d.Body))
			}
		}
	case ast.ExprAsync:
		if d, ok := b.Exprs.Async(exprID); ok && d.Body.IsValid() {
			children = append(children, ix.buildStmt(id, d.Body))
		}
	case ast.ExprBlock:
		if d, ok := b.Exprs.Block(exprID); ok {
			for _, s := range d.Stmts {
				children = append(children, ix.buildStmt(id, s))
			}
		}
	case ast.ExprMap:
		if d, ok := b.Exprs.Map(exprID); ok {
			for _, entry := range d.Entries {
				children = append(children, ix.buildExpr(id, entry.Key), ix.buildExpr(id, entry.Value))
			}
		}
	case ast.ExprStruct:
		if d, ok := b.Exprs.Struct(exprID); ok {
			for _, f := range d.Fields {
				if f.Value.IsValid() {
					children = append(children, ix.buildExpr(id, f.Value))
				}
			}
		}
	case ast.ExprCompare:
		if d, ok := b.Exprs.Compare(exprID); ok {
			children = append(children, ix.buildExpr(id, d.Value))
			for _, arm := range d.Arms {
				if arm.Pattern.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Pattern))
				}
				if arm.Guard.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Guard))
				}
				if arm.Result.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Result))
				}
			}
		}
	case ast.ExprSelect:
		if d, ok := b.Exprs.Select(exprID); ok {
			for _, arm := range d.Arms {
				if arm.Await.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Await))
				}
				if arm.Result.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Result))
				}
			}
		}
	case ast.ExprRace:
		if d, ok := b.Exprs.Race(exprID); ok {
			for _, arm := range d.Arms {
				if arm.Await.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Await))
				}
				if arm.Result.IsValid() {
					children = append(children, ix.buildExpr(id, arm.Result))
				}
			}
		}
	case ast.ExprIdent, ast.ExprLit:
		// leaves
	default:
	}
	ix.register(parent, id, expr.Span, children)
	return id
}

// IdentName resolves the display text of an identifier node, or "" if id is
// not an identifier.
func IdentName(ix *Index, id NodeID) string {
	if id.Kind != KindExprIdent {
		return ""
	}
	data, ok := ix.Builder.Exprs.Ident(ast.ExprID(id.Raw))
	if !ok {
		return ""
	}
	name, _ := ix.Builder.StringsInterner.Lookup(data.Name)
	return name
}
