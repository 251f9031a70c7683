package ast

import "surge/internal/source"

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtLet
	StmtConst
	StmtExpr
	StmtReturn
	StmtBreak
	StmtContinue
	StmtIf
	StmtWhile
	StmtForClassic
	StmtForIn
	StmtDrop
	StmtSignal
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtBlockData holds the ordered statement list of a { ... } block.
type StmtBlockData struct {
	Stmts []StmtID
}

type StmtLetData struct {
	Name  source.StringID
	Type  TypeID // NoTypeID if inferred
	Value ExprID // NoExprID if uninitialized
	IsMut bool
}

type StmtConstData struct {
	Name  source.StringID
	Type  TypeID
	Value ExprID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtReturnData struct {
	Expr ExprID // NoExprID for a bare `return;`
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID if there is no else branch
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

type StmtForClassicData struct {
	Init StmtID // NoStmtID if omitted
	Cond ExprID // NoExprID if omitted
	Post ExprID // NoExprID if omitted
	Body StmtID
}

type StmtForInData struct {
	Pattern  source.StringID
	Type     TypeID // NoTypeID if untyped
	Iterable ExprID
	Body     StmtID
}

type StmtDropData struct {
	Expr ExprID
}

// StmtSignalData holds a `signal name := value;` binding. Reserved for v2+:
// the type checker accepts the syntax but rejects it with
// diag.FutSignalNotSupported.
type StmtSignalData struct {
	Name  source.StringID
	Value ExprID
}

type Stmts struct {
	Arena       *Arena[Stmt]
	Blocks      *Arena[StmtBlockData]
	Lets        *Arena[StmtLetData]
	Consts      *Arena[StmtConstData]
	ExprStmts   *Arena[StmtExprData]
	Returns     *Arena[StmtReturnData]
	Ifs         *Arena[StmtIfData]
	Whiles      *Arena[StmtWhileData]
	ForClassics *Arena[StmtForClassicData]
	ForIns      *Arena[StmtForInData]
	Drops       *Arena[StmtDropData]
	Signals     *Arena[StmtSignalData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:       NewArena[Stmt](capHint),
		Blocks:      NewArena[StmtBlockData](capHint),
		Lets:        NewArena[StmtLetData](capHint),
		Consts:      NewArena[StmtConstData](capHint),
		ExprStmts:   NewArena[StmtExprData](capHint),
		Returns:     NewArena[StmtReturnData](capHint),
		Ifs:         NewArena[StmtIfData](capHint),
		Whiles:      NewArena[StmtWhileData](capHint),
		ForClassics: NewArena[StmtForClassicData](capHint),
		ForIns:      NewArena[StmtForInData](capHint),
		Drops:       NewArena[StmtDropData](capHint),
		Signals:     NewArena[StmtSignalData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: append([]StmtID(nil), stmts...)})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) *StmtBlockData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil
	}
	return s.Blocks.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewLet(span source.Span, name source.StringID, typeID TypeID, value ExprID, isMut bool) StmtID {
	payload := s.Lets.Allocate(StmtLetData{Name: name, Type: typeID, Value: value, IsMut: isMut})
	return s.new(StmtLet, span, PayloadID(payload))
}

func (s *Stmts) Let(id StmtID) *StmtLetData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil
	}
	return s.Lets.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewConst(span source.Span, name source.StringID, typeID TypeID, value ExprID) StmtID {
	payload := s.Consts.Allocate(StmtConstData{Name: name, Type: typeID, Value: value})
	return s.new(StmtConst, span, PayloadID(payload))
}

func (s *Stmts) Const(id StmtID) *StmtConstData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtConst {
		return nil
	}
	return s.Consts.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) *StmtExprData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil
	}
	return s.ExprStmts.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewReturn(span source.Span, expr ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Expr: expr})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) *StmtReturnData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil
	}
	return s.Returns.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then StmtID, elseStmt StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: elseStmt})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) *StmtIfData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil
	}
	return s.Ifs.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) *StmtWhileData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil
	}
	return s.Whiles.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewForClassic(span source.Span, init StmtID, cond ExprID, post ExprID, body StmtID) StmtID {
	payload := s.ForClassics.Allocate(StmtForClassicData{Init: init, Cond: cond, Post: post, Body: body})
	return s.new(StmtForClassic, span, PayloadID(payload))
}

func (s *Stmts) ForClassic(id StmtID) *StmtForClassicData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtForClassic {
		return nil
	}
	return s.ForClassics.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewForIn(span source.Span, pattern source.StringID, typeID TypeID, iterable ExprID, body StmtID) StmtID {
	payload := s.ForIns.Allocate(StmtForInData{Pattern: pattern, Type: typeID, Iterable: iterable, Body: body})
	return s.new(StmtForIn, span, PayloadID(payload))
}

func (s *Stmts) ForIn(id StmtID) *StmtForInData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtForIn {
		return nil
	}
	return s.ForIns.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewDrop(span source.Span, expr ExprID) StmtID {
	payload := s.Drops.Allocate(StmtDropData{Expr: expr})
	return s.new(StmtDrop, span, PayloadID(payload))
}

func (s *Stmts) Drop(id StmtID) *StmtDropData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDrop {
		return nil
	}
	return s.Drops.Get(uint32(stmt.Payload))
}

func (s *Stmts) NewSignal(span source.Span, name source.StringID, value ExprID) StmtID {
	payload := s.Signals.Allocate(StmtSignalData{Name: name, Value: value})
	return s.new(StmtSignal, span, PayloadID(payload))
}

func (s *Stmts) Signal(id StmtID) *StmtSignalData {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtSignal {
		return nil
	}
	return s.Signals.Get(uint32(stmt.Payload))
}
