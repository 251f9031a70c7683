package ast

import "surge/internal/source"

// FnModifier is a bitmask of keyword modifiers recognized on a function item.
type FnModifier uint8

const (
	FnModifierPublic FnModifier = 1 << iota
	FnModifierAsync
)

func (m FnModifier) IsPublic() bool { return m&FnModifierPublic != 0 }
func (m FnModifier) IsAsync() bool  { return m&FnModifierAsync != 0 }

// FnParam describes one parameter in a function's parameter list.
type FnParam struct {
	Name      source.StringID
	Type      TypeID
	Default   ExprID // NoExprID if the parameter has no default value
	Variadic  bool
	AttrStart AttrID
	AttrCount uint32
	Span      source.Span
}

type FnItem struct {
	Name        source.StringID
	Generics    []source.StringID
	ParamsStart FnParamID
	ParamsCount uint32
	ReturnType  TypeID
	Body        StmtID
	Flags       FnModifier
	AttrStart   AttrID
	AttrCount   uint32
	Span        source.Span
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) FnParamAt(start FnParamID, offset uint32) *FnParam {
	if !start.IsValid() {
		return nil
	}
	return i.FnParams.Get(uint32(start) + offset)
}

func (i *Items) allocateFnParams(params []FnParam) (start FnParamID, count uint32) {
	if len(params) == 0 {
		return NoFnParamID, 0
	}
	for idx, param := range params {
		id := FnParamID(i.FnParams.Allocate(param))
		if idx == 0 {
			start = id
		}
	}
	return start, uint32(len(params))
}

func (i *Items) newFnPayload(
	name source.StringID,
	generics []source.StringID,
	params []FnParam,
	returnType TypeID,
	body StmtID,
	flags FnModifier,
	attrStart AttrID,
	attrCount uint32,
	span source.Span,
) PayloadID {
	paramsStart, paramsCount := i.allocateFnParams(params)
	payload := i.Fns.Allocate(FnItem{
		Name:        name,
		Generics:    append([]source.StringID(nil), generics...),
		ParamsStart: paramsStart,
		ParamsCount: paramsCount,
		ReturnType:  returnType,
		Body:        body,
		Flags:       flags,
		AttrStart:   attrStart,
		AttrCount:   attrCount,
		Span:        span,
	})
	return PayloadID(payload)
}

func (i *Items) NewFn(
	name source.StringID,
	generics []source.StringID,
	params []FnParam,
	returnType TypeID,
	body StmtID,
	flags FnModifier,
	attrs []Attr,
	span source.Span,
) ItemID {
	attrStart, attrCount := i.allocateAttrs(attrs)
	payloadID := i.newFnPayload(name, generics, params, returnType, body, flags, attrStart, attrCount, span)
	return i.New(ItemFn, span, payloadID)
}

// NewFn is a convenience wrapper mirroring the call shape used by the parser,
// which addresses item arenas through the builder rather than *Items directly.
func (b *Builder) NewFn(
	name source.StringID,
	generics []source.StringID,
	params []FnParam,
	returnType TypeID,
	body StmtID,
	flags FnModifier,
	attrs []Attr,
	span source.Span,
) ItemID {
	return b.Items.NewFn(name, generics, params, returnType, body, flags, attrs, span)
}
