package treeedit

import "surge/internal/trace"

// emitPoint records an instant event at ScopeModule if sf's tracer is
// active, using the same trace.Tracer contract other subsystems report
// per-file progress through.
func (sf *SourceFile) emitPoint(name, detail string, extra map[string]string) {
	t := sf.tracer
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(&trace.Event{
		Kind:   trace.KindPoint,
		Scope:  trace.ScopeModule,
		Name:   name,
		Detail: detail,
		Extra:  extra,
	})
}

func (sf *SourceFile) emitError(name, detail string, extra map[string]string) {
	t := sf.tracer
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(&trace.Event{
		Kind:   trace.KindPoint,
		Scope:  trace.ScopeModule,
		Name:   name,
		Detail: detail,
		Extra:  extra,
	})
}

// SetTracer attaches t to sf; every subsequent cache and edit event on this
// file is reported to it. A nil t disables tracing (equivalent to
// trace.Nop).
func (sf *SourceFile) SetTracer(t trace.Tracer) { sf.tracer = t }
