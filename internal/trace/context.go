package trace

import "context"

// ctxValue is what a context carries: the tracer and the innermost span
// opened through WithSpan.
type ctxValue struct {
	tracer Tracer
	span   uint64
}

type ctxKey struct{}

func lookup(ctx context.Context) ctxValue {
	if ctx != nil {
		if v, ok := ctx.Value(ctxKey{}).(ctxValue); ok {
			return v
		}
	}
	return ctxValue{tracer: Nop}
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return lookup(ctx).tracer
}

// WithTracer attaches t to ctx; nil means Nop. The current span is kept.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	v := lookup(ctx)
	v.tracer = t
	return context.WithValue(ctx, ctxKey{}, v)
}

// WithSpan makes s the parent of spans begun from the returned context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	v := lookup(ctx)
	v.span = s.ID()
	return context.WithValue(ctx, ctxKey{}, v)
}

// SpanID returns the span recorded by WithSpan, or 0.
func SpanID(ctx context.Context) uint64 {
	return lookup(ctx).span
}
