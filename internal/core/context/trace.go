package context

import "context"

// TraceContext carries the per-request correlation identifiers set by the
// HTTP trace middleware. The logger attaches them to every record emitted
// while handling the request.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceKey struct{}

// WithTrace attaches trace information to ctx.
func WithTrace(ctx context.Context, t *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// GetTrace returns the trace information, or nil outside a traced request.
func GetTrace(ctx context.Context) *TraceContext {
	t, _ := ctx.Value(traceKey{}).(*TraceContext)
	return t
}
