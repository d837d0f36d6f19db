package eventlog

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const reporterKey contextKey = iota

// WithReporter returns a new context carrying the given Reporter.
func WithReporter(ctx context.Context, reporter Reporter) context.Context {
	return context.WithValue(ctx, reporterKey, reporter)
}

// FromContext retrieves the Reporter from the context. Returns a
// DefaultReporter if none is set, so callers can always emit safely.
func FromContext(ctx context.Context) Reporter {
	if reporter, ok := ctx.Value(reporterKey).(Reporter); ok {
		return reporter
	}
	return NewDefaultReporter()
}
