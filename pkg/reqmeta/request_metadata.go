// Package reqmeta carries per-request metadata through the request context.
package reqmeta

import "context"

type RequestMetadata struct {
	RequestID string
	HTTPMetadata
}

type HTTPMetadata struct {
	Method *string
	URL    *string
}

type Option func(*RequestMetadata)

func NewRequestMetadata(requestID string, options ...Option) *RequestMetadata {
	rm := &RequestMetadata{
		RequestID: requestID,
	}

	for _, option := range options {
		option(rm)
	}

	return rm
}

func WithHTTPMetadata(hmd HTTPMetadata) Option {
	return func(rm *RequestMetadata) {
		rm.HTTPMetadata = hmd
	}
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying rm.
func NewContext(ctx context.Context, rm *RequestMetadata) context.Context {
	return context.WithValue(ctx, contextKey{}, rm)
}

// FromContext returns the metadata stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestMetadata, bool) {
	rm, ok := ctx.Value(contextKey{}).(*RequestMetadata)
	return rm, ok
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if rm, ok := FromContext(ctx); ok {
		return rm.RequestID
	}
	return ""
}
