package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds the total duration of a
// Generate call, retries included, with a per-request deadline.
type TimeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider with a per-request deadline. A zero or
// negative limit returns the provider unwrapped.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, limit: limit}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
