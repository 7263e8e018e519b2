package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that reissues failed Generate calls with
// exponential backoff. Quiz generation is a single blocking request from
// the user's point of view, so transient provider hiccups are absorbed
// here rather than surfaced as a failed quiz.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidBudget) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable classifies an error. Context cancellation and token-budget
// overruns are permanent. A garbled response gets exactly one more try,
// funded by *invalidBudget; everything else (rate limits, outages,
// network errors) is treated as transient.
func retryable(err error, invalidBudget *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidBudget == 0 {
			return false
		}
		*invalidBudget--
		return true
	}

	return true
}

// waitFor computes the backoff before the next attempt. A rate-limit
// error that carries the server's RetryAfter wins over the computed
// schedule; otherwise exponential backoff with ±20% jitter, capped at
// MaxWait.
func (r *RetryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)

	return time.Duration(math.Max(wait, 0))
}
