// Package ratelimit implements the fixed window request budget applied per client.
package ratelimit

import (
	"context"
	"time"

	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

type Result struct {
	RetryAfter time.Duration
	Limit      int64
	Remaining  int64
	Allowed    bool
}

// Err is a *serviceerrs.TooManyRequestsError when the request is over budget, nil otherwise.
func (r Result) Err() error {
	if r.Allowed {
		return nil
	}
	return &serviceerrs.TooManyRequestsError{RetryAfter: r.RetryAfter, Limit: r.Limit}
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func newResult(count, limit int64, retryAfter time.Duration) Result {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Limit:     limit,
		Remaining: remaining,
		Allowed:   count <= limit,
	}
	if !res.Allowed {
		res.RetryAfter = retryAfter
	}
	return res
}
