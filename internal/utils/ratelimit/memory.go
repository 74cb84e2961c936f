package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepThreshold = 10_000

type window struct {
	resetAt time.Time
	count   int64
}

// MemoryLimiter keeps the counters in process. It serves a single instance only.
type MemoryLimiter struct {
	now     func() time.Time
	windows map[string]*window
	period  time.Duration
	limit   int64
	mu      sync.Mutex
}

func NewMemoryLimiter(limit int64, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		now:     time.Now,
		windows: make(map[string]*window),
		period:  period,
		limit:   limit,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		if len(l.windows) >= sweepThreshold {
			l.sweep(now)
		}
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++
	return newResult(w.count, l.limit, w.resetAt.Sub(now)), nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}
}
