package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key in process memory. Capacity
// is requests and the bucket refills fully over window.
type MemoryLimiter struct {
	requests int
	every    rate.Limit
	buckets  map[string]*bucket
	mutex    sync.Mutex
	now      func() time.Time
}

func NewMemoryLimiter(requests int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		requests: requests,
		every:    rate.Every(window / time.Duration(requests)),
		buckets:  make(map[string]*bucket),
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	b, exists := l.buckets[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.every, l.requests)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	res := Result{Limit: l.requests}

	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		res.RetryAfter = delay
		return res, nil
	}

	res.Allowed = true
	res.Remaining = int(b.limiter.TokensAt(now))
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	return res, nil
}

// Cleanup removes buckets that have been idle for longer than idle.
func (l *MemoryLimiter) Cleanup(idle time.Duration) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > idle {
			delete(l.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup periodically until ctx is done.
func (l *MemoryLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Cleanup(time.Hour)
			}
		}
	}()
}
