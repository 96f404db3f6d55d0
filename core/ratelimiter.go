package core

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// RateLimiter bounds both how many requests run concurrently and how
// closely spaced consecutive requests may be, the same two-axis cooldown
// the wallet package's faucet uses for its per-address request throttling
// (a semaphore for concurrency, a mutex-guarded last-request timestamp for
// pacing), generalized here to a shared pacing budget across all callers.
type RateLimiter struct {
	sem      *semaphore.Weighted
	minDelay time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewRateLimiter builds a limiter that admits at most maxConcurrent
// in-flight calls and paces successive calls at least 1/rps apart.
func NewRateLimiter(rps float64, maxConcurrent int) *RateLimiter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	var minDelay time.Duration
	if rps > 0 {
		minDelay = time.Duration(float64(time.Second) / rps)
	}
	return &RateLimiter{
		sem:      semaphore.NewWeighted(int64(maxConcurrent)),
		minDelay: minDelay,
	}
}

// Execute runs fn, first acquiring a concurrency slot and waiting out any
// remaining pacing delay since the previous call.
func (r *RateLimiter) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.sem.Release(1)

	r.waitTurn(ctx)
	return fn(ctx)
}

func (r *RateLimiter) waitTurn(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.minDelay <= 0 {
		r.last = time.Now()
		return
	}

	now := time.Now()
	elapsed := now.Sub(r.last)
	if elapsed < r.minDelay {
		wait := r.minDelay - elapsed
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	r.last = time.Now()
}
