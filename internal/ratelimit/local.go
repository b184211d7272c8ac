package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

type window struct {
	count   int
	resetAt time.Time
}

// LocalLimiter is the process-local backend: a map from key to the current
// fixed window, plus a background sweep that drops expired entries to bound
// memory.
//
// Known consistency trade-off: state is not shared across replicas. Under
// horizontal scaling each instance enforces its own independent budget, so
// the effective global limit is up to (replicas x max). Use StoreLimiter
// when the limit has to hold across instances.
type LocalLimiter struct {
	mu      sync.Mutex
	windows map[string]*window

	sweepInterval time.Duration
	sweeping      bool
	stopOnce      sync.Once
	stop          chan struct{}
}

func NewLocalLimiter(sweepInterval time.Duration) *LocalLimiter {
	limiter := &LocalLimiter{
		windows:       make(map[string]*window),
		sweepInterval: sweepInterval,
		stop:          make(chan struct{}),
	}

	go limiter.sweepLoop()

	return limiter
}

func (l *LocalLimiter) Check(_ context.Context, key string, windowDur time.Duration, max int) (*model.RateResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(windowDur)}
		l.windows[key] = w
	} else {
		w.count++
	}

	remaining := max - w.count
	if remaining < 0 {
		remaining = 0
	}

	return &model.RateResult{
		Allowed:   w.count <= max,
		Remaining: remaining,
		ResetAt:   w.resetAt,
	}, nil
}

// Stop terminates the sweep goroutine. The limiter stays usable afterwards;
// expired windows are then only reclaimed lazily on access.
func (l *LocalLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

func (l *LocalLimiter) sweepLoop() {
	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// sweep removes expired windows. A sweep already in progress is not
// reentered; an overlapping tick is skipped instead.
func (l *LocalLimiter) sweep() {
	l.mu.Lock()
	if l.sweeping {
		l.mu.Unlock()
		return
	}
	l.sweeping = true

	now := time.Now()
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}

	l.sweeping = false
	l.mu.Unlock()
}
