package ratelimit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

type storedWindow struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// StoreLimiter is the shared-store backend: the same fixed-window semantics
// as LocalLimiter, but the window lives in an external key-value store with
// a TTL equal to the remaining window, so state is shared across replicas
// and stale entries self-expire.
//
// Accepted approximation: the read-modify-write is not serialized. Two
// concurrent requests for the same key can read the same pre-increment count
// and both write count+1, under-counting by up to (concurrency-1) per round
// trip. Closing that gap would need an atomic increment the store contract
// does not expose.
type StoreLimiter struct {
	store ports.KeyValueStore
}

func NewStoreLimiter(store ports.KeyValueStore) *StoreLimiter {
	return &StoreLimiter{store: store}
}

func (l *StoreLimiter) Check(ctx context.Context, key string, windowDur time.Duration, max int) (*model.RateResult, error) {
	now := time.Now()

	w := storedWindow{}
	raw, found, err := l.store.Get(ctx, key)
	if err != nil {
		return nil, util.LogError("rate limit window read failed", err)
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			// A corrupt window is indistinguishable from an absent one.
			found = false
		}
	}

	if !found || now.After(w.ResetAt) {
		w = storedWindow{Count: 1, ResetAt: now.Add(windowDur)}
	} else {
		w.Count++
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, util.LogError("rate limit window encode failed", err)
	}

	ttl := time.Until(w.ResetAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := l.store.PutWithTTL(ctx, key, string(data), ttl); err != nil {
		return nil, util.LogError("rate limit window write failed", err)
	}

	remaining := max - w.Count
	if remaining < 0 {
		remaining = 0
	}

	return &model.RateResult{
		Allowed:   w.Count <= max,
		Remaining: remaining,
		ResetAt:   w.ResetAt,
	}, nil
}
