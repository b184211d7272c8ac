package ports

import (
	"context"
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

// Limiter is the one contract shared by the interchangeable rate-limit
// backends: count a request against (key, window, max) and report the
// window state.
type Limiter interface {
	Check(ctx context.Context, key string, window time.Duration, max int) (*model.RateResult, error)
}
