package ratelimit

import (
	"context"
	"time"
)

// Limiter enforces a per-minute request ceiling keyed by session. This is
// independent of the free-tier total-count ledger: a session can be inside
// its lifetime quota and still be throttled for bursting.
type Limiter interface {
	// Allow records one request and reports whether it fits the window.
	Allow(ctx context.Context, key string) (bool, error)

	// Remaining returns how many requests are left in the current window.
	Remaining(ctx context.Context, key string) (int, error)

	// Limit returns the window ceiling.
	Limit() int

	// Window returns the window duration.
	Window() time.Duration

	// Reset returns the time at which the current window ends.
	Reset(ctx context.Context, key string) (time.Time, error)
}
