package loader

import (
	"context"
	"math/rand/v2"
	"time"
)

const maxRetries = 3

// backoff returns the delay before retry attempt n (0-indexed), exponential
// with jitter, capped at 30s.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
