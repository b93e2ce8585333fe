package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request under key is allowed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

const (
	defaultLimit  = 60
	defaultWindow = time.Minute
	defaultPrefix = "rl"
)

func normalize(limit int, window time.Duration) (int, time.Duration) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return limit, window
}
