package cache

import (
	"context"
	"fmt"
	"github.com/avast/retry-go/v4"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

// Config describes how to reach redis.
type Config struct {
	ConnectionURL string
	User          string
	Pass          string
	PingTimeout   time.Duration
	PingAttempts  int
}

// Open creates a redis client and pings it, retrying the ping up to PingAttempts times.
func Open(ctx context.Context, log *zap.SugaredLogger, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.ConnectionURL,
		Username: cfg.User,
		Password: cfg.Pass,
	})

	attempts := cfg.PingAttempts
	if attempts < 1 {
		attempts = 1
	}

	if err := retry.Do(
		func() error {
			rdsCtx, rdsCancel := context.WithTimeout(ctx, cfg.PingTimeout)
			defer rdsCancel()
			return rdb.Ping(rdsCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(300*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnw("redis ping failed", "attempt", n+1, "ERROR", err)
		}),
	); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return rdb, nil
}
