package database

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"time"
)

// Config describes how to reach the relational store.
type Config struct {
	Driver        string
	ConnectionURL string
	PingTimeout   time.Duration
	PingAttempts  int
}

// Open opens the database and pings it, retrying the ping up to PingAttempts times.
func Open(ctx context.Context, log *zap.SugaredLogger, cfg Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	attempts := cfg.PingAttempts
	if attempts < 1 {
		attempts = 1
	}

	if err := retry.Do(
		func() error {
			pingCtx, pingCancel := context.WithTimeout(ctx, cfg.PingTimeout)
			defer pingCancel()
			return db.PingContext(pingCtx)
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(300*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnw("database ping failed", "attempt", n+1, "ERROR", err)
		}),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}
