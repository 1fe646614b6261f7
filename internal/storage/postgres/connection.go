package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/leomarzeuski/portfolio/config"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// NewConnection opens the database and pings it with exponential backoff for
// up to maxWait before giving up.
func NewConnection(ctx context.Context, cfg *config.DatabaseConfig, maxWait time.Duration, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Ping(ctx, db, maxWait, logger); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Ping retries db.PingContext until it succeeds or maxWait elapses.
func Ping(ctx context.Context, db *sql.DB, maxWait time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = maxWait

	err := backoff.RetryNotify(func() error {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(pctx)
	}, backoff.WithContext(bo, ctx), func(err error, next time.Duration) {
		logger.Warn("retrying database connection", zap.Error(err), zap.Duration("next", next))
	})
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
