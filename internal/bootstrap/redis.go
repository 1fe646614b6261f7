package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenRedis connects the projects cache. It returns a nil client when url is empty.
func OpenRedis(ctx context.Context, url string, maxWait time.Duration, logger *zap.Logger) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = maxWait

	err = backoff.RetryNotify(func() error {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return client.Ping(pctx).Err()
	}, backoff.WithContext(bo, ctx), func(err error, next time.Duration) {
		logger.Warn("retrying redis connection", zap.Error(err), zap.Duration("next", next))
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
