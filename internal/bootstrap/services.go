package bootstrap

import (
	"errors"
	"fmt"

	"github.com/leomarzeuski/portfolio/config"
	"github.com/leomarzeuski/portfolio/internal/contact/formspree"
	contactservice "github.com/leomarzeuski/portfolio/internal/contact/service"
	"github.com/leomarzeuski/portfolio/internal/projects/cache"
	"github.com/leomarzeuski/portfolio/internal/projects/service"
	"github.com/leomarzeuski/portfolio/internal/projects/upstream"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Projects wires the project list service. The returned client is nil when
// no token is configured; the service then fails every call with ErrNotConfigured.
func Projects(cfg config.VercelConfig, rdb *redis.Client, logger *zap.Logger) (*service.ProjectService, *upstream.Client, error) {
	client, err := upstream.NewClient(upstream.Options{
		BaseURL: cfg.APIURL,
		Token:   cfg.Token,
		TeamID:  cfg.TeamID,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil && !errors.Is(err, upstream.ErrMissingToken) {
		return nil, nil, fmt.Errorf("projects upstream: %w", err)
	}

	var c cache.Cache = cache.Nop{}
	if rdb != nil {
		c = cache.NewRedisCache(rdb, cache.DefaultTTL)
	}

	if client == nil {
		logger.Warn("VERCEL_API_TOKEN is not set, project list disabled")
		return service.NewProjectService(nil, c, logger), nil, nil
	}
	return service.NewProjectService(client, c, logger), client, nil
}

// Relay returns the Formspree client, or nil when no endpoint is configured.
func Relay(cfg config.ContactConfig, logger *zap.Logger) (contactservice.Relay, error) {
	client, err := formspree.NewClient(cfg.FormspreeEndpoint, cfg.Timeout)
	if errors.Is(err, formspree.ErrMissingEndpoint) {
		logger.Warn("FORMSPREE_ENDPOINT is not set, contact form disabled")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("contact relay: %w", err)
	}
	return client, nil
}
