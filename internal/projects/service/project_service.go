package service

import (
	"context"
	"errors"

	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/leomarzeuski/portfolio/internal/projects/cache"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no upstream credentials were provided.
var ErrNotConfigured = errors.New("project list upstream is not configured")

// Lister fetches raw project records from the hosting provider.
type Lister interface {
	ListProjects(ctx context.Context) ([]domain.Record, error)
}

// ProjectService serves the sanitized project list
type ProjectService struct {
	upstream Lister
	cache    cache.Cache
	logger   *zap.Logger
}

// NewProjectService creates a new ProjectService. upstream may be nil, in
// which case every call fails with ErrNotConfigured.
func NewProjectService(upstream Lister, c cache.Cache, logger *zap.Logger) *ProjectService {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{upstream: upstream, cache: c, logger: logger}
}

// List returns the cached list when fresh, otherwise fetches and sanitizes it.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	logger := logging.FromContext(ctx, s.logger)

	projects, err := s.cache.Get(ctx)
	if err == nil {
		return projects, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.LogWarnf("list_projects", "cache read failed: %v", err)
	}

	return s.Refresh(ctx)
}

// Refresh bypasses the cache, fetches the upstream list and stores the result.
func (s *ProjectService) Refresh(ctx context.Context) ([]domain.Project, error) {
	if s.upstream == nil {
		return nil, ErrNotConfigured
	}

	records, err := s.upstream.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := domain.Sanitize(records)
	if err := s.cache.Set(ctx, projects); err != nil {
		logging.FromContext(ctx, s.logger).LogWarnf("refresh_projects", "cache write failed: %v", err)
	}
	return projects, nil
}
