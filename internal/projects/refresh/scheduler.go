package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec refreshes shortly before the cached list expires.
const DefaultSpec = "@every 55m"

// Refresher re-fetches the project list and overwrites the cache.
type Refresher interface {
	Refresh(ctx context.Context) ([]domain.Project, error)
}

type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
	logger    *zap.Logger
}

func NewScheduler(refresher Refresher, timeout time.Duration, logger *zap.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start registers the refresh job on spec, warms the cache once and starts
// the cron loop.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = DefaultSpec
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("schedule projects refresh %q: %w", spec, err)
	}

	go s.RunOnce()
	s.cron.Start()
	s.logger.Info("projects refresh scheduled", zap.String("spec", spec))
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce performs a single refresh under its own timeout.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ctx = logging.WithRequestID(ctx, "refresh-"+uuid.NewString())

	logger := logging.FromContext(ctx, s.logger)
	projects, err := s.refresher.Refresh(ctx)
	if err != nil {
		logger.LogError("refresh_projects", err)
		return
	}
	logger.LogInfof("refresh_projects", "cached %d projects", len(projects))
}
