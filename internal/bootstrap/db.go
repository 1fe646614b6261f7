package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/leomarzeuski/portfolio/config"
	"github.com/leomarzeuski/portfolio/internal/contact/repository"
	"github.com/leomarzeuski/portfolio/internal/storage/postgres"
	"go.uber.org/zap"
)

type DBOptions struct {
	Config  *config.DatabaseConfig
	MaxWait time.Duration
}

// OpenDB connects the contact archive and makes sure its table exists.
// It returns a nil DB when the database is not configured.
func OpenDB(ctx context.Context, opt DBOptions, logger *zap.Logger) (*sql.DB, error) {
	if opt.Config == nil || !opt.Config.Enabled() {
		return nil, nil
	}
	if opt.MaxWait == 0 {
		opt.MaxWait = 15 * time.Second
	}

	db, err := postgres.NewConnection(ctx, opt.Config, opt.MaxWait, logger)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := repository.NewMessageRepository(db).EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}

	return db, nil
}
