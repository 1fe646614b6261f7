package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/leomarzeuski/portfolio/config"
	"github.com/leomarzeuski/portfolio/internal/bootstrap"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/leomarzeuski/portfolio/internal/projects/refresh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const connectWait = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logger := logging.New(cfg.App.ServiceName, cfg.App.LogLevel, cfg.App.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis.URL, connectWait, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{Config: &cfg.Database, MaxWait: connectWait}, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	projects, client, err := bootstrap.Projects(cfg.Vercel, rdb, logger)
	if err != nil {
		return err
	}
	relay, err := bootstrap.Relay(cfg.Contact, logger)
	if err != nil {
		return err
	}

	deps := bootstrap.RouterDeps{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Redis:    rdb,
		Projects: projects,
		Relay:    relay,
	}
	if client != nil {
		deps.Metrics = client
	}
	router, err := bootstrap.BuildRouter(deps)
	if err != nil {
		return err
	}

	if rdb != nil && client != nil {
		scheduler := refresh.NewScheduler(projects, cfg.Vercel.Timeout*3, logger)
		if err := scheduler.Start(cfg.Refresh.Spec); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
