package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/leomarzeuski/portfolio/config"
	"github.com/leomarzeuski/portfolio/internal/bootstrap"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/spf13/cobra"
)

var refreshCache bool

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Print the sanitized project list",
	Long: `Fetches the project list the same way GET /api/vercel does and
prints it as JSON. With --refresh the Redis cache is overwritten too.`,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().BoolVar(&refreshCache, "refresh", false, "Store the result in the Redis cache")
}

func runProjects(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.App.ServiceName, cfg.App.LogLevel, cfg.App.Environment)
	defer logger.Sync()

	ctx := cmd.Context()

	redisURL := ""
	if refreshCache {
		redisURL = cfg.Redis.URL
	}
	rdb, err := bootstrap.OpenRedis(ctx, redisURL, connectWait, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svc, _, err := bootstrap.Projects(cfg.Vercel, rdb, logger)
	if err != nil {
		return err
	}

	projects, err := svc.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("fetch projects: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(projects)
}
