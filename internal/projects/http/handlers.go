package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"go.uber.org/zap"
)

const (
	// CacheControl lets intermediaries serve the list for an hour and
	// revalidate in the background for up to a day.
	CacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

	errFetchProjects = "Failed to fetch projects"
)

// ProjectLister is the service behind the handler.
type ProjectLister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type Handler struct {
	projects ProjectLister
	logger   *zap.Logger
}

func NewHandler(projects ProjectLister, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{projects: projects, logger: logger}
}

// ListProjects serves the sanitized project list. Failures never leak the
// upstream cause to the caller.
func (h *Handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		logging.FromContext(ctx, h.logger).LogError("list_projects", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errFetchProjects})
		return
	}

	c.Header("Cache-Control", CacheControl)
	c.JSON(http.StatusOK, projects)
}
