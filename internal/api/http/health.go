package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/internal/projects/upstream"
	"github.com/redis/go-redis/v9"
)

type HealthResponse struct {
	Status    string             `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Service   string             `json:"service"`
	Version   string             `json:"version"`
	DB        string             `json:"db"`
	Cache     string             `json:"cache"`
	Upstream  *upstream.Snapshot `json:"upstream,omitempty"`
}

// MetricsSource exposes upstream call counters.
type MetricsSource interface {
	Metrics() upstream.Snapshot
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *sql.DB
	redis       *redis.Client
	upstream    MetricsSource
}

// NewHealthHandler builds the handler; any dependency may be nil.
func NewHealthHandler(serviceName, version string, db *sql.DB, rdb *redis.Client, src MetricsSource) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       rdb,
		upstream:    src,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	dbStatus := "disabled"
	if h.db != nil {
		if err := h.db.PingContext(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	cacheStatus := "disabled"
	if h.redis != nil {
		if err := h.redis.Ping(pingCtx).Err(); err != nil {
			cacheStatus = "down"
		} else {
			cacheStatus = "up"
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Cache:     cacheStatus,
	}
	if h.upstream != nil {
		snap := h.upstream.Metrics()
		resp.Upstream = &snap
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
