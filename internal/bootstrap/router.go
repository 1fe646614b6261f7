package bootstrap

import (
	"database/sql"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/config"
	httpapi "github.com/leomarzeuski/portfolio/internal/api/http"
	"github.com/leomarzeuski/portfolio/internal/api/http/middleware"
	contacthttp "github.com/leomarzeuski/portfolio/internal/contact/http"
	"github.com/leomarzeuski/portfolio/internal/contact/repository"
	contactservice "github.com/leomarzeuski/portfolio/internal/contact/service"
	"github.com/leomarzeuski/portfolio/internal/locale"
	projecthttp "github.com/leomarzeuski/portfolio/internal/projects/http"
	"github.com/leomarzeuski/portfolio/internal/site"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RouterDeps are the wired services. Optional dependencies must be left as
// untyped nil rather than typed nil pointers.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *sql.DB
	Redis    *redis.Client
	Projects projecthttp.ProjectLister
	Metrics  httpapi.MetricsSource
	Relay    contactservice.Relay
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	cfg := dep.Config
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	exclude, err := regexp.Compile(cfg.Locale.ExcludePattern)
	if err != nil {
		return nil, fmt.Errorf("locale exclude pattern: %w", err)
	}
	defaultLocale, ok := locale.Parse(cfg.Locale.Default)
	if !ok {
		defaultLocale = locale.Default
	}

	tmpl, err := site.Templates()
	if err != nil {
		return nil, err
	}
	pages, err := site.NewHandler(logger)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(logger))
	r.Use(locale.Router(locale.RouterOptions{
		Resolver: locale.NewResolver(defaultLocale, cfg.Locale.Negotiate),
		Exclude:  exclude,
		Logger:   logger,
	}))
	r.SetHTMLTemplate(tmpl)

	httpapi.NewHealthHandler(cfg.App.ServiceName, cfg.App.Version, dep.DB, dep.Redis, dep.Metrics).RegisterRoutes(r)

	r.StaticFS("/static", site.StaticFS())
	pages.Register(r)

	api := r.Group("/api")
	api.Use(cors.New(corsConfig(cfg.Cors.AllowedOrigins)))

	projecthttp.NewHandler(dep.Projects, logger).Register(api)

	var archive contactservice.Archive
	if dep.DB != nil {
		archive = repository.NewMessageRepository(dep.DB)
	}
	contact := contactservice.NewContactService(dep.Relay, archive, logger)
	contacthttp.NewHandler(contact, logger).Register(api, cfg.Contact.RatePerMinute, cfg.Contact.Burst)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
