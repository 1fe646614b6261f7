package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/config"
	"github.com/leomarzeuski/portfolio/internal/locale"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjects struct{}

func (stubProjects) List(context.Context) ([]domain.Project, error) {
	return []domain.Project{}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ServiceName = "portfolio"
	cfg.App.Version = "test"
	cfg.Locale.Default = "pt"
	cfg.Locale.ExcludePattern = locale.DefaultExcludePattern
	cfg.Contact.RatePerMinute = 60
	cfg.Contact.Burst = 5
	cfg.Cors.AllowedOrigins = []string{"*"}
	return cfg
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	SetGinMode("test")
	r, err := BuildRouter(RouterDeps{Config: testConfig(), Projects: stubProjects{}})
	require.NoError(t, err)
	return r
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if method == http.MethodPost {
		body = strings.NewReader("name=Ana&email=ana%40example.com&message=hi")
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestBuildRouter_RedirectsUnprefixedPaths(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/pt/", rr.Header().Get("Location"))

	rr = do(r, http.MethodGet, "/about?ref=cv", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/pt/about?ref=cv", rr.Header().Get("Location"))
}

func TestBuildRouter_ServesPages(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/pt", "/pt/", "/en"} {
		rr := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html", path)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"), path)
	}

	rr := do(r, http.MethodGet, "/static/site.css", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBuildRouter_APIIsNotRedirected(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodGet, "/api/vercel", map[string]string{"Origin": "https://portfolio.dev"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	assert.Equal(t, "public, s-maxage=3600, stale-while-revalidate=86400", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBuildRouter_ContactUnavailableWithoutRelay(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodPost, "/api/contact", map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"error": "contact form unavailable"}`, rr.Body.String())
}

func TestBuildRouter_UnknownPath(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "not found"}`, rr.Body.String())
}

func TestBuildRouter_InvalidExcludePattern(t *testing.T) {
	cfg := testConfig()
	cfg.Locale.ExcludePattern = "("
	_, err := BuildRouter(RouterDeps{Config: cfg, Projects: stubProjects{}})
	assert.Error(t, err)
}
