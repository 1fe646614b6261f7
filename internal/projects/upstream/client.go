package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leomarzeuski/portfolio/internal/logging"
	"github.com/leomarzeuski/portfolio/internal/projects/domain"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the hosting provider's public REST API.
	DefaultBaseURL = "https://api.vercel.com"

	// DefaultTimeout bounds a single list call.
	DefaultTimeout = 10 * time.Second

	projectsPath = "/v9/projects"
)

// ErrMissingToken is returned when the client is built without credentials.
var ErrMissingToken = errors.New("vercel api token is not configured")

// ErrMissingProjects is returned when the response has no projects array.
var ErrMissingProjects = errors.New("response has no projects array")

// StatusError reports a non-success upstream response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

type Options struct {
	BaseURL string
	Token   string
	TeamID  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client lists projects from the hosting provider using a bearer token.
type Client struct {
	baseURL    string
	teamID     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *Metrics
}

// NewClient creates a new upstream client. It fails with ErrMissingToken
// rather than issuing unauthenticated requests.
func NewClient(opts Options) (*Client, error) {
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return nil, ErrMissingToken
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = opts.Timeout

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		teamID:     opts.TeamID,
		httpClient: httpClient,
		logger:     opts.Logger,
		metrics:    &Metrics{},
	}, nil
}

// ListProjects fetches the account's project list, decoding at most
// domain.MaxProjects records. No retries are attempted.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Record, error) {
	logger := logging.FromContext(ctx, c.logger)
	start := time.Now()

	records, err := c.listProjects(ctx)
	c.metrics.record(time.Since(start), err)
	if err != nil {
		logger.LogError("list_projects", err)
		return nil, err
	}

	logger.LogInfof("list_projects", "fetched %d projects in %s", len(records), time.Since(start))
	return records, nil
}

func (c *Client) listProjects(ctx context.Context) ([]domain.Record, error) {
	u, err := url.Parse(c.baseURL + projectsPath)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if c.teamID != "" {
		q := u.Query()
		q.Set("teamId", c.teamID)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var body domain.ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if body.Projects == nil {
		return nil, fmt.Errorf("decode JSON: %w", ErrMissingProjects)
	}
	return domain.DecodeRecords(body.Projects), nil
}

// Metrics returns a snapshot of the client's call counters.
func (c *Client) Metrics() Snapshot {
	return c.metrics.Snapshot()
}
