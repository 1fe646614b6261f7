package formspree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leomarzeuski/portfolio/internal/contact/domain"
)

// ErrMissingEndpoint is returned when no form endpoint is configured.
var ErrMissingEndpoint = errors.New("formspree endpoint is not configured")

// StatusError reports a non-success response from the form service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("formspree returned status %d: %s", e.StatusCode, e.Body)
}

// Client relays contact submissions to a Formspree form endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new Formspree client
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("parse formspree endpoint: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Send posts the submission as form values and asks for a JSON reply.
func (c *Client) Send(ctx context.Context, s domain.Submission) error {
	form := url.Values{}
	form.Set("name", s.Name)
	form.Set("email", s.Email)
	form.Set("message", s.Message)
	if s.Locale != "" {
		form.Set("locale", s.Locale)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("formspree request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
