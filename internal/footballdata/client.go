package footballdata

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

	"github.com/pfrederiksen/match-alert/internal/match"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"
	UserAgent      = "match-alert/1.0 (github.com/pfrederiksen/match-alert)"
	Timeout        = 30 * time.Second

	authHeader   = "X-Auth-Token"
	maxErrorBody = 64 << 10
)

// Client fetches scheduled matches from football-data.org
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests, proxies)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New creates a new Client authenticating with apiKey
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchMatches returns the matches scheduled on date (YYYY-MM-DD), in API order.
// A non-200 response yields a nil slice and a *StatusError.
func (c *Client) FetchMatches(ctx context.Context, date string) ([]match.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.matchesURL(date), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(authHeader, c.apiKey)
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetching matches: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return toMatches(payload.Matches), nil
}

func (c *Client) matchesURL(date string) string {
	q := url.Values{}
	q.Set("dateFrom", date)
	q.Set("dateTo", date)
	return c.baseURL + "/matches?" + q.Encode()
}
