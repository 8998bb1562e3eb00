package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/rickgao/kalshi-scan/internal/auth"
)

// Client provides access to the Kalshi REST API.
type Client struct {
	baseURL    string
	signPrefix string // URL path prefix included in the signed message
	creds      *auth.Credentials
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. Requests are signed with creds;
// a nil creds sends unauthenticated requests (useful in tests).
func NewClient(baseURL string, creds *auth.Credentials, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	// Kalshi signs the full request path, e.g. "/trade-api/v2/markets".
	if u, err := url.Parse(baseURL); err == nil {
		c.signPrefix = u.Path
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
