package tenderly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Client talks to the Tenderly platform API. It owns one HTTP transport
// and one Config, and hands both to the per-family sub-clients returned by
// its accessor methods.
//
// A Client is immutable after construction and safe for concurrent use;
// parallel callers share the transport's connection pool and nothing else.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client, e.g. to control
// timeouts, proxies or TLS settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the REST API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithLogger sets the logger. The default is a production zap
// SugaredLogger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client from the given configuration. Construction is
// purely local; no network call is made until an operation is invoked.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: defaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewFromEnv creates a Client configured from the TENDERLY_* environment
// variables (see ConfigFromEnv).
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// projectPath prefixes a path with the account/project scope. Most
// endpoints live under this scope; the exceptions (public networks, admin
// RPC) build their URLs themselves.
func (c *Client) projectPath(path string) string {
	return fmt.Sprintf("/account/%s/project/%s%s",
		encodePathSegment(c.cfg.AccountSlug),
		encodePathSegment(c.cfg.ProjectSlug),
		path,
	)
}

// encodePathSegment escapes a value for use as a single URL path segment.
func encodePathSegment(s string) string {
	return url.PathEscape(s)
}

// emptyBody is sent on endpoints that require an empty JSON object.
var emptyBody = struct{}{}

// do performs one REST request: it joins the base URL and path, attaches
// the access key header, marshals the body, and decodes either the
// response into out or the service's error envelope into an *APIError.
// Every REST operation funnels through here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Access-Key", c.cfg.AccessKey.Reveal())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debugf("tenderly: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewDecodeError(err)
	}

	return nil
}

// decodeAPIError turns a non-2xx response into an *APIError, preferring
// the service's structured error envelope and falling back to a snippet of
// the raw body.
func decodeAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		envelope.Error.Status = status
		return envelope.Error
	}

	return NewAPIError(status, "", "", bodySnippet(body))
}

// bodySnippet trims an undecodable error body down to something safe to
// carry in an error message.
func bodySnippet(body []byte) string {
	const maxLen = 256

	s := strings.TrimSpace(string(body))
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
