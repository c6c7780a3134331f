// Package serpapi implements the upstream provider adapters backed by the
// SerpAPI search engines (google_flights, google_hotels, google_local).
// Each engine is exposed as a separate provider so failures are reported
// per data source.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-search/trip-search-and-optimization-system/internal/infrastructure/retry"
)

// DefaultBaseURL is the public SerpAPI endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// defaultHTTPTimeout bounds a single SerpAPI request.
const defaultHTTPTimeout = 30 * time.Second

// Client is a shared SerpAPI HTTP client used by all engine adapters.
// It handles authentication, retries and API-level error detection.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	retryCfg   retry.Config
	log        zerolog.Logger
}

// ClientOption configures optional client behavior.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryConfig overrides the retry policy for upstream calls.
func WithRetryConfig(cfg retry.Config) ClientOption {
	return func(c *Client) { c.retryCfg = cfg }
}

// WithLogger sets the logger used for request and parse diagnostics.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates a SerpAPI client. An empty baseURL falls back to the
// public endpoint; the API key may be empty, in which case every search
// fails with a configuration error.
func NewClient(apiKey, baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
		retryCfg:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError distinguishes errors reported by SerpAPI itself from transport
// failures.
type apiError struct {
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("serpapi: %s", e.Message)
}

// search performs a GET against the configured engine with the given query
// parameters and decodes the JSON response into out. The raw body is also
// inspected for SerpAPI's top-level "error" field, which is returned as a
// permanent error since retrying an invalid query cannot help.
func (c *Client) search(ctx context.Context, params url.Values, out any) error {
	if c.apiKey == "" {
		return retry.NewPermanent(fmt.Errorf("serpapi: API key is not configured"))
	}
	params.Set("api_key", c.apiKey)

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.doRequest(ctx, params)
	}, c.retryCfg)
	if err != nil {
		return err
	}

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("serpapi: decode response: %w", err)
	}
	if probe.Error != "" {
		return &apiError{Message: probe.Error}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("serpapi: decode response: %w", err)
	}
	return nil
}

// doRequest executes a single HTTP GET and returns the response body.
func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("serpapi: build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("serpapi: read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("serpapi: upstream returned status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		// Client errors will not improve on retry.
		return nil, retry.NewPermanent(fmt.Errorf("serpapi: upstream returned status %d", resp.StatusCode))
	}

	return body, nil
}
