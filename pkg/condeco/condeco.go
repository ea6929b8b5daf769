// Package condeco is a client for the Condeco desk and room booking
// mobile REST API.
//
// The API is not publicly documented; the endpoints and parameter names
// here match what the official mobile application sends. Authentication
// is passwordless: SendMagicLink emails the user a validation key,
// LoginWithMagicLink exchanges it for a JWT access token, and
// GetSessionToken upgrades the access token with the opaque session
// token that most desk operations additionally require.
package condeco

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"
)

const (
	// userAgent matches the mobile application so the vendor serves the
	// same responses it serves the app.
	userAgent = "okhttp/4.10.0"

	defaultTimeout           = 60 * time.Second
	defaultMaxRetries        = 3
	defaultRequestsPerSecond = 4
)

// Config holds configuration for the Condeco client.
type Config struct {
	// UniqueKey is the tenant hostname of the Condeco instance,
	// e.g. "yourcompany.condecosoftware.com".
	UniqueKey string

	// BaseURL overrides the https://{UniqueKey} base. Used in tests.
	BaseURL string

	// AccessToken is the JWT bearer token for authenticated calls. It
	// may be empty at construction time and set later with
	// SetAccessToken once the magic-link handshake completes.
	AccessToken string

	// SessionToken is the opaque session token most desk operations
	// require as a query parameter.
	SessionToken string

	// Timeout for HTTP requests. Default: 60 seconds, matching the
	// mobile application.
	Timeout time.Duration

	// MaxRetries for idempotent requests that fail with a network
	// error or a 5xx response. Default: 3.
	MaxRetries int

	// RequestsPerSecond caps outbound request rate. Default: 4.
	RequestsPerSecond float64

	// Logger (optional).
	Logger hclog.Logger
}

// Client talks to a single Condeco instance.
type Client struct {
	baseURL      string
	accessToken  string
	sessionToken string
	maxRetries   int
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       hclog.Logger
}

// New creates a Condeco client.
func New(cfg Config) (*Client, error) {
	if cfg.UniqueKey == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("condeco: unique key is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + cfg.UniqueKey
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("condeco: invalid base URL: %w", err)
	}

	return &Client{
		baseURL:      baseURL,
		accessToken:  cfg.AccessToken,
		sessionToken: cfg.SessionToken,
		maxRetries:   cfg.MaxRetries,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		logger:       cfg.Logger.Named("condeco"),
	}, nil
}

// SetAccessToken replaces the bearer token used for authenticated calls.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// SetSessionToken replaces the opaque session token.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

// sessionQuery returns query values pre-populated with the session
// token under the parameter name the endpoint expects. Most desk
// endpoints use "accessToken"; MyBookings/ListV2 uses "sessionGuid" and
// LoginInformationsV2 uses "token".
func (c *Client) sessionQuery(param string) url.Values {
	q := url.Values{}
	q.Set(param, c.sessionToken)
	return q
}

// getJSON issues a GET and decodes the response into out. GETs are
// read-mostly against this API, so they retry on network errors and 5xx
// responses with exponential backoff.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	operation := func() error {
		err := c.doOnce(ctx, http.MethodGet, endpoint, nil, out)
		if err == nil || isRetryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
	return backoff.Retry(operation, bo)
}

// sendJSON issues a request with a JSON body and decodes the response
// into out. Bodied requests are never retried: booking writes are not
// idempotent.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}
	return c.doOnce(ctx, method, c.baseURL+path, payload, out)
}

// doOnce executes a single request and decodes a 2xx JSON response into
// out. Non-2xx responses become *APIError.
func (c *Client) doOnce(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	c.logger.Debug("sending request", "method", method, "path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	c.logger.Debug("request complete", "method", method, "path", req.URL.Path,
		"status", resp.StatusCode)
	return nil
}

// isRetryable reports whether a retry could plausibly succeed: server
// errors and transport failures qualify, client errors and malformed
// responses do not.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// checkCall converts an unsuccessful CallResponse into a *CallError.
func checkCall(cr CallResponse) error {
	if cr.ResponseCode != ResponseCodeSuccess {
		return &CallError{Code: cr.ResponseCode, Message: cr.ResponseMessage}
	}
	return nil
}
