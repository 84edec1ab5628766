package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huefy/client-go/internal/apierrors"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	retry      RetryConfig
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeouts sets the overall and connection-establishment timeouts.
func WithTimeouts(timeout, connectTimeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		}
	}
}

// WithRetryConfig sets the retry configuration.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   "https://api.huefy.dev/v1",
		apiKey:    apiKey,
		userAgent: "huefy-go",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry:   DefaultRetryConfig(),
		timeout: 30 * time.Second,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the resolved endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues one logical API call: marshal body, send with retry per the
// retry configuration, decode the response into result.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	requestID := uuid.NewString()
	var lastErr error

	for attempt := 0; ; attempt++ {
		resp, err := c.send(ctx, method, path, payload, requestID)
		if err != nil {
			// Transport-level failure: no HTTP response was received.
			lastErr = c.classify(err)
			if !c.retry.ShouldRetry(attempt) {
				return &apierrors.NetworkError{Err: lastErr, Attempts: attempt + 1}
			}
		} else if resp.StatusCode >= 500 {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
			if !c.retry.ShouldRetry(attempt) {
				return &apierrors.NetworkError{Err: lastErr, Attempts: attempt + 1}
			}
		} else if resp.StatusCode >= 400 {
			defer resp.Body.Close()
			return parseErrorResponse(resp)
		} else {
			defer resp.Body.Close()
			return decodeResult(resp, result)
		}

		c.logger.Debug().
			Str("requestId", requestID).
			Str("path", path).
			Int("attempt", attempt+1).
			Dur("delay", c.retry.Delay(attempt+1)).
			Err(lastErr).
			Msg("retrying request")

		if err := c.retry.Wait(ctx, attempt+1); err != nil {
			return &apierrors.NetworkError{Err: err, Attempts: attempt + 1}
		}
	}
}

// send issues a single HTTP request. The request body is rebuilt per
// attempt so retries never reuse a drained reader.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, requestID string) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// classify converts timeout-shaped transport errors into TimeoutError.
// Timeouts stay retryable; the type records the deadline that was missed.
func (c *Client) classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &apierrors.TimeoutError{Operation: "HTTP request", Timeout: c.timeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &apierrors.TimeoutError{Operation: "HTTP request", Timeout: c.timeout}
	}
	return err
}

// decodeResult decodes a 2xx response body. An empty or malformed body is
// a fatal protocol error, never retried.
func decodeResult(resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.APIError{
			Code:    "INVALID_RESPONSE",
			Message: "failed to read response body",
			Err:     err,
		}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &apierrors.APIError{
			Code:    "INVALID_RESPONSE",
			Message: "empty response body",
		}
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &apierrors.APIError{
			Code:    "INVALID_RESPONSE",
			Message: "malformed response body",
			Err:     err,
		}
	}
	return nil
}

// parseErrorResponse translates a 4xx response body into a typed error.
// Decodable bodies map their error code through the shared registry;
// anything else synthesizes a generic error from the status and raw body.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != "" {
		return apierrors.FromCode(errResp.Error.Code, errResp.Error.Message, resp.StatusCode)
	}

	return &apierrors.APIError{
		HTTPStatus: resp.StatusCode,
		Message:    fmt.Sprintf("%s: %s", resp.Status, bytes.TrimSpace(body)),
	}
}
