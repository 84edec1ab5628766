package huefy

import (
	"context"
	"fmt"
	"strings"

	"github.com/huefy/client-go/internal/api"
	"github.com/huefy/client-go/internal/kernel"
)

// Client is the Huefy SDK client. It validates requests, forwards them to
// the transport selected at construction, and translates transport errors
// into the public error taxonomy.
type Client struct {
	transport transport
	mode      TransportMode
}

// New creates a Huefy client with the given API key. The transport mode
// is fixed for the client's lifetime; configuration happens through
// options.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ValidationError{Field: "apiKey", Message: "API key is required"}
	}

	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t, err := buildTransport(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Str("transport", string(cfg.transportMode)).
		Str("endpoint", t.endpoint()).
		Dur("timeout", cfg.timeout).
		Msg("huefy client created")

	return &Client{transport: t, mode: cfg.transportMode}, nil
}

// buildTransport constructs the transport named by the configuration.
func buildTransport(apiKey string, cfg *clientConfig) (transport, error) {
	switch cfg.transportMode {
	case TransportKernel:
		kc, err := kernel.New(apiKey, cfg.kernelDir,
			kernel.WithEndpoint(cfg.kernelEndpoint()),
			kernel.WithTimeout(cfg.timeout),
			kernel.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, &ValidationError{Field: "kernel", Message: err.Error()}
		}
		return &kernelTransport{client: kc}, nil
	default:
		ac, err := api.New(apiKey,
			api.WithBaseURL(cfg.httpEndpoint()),
			api.WithTimeouts(cfg.timeout, cfg.connectTimeout),
			api.WithRetryConfig(api.RetryConfig{
				Enabled:    cfg.retry.Enabled,
				MaxRetries: cfg.retry.MaxRetries,
				BaseDelay:  cfg.retry.BaseDelay,
				MaxDelay:   cfg.retry.MaxDelay,
				Multiplier: cfg.retry.Multiplier,
			}),
			api.WithUserAgent(userAgent),
			api.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
		if cfg.httpClient != nil {
			ac.SetHTTPClient(cfg.httpClient)
		}
		return &httpTransport{client: ac}, nil
	}
}

// TransportMode returns the transport mode the client was constructed
// with.
func (c *Client) TransportMode() TransportMode {
	return c.mode
}

// SendEmail sends a single template email. The request is validated
// before any I/O; validation failures surface as *ValidationError.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.transport.sendEmail(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// SendBulkEmails sends multiple template emails in a single call. All
// requests are validated before any I/O is attempted; a validation
// failure for element i reports the index and aborts the whole call.
func (c *Client) SendBulkEmails(ctx context.Context, reqs []*SendEmailRequest) (*BulkEmailResponse, error) {
	if len(reqs) == 0 {
		return nil, &ValidationError{Field: "requests", Message: "at least one email request is required"}
	}
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, &ValidationError{
				Field:   "requests",
				Message: fmt.Sprintf("request at index %d: %v", i, err),
			}
		}
	}

	resp, err := c.transport.sendBulkEmails(ctx, reqs)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// HealthCheck reports the health of the email-sending backend.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.transport.healthCheck(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
