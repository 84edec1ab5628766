package kernel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huefy/client-go/internal/apierrors"
)

// Default error values for kernel failures that carry no error block.
const (
	defaultErrorCode    = "KERNEL_ERROR"
	defaultErrorMessage = "Unknown kernel error"
)

// Client is the kernel transport. It spawns one fresh kernel process per
// call; nothing is shared between calls.
type Client struct {
	apiKey   string
	endpoint string
	binPath  string
	timeout  time.Duration
	logger   zerolog.Logger
}

// Option configures the kernel client.
type Option func(*Client)

// WithEndpoint sets the endpoint passed to the kernel binary.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger for invocation diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a kernel client, resolving and verifying the platform
// binary under dir. A missing binary fails here, at construction: it is
// an installation defect, not a transient condition.
func New(apiKey, dir string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	binPath, err := ResolveBinary(dir)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiKey:   apiKey,
		endpoint: "api.huefy.dev:50051",
		binPath:  binPath,
		timeout:  30 * time.Second,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BinaryPath returns the resolved kernel binary path.
func (c *Client) BinaryPath() string {
	return c.binPath
}

// Endpoint returns the endpoint passed to the kernel binary.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SendEmail sends a single template email through the kernel.
func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	var result SendEmailResponse
	if err := c.invoke(ctx, CommandSendEmail, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendBulkEmails sends multiple template emails in one kernel call.
func (c *Client) SendBulkEmails(ctx context.Context, reqs []SendEmailRequest) (*BulkEmailResponse, error) {
	var result BulkEmailResponse
	if err := c.invoke(ctx, CommandSendBulkEmails, BulkEmailRequest{Emails: reqs}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HealthCheck reports backend health through the kernel.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.invoke(ctx, CommandHealthCheck, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// invoke runs one kernel process for the given command and decodes its
// response envelope into result.
func (c *Client) invoke(ctx context.Context, command string, data, result any) error {
	envelope := commandEnvelope{
		Command:   command,
		RequestID: uuid.NewString(),
		Config: commandConfig{
			APIKey:   c.apiKey,
			Endpoint: c.endpoint,
			Timeout:  c.timeout.Milliseconds(),
		},
		Data: data,
	}

	input, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal kernel command: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().
		Str("requestId", envelope.RequestID).
		Str("command", command).
		Str("binary", c.binPath).
		Msg("spawning kernel process")

	proc, err := runProcess(ctx, c.binPath, input, c.timeout)
	if err != nil {
		return err
	}

	if proc.exitCode != 0 {
		return &apierrors.NetworkError{
			Err:      fmt.Errorf("kernel process failed"),
			ExitCode: proc.exitCode,
			Stderr:   strings.TrimSpace(string(proc.stderr)),
		}
	}

	return decodeEnvelope(proc.stdout, result)
}

// decodeEnvelope parses the kernel's stdout into the response envelope
// and extracts its data field into result.
func decodeEnvelope(stdout []byte, result any) error {
	if len(bytes.TrimSpace(stdout)) == 0 {
		return &apierrors.APIError{
			Code:    defaultErrorCode,
			Message: "empty response from kernel",
		}
	}

	var envelope resultEnvelope
	if err := json.Unmarshal(stdout, &envelope); err != nil {
		return &apierrors.APIError{
			Code:    defaultErrorCode,
			Message: "malformed response from kernel",
			Err:     err,
		}
	}

	if !envelope.Success {
		code, message := defaultErrorCode, defaultErrorMessage
		if envelope.Error != nil {
			if envelope.Error.Code != "" {
				code = envelope.Error.Code
			}
			if envelope.Error.Message != "" {
				message = envelope.Error.Message
			}
		}
		return apierrors.FromCode(code, message, 0)
	}

	if result == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return &apierrors.APIError{
			Code:    defaultErrorCode,
			Message: "malformed kernel response data",
			Err:     err,
		}
	}

	return nil
}
