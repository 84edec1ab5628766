package api

import (
	"context"
	"net/http"
)

// SendEmail sends a single template email.
func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	var result SendEmailResponse
	if err := c.Do(ctx, http.MethodPost, "/emails/send", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendBulkEmails sends multiple template emails in one call.
func (c *Client) SendBulkEmails(ctx context.Context, reqs []SendEmailRequest) (*BulkEmailResponse, error) {
	var result BulkEmailResponse
	if err := c.Do(ctx, http.MethodPost, "/emails/bulk", BulkEmailRequest{Emails: reqs}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HealthCheck reports API health.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.Do(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
