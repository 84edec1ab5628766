package huefy

import (
	"context"

	"github.com/huefy/client-go/internal/api"
	"github.com/huefy/client-go/internal/kernel"
)

// transport is the mechanism used to reach the email-sending backend.
// Exactly one implementation is selected at client construction and owned
// for the client's lifetime.
type transport interface {
	sendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error)
	sendBulkEmails(ctx context.Context, reqs []*SendEmailRequest) (*BulkEmailResponse, error)
	healthCheck(ctx context.Context) (*HealthResponse, error)
	endpoint() string
}

// httpTransport routes calls through the HTTP API client.
type httpTransport struct {
	client *api.Client
}

func (t *httpTransport) sendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	resp, err := t.client.SendEmail(ctx, toAPIRequest(req))
	if err != nil {
		return nil, err
	}
	return &SendEmailResponse{
		MessageID: resp.MessageID,
		Status:    resp.Status,
		Provider:  resp.Provider,
	}, nil
}

func (t *httpTransport) sendBulkEmails(ctx context.Context, reqs []*SendEmailRequest) (*BulkEmailResponse, error) {
	wire := make([]api.SendEmailRequest, 0, len(reqs))
	for _, req := range reqs {
		wire = append(wire, toAPIRequest(req))
	}
	resp, err := t.client.SendBulkEmails(ctx, wire)
	if err != nil {
		return nil, err
	}
	out := &BulkEmailResponse{
		Results:      make([]BulkEmailResult, 0, len(resp.Results)),
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for _, r := range resp.Results {
		result := BulkEmailResult{Success: r.Success, MessageID: r.MessageID}
		if r.Error != nil {
			result.Error = &ErrorDetail{Code: r.Error.Code, Message: r.Error.Message}
		}
		out.Results = append(out.Results, result)
	}
	return out, nil
}

func (t *httpTransport) healthCheck(ctx context.Context) (*HealthResponse, error) {
	resp, err := t.client.HealthCheck(ctx)
	if err != nil {
		return nil, err
	}
	return &HealthResponse{
		Status:  resp.Status,
		Version: resp.Version,
		Uptime:  resp.Uptime,
	}, nil
}

func (t *httpTransport) endpoint() string {
	return t.client.BaseURL()
}

func toAPIRequest(req *SendEmailRequest) api.SendEmailRequest {
	wire := api.SendEmailRequest{
		TemplateKey:  req.TemplateKey,
		Recipient:    req.Recipient,
		TemplateData: req.TemplateData,
	}
	if req.Provider != nil {
		wire.Provider = string(*req.Provider)
	}
	return wire
}

// kernelTransport routes calls through the local kernel binary.
type kernelTransport struct {
	client *kernel.Client
}

func (t *kernelTransport) sendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	resp, err := t.client.SendEmail(ctx, toKernelRequest(req))
	if err != nil {
		return nil, err
	}
	return &SendEmailResponse{
		MessageID: resp.MessageID,
		Status:    resp.Status,
		Provider:  resp.Provider,
	}, nil
}

func (t *kernelTransport) sendBulkEmails(ctx context.Context, reqs []*SendEmailRequest) (*BulkEmailResponse, error) {
	wire := make([]kernel.SendEmailRequest, 0, len(reqs))
	for _, req := range reqs {
		wire = append(wire, toKernelRequest(req))
	}
	resp, err := t.client.SendBulkEmails(ctx, wire)
	if err != nil {
		return nil, err
	}
	out := &BulkEmailResponse{
		Results:      make([]BulkEmailResult, 0, len(resp.Results)),
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for _, r := range resp.Results {
		result := BulkEmailResult{Success: r.Success, MessageID: r.MessageID}
		if r.Error != nil {
			result.Error = &ErrorDetail{Code: r.Error.Code, Message: r.Error.Message}
		}
		out.Results = append(out.Results, result)
	}
	return out, nil
}

func (t *kernelTransport) healthCheck(ctx context.Context) (*HealthResponse, error) {
	resp, err := t.client.HealthCheck(ctx)
	if err != nil {
		return nil, err
	}
	return &HealthResponse{
		Status:  resp.Status,
		Version: resp.Version,
		Uptime:  resp.Uptime,
	}, nil
}

func (t *kernelTransport) endpoint() string {
	return t.client.Endpoint()
}

func toKernelRequest(req *SendEmailRequest) kernel.SendEmailRequest {
	wire := kernel.SendEmailRequest{
		TemplateKey:  req.TemplateKey,
		Recipient:    req.Recipient,
		TemplateData: req.TemplateData,
	}
	if req.Provider != nil {
		wire.Provider = string(*req.Provider)
	}
	return wire
}
