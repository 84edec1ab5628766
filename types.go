package huefy

import (
	"fmt"
	"net/mail"
	"strings"
)

// EmailProvider selects which upstream provider the Huefy backend should
// use to deliver an email. When unset, the backend picks its default.
type EmailProvider string

// Supported email providers.
const (
	ProviderSES       EmailProvider = "ses"
	ProviderSendGrid  EmailProvider = "sendgrid"
	ProviderMailgun   EmailProvider = "mailgun"
	ProviderMailchimp EmailProvider = "mailchimp"
	ProviderResend    EmailProvider = "resend"
)

// knownProviders lists the provider values accepted by validation.
var knownProviders = map[EmailProvider]struct{}{
	ProviderSES:       {},
	ProviderSendGrid:  {},
	ProviderMailgun:   {},
	ProviderMailchimp: {},
	ProviderResend:    {},
}

// SendEmailRequest describes a single template email to send.
type SendEmailRequest struct {
	// TemplateKey identifies the server-stored email template.
	TemplateKey string `json:"templateKey"`
	// Recipient is the destination email address.
	Recipient string `json:"recipient"`
	// TemplateData holds the variables substituted into the template.
	TemplateData map[string]string `json:"data"`
	// Provider optionally pins the upstream email provider.
	Provider *EmailProvider `json:"provider,omitempty"`
}

// Validate checks the request fields and returns a *ValidationError
// describing the first violated rule.
func (r *SendEmailRequest) Validate() error {
	if r == nil {
		return &ValidationError{Field: "request", Message: "request is nil"}
	}
	if strings.TrimSpace(r.TemplateKey) == "" {
		return &ValidationError{Field: "templateKey", Message: "template key is required"}
	}
	if strings.TrimSpace(r.Recipient) == "" {
		return &ValidationError{Field: "recipient", Message: "recipient is required"}
	}
	if addr, err := mail.ParseAddress(r.Recipient); err != nil || addr.Address != r.Recipient {
		return &ValidationError{Field: "recipient", Message: fmt.Sprintf("invalid email address: %q", r.Recipient)}
	}
	if r.Provider != nil {
		if _, ok := knownProviders[*r.Provider]; !ok {
			return &ValidationError{Field: "provider", Message: fmt.Sprintf("unknown provider: %q", *r.Provider)}
		}
	}
	return nil
}

// SendEmailResponse is the result of a successful single send.
type SendEmailResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	Provider  string `json:"provider,omitempty"`
}

// BulkEmailResult is the per-request outcome within a bulk send.
type BulkEmailResult struct {
	Success   bool         `json:"success"`
	MessageID string       `json:"messageId,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a server-reported failure for one bulk element.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BulkEmailResponse is the result of a bulk send.
type BulkEmailResponse struct {
	Results      []BulkEmailResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
}

// HealthResponse reports the API health status.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"`
}
