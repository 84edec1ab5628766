package api

// SendEmailRequest is the wire form of a single send.
type SendEmailRequest struct {
	TemplateKey  string            `json:"templateKey"`
	Recipient    string            `json:"recipient"`
	TemplateData map[string]string `json:"data"`
	Provider     string            `json:"provider,omitempty"`
}

// SendEmailResponse is the wire form of a single send result.
type SendEmailResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	Provider  string `json:"provider,omitempty"`
}

// BulkEmailRequest is the wire form of a bulk send.
type BulkEmailRequest struct {
	Emails []SendEmailRequest `json:"emails"`
}

// BulkEmailResult is the per-element outcome within a bulk response.
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

// BulkEmailResponse is the wire form of a bulk send result.
type BulkEmailResponse struct {
	Results      []BulkEmailResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
}

// HealthResponse is the wire form of the health check result.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"`
}
