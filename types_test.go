package huefy

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestSendEmailRequest_Validate(t *testing.T) {
	ses := ProviderSES
	unknown := EmailProvider("smoke-signals")

	tests := []struct {
		name    string
		req     *SendEmailRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: &SendEmailRequest{
				TemplateKey:  "welcome-email",
				Recipient:    "john@example.com",
				TemplateData: map[string]string{"name": "John"},
			},
		},
		{
			name: "valid with provider",
			req: &SendEmailRequest{
				TemplateKey: "welcome-email",
				Recipient:   "john@example.com",
				Provider:    &ses,
			},
		},
		{
			name: "valid without template data",
			req: &SendEmailRequest{
				TemplateKey: "plain",
				Recipient:   "a@b.co",
			},
		},
		{
			name:    "nil request",
			req:     nil,
			wantErr: true,
		},
		{
			name:    "empty template key",
			req:     &SendEmailRequest{Recipient: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "whitespace template key",
			req:     &SendEmailRequest{TemplateKey: "  ", Recipient: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "empty recipient",
			req:     &SendEmailRequest{TemplateKey: "welcome-email"},
			wantErr: true,
		},
		{
			name:    "recipient without domain",
			req:     &SendEmailRequest{TemplateKey: "welcome-email", Recipient: "john"},
			wantErr: true,
		},
		{
			name:    "recipient with display name",
			req:     &SendEmailRequest{TemplateKey: "welcome-email", Recipient: "John <john@example.com>"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			req:     &SendEmailRequest{TemplateKey: "welcome-email", Recipient: "john@example.com", Provider: &unknown},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Validate() error = %v, want *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestSendEmailRequest_WireRoundTrip(t *testing.T) {
	provider := ProviderSendGrid
	original := &SendEmailRequest{
		TemplateKey: "welcome-email",
		Recipient:   "john@example.com",
		TemplateData: map[string]string{
			"name":    "John",
			"company": "Acme Corp",
		},
		Provider: &provider,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded SendEmailRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(original, &decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &decoded, original)
	}
}

func TestResponses_WireRoundTrip(t *testing.T) {
	t.Run("send response", func(t *testing.T) {
		original := SendEmailResponse{MessageID: "msg-1", Status: "queued", Provider: "ses"}
		data, _ := json.Marshal(original)
		var decoded SendEmailResponse
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if decoded != original {
			t.Errorf("round trip mismatch: got %+v want %+v", decoded, original)
		}
	})

	t.Run("bulk response", func(t *testing.T) {
		original := BulkEmailResponse{
			Results: []BulkEmailResult{
				{Success: true, MessageID: "msg-1"},
				{Success: false, Error: &ErrorDetail{Code: "PROVIDER_ERROR", Message: "bounced"}},
			},
			SuccessCount: 1,
			FailureCount: 1,
		}
		data, _ := json.Marshal(original)
		var decoded BulkEmailResponse
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if !reflect.DeepEqual(original, decoded) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
		}
	})

	t.Run("health response", func(t *testing.T) {
		original := HealthResponse{Status: "healthy", Version: "1.0.0", Uptime: 3600}
		data, _ := json.Marshal(original)
		var decoded HealthResponse
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if decoded != original {
			t.Errorf("round trip mismatch: got %+v want %+v", decoded, original)
		}
	})
}

func TestSendEmailRequest_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(&SendEmailRequest{
		TemplateKey:  "k",
		Recipient:    "a@b.co",
		TemplateData: map[string]string{"x": "y"},
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, field := range []string{"templateKey", "recipient", "data"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("wire payload missing field %q", field)
		}
	}
	if _, ok := raw["provider"]; ok {
		t.Error("provider should be omitted when unset")
	}
}
