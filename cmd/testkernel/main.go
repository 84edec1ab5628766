// Command testkernel is a stand-in for the Huefy kernel binary. It speaks
// the kernel stdin/stdout JSON protocol and is used by kernel transport
// tests and for local development without a real kernel installation.
//
// Behavior is selected with TESTKERNEL_MODE:
//
//	success (default) — answer the command with a canned result
//	error             — answer with success=false and an error block
//	empty             — exit 0 with no output
//	garbage           — exit 0 with non-JSON output
//	fail              — write TESTKERNEL_STDERR to stderr and exit 1
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type commandEnvelope struct {
	Command   string          `json:"command"`
	RequestID string          `json:"requestId"`
	Config    json.RawMessage `json:"config"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type resultEnvelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *resultError `json:"error,omitempty"`
}

type resultError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func main() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var cmd commandEnvelope
	if err := json.Unmarshal(input, &cmd); err != nil {
		fatal("parse command: %v", err)
	}

	switch os.Getenv("TESTKERNEL_MODE") {
	case "", "success":
		respond(successData(cmd.Command))
	case "error":
		reply(resultEnvelope{
			Success: false,
			Error: &resultError{
				Code:    envOr("TESTKERNEL_ERROR_CODE", "TEMPLATE_NOT_FOUND"),
				Message: envOr("TESTKERNEL_ERROR_MESSAGE", "template not found"),
			},
		})
	case "empty":
	case "garbage":
		fmt.Print("not json at all")
	case "fail":
		fatal("%s", envOr("TESTKERNEL_STDERR", "kernel crashed"))
	default:
		fatal("unknown TESTKERNEL_MODE")
	}
}

func successData(command string) any {
	switch command {
	case "sendBulkEmails":
		return map[string]any{
			"results": []map[string]any{
				{"success": true, "messageId": "msg-1"},
				{"success": true, "messageId": "msg-2"},
			},
			"successCount": 2,
			"failureCount": 0,
		}
	case "healthCheck":
		return map[string]any{
			"status":  "healthy",
			"version": "1.0.0",
			"uptime":  3600,
		}
	default:
		return map[string]any{
			"messageId": "msg-1",
			"status":    "queued",
		}
	}
}

func respond(data any) {
	reply(resultEnvelope{Success: true, Data: data})
}

func reply(envelope resultEnvelope) {
	if err := json.NewEncoder(os.Stdout).Encode(envelope); err != nil {
		fatal("encode response: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
