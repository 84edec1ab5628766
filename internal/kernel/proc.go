package kernel

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/huefy/client-go/internal/apierrors"
)

// procResult holds the collected output of one kernel invocation.
type procResult struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// runProcess spawns one kernel process, writes input to its stdin, closes
// stdin to signal end-of-input, reads stdout and stderr to completion and
// waits for termination. The read is bounded by ctx; on expiry the process
// is killed and a TimeoutError surfaces.
//
// The process is reaped on every exit path: once Start succeeds, either
// Wait runs to completion or the guard kills the process and waits.
func runProcess(ctx context.Context, path string, input []byte, timeout time.Duration) (*procResult, error) {
	cmd := exec.CommandContext(ctx, path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &apierrors.NetworkError{Err: err}
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, &apierrors.NetworkError{Err: err}
	}

	reaped := false
	defer func() {
		if !reaped && cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}()

	// A write failure here usually means the process exited early; the
	// exit code from Wait is the more useful signal, so fall through.
	_, writeErr := stdin.Write(input)
	closeErr := stdin.Close()

	waitErr := cmd.Wait()
	reaped = true

	if ctx.Err() != nil {
		return nil, &apierrors.TimeoutError{Operation: "kernel invocation", Timeout: timeout}
	}

	result := &procResult{
		stdout: stdout.Bytes(),
		stderr: stderr.Bytes(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.exitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, &apierrors.NetworkError{Err: waitErr}
	}

	if writeErr != nil {
		return nil, &apierrors.NetworkError{Err: writeErr}
	}
	if closeErr != nil {
		return nil, &apierrors.NetworkError{Err: closeErr}
	}

	return result, nil
}
