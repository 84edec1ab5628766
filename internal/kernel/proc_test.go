package kernel

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/huefy/client-go/internal/apierrors"
)

func writeScript(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "proc.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunProcess_CollectsStreamsAndExitCode(t *testing.T) {
	path := writeScript(t, `cat
echo "warning" >&2
`)

	result, err := runProcess(context.Background(), path, []byte("hello"), time.Second)
	if err != nil {
		t.Fatalf("runProcess() error = %v", err)
	}
	if result.exitCode != 0 {
		t.Errorf("exitCode = %d, want 0", result.exitCode)
	}
	if !bytes.Equal(result.stdout, []byte("hello")) {
		t.Errorf("stdout = %q, want input echoed back", result.stdout)
	}
	if !bytes.Contains(result.stderr, []byte("warning")) {
		t.Errorf("stderr = %q", result.stderr)
	}
}

func TestRunProcess_NonZeroExit(t *testing.T) {
	path := writeScript(t, `cat >/dev/null
exit 7
`)

	result, err := runProcess(context.Background(), path, nil, time.Second)
	if err != nil {
		t.Fatalf("runProcess() error = %v", err)
	}
	if result.exitCode != 7 {
		t.Errorf("exitCode = %d, want 7", result.exitCode)
	}
}

func TestRunProcess_ContextDeadline(t *testing.T) {
	path := writeScript(t, `cat >/dev/null
sleep 10
`)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runProcess(ctx, path, nil, 50*time.Millisecond)
	elapsed := time.Since(start)

	var toErr *apierrors.TimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("error = %v, want *TimeoutError", err)
	}
	if elapsed > 5*time.Second {
		t.Errorf("runProcess returned after %v, process was not reaped at the deadline", elapsed)
	}
}

func TestRunProcess_MissingExecutable(t *testing.T) {
	_, err := runProcess(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, time.Second)
	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
}

func TestRunProcess_EarlyExitDuringWrite(t *testing.T) {
	// The process exits without reading stdin; the exit code wins over
	// the resulting pipe write failure.
	path := writeScript(t, `exit 5
`)

	large := bytes.Repeat([]byte("x"), 1<<20)
	result, err := runProcess(context.Background(), path, large, time.Second)
	if err != nil {
		t.Fatalf("runProcess() error = %v", err)
	}
	if result.exitCode != 5 {
		t.Errorf("exitCode = %d, want 5", result.exitCode)
	}
}
