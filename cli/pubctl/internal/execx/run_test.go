package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}
}

func TestHostRunCapturesAndPassesThrough(t *testing.T) {
	requireSh(t)
	var out, errBuf bytes.Buffer
	h := Host{Stdout: &out, Stderr: &errBuf}
	res, err := h.Run(context.Background(), true, "sh", "-c", "echo hello; echo oops 1>&2")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Code != 0 {
		t.Fatalf("unexpected exit code %d", res.Code)
	}
	if res.Stdout != "hello\n" {
		t.Fatalf("unexpected stdout %q", res.Stdout)
	}
	if res.Stderr != "oops\n" {
		t.Fatalf("unexpected stderr %q", res.Stderr)
	}
	if out.String() != res.Stdout || errBuf.String() != res.Stderr {
		t.Fatalf("captured output not passed through: stdout=%q stderr=%q", out.String(), errBuf.String())
	}
}

func TestHostRunCheckedFailure(t *testing.T) {
	requireSh(t)
	var out, errBuf bytes.Buffer
	h := Host{Stdout: &out, Stderr: &errBuf}
	res, err := h.Run(context.Background(), true, "sh", "-c", "exit 3")
	if err == nil {
		t.Fatalf("expected error for checked non-zero exit")
	}
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if ee.Code != 3 {
		t.Fatalf("unexpected exit code in error: %d", ee.Code)
	}
	if res.Code != 3 {
		t.Fatalf("unexpected result code %d", res.Code)
	}
}

func TestHostRunUncheckedFailureIsData(t *testing.T) {
	requireSh(t)
	var out, errBuf bytes.Buffer
	h := Host{Stdout: &out, Stderr: &errBuf}
	res, err := h.Run(context.Background(), false, "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("unchecked run should not error: %v", err)
	}
	if res.Code != 3 {
		t.Fatalf("unexpected result code %d", res.Code)
	}
}

func TestHostRunCancellation(t *testing.T) {
	requireSh(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var out, errBuf bytes.Buffer
	h := Host{Stdout: &out, Stderr: &errBuf}
	_, err := h.Run(ctx, true, "sh", "-c", "sleep 10")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context error, got %v", err)
	}
}
