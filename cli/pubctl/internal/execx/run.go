package execx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Result carries the captured output and exit code of a finished command.
type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// ExitError reports a checked command that exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// Runner spawns an external command and waits for it to finish. Arguments are
// passed as a literal argv, never through a shell. When check is true a
// non-zero exit is returned as *ExitError; when false it is returned as data
// in Result.Code.
type Runner interface {
	Run(ctx context.Context, check bool, name string, args ...string) (Result, error)
}

// Host executes commands on the local host. Captured stdout/stderr are echoed
// to the configured writers when non-empty (pass-through, not suppression);
// nil writers default to the process's own streams.
type Host struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (h Host) Run(ctx context.Context, check bool, name string, args ...string) (Result, error) {
	log.Debugf("+ %s", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if res.Stdout != "" {
		fmt.Fprint(h.stdout(), res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(h.stderr(), res.Stderr)
	}
	if err != nil {
		ee, ok := err.(*exec.ExitError)
		switch {
		case ctx.Err() != nil:
			return res, ctx.Err()
		case ok:
			res.Code = ee.ExitCode()
		default:
			// Spawn failure (e.g. binary not found), no exit status to report.
			return res, err
		}
	}
	if check && res.Code != 0 {
		return res, &ExitError{Code: res.Code}
	}
	return res, nil
}

func (h Host) stdout() io.Writer {
	if h.Stdout != nil {
		return h.Stdout
	}
	return os.Stdout
}

func (h Host) stderr() io.Writer {
	if h.Stderr != nil {
		return h.Stderr
	}
	return os.Stderr
}
