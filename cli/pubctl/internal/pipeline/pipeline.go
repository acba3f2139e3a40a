package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"pubkit/cli/pubctl/internal/execx"
)

// Target selects the repository a publish uploads to.
type Target int

const (
	Staging Target = iota
	Production
)

// Pipeline sequences the publishing stages against one dist directory.
// Stages run strictly one at a time; there is no retry anywhere because
// building and uploading are remote effects that must not be silently
// repeated.
type Pipeline struct {
	Dist    string
	Run     execx.Runner
	Confirm Confirmer
	DryRun  bool

	// Out receives progress messages; nil defaults to os.Stdout.
	Out io.Writer
	// Err receives dry-run command echoes; nil defaults to os.Stderr.
	Err io.Writer
}

// Stdout returns the writer progress messages go to.
func (p *Pipeline) Stdout() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// Stderr returns the writer dry-run echoes go to.
func (p *Pipeline) Stderr() io.Writer {
	if p.Err != nil {
		return p.Err
	}
	return os.Stderr
}

func (p *Pipeline) step(msg string) {
	fmt.Fprintln(p.Stdout(), msg)
}

// Clean empties and removes the dist directory. It is a no-op when the
// directory does not exist, so repeated invocations succeed.
func (p *Pipeline) Clean(ctx context.Context) error {
	p.step("Cleaning dist directory...")
	entries, err := os.ReadDir(p.Dist)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read dist directory: %w", err)
	}
	if p.DryRun {
		fmt.Fprintln(p.Stderr(), "+ rm -r "+p.Dist)
		return nil
	}
	for _, e := range entries {
		path := filepath.Join(p.Dist, e.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	// Removing the emptied directory is the final check that no stale
	// artifact survived; a still-populated directory fails here rather
	// than being silently left behind.
	if err := os.Remove(p.Dist); err != nil {
		return fmt.Errorf("remove %s: %w", p.Dist, err)
	}
	return nil
}

// Build invokes the package build tool. Artifacts land in the dist directory
// as a side effect owned by the tool.
func (p *Pipeline) Build(ctx context.Context) error {
	p.step("Building package...")
	return p.host(ctx, "python3", "-m", "build")
}

// Check validates every artifact currently in the dist directory.
func (p *Pipeline) Check(ctx context.Context) error {
	p.step("Checking package...")
	return p.host(ctx, "twine", append([]string{"check"}, p.distFiles()...)...)
}

// Publish uploads the dist artifacts to the selected repository. The
// production target is guarded by the confirmation gate: a denied
// confirmation performs no upload and is a successful outcome, not a failure.
func (p *Pipeline) Publish(ctx context.Context, target Target) error {
	if target == Production {
		p.step("Publishing to PyPI...")
		if !p.DryRun {
			ok, err := p.Confirm.Confirm(ctx, "Are you sure you want to publish to PyPI? (yes/no): ")
			if err != nil {
				return err
			}
			if !ok {
				p.step("Cancelled.")
				return nil
			}
		}
		return p.host(ctx, "twine", append([]string{"upload"}, p.distFiles()...)...)
	}
	p.step("Publishing to Test PyPI...")
	return p.host(ctx, "twine", append([]string{"upload", "--repository", "testpypi"}, p.distFiles()...)...)
}

// host runs one external command through the injected runner, or echoes it to
// stderr in dry-run mode.
func (p *Pipeline) host(ctx context.Context, name string, args ...string) error {
	if p.DryRun {
		fmt.Fprintln(p.Stderr(), "+ "+name+" "+strings.Join(args, " "))
		return nil
	}
	res, err := p.Run.Run(ctx, true, name, args...)
	if err != nil {
		return err
	}
	log.Debugf("%s exited with code %d", name, res.Code)
	return nil
}

// distFiles expands the dist directory contents for the check and upload
// tools. When nothing matches, the glob pattern itself is passed through so
// the tool reports the missing artifacts instead of silently succeeding on an
// empty argument list.
func (p *Pipeline) distFiles() []string {
	pattern := filepath.Join(p.Dist, "*")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return []string{pattern}
	}
	return matches
}
