package publishcmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"pubkit/cli/pubctl/internal/cmdregistry"
	"pubkit/cli/pubctl/internal/execx"
	"pubkit/cli/pubctl/internal/pipeline"
)

type fakeRunner struct {
	calls [][]string
}

func (f *fakeRunner) Run(ctx context.Context, check bool, name string, args ...string) (execx.Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return execx.Result{}, nil
}

func TestTestTokenUploadsToStaging(t *testing.T) {
	r := cmdregistry.New()
	Register(r)
	h, ok := r.Lookup("test")
	if !ok {
		t.Fatalf("test action not registered")
	}
	dist := filepath.Join(t.TempDir(), "dist")
	run := &fakeRunner{}
	pipe := &pipeline.Pipeline{Dist: dist, Run: run, Out: &bytes.Buffer{}}
	if err := h(&cmdregistry.Context{Ctx: context.Background(), Pipe: pipe}); err != nil {
		t.Fatalf("test action failed: %v", err)
	}
	if len(run.calls) != 1 {
		t.Fatalf("expected exactly one upload, got %v", run.calls)
	}
	got := strings.Join(run.calls[0], " ")
	if !strings.HasPrefix(got, "twine upload --repository testpypi ") {
		t.Fatalf("unexpected argv %q", got)
	}
}

func TestPublishDeniedByOperatorInput(t *testing.T) {
	r := cmdregistry.New()
	Register(r)
	h, ok := r.Lookup("publish")
	if !ok {
		t.Fatalf("publish action not registered")
	}
	run := &fakeRunner{}
	var out bytes.Buffer
	pipe := &pipeline.Pipeline{
		Dist:    filepath.Join(t.TempDir(), "dist"),
		Run:     run,
		Confirm: pipeline.LineConfirmer{In: strings.NewReader("no\n"), Out: &out},
		Out:     &out,
	}
	if err := h(&cmdregistry.Context{Ctx: context.Background(), Pipe: pipe}); err != nil {
		t.Fatalf("denied publish must succeed, got %v", err)
	}
	if len(run.calls) != 0 {
		t.Fatalf("denied publish must not upload, got %v", run.calls)
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Fatalf("missing cancellation notice in %q", out.String())
	}
}
