package allcmd

import (
	"fmt"

	"pubkit/cli/pubctl/internal/cmdregistry"
)

// Register adds the all action to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("all", handle)
}

// handle runs clean, build, and check in that fixed order, halting on the
// first failure. Publishing is deliberately excluded; the follow-up hints
// point at the explicit upload actions instead.
func handle(ctx *cmdregistry.Context) error {
	if err := ctx.Pipe.Clean(ctx.Ctx); err != nil {
		return err
	}
	if err := ctx.Pipe.Build(ctx.Ctx); err != nil {
		return err
	}
	if err := ctx.Pipe.Check(ctx.Ctx); err != nil {
		return err
	}
	out := ctx.Pipe.Stdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Package built and checked successfully!")
	fmt.Fprintln(out, "Run 'pubctl test' to publish to Test PyPI")
	fmt.Fprintln(out, "Run 'pubctl publish' to publish to PyPI")
	return nil
}
