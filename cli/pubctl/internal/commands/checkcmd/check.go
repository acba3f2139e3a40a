package checkcmd

import (
	"pubkit/cli/pubctl/internal/cmdregistry"
)

// Register adds the check action to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("check", handle)
}

func handle(ctx *cmdregistry.Context) error {
	return ctx.Pipe.Check(ctx.Ctx)
}
