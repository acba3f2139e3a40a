package buildcmd

import (
	"pubkit/cli/pubctl/internal/cmdregistry"
)

// Register adds the build action to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("build", handle)
}

func handle(ctx *cmdregistry.Context) error {
	return ctx.Pipe.Build(ctx.Ctx)
}
