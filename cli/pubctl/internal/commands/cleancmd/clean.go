package cleancmd

import (
	"pubkit/cli/pubctl/internal/cmdregistry"
)

// Register adds the clean action to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("clean", handle)
}

func handle(ctx *cmdregistry.Context) error {
	return ctx.Pipe.Clean(ctx.Ctx)
}
