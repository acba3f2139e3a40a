package publishcmd

import (
	"pubkit/cli/pubctl/internal/cmdregistry"
	"pubkit/cli/pubctl/internal/pipeline"
)

// Register adds the upload actions to the registry. "test" is the historical
// token for the staging upload; the name is kept for compatibility with the
// established surface.
func Register(r *cmdregistry.Registry) {
	r.Register("test", handleStaging)
	r.Register("publish", handleProduction)
}

func handleStaging(ctx *cmdregistry.Context) error {
	return ctx.Pipe.Publish(ctx.Ctx, pipeline.Staging)
}

func handleProduction(ctx *cmdregistry.Context) error {
	return ctx.Pipe.Publish(ctx.Ctx, pipeline.Production)
}
