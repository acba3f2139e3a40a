// Package pipeline implements the publishing stages: cleaning previous build
// output, building the distributable package, validating it, and uploading it
// to the staging or production repository. Stages delegate all process
// spawning to an injected execx.Runner and the production upload to an
// injected Confirmer, so each stage can be exercised in tests without side
// effects.
package pipeline
