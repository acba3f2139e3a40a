// Package publishcmd implements the "test" and "publish" upload actions.
// The staging upload runs unconditionally; the production upload is guarded
// by the pipeline's confirmation gate, and a denied confirmation is a
// successful no-op rather than a failure.
package publishcmd
