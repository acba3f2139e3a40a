package cmdregistry

import (
	"context"
	"fmt"

	"pubkit/cli/pubctl/internal/pipeline"
)

// Context carries the shared handles action handlers need.
type Context struct {
	Ctx  context.Context
	Pipe *pipeline.Pipeline
}

// Handler executes an action given the shared context.
type Handler func(*Context) error

// Registry maps action names to handlers.
type Registry struct {
	actions map[string]Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{actions: make(map[string]Handler)}
}

// Register sets the handler for action. It panics if action already exists.
func (r *Registry) Register(action string, h Handler) {
	if _, exists := r.actions[action]; exists {
		panic(fmt.Sprintf("action %s already registered", action))
	}
	r.actions[action] = h
}

// Lookup returns the handler and whether it exists.
func (r *Registry) Lookup(action string) (Handler, bool) {
	h, ok := r.actions[action]
	return h, ok
}
