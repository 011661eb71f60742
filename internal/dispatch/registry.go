// Package dispatch routes inbound client messages to their handlers on
// a pool of worker goroutines. Messages from the same session always
// land on the same worker, so per-session processing order matches
// arrival order without any cross-worker coordination.
package dispatch

import (
	"context"
	"fmt"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

// Handler processes one inbound message. Handlers send their own
// responses through the session; the returned error is recorded for
// logs and metrics only.
type Handler func(ctx context.Context, s session.Session, payload []byte) error

// Registry maps message kinds to handlers. It is populated during
// startup and read-only once the dispatcher starts, so lookups take no
// lock.
type Registry struct {
	handlers map[domain.Kind]Handler
	sealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[domain.Kind]Handler)}
}

// Register binds a handler to a kind. Registering after the registry
// was sealed, or twice for the same kind, is a programming error.
func (r *Registry) Register(kind domain.Kind, h Handler) {
	if r.sealed {
		panic(fmt.Sprintf("dispatch: register %s after seal", kind))
	}
	if _, dup := r.handlers[kind]; dup {
		panic(fmt.Sprintf("dispatch: duplicate handler for %s", kind))
	}
	r.handlers[kind] = h
}

// seal freezes the registry. Called by the dispatcher on start.
func (r *Registry) seal() {
	r.sealed = true
}

// lookup returns the handler for kind, if any.
func (r *Registry) lookup(kind domain.Kind) (Handler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}
