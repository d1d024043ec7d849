package runtime

import (
	"context"
	"fmt"

	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	"github.com/drblury/ariflow/internal/runtime/events"
)

// EventHandler processes one decoded event. A returned error is logged and
// contained; it never affects the connection.
type EventHandler func(ctx context.Context, event events.Event) error

// registry maps event type names to their bound handlers. It is mutated only
// through Client registration calls, which are rejected while a session is
// running, so dispatch reads need no locking.
type registry struct {
	handlers    map[string]EventHandler
	anyHandlers []EventHandler
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]EventHandler)}
}

func (r *registry) bind(eventType string, handler EventHandler) {
	r.handlers[eventType] = handler
}

func (r *registry) bindAny(handler EventHandler) {
	r.anyHandlers = append(r.anyHandlers, handler)
}

// resolve returns the handlers to invoke for an event type, the per-type
// binding first. An empty result is not an error; the session drops the
// event silently.
func (r *registry) resolve(eventType string) []EventHandler {
	var out []EventHandler
	if h, ok := r.handlers[eventType]; ok {
		out = append(out, h)
	}
	out = append(out, r.anyHandlers...)
	return out
}

// RegisterHandler binds handler to the named event type. Registering the same
// type twice replaces the previous binding. Registration is only allowed
// while the client is stopped.
func RegisterHandler(c *Client, eventType string, handler EventHandler) error {
	if c == nil {
		return errspkg.ErrClientRequired
	}
	if handler == nil {
		return errspkg.ErrHandlerRequired
	}
	if eventType == "" {
		return errspkg.ErrEventTypeRequired
	}
	if !events.Known(eventType) {
		return fmt.Errorf("ariflow: cannot register handler: %q is not a known event type", eventType)
	}
	return c.bind(eventType, handler)
}

// RegisterAnyHandler binds a handler that receives every successfully decoded
// event, after the per-type handler if one is bound.
func RegisterAnyHandler(c *Client, handler EventHandler) error {
	if c == nil {
		return errspkg.ErrClientRequired
	}
	if handler == nil {
		return errspkg.ErrHandlerRequired
	}
	return c.bindAny(handler)
}

// RegisterTypedHandler binds a handler taking the concrete event type, so
// application code avoids type assertions. eventType and T must agree; a
// mismatch surfaces as a handler error at dispatch time.
func RegisterTypedHandler[T events.Event](c *Client, eventType string, handler func(ctx context.Context, event T) error) error {
	if handler == nil {
		return errspkg.ErrHandlerRequired
	}
	wrapped := func(ctx context.Context, event events.Event) error {
		typed, ok := event.(T)
		if !ok {
			return fmt.Errorf("ariflow: handler for %q registered with mismatched type %T", eventType, event)
		}
		return handler(ctx, typed)
	}
	return RegisterHandler(c, eventType, wrapped)
}
