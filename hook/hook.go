// Package hook provides a named, error-aware handler set: the wiring surface
// between an event producer and its consumers when handlers can fail.
//
// Where a delegate calls plain functions and unwinds on the first panic, a
// hook.Set calls context-aware handlers that return errors, runs every
// handler regardless of earlier failures, and reports the failures together.
// Registration is by name: an explicit name must be unique, an empty name
// gets a generated token, and deregistration takes the name back.
package hook

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNilHandler is returned by Register when the handler is nil.
var ErrNilHandler = errors.New("nil handler")

// ErrDuplicateName is returned by Register when the explicit name is taken.
var ErrDuplicateName = errors.New("handler name already registered")

// Handler consumes one event and may fail.
type Handler[E any] func(ctx context.Context, event E) error

type registration[E any] struct {
	name string
	fn   Handler[E]
}

// Set is an ordered collection of named handlers for one event type.
// Not safe for concurrent use; callers own synchronization.
type Set[E any] struct {
	logger   *zap.Logger
	handlers []registration[E]
}

// New returns an empty Set logging through logger; nil disables logging.
func New[E any](logger *zap.Logger) *Set[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Set[E]{logger: logger}
}

// Register appends fn under name and returns the token that deregisters it.
// An empty name gets a generated unique token; an explicit name must not
// already be registered. A nil handler is rejected with ErrNilHandler and
// the set is left unchanged.
func (s *Set[E]) Register(name string, fn Handler[E]) (string, error) {
	if fn == nil {
		return "", ErrNilHandler
	}
	if name == "" {
		name = uuid.New().String()
	} else if s.index(name) >= 0 {
		return "", fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	s.handlers = append(s.handlers, registration[E]{name: name, fn: fn})
	return name, nil
}

// Deregister removes the handler registered under token. It reports whether
// a handler was removed.
func (s *Set[E]) Deregister(token string) bool {
	i := s.index(token)
	if i < 0 {
		return false
	}
	s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
	return true
}

// Len returns the number of registered handlers.
func (s *Set[E]) Len() int { return len(s.handlers) }

// Notify calls every handler in registration order with event. Handler
// failures do not stop the sequence; they are logged and combined into the
// returned error. Notify stops early only when ctx is done, and includes the
// context error in the result.
func (s *Set[E]) Notify(ctx context.Context, event E) error {
	var errs error
	for _, reg := range s.handlers {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := reg.fn(ctx, event); err != nil {
			s.logger.Warn("hook handler failed",
				zap.String("handler", reg.name),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (s *Set[E]) index(name string) int {
	for i, reg := range s.handlers {
		if reg.name == name {
			return i
		}
	}
	return -1
}
