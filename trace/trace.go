// Package trace provides a zap-backed delegate.Observer that logs callback
// lifecycle events and keeps an inspectable journal of invocations.
package trace

import (
	"go.uber.org/zap"

	"github.com/evented-go/multicast/delegate"
)

var _ delegate.Observer = (*Log)(nil)

// Invocation is one journal record: how many callbacks ran and the
// wall-clock interval the invocation covered.
type Invocation struct {
	Callbacks int
	Span      delegate.TimeSpan
}

// Log observes a delegate, logging bind/remove/invoke at debug level and
// journaling every invocation. Like the delegates it observes, a Log is not
// safe for concurrent use.
type Log struct {
	logger      *zap.Logger
	invocations []Invocation
}

// New returns a Log writing through logger. A nil logger journals without
// logging.
func New(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

func (l *Log) Bound(h delegate.Handle, callback string) {
	l.logger.Debug("callback bound",
		zap.Uint64("handle", uint64(h)),
		zap.String("callback", callback),
	)
}

func (l *Log) Removed(h delegate.Handle, callback string) {
	l.logger.Debug("callback removed",
		zap.Uint64("handle", uint64(h)),
		zap.String("callback", callback),
	)
}

func (l *Log) Invoked(callbacks int, span delegate.TimeSpan) {
	l.invocations = append(l.invocations, Invocation{Callbacks: callbacks, Span: span})
	l.logger.Debug("delegate invoked",
		zap.Int("callbacks", callbacks),
		zap.Duration("elapsed", span.Duration()),
	)
}

// Invocations returns a copy of the journal in invocation order.
func (l *Log) Invocations() []Invocation {
	dup := make([]Invocation, len(l.invocations))
	copy(dup, l.invocations)
	return dup
}

// Reset discards the journal.
func (l *Log) Reset() {
	l.invocations = nil
}
