package delegate

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/evented-go/multicast/delegate/internal/funcid"
)

// TimeSpan is the wall-clock interval covered by one invocation.
type TimeSpan = timespan.TimeSpan

// Handle identifies one bound callback within its delegate. Handles are
// opaque, monotonically increasing, and never reused by the same delegate.
// The zero Handle is invalid and matches no entry.
type Handle uint64

// Observer receives lifecycle notifications from a delegate. Implementations
// must not mutate the delegate they observe.
type Observer interface {
	// Bound is called after a callback is appended. The callback string is
	// the symbol name of the bound function value.
	Bound(h Handle, callback string)
	// Removed is called after a callback is removed by Unbind or Remove.
	Removed(h Handle, callback string)
	// Invoked is called after a non-empty invocation completes, with the
	// number of callbacks called and the interval the invocation covered.
	// An invocation aborted by a panicking callback is never reported.
	Invoked(callbacks int, span TimeSpan)
}

type entry[F any] struct {
	handle Handle
	fn     F
	fp     uint64
}

// core is the shared storage of every delegate arity: an ordered entry slice
// plus the handle counter. Not safe for concurrent use; callers own
// synchronization if a delegate crosses goroutines.
type core[F any] struct {
	entries []entry[F]
	last    Handle
	obs     Observer
}

// Bind appends fn to the end of the callback sequence and returns its handle.
// Binding a nil function stores nothing and returns the zero Handle, so an
// invalid entry can never enter the sequence.
func (c *core[F]) Bind(fn F) Handle {
	if funcid.IsNil(fn) {
		return 0
	}
	c.last++
	h := c.last
	c.entries = append(c.entries, entry[F]{handle: h, fn: fn, fp: funcid.Of(fn)})
	if c.obs != nil {
		c.obs.Bound(h, funcid.Name(fn))
	}
	return h
}

// Unbind removes the entry bound under h. It reports whether an entry was
// removed; unknown handles are a no-op.
func (c *core[F]) Unbind(h Handle) bool {
	for i, e := range c.entries {
		if e.handle == h {
			c.removeAt(i)
			return true
		}
	}
	return false
}

// Remove removes the first entry whose callable has the same symbol-level
// identity as fn. The match is by identity of the function's code, not by
// captured state: two closures produced by the same function literal, or two
// bindings of the same method on different receivers, are indistinguishable,
// and Remove may drop the wrong one. Prefer Unbind with the Handle returned
// by Bind. Removing a callable with no match is a no-op.
func (c *core[F]) Remove(fn F) bool {
	fp := funcid.Of(fn)
	if fp == 0 {
		return false
	}
	for i, e := range c.entries {
		if e.fp == fp {
			c.removeAt(i)
			return true
		}
	}
	return false
}

func (c *core[F]) removeAt(i int) {
	e := c.entries[i]
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	if c.obs != nil {
		c.obs.Removed(e.handle, funcid.Name(e.fn))
	}
}

// Len returns the number of bound callbacks.
func (c *core[F]) Len() int { return len(c.entries) }

// Empty reports whether no callbacks are bound.
func (c *core[F]) Empty() bool { return len(c.entries) == 0 }

// Bound reports whether at least one callback is bound.
func (c *core[F]) Bound() bool { return len(c.entries) > 0 }

// Clear removes all bound callbacks. Handles already handed out stay invalid.
func (c *core[F]) Clear() {
	c.entries = nil
}

// SetObserver attaches o to the delegate; nil detaches. The observer sees
// bind/remove/invoke events from then on.
func (c *core[F]) SetObserver(o Observer) {
	c.obs = o
}

// clone duplicates the entry wrappers. State captured inside closures is
// shared with the original, per ordinary closure semantics. The observer is
// not carried over.
func (c *core[F]) clone() core[F] {
	dup := make([]entry[F], len(c.entries))
	copy(dup, c.entries)
	return core[F]{entries: dup, last: c.last}
}

// move transfers all entries out and leaves the receiver empty.
func (c *core[F]) move() core[F] {
	moved := core[F]{entries: c.entries, last: c.last}
	c.entries = nil
	return moved
}

// invoked reports a completed invocation of n callbacks to the observer.
func (c *core[F]) invoked(n int, start time.Time) {
	if c.obs != nil {
		c.obs.Invoked(n, timespan.BetweenTimes(start, time.Now()))
	}
}
