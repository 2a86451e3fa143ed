package delegate

import "errors"

// ErrNilTarget is returned by the BindMethod family when the target object
// is nil. The binding is rejected at bind time and the sequence is unchanged.
var ErrNilTarget = errors.New("nil target object")

// ErrNotBound is returned by Invoke on a valued delegate with no callbacks
// bound. Void delegates never return it; their empty invocation is a no-op.
var ErrNotBound = errors.New("no callbacks bound")
