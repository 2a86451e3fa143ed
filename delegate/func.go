package delegate

import "time"

// Func0 through Func3 are valued delegates: every callback shares one
// parameter list and one result type O. Invoke calls the callbacks in bind
// order, discards every result but the last, and returns the last callback's
// result. Invoking with zero callbacks fails with ErrNotBound; check Bound
// or Empty first to tolerate an unbound delegate.

// Func0 is a valued delegate over func() O.
type Func0[O any] struct {
	core[func() O]
}

// Invoke calls every bound callback in bind order and returns the result of
// the last one. It returns ErrNotBound if no callback is bound.
func (d *Func0[O]) Invoke() (O, error) {
	n := len(d.entries)
	if n == 0 {
		var zero O
		return zero, ErrNotBound
	}
	start := time.Now()
	for _, e := range d.entries[:n-1] {
		e.fn()
	}
	res := d.entries[n-1].fn()
	d.invoked(n, start)
	return res, nil
}

// Clone returns a delegate with the same callbacks bound in the same order.
func (d *Func0[O]) Clone() *Func0[O] { return &Func0[O]{d.core.clone()} }

// Move returns a delegate owning all callbacks and leaves d empty.
func (d *Func0[O]) Move() *Func0[O] { return &Func0[O]{d.core.move()} }

// Func1 is a valued delegate over func(I1) O.
type Func1[I1, O any] struct {
	core[func(I1) O]
}

func (d *Func1[I1, O]) Invoke(i1 I1) (O, error) {
	n := len(d.entries)
	if n == 0 {
		var zero O
		return zero, ErrNotBound
	}
	start := time.Now()
	for _, e := range d.entries[:n-1] {
		e.fn(i1)
	}
	res := d.entries[n-1].fn(i1)
	d.invoked(n, start)
	return res, nil
}

func (d *Func1[I1, O]) Clone() *Func1[I1, O] { return &Func1[I1, O]{d.core.clone()} }

func (d *Func1[I1, O]) Move() *Func1[I1, O] { return &Func1[I1, O]{d.core.move()} }

// Func2 is a valued delegate over func(I1, I2) O.
type Func2[I1, I2, O any] struct {
	core[func(I1, I2) O]
}

func (d *Func2[I1, I2, O]) Invoke(i1 I1, i2 I2) (O, error) {
	n := len(d.entries)
	if n == 0 {
		var zero O
		return zero, ErrNotBound
	}
	start := time.Now()
	for _, e := range d.entries[:n-1] {
		e.fn(i1, i2)
	}
	res := d.entries[n-1].fn(i1, i2)
	d.invoked(n, start)
	return res, nil
}

func (d *Func2[I1, I2, O]) Clone() *Func2[I1, I2, O] { return &Func2[I1, I2, O]{d.core.clone()} }

func (d *Func2[I1, I2, O]) Move() *Func2[I1, I2, O] { return &Func2[I1, I2, O]{d.core.move()} }

// Func3 is a valued delegate over func(I1, I2, I3) O.
type Func3[I1, I2, I3, O any] struct {
	core[func(I1, I2, I3) O]
}

func (d *Func3[I1, I2, I3, O]) Invoke(i1 I1, i2 I2, i3 I3) (O, error) {
	n := len(d.entries)
	if n == 0 {
		var zero O
		return zero, ErrNotBound
	}
	start := time.Now()
	for _, e := range d.entries[:n-1] {
		e.fn(i1, i2, i3)
	}
	res := d.entries[n-1].fn(i1, i2, i3)
	d.invoked(n, start)
	return res, nil
}

func (d *Func3[I1, I2, I3, O]) Clone() *Func3[I1, I2, I3, O] {
	return &Func3[I1, I2, I3, O]{d.core.clone()}
}

func (d *Func3[I1, I2, I3, O]) Move() *Func3[I1, I2, I3, O] {
	return &Func3[I1, I2, I3, O]{d.core.move()}
}
