package delegate

import "time"

// Action0 through Action3 are void delegates: ordered collections of
// callbacks sharing one parameter list and no result. Invoke calls every
// callback in bind order; invoking with zero callbacks is a legal no-op.
// The zero value is an empty, ready-to-use delegate.

// Action0 is a void delegate over func().
type Action0 struct {
	core[func()]
}

// Invoke calls every bound callback in bind order.
func (d *Action0) Invoke() {
	n := len(d.entries)
	if n == 0 {
		return
	}
	start := time.Now()
	for _, e := range d.entries {
		e.fn()
	}
	d.invoked(n, start)
}

// Clone returns a delegate with the same callbacks bound in the same order.
func (d *Action0) Clone() *Action0 { return &Action0{d.core.clone()} }

// Move returns a delegate owning all callbacks and leaves d empty.
func (d *Action0) Move() *Action0 { return &Action0{d.core.move()} }

// Action1 is a void delegate over func(I1).
type Action1[I1 any] struct {
	core[func(I1)]
}

func (d *Action1[I1]) Invoke(i1 I1) {
	n := len(d.entries)
	if n == 0 {
		return
	}
	start := time.Now()
	for _, e := range d.entries {
		e.fn(i1)
	}
	d.invoked(n, start)
}

func (d *Action1[I1]) Clone() *Action1[I1] { return &Action1[I1]{d.core.clone()} }

func (d *Action1[I1]) Move() *Action1[I1] { return &Action1[I1]{d.core.move()} }

// Action2 is a void delegate over func(I1, I2).
type Action2[I1, I2 any] struct {
	core[func(I1, I2)]
}

func (d *Action2[I1, I2]) Invoke(i1 I1, i2 I2) {
	n := len(d.entries)
	if n == 0 {
		return
	}
	start := time.Now()
	for _, e := range d.entries {
		e.fn(i1, i2)
	}
	d.invoked(n, start)
}

func (d *Action2[I1, I2]) Clone() *Action2[I1, I2] { return &Action2[I1, I2]{d.core.clone()} }

func (d *Action2[I1, I2]) Move() *Action2[I1, I2] { return &Action2[I1, I2]{d.core.move()} }

// Action3 is a void delegate over func(I1, I2, I3).
type Action3[I1, I2, I3 any] struct {
	core[func(I1, I2, I3)]
}

func (d *Action3[I1, I2, I3]) Invoke(i1 I1, i2 I2, i3 I3) {
	n := len(d.entries)
	if n == 0 {
		return
	}
	start := time.Now()
	for _, e := range d.entries {
		e.fn(i1, i2, i3)
	}
	d.invoked(n, start)
}

func (d *Action3[I1, I2, I3]) Clone() *Action3[I1, I2, I3] {
	return &Action3[I1, I2, I3]{d.core.clone()}
}

func (d *Action3[I1, I2, I3]) Move() *Action3[I1, I2, I3] {
	return &Action3[I1, I2, I3]{d.core.move()}
}
