package delegate

// BindMethod0 through BindMethod3 and BindFuncMethod0 through BindFuncMethod3
// bind a (target, method) pair: the stored callback closes over target and
// calls method on it with the invocation arguments. A nil target fails with
// ErrNilTarget before anything is appended, so a dead binding never enters
// the sequence. The caller guarantees that target outlives the delegate.
//
// These are free functions because Go methods cannot introduce the extra
// receiver type parameter.

// BindMethod0 binds method on target to a void delegate with no parameters.
func BindMethod0[T any](d *Action0, target *T, method func(*T)) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func() { method(target) }), nil
}

// BindMethod1 binds method on target to a void delegate with one parameter.
func BindMethod1[T, I1 any](d *Action1[I1], target *T, method func(*T, I1)) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1) { method(target, i1) }), nil
}

// BindMethod2 binds method on target to a void delegate with two parameters.
func BindMethod2[T, I1, I2 any](d *Action2[I1, I2], target *T, method func(*T, I1, I2)) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1, i2 I2) { method(target, i1, i2) }), nil
}

// BindMethod3 binds method on target to a void delegate with three parameters.
func BindMethod3[T, I1, I2, I3 any](d *Action3[I1, I2, I3], target *T, method func(*T, I1, I2, I3)) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1, i2 I2, i3 I3) { method(target, i1, i2, i3) }), nil
}

// BindFuncMethod0 binds method on target to a valued delegate with no parameters.
func BindFuncMethod0[T, O any](d *Func0[O], target *T, method func(*T) O) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func() O { return method(target) }), nil
}

// BindFuncMethod1 binds method on target to a valued delegate with one parameter.
func BindFuncMethod1[T, I1, O any](d *Func1[I1, O], target *T, method func(*T, I1) O) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1) O { return method(target, i1) }), nil
}

// BindFuncMethod2 binds method on target to a valued delegate with two parameters.
func BindFuncMethod2[T, I1, I2, O any](d *Func2[I1, I2, O], target *T, method func(*T, I1, I2) O) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1, i2 I2) O { return method(target, i1, i2) }), nil
}

// BindFuncMethod3 binds method on target to a valued delegate with three parameters.
func BindFuncMethod3[T, I1, I2, I3, O any](d *Func3[I1, I2, I3, O], target *T, method func(*T, I1, I2, I3) O) (Handle, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	return d.Bind(func(i1 I1, i2 I2, i3 I3) O { return method(target, i1, i2, i3) }), nil
}
