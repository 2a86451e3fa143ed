// Package delegate provides multicast delegates for Go: ordered collections
// of callbacks sharing one signature, invoked together by a single call.
//
// # What is a delegate?
//
// A delegate binds any number of callables — free functions, closures, or
// (target, method) pairs — and calls them all in bind order. Void delegates
// (Action0..Action3) discard every result; valued delegates (Func0..Func3)
// discard every result but the last and return it, so the most recently
// bound callback decides the outcome.
//
// # Arity family
//
// Go has no variadic type parameters, so the signature space is covered by
// an arity family, one type per parameter count, the same way memoizer and
// adapter families are laid out elsewhere in this ecosystem. ActionN takes N
// parameters and returns nothing; FuncN takes N parameters and returns O.
//
// # Removal
//
// Bind returns an opaque Handle; Unbind with that handle is the precise way
// to remove a callback. Remove-by-value is kept as a convenience but matches
// by symbol-level identity only: two closures from one function literal are
// indistinguishable, and Remove may drop the wrong one.
//
// # Concurrency
//
// Delegates are plain single-threaded containers. Callers own all
// synchronization if a delegate is shared across goroutines; nothing here
// locks, spawns, or suspends.
//
// Example:
//
//	var onChange delegate.Action1[string]
//	h := onChange.Bind(func(path string) { rebuild(path) })
//	onChange.Invoke("config.yaml")
//	onChange.Unbind(h)
package delegate
