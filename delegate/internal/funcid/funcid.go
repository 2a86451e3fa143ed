// Package funcid derives symbol-level identities for function values.
//
// Identity is taken from the symbol name behind the function's code pointer,
// so two closures produced by the same function literal share an identity,
// as do two method values of the same method on different receivers.
// Captured state is never inspected.
package funcid

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/cespare/xxhash/v2"
)

// IsNil reports whether fn is a nil function value (or not a function at all).
func IsNil(fn any) bool {
	v := reflect.ValueOf(fn)
	return v.Kind() != reflect.Func || v.IsNil()
}

// Name returns the symbol name of the function value, e.g.
// "main.main.func1" for a closure or "pkg.(*T).Method-fm" for a method value.
func Name(fn any) string {
	if IsNil(fn) {
		return ""
	}
	pc := reflect.ValueOf(fn).Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("func@%#x", pc)
}

// Of returns the fingerprint of a function value: the xxhash of its symbol
// name. Nil functions fingerprint to 0, which matches no stored entry.
func Of(fn any) uint64 {
	name := Name(fn)
	if name == "" {
		return 0
	}
	return xxhash.Sum64String(name)
}
