package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evented-go/multicast/delegate"
)

func TestAction_EmptyInvokeIsSilent(t *testing.T) {
	var d delegate.Action1[string]

	// Invoking with nothing bound is legal and has no observable effect.
	d.Invoke("hello")
	assert.Equal(t, 0, d.Len())
}

func TestAction_EveryCallbackRunsOncePerInvoke(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		var d delegate.Action0
		counts := make([]int, n)
		for i := 0; i < n; i++ {
			i := i
			d.Bind(func() { counts[i]++ })
		}

		d.Invoke()

		for i, c := range counts {
			assert.Equalf(t, 1, c, "callback %d of %d must run exactly once", i, n)
		}
	}
}

func TestAction_PanickingCallbackAbortsAndPropagates(t *testing.T) {
	var d delegate.Action1[int]
	var before, after int

	d.Bind(func(int) { before++ })
	d.Bind(func(int) { panic("callback failed") })
	d.Bind(func(int) { after++ })

	assert.PanicsWithValue(t, "callback failed", func() { d.Invoke(1) })
	assert.Equal(t, 1, before)
	assert.Equal(t, 0, after, "entries after the panicking one must not run")
	assert.Equal(t, 3, d.Len(), "an aborted invocation mutates nothing")
}

func TestAction_ArgumentsReachEveryCallback(t *testing.T) {
	var d delegate.Action3[int, string, bool]
	var got []string

	d.Bind(func(n int, s string, b bool) {
		if b {
			got = append(got, s)
		}
	})
	d.Bind(func(n int, s string, b bool) {
		got = append(got, s)
	})

	d.Invoke(1, "ev", true)
	d.Invoke(2, "no", false)

	assert.Equal(t, []string{"ev", "ev", "no"}, got)
}
