package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evented-go/multicast/delegate"
)

type counter struct {
	total int
}

func (c *counter) Add(v int) { c.total += v }

func (c *counter) AddTwo(a, b int) { c.total += a + b }

func (c *counter) Total() int { return c.total }

func TestBindMethod_CallsMethodOnTarget(t *testing.T) {
	c := &counter{}
	var d delegate.Action1[int]

	h, err := delegate.BindMethod1(&d, c, (*counter).Add)
	require.NoError(t, err)
	assert.NotEqual(t, delegate.Handle(0), h)

	d.Invoke(5)
	d.Invoke(7)
	assert.Equal(t, 12, c.total)
}

func TestBindMethod_NilTargetRejectedBeforeAppend(t *testing.T) {
	var d delegate.Action1[int]

	_, err := delegate.BindMethod1(&d, (*counter)(nil), (*counter).Add)
	assert.ErrorIs(t, err, delegate.ErrNilTarget)
	assert.Equal(t, 0, d.Len(), "a rejected binding must not enter the sequence")

	var d2 delegate.Action2[int, int]
	_, err = delegate.BindMethod2(&d2, (*counter)(nil), (*counter).AddTwo)
	assert.ErrorIs(t, err, delegate.ErrNilTarget)
	assert.Equal(t, 0, d2.Len())
}

func TestBindFuncMethod_ResultComesFromTarget(t *testing.T) {
	c := &counter{total: 41}
	var d delegate.Func0[int]

	_, err := delegate.BindFuncMethod0(&d, c, (*counter).Total)
	require.NoError(t, err)

	c.Add(1)
	res, err := d.Invoke()
	require.NoError(t, err)
	assert.Equal(t, 42, res, "the binding reads the target's live state")
}

func TestBindFuncMethod_NilTargetRejected(t *testing.T) {
	var d delegate.Func0[int]

	_, err := delegate.BindFuncMethod0(&d, (*counter)(nil), (*counter).Total)
	assert.ErrorIs(t, err, delegate.ErrNilTarget)
	assert.Equal(t, 0, d.Len())

	_, invokeErr := d.Invoke()
	assert.ErrorIs(t, invokeErr, delegate.ErrNotBound)
}

func TestBindMethod_UnbindByHandle(t *testing.T) {
	c := &counter{}
	var d delegate.Action1[int]

	h, err := delegate.BindMethod1(&d, c, (*counter).Add)
	require.NoError(t, err)

	require.True(t, d.Unbind(h))
	d.Invoke(99)
	assert.Equal(t, 0, c.total)
}
