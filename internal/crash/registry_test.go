package crash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SetData_InsertionOrderAndLastWriteWins(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	r.SetData("first", 1)
	r.SetData("second", "two")
	r.SetData("first", "overwritten")

	entries := r.Data()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Key)
	assert.Equal(t, "overwritten", entries[0].Value)
	assert.Equal(t, "second", entries[1].Key)
	assert.Equal(t, "two", entries[1].Value)
}

func TestRegistry_RegisterCallback_OrderAndIncreasingIDs(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	a := r.RegisterCallback(func() {}, "a")
	b := r.RegisterCallback(func() {}, "")
	c := r.RegisterCallback(func() {}, "c")

	assert.Less(t, a, b)
	assert.Less(t, b, c)

	cbs := r.Callbacks()
	require.Len(t, cbs, 3)
	assert.Equal(t, a, cbs[0].ID)
	assert.Equal(t, "a", cbs[0].Message)
	assert.Equal(t, b, cbs[1].ID)
	assert.Equal(t, c, cbs[2].ID)
}

func TestRegistry_UnregisterCallback_RoundTrip(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	id := r.RegisterCallback(func() {}, "")
	require.NoError(t, r.UnregisterCallback(id))
	assert.Empty(t, r.Callbacks())

	// Second unregister with the same id fails.
	err := r.UnregisterCallback(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCallbackID)
}

func TestRegistry_UnregisterCallback_KeepsRemainingOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	a := r.RegisterCallback(func() {}, "a")
	b := r.RegisterCallback(func() {}, "b")
	c := r.RegisterCallback(func() {}, "c")

	require.NoError(t, r.UnregisterCallback(b))

	cbs := r.Callbacks()
	require.Len(t, cbs, 2)
	assert.Equal(t, a, cbs[0].ID)
	assert.Equal(t, c, cbs[1].ID)
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	r.SetData("key", "value")
	id := r.RegisterCallback(func() {}, "")

	r.Reset()

	assert.Empty(t, r.Data())
	assert.Empty(t, r.Callbacks())
	assert.ErrorIs(t, r.UnregisterCallback(id), ErrInvalidCallbackID)

	// IDs keep increasing across resets.
	next := r.RegisterCallback(func() {}, "")
	assert.Greater(t, next, id)
}

func TestDefaultRegistry_PackageLevelAPI(t *testing.T) {
	DefaultRegistry().Reset()
	t.Cleanup(func() { DefaultRegistry().Reset() })

	SetData("k", "v")
	id := RegisterCallback(func() {}, "msg")

	entries := DefaultRegistry().Data()
	require.Len(t, entries, 1)
	assert.Equal(t, "k", entries[0].Key)

	require.NoError(t, UnregisterCallback(id))
	assert.Empty(t, DefaultRegistry().Callbacks())
}
