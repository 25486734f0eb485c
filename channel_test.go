package chanselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultIsRendezvousBlock(t *testing.T) {
	ch, err := New[int]()
	require.NoError(t, err)
	_, ok := ch.AsUnconditionalWriter()
	require.False(t, ok)
	w, ok := ch.AsWriter()
	require.True(t, ok)
	require.False(t, w.state.writeNeverWaits)
}

func TestNewUnboundedHasNoBlockingWriter(t *testing.T) {
	ch, err := New[int](WithUnbounded())
	require.NoError(t, err)
	_, ok := ch.AsWriter()
	require.False(t, ok)
	uw, ok := ch.AsUnconditionalWriter()
	require.True(t, ok)
	uw.Write(1)
	uw.Write(2)
	r := ch.AsReader()
	v, ok := r.TryRead()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestNewForgetOldestRequiresCapacity(t *testing.T) {
	_, err := New[int](WithForgetOldest())
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewConflictingOptions(t *testing.T) {
	_, err := New[int](WithUnbounded(), WithCapacity(3))
	require.Error(t, err)

	_, err = New[int](WithUnbounded(), WithForgetOldest())
	require.Error(t, err)
}

func TestHandleEquality(t *testing.T) {
	ch, err := New[int]()
	require.NoError(t, err)
	other, err := New[int]()
	require.NoError(t, err)

	r1, r2 := ch.AsReader(), ch.AsReader()
	require.True(t, r1.Equal(r2))
	require.False(t, r1.Equal(other.AsReader()))
	require.True(t, ch.Equal(*ch))
	require.False(t, ch.Equal(*other))
}
