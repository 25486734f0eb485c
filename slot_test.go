package chanselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotWriteRead(t *testing.T) {
	var s slot[int]
	s.write(42)
	require.True(t, s.full)
	require.Equal(t, 42, s.read())
	require.False(t, s.full)
}

func TestSlotWriteFullPanics(t *testing.T) {
	var s slot[string]
	s.write("a")
	require.Panics(t, func() { s.write("b") })
}

func TestSlotReadEmptyPanics(t *testing.T) {
	var s slot[string]
	require.Panics(t, func() { s.read() })
}

func TestTransfer(t *testing.T) {
	var from, to slot[int]
	from.write(7)
	transfer(&from, &to)
	require.False(t, from.full)
	require.True(t, to.full)
	require.Equal(t, 7, to.read())
}
