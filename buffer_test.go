package chanselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingBufferVacuous(t *testing.T) {
	b := newRingBuffer[int](0, false)
	require.False(t, b.canAcceptWithoutParking())
	require.False(t, b.tryEnqueue(1))
	_, ok := b.tryDequeue()
	require.False(t, ok)
}

func TestRingBufferBoundedBlockFull(t *testing.T) {
	b := newRingBuffer[int](2, false)
	require.True(t, b.tryEnqueue(1))
	require.True(t, b.tryEnqueue(2))
	require.False(t, b.canAcceptWithoutParking())
	require.False(t, b.tryEnqueue(3))

	v, ok := b.tryDequeue()
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.True(t, b.tryEnqueue(3))
	v, ok = b.tryDequeue()
	require.True(t, ok)
	require.Equal(t, 2, v)
	v, ok = b.tryDequeue()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.True(t, b.isEmpty())
}

func TestRingBufferForgetOldest(t *testing.T) {
	b := newRingBuffer[int](3, true)
	for i := 1; i <= 5; i++ {
		require.True(t, b.canAcceptWithoutParking())
		require.True(t, b.tryEnqueue(i))
	}
	require.Equal(t, 3, b.size())
	var got []int
	for !b.isEmpty() {
		v, ok := b.tryDequeue()
		require.True(t, ok)
		got = append(got, v)
	}
	require.Equal(t, []int{3, 4, 5}, got)
}

func TestRingBufferUnbounded(t *testing.T) {
	b := newRingBuffer[int](-1, false)
	for i := 0; i < 1000; i++ {
		require.True(t, b.canAcceptWithoutParking())
		require.True(t, b.tryEnqueue(i))
	}
	require.Equal(t, 1000, b.size())
	for i := 0; i < 1000; i++ {
		v, ok := b.tryDequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	b := newRingBuffer[int](3, false)
	require.True(t, b.tryEnqueue(1))
	require.True(t, b.tryEnqueue(2))
	v, _ := b.tryDequeue()
	require.Equal(t, 1, v)
	require.True(t, b.tryEnqueue(3))
	require.True(t, b.tryEnqueue(4))
	require.Equal(t, 2, b.peekFront())

	var got []int
	for !b.isEmpty() {
		v, _ := b.tryDequeue()
		got = append(got, v)
	}
	require.Equal(t, []int{2, 3, 4}, got)
}
