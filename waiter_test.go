package chanselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type discardSettler struct{}

func (discardSettler) setValue(int) {}

func TestWaiterListEnqueueDequeueFIFO(t *testing.T) {
	var list waiterList[int]
	require.True(t, list.empty())

	w1 := &waiter[int]{ctx: newWaitContext(discardSettler{}), token: 1}
	w2 := &waiter[int]{ctx: newWaitContext(discardSettler{}), token: 2}
	w3 := &waiter[int]{ctx: newWaitContext(discardSettler{}), token: 3}

	list.enqueue(w1)
	list.enqueue(w2)
	list.enqueue(w3)
	require.False(t, list.empty())

	require.Same(t, w1, list.dequeueFirstAvailable())
	require.Same(t, w2, list.dequeueFirstAvailable())
	require.Same(t, w3, list.dequeueFirstAvailable())
	require.True(t, list.empty())
	require.Nil(t, list.dequeueFirstAvailable())
}

func TestWaiterListDequeueIdempotent(t *testing.T) {
	var list waiterList[int]
	w := &waiter[int]{ctx: newWaitContext(discardSettler{})}
	list.enqueue(w)
	list.dequeue(w)
	require.True(t, list.empty())
	list.dequeue(w) // no panic, no-op
	require.True(t, list.empty())
}

func TestWaiterListSkipsAlreadyClaimedWaiters(t *testing.T) {
	var list waiterList[int]
	claimed := newWaitContext(discardSettler{})
	claimed.claim() // mark unavailable without going through the list

	available := newWaitContext(discardSettler{})

	list.enqueue(&waiter[int]{ctx: claimed})
	w2 := &waiter[int]{ctx: available, token: 9}
	list.enqueue(w2)

	got := list.dequeueFirstAvailable()
	require.Same(t, w2, got)
	require.False(t, available.avail)
}

func TestWaiterListDequeueFirstAvailableAbortsWhenExtraLost(t *testing.T) {
	var list waiterList[int]
	self := newWaitContext(discardSettler{})
	self.claim() // simulate self already lost the race

	other := newWaitContext(discardSettler{})
	list.enqueue(&waiter[int]{ctx: other})

	got := list.dequeueFirstAvailable(self)
	require.Nil(t, got)
	require.True(t, other.avail)
	require.False(t, list.empty()) // the candidate waiter is left in place
}
