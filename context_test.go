package chanselect

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitContextClaim(t *testing.T) {
	ctx := newWaitContext(discardSettler{})
	require.True(t, ctx.claim())
	require.False(t, ctx.claim())
}

func TestLockCtxsDeduplicatesAndOrders(t *testing.T) {
	a := newWaitContext(discardSettler{})
	b := newWaitContext(discardSettler{})
	locked := lockCtxs(b, a, a, nil, b)
	require.Len(t, locked, 2)
	unlockCtxs(locked)
}

func TestInterrupterIdempotent(t *testing.T) {
	i := NewInterrupter()
	require.False(t, i.Interrupted())
	require.True(t, i.Interrupt())
	require.False(t, i.Interrupt())
	require.True(t, i.Interrupted())
}

func TestSyncPromiseWaitSettlement(t *testing.T) {
	p := newSyncPromise(nil)
	go func() {
		time.Sleep(time.Millisecond)
		p.setValue(5)
	}()
	token, ok := p.wait()
	require.True(t, ok)
	require.Equal(t, 5, token)
}

func TestSyncPromiseWaitInterrupted(t *testing.T) {
	i := NewInterrupter()
	p := newSyncPromise(i)
	go func() {
		time.Sleep(time.Millisecond)
		i.Interrupt()
	}()
	_, ok := p.wait()
	require.False(t, ok)
}

func TestSyncPromiseSettlementBeatsRacingInterrupt(t *testing.T) {
	i := NewInterrupter()
	p := newSyncPromise(i)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.setValue(1)
	}()
	wg.Wait()
	i.Interrupt()
	token, ok := p.wait()
	require.True(t, ok)
	require.Equal(t, 1, token)
}

func TestAsyncPromiseSpawnsCallbackOnce(t *testing.T) {
	var mu sync.Mutex
	var calls []int
	p := newAsyncPromise(GoExecutor{}, func(token int) {
		mu.Lock()
		calls = append(calls, token)
		mu.Unlock()
	})
	p.setValue(1)
	p.setValue(2) // ignored, already settled
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, time.Millisecond)
	mu.Lock()
	require.Equal(t, []int{1}, calls)
	mu.Unlock()
}
