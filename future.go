package chanselect

import "sync"

// Future is the handle [SelectAsync] returns: a read-only view onto a
// result that settles exactly once, from whichever goroutine the
// select's [Executor] happens to run the continuation on. Grounded on
// the mutex-guarded promise/subscriber pattern this package's ambient
// logging and options machinery is borrowed from, trimmed to the one
// settlement this package needs - no Then/Catch chaining.
type Future struct {
	mu          sync.Mutex
	done        bool
	result      Result
	err         error
	subscribers []func(Result, error)
	waiters     []chan struct{}
}

func newFuture() *Future {
	return &Future{}
}

func (f *Future) resolve(res Result, err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.done = true
	f.result = res
	f.err = err
	subs := f.subscribers
	f.subscribers = nil
	waiters := f.waiters
	f.waiters = nil
	f.mu.Unlock()

	for _, ch := range waiters {
		close(ch)
	}
	for _, sub := range subs {
		sub(res, err)
	}
}

// Done reports whether the future has settled.
func (f *Future) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Peek returns the settled result without blocking. ok is false if the
// future hasn't settled yet.
func (f *Future) Peek() (res Result, err error, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err, f.done
}

// OnComplete registers fn to run once the future settles, on whatever
// goroutine calls resolve (i.e. on the [Executor] that drove the
// select). If the future has already settled, fn runs synchronously,
// inline, before OnComplete returns.
func (f *Future) OnComplete(fn func(Result, error)) {
	f.mu.Lock()
	if f.done {
		res, err := f.result, f.err
		f.mu.Unlock()
		fn(res, err)
		return
	}
	f.subscribers = append(f.subscribers, fn)
	f.mu.Unlock()
}

// Wait blocks the calling goroutine until the future settles, and
// returns at once if it already has. It exists for callers that
// started an async select but are now fine blocking to collect its
// result (tests, mostly).
func (f *Future) Wait() (Result, error) {
	f.mu.Lock()
	if f.done {
		res, err := f.result, f.err
		f.mu.Unlock()
		return res, err
	}
	ch := make(chan struct{})
	f.waiters = append(f.waiters, ch)
	f.mu.Unlock()
	<-ch
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err
}
