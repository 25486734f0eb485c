package chanselect

import (
	"sort"
	"sync"
	"unsafe"
)

// settler is the single method every wait-context promise backend must
// provide: hand the winning token to whoever is waiting. Both
// [syncPromise] and [asyncPromise] implement it.
type settler interface {
	setValue(token int)
}

// waitContext is the single-assignment rendezvous object created per
// select invocation. avail is the claim flag: true means nobody has
// woken this context yet. Exactly one claimant per lifetime gets to
// flip it and call setValue.
type waitContext struct {
	mu      sync.Mutex
	avail   bool
	promise settler
}

func newWaitContext(p settler) *waitContext {
	return &waitContext{avail: true, promise: p}
}

// claim takes ctx.mu, flips avail to false, and returns the previous
// value. Use this form (rather than the joint-lock path in
// dequeueFirstAvailable) when only one context needs to be claimed,
// e.g. a fast-path direct enqueue into the buffer.
func (c *waitContext) claim() bool {
	c.mu.Lock()
	prev := c.avail
	c.avail = false
	c.mu.Unlock()
	return prev
}

// setToken informs the context's promise of the winning op index. The
// caller must already hold (and have released) the claim - setToken
// never touches avail itself.
func (c *waitContext) setToken(token int) {
	c.promise.setValue(token)
}

// lockCtxs locks the given contexts' mutexes in address order, so that
// two goroutines racing to lock overlapping sets never deadlock. It
// skips nils and de-duplicates repeated contexts. Returns the unique,
// ordered set that was actually locked, for unlockCtxs.
func lockCtxs(ctxs ...*waitContext) []*waitContext {
	uniq := make([]*waitContext, 0, len(ctxs))
	seen := make(map[*waitContext]bool, len(ctxs))
	for _, c := range ctxs {
		if c == nil || seen[c] {
			continue
		}
		seen[c] = true
		uniq = append(uniq, c)
	}
	sort.Slice(uniq, func(i, j int) bool {
		return uintptr(unsafe.Pointer(uniq[i])) < uintptr(unsafe.Pointer(uniq[j]))
	})
	for _, c := range uniq {
		c.mu.Lock()
	}
	return uniq
}

func unlockCtxs(uniq []*waitContext) {
	for i := len(uniq) - 1; i >= 0; i-- {
		uniq[i].mu.Unlock()
	}
}

// Executor is the minimal task-spawning collaborator [SelectAsync]
// depends on: schedule fn to run later, without blocking the calling
// goroutine. A cooperative scheduler (an event loop, a worker pool)
// implements this to receive select completions as continuations
// rather than via a blocked OS thread.
type Executor interface {
	Spawn(fn func())
}

// GoExecutor runs fn in a new goroutine. It satisfies [Executor] for
// callers with no cooperative scheduler of their own; note that this
// makes SelectAsync's callback run concurrently with its caller, same
// as any other goroutine - it is not a free lunch, just a different
// place to pay for concurrency.
type GoExecutor struct{}

// Spawn implements [Executor].
func (GoExecutor) Spawn(fn func()) { go fn() }

// Interrupter is a cancellation token for a blocked [SelectSync] call.
// It may be associated with exactly one sync wait at a time, sharing
// its mutex and condition variable with that wait's [syncPromise].
type Interrupter struct {
	mu          sync.Mutex
	cond        *sync.Cond
	interrupted bool
}

// NewInterrupter returns a fresh, un-fired Interrupter.
func NewInterrupter() *Interrupter {
	i := &Interrupter{}
	i.cond = sync.NewCond(&i.mu)
	return i
}

// Interrupt fires the interrupter, waking any associated [SelectSync]
// wait. Idempotent: only the call that actually transitions
// interrupted from false to true returns true.
func (i *Interrupter) Interrupt() bool {
	i.mu.Lock()
	fired := !i.interrupted
	i.interrupted = true
	i.mu.Unlock()
	i.cond.Broadcast()
	return fired
}

// Interrupted reports whether Interrupt has fired.
func (i *Interrupter) Interrupted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.interrupted
}

// syncPromise is the thread-blocking promise backend. It shares its
// mutex and condition variable with an [Interrupter] -
// either one supplied by the caller, or a private default that is
// never interrupted.
type syncPromise struct {
	interrupter *Interrupter
	done        bool
	token       int
}

func newSyncPromise(interrupter *Interrupter) *syncPromise {
	if interrupter == nil {
		interrupter = NewInterrupter()
	}
	return &syncPromise{interrupter: interrupter}
}

func (p *syncPromise) setValue(token int) {
	p.interrupter.mu.Lock()
	// First settlement wins; a second setValue on an already-settled
	// context should never happen (avail_flag prevents it), but stay
	// defensive rather than overwrite a recorded token.
	if !p.done {
		p.done = true
		p.token = token
	}
	p.interrupter.mu.Unlock()
	p.interrupter.cond.Broadcast()
}

// wait blocks until either the promise settles or the interrupter
// fires, preferring settlement if both raced. Returns (token, true) on
// settlement, (0, false) on interruption.
func (p *syncPromise) wait() (int, bool) {
	p.interrupter.mu.Lock()
	defer p.interrupter.mu.Unlock()
	for !p.done && !p.interrupter.interrupted {
		p.interrupter.cond.Wait()
	}
	return p.token, p.done
}

// asyncPromise is the executor-driven promise backend: it never
// blocks a goroutine, instead spawning the continuation via an
// [Executor] once the token is known.
type asyncPromise struct {
	exec     Executor
	mu       sync.Mutex
	done     bool
	callback func(token int)
}

func newAsyncPromise(exec Executor, callback func(token int)) *asyncPromise {
	return &asyncPromise{exec: exec, callback: callback}
}

func (p *asyncPromise) setValue(token int) {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return
	}
	p.done = true
	p.mu.Unlock()
	p.exec.Spawn(func() { p.callback(token) })
}
