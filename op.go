package chanselect

// Op is one branch of a select invocation: a pending read, a pending
// write, or the always-ready [Nothing] placeholder. Build one with
// [Read], [Write], or [Nothing]; pass a slice of them to [SelectReady],
// [Select], [SelectSync], or [SelectAsync].
//
// Op is deliberately not generic - a single select call mixes ops over
// different element types, which a single type parameter cannot
// express. Each constructor closes over its own element type
// internally and returns this type-erased interface.
type Op interface {
	isNothing() bool

	lock()
	unlock()

	// tryFast attempts this op's non-blocking completion under the
	// already-held channel lock, claiming ctx on success.
	tryFast(ctx *waitContext) bool

	// enlist registers a waiter node for this op under the held lock.
	enlist(ctx *waitContext, token int)

	// unregister removes any waiter node enlist created, under the
	// held lock. Safe on an op that never enlisted, or whose waiter
	// already detached itself.
	unregister()

	// result reports this op's outcome. Valid only once it has won.
	result() Result
}

// resultKind identifies which accessor on [Result] is meaningful.
type resultKind int

const (
	resultNothing resultKind = iota
	resultRead
	resultWrite
)

// Result is the outcome of a completed select: which op won, by its
// position in the slice passed to the select call, and, for a read
// op, the value it received.
type Result struct {
	// Index is the position of the winning op in the ops slice.
	Index int

	kind resultKind
	val  any
}

// IsNothing reports whether the [Nothing] op won.
func (r Result) IsNothing() bool { return r.kind == resultNothing }

// Received extracts the value received by a winning read op - use it
// when the winner was built with [Read][T]. ok is false if the winner
// was a write or [Nothing] op, or if T doesn't match the channel's
// element type.
func Received[T any](r Result) (T, bool) {
	if r.kind != resultRead {
		var zero T
		return zero, false
	}
	v, ok := r.val.(T)
	return v, ok
}

// readOp is a pending receive on a single channel.
type readOp[T any] struct {
	state *sharedState[T]

	localSlot slot[T]
	w         *waiter[T]

	done bool
	val  T
}

// Read builds an [Op] that receives from r.
func Read[T any](r Reader[T]) Op {
	return &readOp[T]{state: r.state}
}

func (o *readOp[T]) isNothing() bool { return false }
func (o *readOp[T]) lock()           { o.state.mu.Lock() }
func (o *readOp[T]) unlock()         { o.state.mu.Unlock() }

func (o *readOp[T]) tryFast(ctx *waitContext) bool {
	v, ok := o.state.tryReceiveLocked(ctx)
	if !ok {
		return false
	}
	o.val = v
	o.done = true
	return true
}

func (o *readOp[T]) enlist(ctx *waitContext, token int) {
	o.w = &waiter[T]{ctx: ctx, slot: &o.localSlot, token: token}
	o.state.enqueueReceiveWaiterLocked(o.w)
}

func (o *readOp[T]) unregister() {
	if o.w != nil {
		o.state.readers.dequeue(o.w)
	}
}

func (o *readOp[T]) result() Result {
	if o.done {
		return Result{kind: resultRead, val: o.val}
	}
	return Result{kind: resultRead, val: o.localSlot.read()}
}

// writeOp is a pending send of a fixed value on a single channel.
// Only block-discipline channels expose a [Writer] that can
// build one of these - unbounded and forget-oldest writes never park,
// so they never need to compete in a select; see [UnconditionalWriter].
type writeOp[T any] struct {
	state *sharedState[T]
	v     T

	localSlot slot[T]
	w         *waiter[T]

	done bool
}

// Write builds an [Op] that sends v on w.
func Write[T any](v T, w Writer[T]) Op {
	return &writeOp[T]{state: w.state, v: v}
}

func (o *writeOp[T]) isNothing() bool { return false }
func (o *writeOp[T]) lock()           { o.state.mu.Lock() }
func (o *writeOp[T]) unlock()         { o.state.mu.Unlock() }

func (o *writeOp[T]) tryFast(ctx *waitContext) bool {
	if o.state.trySendLocked(o.v, ctx) {
		o.done = true
		return true
	}
	return false
}

func (o *writeOp[T]) enlist(ctx *waitContext, token int) {
	o.localSlot.write(o.v)
	o.w = &waiter[T]{ctx: ctx, slot: &o.localSlot, token: token}
	o.state.enqueueSendWaiterLocked(o.w)
}

func (o *writeOp[T]) unregister() {
	if o.w != nil {
		o.state.writers.dequeue(o.w)
	}
}

func (o *writeOp[T]) result() Result {
	return Result{kind: resultWrite}
}

// nothingOp is the always-available fallback branch. The select engine
// only consults it after every other
// op in the call has failed its fast-path attempt, the same way a
// default case in a Go select is chosen only once every other case is
// confirmed not ready - it never competes in the randomized scan over
// real ops.
type nothingOp struct{}

// Nothing builds the always-ready fallback [Op]. Include it in a
// [SelectReady] call to make "no other op was ready" a valid, non-error
// outcome; include it in [Select], [SelectSync], or [SelectAsync] to
// make the call non-blocking whenever every other op would otherwise
// park.
func Nothing() Op { return nothingOp{} }

func (nothingOp) isNothing() bool                   { return true }
func (nothingOp) lock()                             {}
func (nothingOp) unlock()                            {}
func (nothingOp) tryFast(ctx *waitContext) bool      { return ctx.claim() }
func (nothingOp) enlist(ctx *waitContext, token int) {}
func (nothingOp) unregister()                        {}
func (nothingOp) result() Result                     { return Result{kind: resultNothing} }
