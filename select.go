package chanselect

import "context"

// noOpSettler backs wait contexts that are guaranteed never to reach a
// park phase - [SelectReady]'s. Using it instead of a full [syncPromise]
// avoids allocating a condition variable nobody will ever wait on.
type noOpSettler struct{}

func (noOpSettler) setValue(int) {}

// runSelect is the select engine's first pass: one lock-per-op attempt
// over the real (non-nothing) ops in a fresh random order, then,
// if none completed, the nothing op if one was given. The nothing op is
// deliberately tried only after every real op, not folded into the
// random permutation with them - it is a fallback, not a competitor,
// the same way a default case in a Go select is chosen only once every
// other case is confirmed not ready.
func runSelect(ops []Op, ctx *waitContext) (idx int, resolved bool) {
	real := make([]int, 0, len(ops))
	nothingIdx := -1
	for i, op := range ops {
		if op.isNothing() {
			if nothingIdx == -1 {
				nothingIdx = i
			}
			continue
		}
		real = append(real, i)
	}

	for _, p := range permutation(len(real)) {
		i := real[p]
		op := ops[i]
		op.lock()
		ok := op.tryFast(ctx)
		op.unlock()
		if ok {
			return i, true
		}
	}
	if nothingIdx != -1 && ops[nothingIdx].tryFast(ctx) {
		return nothingIdx, true
	}
	return -1, false
}

// parkSelect is the select engine's second pass: in a fresh random
// order, it rechecks each real op's non-blocking path once more and,
// if it still can't complete, enlists a waiter for it before moving
// on. If a recheck succeeds partway through, every op enlisted earlier
// in this same pass is unregistered before returning - this pass never
// leaves stray waiters behind on the ops it skipped past.
func parkSelect(ops []Op, ctx *waitContext) (idx int, resolved bool) {
	real := make([]int, 0, len(ops))
	for i, op := range ops {
		if !op.isNothing() {
			real = append(real, i)
		}
	}

	enlisted := make([]int, 0, len(real))
	for _, p := range permutation(len(real)) {
		i := real[p]
		op := ops[i]
		op.lock()
		if op.tryFast(ctx) {
			op.unlock()
			for _, j := range enlisted {
				oj := ops[j]
				oj.lock()
				oj.unregister()
				oj.unlock()
			}
			return i, true
		}
		op.enlist(ctx, i)
		op.unlock()
		enlisted = append(enlisted, i)
	}
	return -1, false
}

// unregisterAll is the select engine's cleanup pass: remove every op's
// waiter, if any, from its channel's queue. Safe to call on ops that
// never enlisted, or whose waiter already detached itself as the
// winner of a cross-context hand-off.
func unregisterAll(ops []Op) {
	for _, op := range ops {
		op.lock()
		op.unregister()
		op.unlock()
	}
}

func resultFor(ops []Op, idx int) Result {
	res := ops[idx].result()
	res.Index = idx
	return res
}

// SelectReady attempts every op's non-blocking path once, in a fresh
// random order, and returns as soon as one completes. It never parks:
// if none of the ops could complete immediately, it returns
// [ErrNoReadyOp] unless a [Nothing] op was included, in which case that
// is the result.
func SelectReady(ops ...Op) (Result, error) {
	ctx := newWaitContext(noOpSettler{})
	idx, ok := runSelect(ops, ctx)
	if !ok {
		return Result{}, ErrNoReadyOp
	}
	return resultFor(ops, idx), nil
}

func selectSyncCore(interrupter *Interrupter, ops []Op) (Result, error) {
	if interrupter == nil {
		interrupter = NewInterrupter()
	}
	p := newSyncPromise(interrupter)
	ctx := newWaitContext(p)

	if idx, ok := runSelect(ops, ctx); ok {
		return resultFor(ops, idx), nil
	}
	if idx, ok := parkSelect(ops, ctx); ok {
		return resultFor(ops, idx), nil
	}

	token, done := p.wait()
	unregisterAll(ops)
	if !done {
		return Result{}, ErrInterrupted
	}
	return resultFor(ops, token), nil
}

// SelectSync blocks the calling goroutine until one of ops completes or
// interrupter fires. A nil interrupter gets a private one that nothing
// else can ever fire, i.e. the call can then only return via
// completion.
func SelectSync(interrupter *Interrupter, ops ...Op) (Result, error) {
	return selectSyncCore(interrupter, ops)
}

// Select blocks the calling goroutine until one of ops completes or ctx
// is done, whichever happens first.
func Select(ctx context.Context, ops ...Op) (Result, error) {
	interrupter := NewInterrupter()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			interrupter.Interrupt()
		case <-done:
		}
	}()

	res, err := selectSyncCore(interrupter, ops)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		return Result{}, err
	}
	return res, nil
}

// SelectAsync never blocks the calling goroutine. It attempts ops
// exactly as [Select] does, but delivers the eventual result to the
// returned [Future] via exec rather than by blocking - suitable for
// callers running on a cooperative scheduler that must never park its
// own goroutine. Use [GoExecutor] when no such scheduler exists.
func SelectAsync(exec Executor, ops ...Op) *Future {
	fut := newFuture()
	settle := func(idx int) {
		res := resultFor(ops, idx)
		unregisterAll(ops)
		fut.resolve(res, nil)
	}
	p := newAsyncPromise(exec, settle)
	ctx := newWaitContext(p)

	if idx, ok := runSelect(ops, ctx); ok {
		exec.Spawn(func() { settle(idx) })
		return fut
	}
	if idx, ok := parkSelect(ops, ctx); ok {
		exec.Spawn(func() { settle(idx) })
		return fut
	}
	return fut
}
