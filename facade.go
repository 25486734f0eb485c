package chanselect

import "context"

// Each of these, except [UnconditionalWriter.Write], is a select over a
// single channel op (the Try forms add a [Nothing] op): no new engine
// logic, just a fixed-size ops slice over the calls defined in
// select.go. [UnconditionalWriter.Write] calls the shared state directly.

// TryRead attempts to receive from r without parking. ok is false if
// nothing was ready.
func (r Reader[T]) TryRead() (val T, ok bool) {
	res, err := SelectReady(Read[T](r), Nothing())
	if err != nil || res.IsNothing() {
		return val, false
	}
	return Received[T](res)
}

// Read blocks until a value is received or ctx is done.
func (r Reader[T]) Read(ctx context.Context) (val T, ok bool, err error) {
	res, err := Select(ctx, Read[T](r))
	if err != nil {
		return val, false, err
	}
	val, ok = Received[T](res)
	return val, ok, nil
}

// ReadSync blocks the calling goroutine until a value is received or
// interrupter fires.
func (r Reader[T]) ReadSync(interrupter *Interrupter) (val T, ok bool, err error) {
	res, err := SelectSync(interrupter, Read[T](r))
	if err != nil {
		return val, false, err
	}
	val, ok = Received[T](res)
	return val, ok, nil
}

// ReadAsync never waits for a value; fn runs (via exec) once a value
// arrives, or inline before ReadAsync returns if the select has already
// settled by the time the callback is registered.
func (r Reader[T]) ReadAsync(exec Executor, fn func(val T, ok bool)) {
	SelectAsync(exec, Read[T](r)).OnComplete(func(res Result, err error) {
		val, ok := Received[T](res)
		fn(val, ok)
	})
}

// TryWrite attempts to send v on w without parking. ok is false if the
// buffer was full and no reader was waiting.
func (w Writer[T]) TryWrite(v T) (ok bool) {
	res, err := SelectReady(Write[T](v, w), Nothing())
	if err != nil {
		return false
	}
	return !res.IsNothing()
}

// Write blocks until v is sent or ctx is done.
func (w Writer[T]) Write(ctx context.Context, v T) error {
	_, err := Select(ctx, Write[T](v, w))
	return err
}

// WriteSync blocks the calling goroutine until v is sent or interrupter
// fires.
func (w Writer[T]) WriteSync(interrupter *Interrupter, v T) error {
	_, err := SelectSync(interrupter, Write[T](v, w))
	return err
}

// WriteAsync never waits for v to be sent; fn runs (via exec) once v
// has been sent, or inline before WriteAsync returns if the select has
// already settled by the time the callback is registered.
func (w Writer[T]) WriteAsync(exec Executor, v T, fn func()) {
	SelectAsync(exec, Write[T](v, w)).OnComplete(func(Result, error) {
		fn()
	})
}

// Write sends v immediately. It never blocks and never fails: an
// unbounded channel grows to accept v, and a forget-oldest channel
// drops its oldest buffered value first if it has to.
func (w UnconditionalWriter[T]) Write(v T) {
	w.state.mu.Lock()
	ctx := newWaitContext(noOpSettler{})
	if !w.state.trySendLocked(v, ctx) {
		w.state.mu.Unlock()
		panic("chanselect: internal: unconditional writer's discipline refused a write")
	}
	w.state.mu.Unlock()
}
