package chanselect

// Channel is a bidirectional handle onto a shared channel state.
// Handles are cheap value types that share
// the underlying state by pointer; two handles compare equal, via
// [Channel.Equal] and its [Reader]/[Writer] counterparts, exactly when
// they were derived from the same [New] call.
type Channel[T any] struct {
	state *sharedState[T]
}

// New constructs a channel with the given options (see [WithCapacity],
// [WithUnbounded], [WithForgetOldest], [WithAllocSite]). With no
// options, the result is a capacity-0 rendezvous, block-discipline
// channel.
func New[T any](opts ...Option) (*Channel[T], error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Channel[T]{state: newSharedState[T](cfg)}, nil
}

// Equal reports whether c and other share the same underlying state.
func (c Channel[T]) Equal(other Channel[T]) bool { return c.state == other.state }

// AsReader returns a read-only handle onto c.
func (c Channel[T]) AsReader() Reader[T] { return Reader[T]{state: c.state} }

// AsWriter returns a blocking-capable write handle onto c. ok is false
// if c's discipline never parks writers (unbounded or forget-oldest) -
// use [Channel.AsUnconditionalWriter] for those instead.
func (c Channel[T]) AsWriter() (w Writer[T], ok bool) {
	if c.state.writeNeverWaits {
		return Writer[T]{}, false
	}
	return Writer[T]{state: c.state}, true
}

// AsUnconditionalWriter returns a handle whose writes always succeed
// immediately. ok is false if c's discipline can park writers (fixed
// capacity without forget-oldest) - use [Channel.AsWriter] instead.
func (c Channel[T]) AsUnconditionalWriter() (w UnconditionalWriter[T], ok bool) {
	if !c.state.writeNeverWaits {
		return UnconditionalWriter[T]{}, false
	}
	return UnconditionalWriter[T]{state: c.state}, true
}

// Reader is a read-only handle onto a channel's shared state.
type Reader[T any] struct {
	state *sharedState[T]
}

// Equal reports whether r and other share the same underlying state.
func (r Reader[T]) Equal(other Reader[T]) bool { return r.state == other.state }

// Writer is a write handle onto a block-discipline channel: writes may
// park the caller when the buffer is full and no reader is waiting.
type Writer[T any] struct {
	state *sharedState[T]
}

// Equal reports whether w and other share the same underlying state.
func (w Writer[T]) Equal(other Writer[T]) bool { return w.state == other.state }

// AsReader returns a read-only handle derived from the same channel w
// writes to.
func (w Writer[T]) AsReader() Reader[T] { return Reader[T]{state: w.state} }

// UnconditionalWriter is a write handle onto an unbounded or
// forget-oldest channel: [UnconditionalWriter.Write] always completes
// immediately and never parks. Obtaining one is a constructor-time
// capability check rather than a compile-time subtype relationship -
// [Channel.AsUnconditionalWriter] reports ok=false on a channel whose
// discipline can still park a writer.
type UnconditionalWriter[T any] struct {
	state *sharedState[T]
}

// Equal reports whether w and other share the same underlying state.
func (w UnconditionalWriter[T]) Equal(other UnconditionalWriter[T]) bool {
	return w.state == other.state
}

// AsReader returns a read-only handle derived from the same channel w
// writes to.
func (w UnconditionalWriter[T]) AsReader() Reader[T] { return Reader[T]{state: w.state} }
