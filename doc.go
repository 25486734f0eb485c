// Package chanselect provides a typed, multi-producer/multi-consumer
// channel primitive with a unified select operator that composes send
// and receive operations across heterogeneous channels.
//
// # Architecture
//
// A [Channel] is a cheap, copyable handle over a shared state: a mutex,
// a buffer, and one or two FIFO waiter queues (one per side that can
// park). [Select], [SelectReady], [SelectSync] and [SelectAsync] all
// drive the same engine: they register interest in a set of [Op]
// values, claim exactly one ready operation atomically, and unregister
// everything else. [Reader.Read], [Writer.Write] and the other
// convenience methods are selects over a single channel op
// ([Reader.TryRead] and [Writer.TryWrite] add a [Nothing] op);
// [UnconditionalWriter.Write] writes to the shared state directly.
//
// Channels never close. A channel's lifetime ends only when every
// handle referencing its shared state has been dropped; there is no
// "send on closed channel" or "receive zero value after close"
// behavior to reason about, by design.
//
// # Buffering disciplines
//
// A channel is built with [New] and a set of [Option] values. Capacity
// is either zero (rendezvous), a fixed positive integer (bounded ring),
// or unbounded ([WithUnbounded]). Independently, a bounded channel may
// use the forget-oldest discipline ([WithForgetOldest]): writes never
// block or fail, silently dropping the oldest buffered value to make
// room. forget-oldest at capacity zero is rejected at construction.
//
// # Sync and async callers
//
// [Select] blocks the calling goroutine, honoring [context.Context]
// cancellation. [SelectSync] takes an [Interrupter] instead of a
// context, letting another goroutine abort the wait directly. [SelectAsync]
// never blocks its caller: it hands the eventual result to a
// continuation scheduled via an [Executor], for callers driven by a
// cooperative scheduler rather than a blocked OS thread. All three
// share one waiter-list and wait-context implementation, and compose
// freely against the same channel instances - a goroutine blocked in
// [Writer.WriteSync] on a channel can be unblocked by a completely
// unrelated goroutine driving [Reader.ReadAsync] on the same handle.
//
// # Fairness
//
// When a select names several operations and more than one is ready,
// the engine breaks the tie with a uniform random permutation chosen
// per invocation, not input order. Within a single channel, waiters of
// the same kind are served strictly FIFO.
//
// # Error types
//
// The package's failure surface is intentionally small:
//   - [ErrNoReadyOp]: [SelectReady] found nothing ready and no [Nothing] op
//   - [ErrInterrupted]: a [SelectSync] wait was aborted by its [Interrupter]
//   - [ConfigError]: invalid construction (e.g. forget-oldest at capacity 0)
//
// There is no "channel closed" error; see the package-level design
// notes for why that is a deliberate omission rather than an oversight.
package chanselect
