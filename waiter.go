package chanselect

// waiter is a node describing one pending send or receive, registered
// on exactly one channel's reader or writer queue. It is created and
// held by the op that enlists it (see op.go) - the channel's queue only
// ever holds pointers to it, and the select engine's cleanup pass
// (unregisterAll) removes every node once the select has settled.
type waiter[T any] struct {
	ctx   *waitContext
	slot  *slot[T] // receive: filled by the waker; send: already holds the value
	token int

	list       *waiterList[T]
	prev, next *waiter[T]
}

// waiterList is a doubly-linked FIFO queue of waiters on one channel
// side.
type waiterList[T any] struct {
	head, tail *waiter[T]
}

func (l *waiterList[T]) empty() bool { return l.head == nil }

// enqueue appends w to the tail.
func (l *waiterList[T]) enqueue(w *waiter[T]) {
	w.list = l
	w.prev = l.tail
	w.next = nil
	if l.tail != nil {
		l.tail.next = w
	} else {
		l.head = w
	}
	l.tail = w
}

// dequeue removes w from wherever it sits in the list. Idempotent: a
// node already detached (because it already won, or was already
// removed) is a no-op.
func (l *waiterList[T]) dequeue(w *waiter[T]) {
	if w.list != l {
		return
	}
	if w.prev != nil {
		w.prev.next = w.next
	} else {
		l.head = w.next
	}
	if w.next != nil {
		w.next.prev = w.prev
	} else {
		l.tail = w.prev
	}
	w.prev, w.next, w.list = nil, nil, nil
}

// dequeueFirstAvailable walks the list head-first looking for a waiter
// whose wait context can be claimed together with every context in
// extra. This is the only place cross-channel atomicity between
// multiple concurrent select invocations is established:
//
//  1. If a candidate's ctx is already claimed (a concurrent op beat us
//     to it), pop it - it's stale - and keep scanning.
//  2. Else if any context in extra is already claimed, some other
//     party won our own race first; abort the whole scan and return
//     nil so the caller abandons this hand-off.
//  3. Else claim the candidate's ctx and every ctx in extra atomically,
//     pop the candidate, and return it.
func (l *waiterList[T]) dequeueFirstAvailable(extra ...*waitContext) *waiter[T] {
	for w := l.head; w != nil; {
		next := w.next
		locked := lockCtxs(append([]*waitContext{w.ctx}, extra...)...)

		if !w.ctx.avail {
			unlockCtxs(locked)
			l.dequeue(w)
			w = next
			continue
		}

		lost := false
		for _, e := range extra {
			if e != nil && !e.avail {
				lost = true
				break
			}
		}
		if lost {
			unlockCtxs(locked)
			return nil
		}

		w.ctx.avail = false
		for _, e := range extra {
			if e != nil {
				e.avail = false
			}
		}
		unlockCtxs(locked)
		l.dequeue(w)
		return w
	}
	return nil
}
