package ch

import (
	"iter"
	"sync/atomic"
)

// Receiver is the receiving endpoint of a channel. The zero value is not
// usable; obtain a Receiver from [Bounded], [Unbounded], or Clone.
type Receiver[T any] struct {
	c      *core[T]
	closed atomic.Bool
}

// Recv blocks until a value is available and returns it.
//
// Recv panics once the channel is closed and drained: blocking forever
// on a channel that can never deliver is a topology bug, and so is
// relying on a zero value from a closed channel. Use [Receiver.RecvOK]
// when closure is an expected outcome.
func (r *Receiver[T]) Recv() T {
	c := r.handle("Recv")
	v, ok := <-c.out
	if !ok {
		panic("ch: Recv on a closed and drained channel (broken pipe)")
	}
	return v
}

// RecvOK blocks until a value is available or the channel is closed and
// drained. The boolean is false on closure.
func (r *Receiver[T]) RecvOK() (T, bool) {
	c := r.handle("RecvOK")
	v, ok := <-c.out
	return v, ok
}

// TryRecv returns a buffered value without blocking. The boolean is
// false when no value is ready, including when the channel is closed
// and drained.
func (r *Receiver[T]) TryRecv() (T, bool) {
	c := r.handle("TryRecv")
	select {
	case v, ok := <-c.out:
		return v, ok
	default:
		var zero T
		return zero, false
	}
}

// All returns an iterator over received values, ending when the channel
// is closed and drained. Multiple receivers may iterate concurrently;
// each value is delivered to exactly one of them.
func (r *Receiver[T]) All() iter.Seq[T] {
	c := r.handle("All")
	return func(yield func(T) bool) {
		for v := range c.out {
			if !yield(v) {
				return
			}
		}
	}
}

// WaitClosed blocks until every Sender handle has been closed,
// discarding any values received in the interim. Use it when a
// goroutine only needs the closure signal, not the data.
func (r *Receiver[T]) WaitClosed() {
	c := r.handle("WaitClosed")
	for range c.out {
	}
}

// Clone returns a new Receiver sharing the same channel. Senders observe
// a broken pipe only after every clone has been closed.
func (r *Receiver[T]) Clone() *Receiver[T] {
	c := r.handle("Clone")
	c.recvRefs.Add(1)
	return &Receiver[T]{c: c}
}

// Close drops this handle. Closing the last Receiver makes any blocked
// or subsequent Send panic with a broken pipe. Close is idempotent per
// handle.
func (r *Receiver[T]) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	if r.c.recvRefs.Add(-1) == 0 {
		r.c.receiverDone()
	}
}

// Raw exposes the underlying receive channel for use in a native select
// statement. The channel is closed when the last Sender closes. Reading
// from it bypasses the handle's close guard.
func (r *Receiver[T]) Raw() <-chan T { return r.c.out }

// Len returns the number of values currently buffered. It is always
// zero for rendezvous channels and is a best-effort snapshot for
// unbounded ones (values staged in the pump queue are not counted).
func (r *Receiver[T]) Len() int { return len(r.c.out) }

// Cap returns the buffer capacity of a bounded channel, or zero for
// rendezvous and unbounded channels.
func (r *Receiver[T]) Cap() int { return cap(r.c.out) }

func (r *Receiver[T]) handle(op string) *core[T] {
	if r.closed.Load() {
		panic("ch: " + op + " on a closed Receiver handle")
	}
	return r.c
}
