package ch

import "sync/atomic"

// Sender is the sending endpoint of a channel. The zero value is not
// usable; obtain a Sender from [Bounded], [Unbounded], or Clone.
type Sender[T any] struct {
	c      *core[T]
	closed atomic.Bool
}

// Send delivers v, blocking until a receiver takes it or buffer space is
// available.
//
// Send panics if every Receiver handle has been closed: a send with no
// possible reader indicates a channel endpoint was dropped too early,
// and crashing the offending goroutine keeps the failure next to the
// bug. It also panics if called on a closed Sender handle.
func (s *Sender[T]) Send(v T) {
	c := s.handle("Send")
	select {
	case <-c.noRecv:
		panic("ch: Send on a channel with no remaining receivers (broken pipe)")
	default:
	}
	select {
	case c.in <- v:
	case <-c.noRecv:
		panic("ch: Send on a channel with no remaining receivers (broken pipe)")
	}
}

// TrySend attempts to deliver v without blocking. It reports whether the
// value was accepted; false means the buffer was full (or no receiver
// was ready, for rendezvous channels). Like [Sender.Send], it panics on
// a broken pipe or a closed handle.
func (s *Sender[T]) TrySend(v T) bool {
	c := s.handle("TrySend")
	select {
	case <-c.noRecv:
		panic("ch: TrySend on a channel with no remaining receivers (broken pipe)")
	default:
	}
	select {
	case c.in <- v:
		return true
	default:
		return false
	}
}

// Clone returns a new Sender sharing the same channel. The channel stays
// open until every clone has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	c := s.handle("Clone")
	c.sendRefs.Add(1)
	return &Sender[T]{c: c}
}

// Close drops this handle. Closing the last Sender closes the channel:
// buffered values remain receivable, after which receivers observe
// closure. Close is idempotent per handle.
func (s *Sender[T]) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.c.sendRefs.Add(-1) == 0 {
		s.c.senderDone()
	}
}

// Len returns the number of values currently buffered. It is always zero
// for rendezvous channels and is a best-effort snapshot for unbounded
// ones (values staged in the pump queue are not counted).
func (s *Sender[T]) Len() int { return len(s.c.in) }

// Cap returns the buffer capacity of a bounded channel, or zero for
// rendezvous and unbounded channels.
func (s *Sender[T]) Cap() int { return cap(s.c.in) }

func (s *Sender[T]) handle(op string) *core[T] {
	if s.closed.Load() {
		panic("ch: " + op + " on a closed Sender handle")
	}
	return s.c
}
