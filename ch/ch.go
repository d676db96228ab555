package ch

import (
	"sync"
	"sync/atomic"
)

// core is the shared state behind every clone of a channel's endpoints.
//
// in is the channel senders deliver to and out is the channel receivers
// read from. For bounded channels they are the same channel; for
// unbounded channels a pump goroutine sits between them. out is closed
// once the last Sender handle closes (and, for unbounded channels, the
// queue has flushed), which is how receivers observe closure. noRecv is
// closed once the last Receiver handle closes, which is how senders
// observe a broken pipe.
type core[T any] struct {
	in  chan T
	out chan T

	sendRefs atomic.Int64
	recvRefs atomic.Int64

	noRecv   chan struct{}
	stopOnce sync.Once
}

// senderDone is called when the last Sender handle closes.
func (c *core[T]) senderDone() {
	c.stopOnce.Do(func() { close(c.in) })
}

// receiverDone is called when the last Receiver handle closes.
func (c *core[T]) receiverDone() {
	close(c.noRecv)
}

func newCore[T any](in, out chan T) *core[T] {
	c := &core[T]{in: in, out: out, noRecv: make(chan struct{})}
	c.sendRefs.Store(1)
	c.recvRefs.Store(1)
	return c
}

// Bounded creates a channel with a buffer of the given capacity and
// returns its initial Sender and Receiver handles. A capacity of zero
// gives rendezvous semantics: Send blocks until a receiver takes the
// value.
func Bounded[T any](capacity int) (*Sender[T], *Receiver[T]) {
	if capacity < 0 {
		panic("ch: negative capacity")
	}
	buf := make(chan T, capacity)
	c := newCore[T](buf, buf)
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// Unbounded creates a channel whose Send never blocks on a full buffer.
// Values are staged in an internal queue serviced by one goroutine; the
// goroutine exits once the channel is closed and drained, or once all
// receivers are gone.
func Unbounded[T any]() (*Sender[T], *Receiver[T]) {
	in := make(chan T)
	out := make(chan T)
	c := newCore[T](in, out)
	go pump(in, out, c.noRecv)
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// pump moves values from in to out through an unbounded queue. It keeps
// accepting from in even when no receiver is ready, which is what makes
// Unbounded sends non-blocking. When in closes, the queue is flushed and
// out is closed. When noRecv fires, senders can no longer make progress
// anyway, so the pump drops the queue and exits.
func pump[T any](in <-chan T, out chan<- T, noRecv <-chan struct{}) {
	var queue []T
	for in != nil || len(queue) > 0 {
		var ready chan<- T
		var head T
		if len(queue) > 0 {
			ready = out
			head = queue[0]
		}
		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, v)
		case ready <- head:
			queue = queue[1:]
		case <-noRecv:
			return
		}
	}
	close(out)
}
