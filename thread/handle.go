package thread

import (
	"sync/atomic"
	"time"
)

// Handle is a once-consumable reference to a spawned goroutine's
// eventual result. Obtain one from [Go]; consume it with
// [Handle.Finish].
type Handle[T any] struct {
	done     chan struct{}
	val      T
	panicked *PanicError
	spent    atomic.Bool
}

// Go runs fn on a new goroutine and returns a Handle for its result.
// A panic in fn is captured with its stack and re-raised when the
// handle is finished.
func Go[T any](fn func() T) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	obs := currentObserver()
	go func() {
		start := time.Now()
		if obs != nil {
			obs.ThreadStarted()
		}
		defer func() {
			if r := recover(); r != nil {
				h.panicked = NewPanicError(r)
			}
			if obs != nil {
				obs.ThreadFinished(time.Since(start), h.panicked != nil)
			}
			close(h.done)
		}()
		h.val = fn()
	}()
	return h
}

// Finish blocks until the goroutine terminates and returns its value.
// If the goroutine panicked, Finish re-panics with the captured
// [*PanicError] instead of returning.
//
// A Handle is consumed by Finish: calling it a second time panics. The
// guard stands in for ownership transfer, which the language cannot
// enforce.
func (h *Handle[T]) Finish() T {
	if !h.spent.CompareAndSwap(false, true) {
		panic("thread: Finish on an already finished Handle")
	}
	<-h.done
	if h.panicked != nil {
		panic(h.panicked)
	}
	return h.val
}

// Done returns a channel closed when the goroutine terminates. It does
// not consume the handle; pair it with [Handle.Finish] to collect the
// result after selecting on completion.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }
