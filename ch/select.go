package ch

import "reflect"

// Loop multiplexes a fixed set of receivers, dispatching each ready
// value to its paired handler. Build it with [NewLoop] and [On], then
// call [Loop.Run].
//
// A Loop replaces the hand-written alternative of spinning over
// non-blocking polls across several receivers: it blocks until some arm
// is ready, dispatches exactly one value per iteration, and retires an
// arm once its channel is closed and drained.
type Loop struct {
	arms    []arm
	running bool
}

type arm struct {
	recv     reflect.Value
	dispatch func(reflect.Value)
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop { return &Loop{} }

// On registers handler for values received from r. Registration order is
// not a dispatch priority. On panics if called while the loop is
// running.
func On[T any](l *Loop, r *Receiver[T], handler func(T)) {
	if l.running {
		panic("ch: On called on a running Loop")
	}
	l.arms = append(l.arms, arm{
		recv:     reflect.ValueOf(r.Raw()),
		dispatch: func(v reflect.Value) { handler(v.Interface().(T)) },
	})
}

// Run dispatches values until every registered channel is closed and
// drained, then returns. With no open arms it returns immediately.
//
// When several arms are ready in the same iteration, one is chosen
// uniformly at random (the [reflect.Select] policy); no dispatch
// ordering is guaranteed across arms.
func (l *Loop) Run() {
	l.RunUntil(nil)
}

// RunUntil behaves like [Loop.Run] but additionally evaluates stop after
// every dispatch and returns once it holds. A nil stop never holds.
func (l *Loop) RunUntil(stop func() bool) {
	if l.running {
		panic("ch: Loop is already running")
	}
	l.running = true
	defer func() { l.running = false }()

	cases := make([]reflect.SelectCase, len(l.arms))
	handlers := make([]func(reflect.Value), len(l.arms))
	for i, a := range l.arms {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: a.recv}
		handlers[i] = a.dispatch
	}

	for len(cases) > 0 {
		i, v, ok := reflect.Select(cases)
		if !ok {
			// Arm closed and drained: retire it.
			cases = append(cases[:i], cases[i+1:]...)
			handlers = append(handlers[:i], handlers[i+1:]...)
			continue
		}
		handlers[i](v)
		if stop != nil && stop() {
			return
		}
	}
}
