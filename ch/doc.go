// Package ch provides reference-counted channel endpoints with loud
// failure semantics for topology bugs.
//
// A channel created by [Bounded] or [Unbounded] is held through typed
// [Sender] and [Receiver] handles. Handles are cloned, not copied: every
// clone shares the underlying channel and participates in its reference
// count. The channel closes for receivers once the last Sender handle is
// closed, and becomes a broken pipe for senders once the last Receiver
// handle is closed.
//
// Operations that can no longer make progress because the counterpart
// side is gone do not hang and do not return an error value; they panic
// with a message naming the operation. A send with no possible reader,
// or a receive on a closed and drained channel, almost always means an
// endpoint was dropped too early — a structural bug worth crashing on,
// close to its source. Application-level errors take the recoverable
// path instead: see [Try].
//
// # Ownership convention
//
// Goroutine closures capture handles by reference, so the package
// documents two explicit hand-off forms:
//
//   - move: capture the handle and never touch it again in the parent.
//     The goroutine that received it calls Close when done.
//   - clone: bind a fresh handle with [Own] (or the Clone method) and
//     capture that, one clone per goroutine:
//
//     s := ch.Own(send)
//     go func() {
//     	defer s.Close()
//     	s.Send(v)
//     }()
//
// Copying a handle struct instead of cloning it is a contract violation:
// the copy aliases the original's close guard and does not extend the
// channel's lifetime.
package ch
