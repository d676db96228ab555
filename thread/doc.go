// Package thread provides completion handles for spawned goroutines, a
// fixed-set parallel join, and CPU-bounded parallel iteration.
//
// The unifying policy is that goroutine panics are never silently
// swallowed at a join point: [Handle.Finish], [Join], and the iteration
// helpers re-raise a captured [*PanicError] (panic value plus the stack
// at the point of panic) in the joining goroutine. Ordinary errors stay
// errors and flow through [JoinErr], [ForEach], and [MapSlice].
package thread
