package thread

import (
	"fmt"
	"runtime"
)

// PanicError carries a recovered panic value together with the goroutine
// stack captured at the point of the panic. [Handle.Finish] and [Join]
// re-raise it in the joining goroutine so the original failure site
// survives the hop across goroutines.
type PanicError struct {
	// Value is the value originally passed to panic.
	Value any

	// Stack is the panicking goroutine's stack trace.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("thread: panic: %v\n\n%s", e.Value, e.Stack)
}

// NewPanicError captures the calling goroutine's stack around the
// recovered value v. Call it directly inside the deferred recover.
func NewPanicError(v any) *PanicError {
	// runtime.Stack truncates if the buffer is too small; 8 KiB covers
	// typical traces.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
