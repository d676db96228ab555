package ch

// Cloner is implemented by reference-counted handles that can mint an
// independent handle to the same underlying resource. [Sender] and
// [Receiver] implement it.
type Cloner[T any] interface {
	Clone() T
}

// Own clones v for hand-off to a goroutine. It is the clone half of the
// package's ownership convention (see the package documentation): bind
// the result to a fresh name, capture that in the closure, and let the
// goroutine close it.
//
//	results := ch.Own(send)
//	go func() {
//		defer results.Close()
//		results.Send(work())
//	}()
//
// Own(v) is exactly v.Clone(); its value is making the transfer visible
// at the spawn site.
func Own[T Cloner[T]](v T) T {
	return v.Clone()
}
