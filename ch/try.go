package ch

// TryErr funnels a fallible result into an error-reporting channel.
//
// On a nil error it returns true. On a non-nil error it sends the error
// on errs and returns false; the caller supplies the escape action:
//
//	f, err := os.Open(path)
//	if !ch.TryErr(errs, err) {
//		return
//	}
//
// The send uses [Sender.Send], so an error channel whose collector has
// gone away is itself a loud panic rather than a silent drop. This is
// the recoverable path for ordinary application errors, as opposed to
// the panic-on-broken-pipe path for topology bugs; it requires the call
// sites of one function to agree on a single error channel and a
// consistent escape statement.
func TryErr(errs *Sender[error], err error) bool {
	if err != nil {
		errs.Send(err)
		return false
	}
	return true
}

// Try is the value-carrying form of [TryErr]: it passes v through on
// success and zeroes it on failure, keeping the result unusable past a
// missed escape.
//
//	n, err := strconv.Atoi(field)
//	n, ok := ch.Try(errs, n, err)
//	if !ok {
//		continue
//	}
func Try[T any](errs *Sender[error], v T, err error) (T, bool) {
	if err != nil {
		errs.Send(err)
		var zero T
		return zero, false
	}
	return v, true
}
