package fallible

// FromPair converts a Go (value, error) return into a Result.
func FromPair[A any](a A, err error) Result[A, error] {
	if err != nil {
		return Err[A](err)
	}
	return Ok[error](a)
}

// Try calls onTryExecute on the success value and converts a non-nil error
// into a failure.
func Try[A, B any](r Result[A, error], onTryExecute func(A) (B, error)) Result[B, error] {
	if !r.ok {
		return Err[B](r.err)
	}
	b, err := onTryExecute(r.value)
	return FromPair(b, err)
}

// Finally collapses the result into a concrete value.
func Finally[A, E, Out any](r Result[A, E], onSuccess func(A) Out, onError func(E) Out) Out {
	if r.ok {
		return onSuccess(r.value)
	}
	return onError(r.err)
}
