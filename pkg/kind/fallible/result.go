package fallible

import "fmt"

// Result holds either a success value of type A or an error value of type E.
// The zero Result is an error holding the zero E.
type Result[A, E any] struct {
	value A
	err   E
	ok    bool
}

// Ok builds a successful Result. E comes first so that callers only name it:
// fallible.Ok[error](42).
func Ok[E, A any](a A) Result[A, E] {
	return Result[A, E]{value: a, ok: true}
}

// Err builds a failed Result: fallible.Err[int](err).
func Err[A, E any](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

func (r Result[A, E]) IsOk() bool {
	return r.ok
}

func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero A and false.
func (r Result[A, E]) Value() (A, bool) {
	return r.value, r.ok
}

// Failure returns the error value and true, or the zero E and false.
func (r Result[A, E]) Failure() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Result[A, E]) OrElse(def A) A {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[A, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
