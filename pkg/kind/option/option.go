package option

import "fmt"

// Option holds zero or one value. The zero Option is None.
type Option[A any] struct {
	value A
	some  bool
}

func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

func (o Option[A]) IsSome() bool {
	return o.some
}

func (o Option[A]) IsNone() bool {
	return !o.some
}

// Get returns the held value and true, or the zero A and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.some
}

func (o Option[A]) OrElse(def A) A {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[A]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
