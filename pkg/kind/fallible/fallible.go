package fallible

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[Result[int, string], Result[bool, string], int, bool] = Fmap[int, bool, string]
var _ kind.Lifter[Result[int, string], int] = Pure[string, int]
var _ kind.Zipper[Result[int, string], Result[int, string], Result[int, string], int, int, int] = ZipWith[int, int, int, string]
var _ kind.Binder[Result[int, string], Result[bool, string], int, bool] = AndThen[int, bool, string]

// Fmap applies f to the success value; an error passes through untouched.
// f runs at most once.
func Fmap[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if r.ok {
		return Ok[E](f(r.value))
	}
	return Err[B](r.err)
}

// DMap is the repeatable flavor of Fmap.
func DMap[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	return Fmap(r, f)
}

func Void[A, E any](r Result[A, E]) Result[kind.Unit, E] {
	return kind.Void(Fmap[A, kind.Unit, E], r)
}

func DVoid[A, E any](r Result[A, E]) Result[kind.Unit, E] {
	return kind.Void(DMap[A, kind.Unit, E], r)
}

func Constant[A, B, E any](r Result[A, E], b B) Result[B, E] {
	return kind.Constant(Fmap[A, B, E], r, b)
}

func DConstant[A, B, E any](r Result[A, E], b B) Result[B, E] {
	return kind.Constant(DMap[A, B, E], r, b)
}

// MapErr applies f to the error value; a success passes through untouched.
func MapErr[A, E, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[A](f(r.err))
}

func Pure[E, A any](a A) Result[A, E] {
	return Ok[E](a)
}

func DPure[E, A any](a A) Result[A, E] {
	return Ok[E](a)
}

// ZipWith combines two successes with f. Otherwise the error of ra is
// returned if ra failed, else the error of rb.
func ZipWith[A, B, C, E any](ra Result[A, E], rb Result[B, E], f func(A, B) C) Result[C, E] {
	if !ra.ok {
		return Err[C](ra.err)
	}
	if !rb.ok {
		return Err[C](rb.err)
	}
	return Ok[E](f(ra.value, rb.value))
}

func DZipWith[A, B, C, E any](ra Result[A, E], rb Result[B, E], f func(A, B) C) Result[C, E] {
	return ZipWith(ra, rb, f)
}

func ZipMap[A, B, E any](rf Result[func(A) B, E], ra Result[A, E]) Result[B, E] {
	return kind.ZipMap(ZipWith[func(A) B, A, B, E], rf, ra)
}

func DZipMap[A, B, E any](rf Result[func(A) B, E], ra Result[A, E]) Result[B, E] {
	return kind.ZipMap(DZipWith[func(A) B, A, B, E], rf, ra)
}

// AndThen runs f on the success value; an error short-circuits.
func AndThen[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[B](r.err)
}

// Traverse runs f on the success value inside the inner container described
// by eff. An error is lifted with eff.Pure without calling f.
func Traverse[GA, GC, A, B, E any](eff kind.Effect[GA, GC, B, Result[B, E]], r Result[A, E],
	f func(A) GA) GC {

	if !r.ok {
		return eff.Pure(Err[B](r.err))
	}
	return eff.Map(f(r.value), Ok[E, B])
}

// Effect describes Result as the inner container of a traversal.
func Effect[E, A, C any]() kind.Effect[Result[A, E], Result[C, E], A, C] {
	return kind.Effect[Result[A, E], Result[C, E], A, C]{
		Pure:    DPure[E, C],
		Map:     DMap[A, C, E],
		ZipWith: DZipWith[C, A, C, E],
	}
}
