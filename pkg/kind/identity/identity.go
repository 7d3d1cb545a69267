package identity

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[int, bool, int, bool] = Fmap[int, bool]
var _ kind.Lifter[int, int] = Pure[int]
var _ kind.Zipper[int, int, int, int, int, int] = ZipWith[int, int, int]
var _ kind.Binder[int, bool, int, bool] = AndThen[int, bool]

func Fmap[A, B any](a A, f func(A) B) B {
	return f(a)
}

func DMap[A, B any](a A, f func(A) B) B {
	return f(a)
}

func Void[A any](a A) kind.Unit {
	return kind.Void(Fmap[A, kind.Unit], a)
}

func DVoid[A any](a A) kind.Unit {
	return kind.Void(DMap[A, kind.Unit], a)
}

func Constant[A, B any](a A, b B) B {
	return kind.Constant(Fmap[A, B], a, b)
}

func DConstant[A, B any](a A, b B) B {
	return kind.Constant(DMap[A, B], a, b)
}

func Pure[A any](a A) A {
	return a
}

func DPure[A any](a A) A {
	return a
}

func ZipWith[A, B, C any](a A, b B, f func(A, B) C) C {
	return f(a, b)
}

func DZipWith[A, B, C any](a A, b B, f func(A, B) C) C {
	return f(a, b)
}

func ZipMap[A, B any](f func(A) B, a A) B {
	return kind.ZipMap(ZipWith[func(A) B, A, B], f, a)
}

func DZipMap[A, B any](f func(A) B, a A) B {
	return kind.ZipMap(DZipWith[func(A) B, A, B], f, a)
}

func AndThen[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Traverse runs f and keeps its effect as is.
func Traverse[GA, GC, A, B any](eff kind.Effect[GA, GC, B, B], a A, f func(A) GA) GC {
	return eff.Map(f(a), Pure[B])
}

// Effect describes Identity as the inner container of a traversal; it never
// short-circuits.
func Effect[A, C any]() kind.Effect[A, C, A, C] {
	return kind.Effect[A, C, A, C]{
		Pure:    DPure[C],
		Map:     DMap[A, C],
		ZipWith: DZipWith[C, A, C],
	}
}
