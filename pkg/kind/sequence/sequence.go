package sequence

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[[]int, []bool, int, bool] = DMap[int, bool]
var _ kind.Lifter[[]int, int] = DPure[int]
var _ kind.Zipper[[]int, []int, []int, int, int, int] = DZipWith[int, int, int]

// DMap calls f on every element in order. A nil slice stays nil.
func DMap[A, B any](xs []A, f func(A) B) []B {
	if xs == nil {
		return nil
	}
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func DVoid[A any](xs []A) []kind.Unit {
	return kind.Void(DMap[A, kind.Unit], xs)
}

// DConstant puts a copy of b in every slot.
func DConstant[A, B any](xs []A, b B) []B {
	return kind.Constant(DMap[A, B], xs, b)
}

// DPure is the one-element slice holding a.
func DPure[A any](a A) []A {
	return []A{a}
}

// DZipWith pairs xs[i] with ys[i] for every i below the shorter length.
func DZipWith[A, B, C any](xs []A, ys []B, f func(A, B) C) []C {
	n := min(len(xs), len(ys))
	out := make([]C, n)
	for i := range n {
		out[i] = f(xs[i], ys[i])
	}
	return out
}

func DZipMap[A, B any](fs []func(A) B, xs []A) []B {
	return kind.ZipMap(DZipWith[func(A) B, A, B], fs, xs)
}

// Traverse runs f on every element, left to right, and collects the results
// inside the inner container described by eff: it starts from eff.Pure of an
// empty slice and appends each result with eff.ZipWith.
func Traverse[GA, GS, A, B any](eff kind.Effect[GA, GS, B, []B], xs []A, f func(A) GA) GS {
	acc := eff.Pure([]B{})
	for _, x := range xs {
		acc = eff.ZipWith(acc, f(x), kind.Append[B])
	}
	return acc
}

// Effect describes a slice as the inner container of a traversal.
func Effect[A, C any]() kind.Effect[[]A, []C, A, C] {
	return kind.Effect[[]A, []C, A, C]{
		Pure:    DPure[C],
		Map:     DMap[A, C],
		ZipWith: DZipWith[C, A, C],
	}
}
