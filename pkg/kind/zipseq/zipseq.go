package zipseq

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[Zip[int], Zip[bool], int, bool] = DMap[int, bool]
var _ kind.Lifter[Zip[int], int] = DPure[int]
var _ kind.Zipper[Zip[int], Zip[int], Zip[int], int, int, int] = DZipWith[int, int, int]

// Zip is an ordered list combined position by position.
type Zip[A any] []A

// Of copies xs into a new Zip; Of() is empty, not nil.
func Of[A any](xs ...A) Zip[A] {
	return append(make(Zip[A], 0, len(xs)), xs...)
}

// DMap calls f on every element in order. A nil Zip stays nil.
func DMap[A, B any](xs Zip[A], f func(A) B) Zip[B] {
	if xs == nil {
		return nil
	}
	out := make(Zip[B], len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func DVoid[A any](xs Zip[A]) Zip[kind.Unit] {
	return kind.Void(DMap[A, kind.Unit], xs)
}

// DConstant puts a copy of b in every slot.
func DConstant[A, B any](xs Zip[A], b B) Zip[B] {
	return kind.Constant(DMap[A, B], xs, b)
}

func DPure[A any](a A) Zip[A] {
	return Zip[A]{a}
}

// DZipWith pairs xs[i] with ys[i]. A one-element side is paired with every
// element of the other side; otherwise the result has the shorter length.
func DZipWith[A, B, C any](xs Zip[A], ys Zip[B], f func(A, B) C) Zip[C] {
	n := min(len(xs), len(ys))
	if n == 1 {
		n = max(len(xs), len(ys))
	}
	out := make(Zip[C], n)
	for i := range n {
		out[i] = f(xs[at(i, len(xs))], ys[at(i, len(ys))])
	}
	return out
}

func at(i, n int) int {
	if n == 1 {
		return 0
	}
	return i
}

func DZipMap[A, B any](fs Zip[func(A) B], xs Zip[A]) Zip[B] {
	return kind.ZipMap(DZipWith[func(A) B, A, B], fs, xs)
}

// Traverse runs f on every element, left to right, and collects the results
// inside the inner container described by eff.
func Traverse[GA, GS, A, B any](eff kind.Effect[GA, GS, B, Zip[B]], xs Zip[A], f func(A) GA) GS {
	acc := eff.Pure(Zip[B]{})
	for _, x := range xs {
		acc = eff.ZipWith(acc, f(x), appendZip[B])
	}
	return acc
}

func appendZip[A any](xs Zip[A], x A) Zip[A] {
	return kind.Append([]A(xs), x)
}

// Effect describes Zip as the inner container of a traversal.
func Effect[A, C any]() kind.Effect[Zip[A], Zip[C], A, C] {
	return kind.Effect[Zip[A], Zip[C], A, C]{
		Pure:    DPure[C],
		Map:     DMap[A, C],
		ZipWith: DZipWith[C, A, C],
	}
}
