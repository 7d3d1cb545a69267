package kind

// Effect is the applicative view a traversal needs of its inner container G.
// GA is G holding A values and GC is G holding C values.
//
// Traverse over an Option or a Result uses Pure and Map; traverse over a
// sequence starts from Pure and folds with ZipWith, so the inner container's
// combination law decides short-circuiting and output order.
type Effect[GA, GC, A, C any] struct {
	Pure    func(c C) GC
	Map     func(ga GA, f func(A) C) GC
	ZipWith func(gc GC, ga GA, f func(C, A) C) GC
}

// Append returns xs followed by x. It never writes into the backing array
// of xs: a broadcasting effect hands the same accumulator to several calls.
func Append[A any](xs []A, x A) []A {
	out := make([]A, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}
