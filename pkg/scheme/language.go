package scheme

// Language describes a recursive type E through its pattern shape.
//
// LE is one layer whose child positions hold E values, LT the same layer
// with T placeholders. MapChildren and MapSeeds are the pattern shape's
// mapping operation at the two instantiations Fold and Unfold need; they must
// visit child positions in one fixed order and leave everything else as is.
type Language[E, LE, T, LT any] struct {
	Wrap        func(layer LE) E
	Unwrap      func(e E) LE
	MapChildren func(layer LE, f func(E) T) LT
	MapSeeds    func(layer LT, f func(T) E) LE
}

// Fold folds every child of e first, in pattern order, then applies alg to
// the layer holding the children's results. alg runs once per node.
func (l Language[E, LE, T, LT]) Fold(e E, alg func(LT) T) T {
	return alg(l.MapChildren(l.Unwrap(e), func(child E) T {
		return l.Fold(child, alg)
	}))
}

// Unfold builds the layer for seed with coalg, unfolds each of its seeds in
// pattern order and wraps the result. It returns only once coalg has reached
// childless layers for every seed it produced.
func (l Language[E, LE, T, LT]) Unfold(seed T, coalg func(T) LT) E {
	return l.Wrap(l.MapSeeds(coalg(seed), func(s T) E {
		return l.Unfold(s, coalg)
	}))
}
