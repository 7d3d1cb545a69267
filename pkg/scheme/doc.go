// Package scheme folds and unfolds recursive values without per-type
// traversal code.
//
// A recursive type E takes part by describing its pattern shape: one layer of
// E in which every child position holds a placeholder instead of an E.
// Language bundles the conversions between E and one layer (Wrap, Unwrap)
// with the pattern shape's mapping operation, and derives from them:
// - Fold: tear a value down to one aggregate, children first
// - Unfold: grow a value from a seed, one layer at a time
//
// Both recurse on the Go call stack, one frame per level of the tree.
package scheme
