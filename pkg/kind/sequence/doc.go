// Package sequence treats a plain slice as a container.
//
// Only the repeatable flavor exists here: mapping calls the function once per
// element. Combination is positional: element i is paired with element i and
// the result is as long as the shorter input, extra elements are dropped.
// There is no cartesian product. See package zipseq for the variant whose
// combination broadcasts single-element inputs.
package sequence
