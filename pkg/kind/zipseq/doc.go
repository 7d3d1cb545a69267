// Package zipseq contains Zip[A], a slice whose combination law is the zip
// list one.
//
// Zip shares its storage with a plain slice but combines differently from
// package sequence: a single-element input is repeated against the other
// input, so DPure is the unit of DZipWith. This is not the min-length law:
// DZipWith(Of(1), Of(10, 20), f) has two elements, not one. Two inputs of
// other lengths are paired positionally and truncated to the shorter one.
//
// Traversing with Effect as the inner container transposes: a slice of rows
// becomes a Zip of columns.
package zipseq
