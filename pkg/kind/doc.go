// Package kind holds what the container packages share: the calling
// conventions every container variant follows, the Effect bundle a
// traversal uses to talk to its inner container, and the operations derived
// from mapping and zipping.
//
// Go has no type-constructor parameters, so a container shape is never
// abstracted directly. Instead each variant lives in its own package and
// exposes free generic functions with the shapes declared here:
// - Mapper: transform every held value, keep the shape (Fmap, DMap)
// - Lifter: inject a bare value (Pure, DPure)
// - Zipper: combine two containers of one shape (ZipWith, DZipWith)
// - Binder: continue with a container-valued function (AndThen)
// - Effect: Pure/Map/ZipWith of an inner container, passed to Traverse
//
// Variants:
// - identity: the value itself, no wrapper
// - option: zero or one value
// - fallible: a value or an error of a fixed type
// - sequence: ordered slice, truncating positional zip
// - zipseq: ordered slice, broadcasting positional zip
package kind
