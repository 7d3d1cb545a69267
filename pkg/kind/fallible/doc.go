// Package fallible contains Result[A, E], a value or an error of a type
// fixed per use, together with its container operations.
//
// Highlights:
// - Ok/Err: construct Result[A, E]
// - Fmap/DMap, Void/DVoid, Constant/DConstant: transform the success value
// - Pure/DPure, ZipWith/DZipWith, ZipMap/DZipMap: combine; the first error
//   scanning left before right wins
// - AndThen: continue with a Result-returning function
// - Traverse/Effect: sequence through an inner container
// - Try/FromPair: bridge Go (value, error) returns
// - Finally: reduce to a concrete value via success/error handlers
package fallible
