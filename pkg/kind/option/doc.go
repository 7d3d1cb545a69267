// Package option contains Option[A], zero or one value, and its container
// operations. Absence is ordinary data: every combining operation returns
// None as soon as one input is None.
package option
