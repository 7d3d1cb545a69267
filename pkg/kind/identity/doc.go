// Package identity is the container that holds exactly one value and adds
// nothing around it: Identity of A is A itself. Every operation is plain
// function application, which makes the package the reference point for
// the laws the other containers are tested against.
package identity
