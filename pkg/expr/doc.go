// Package expr is a small arithmetic language built on package scheme.
//
// Expr is a tree of integer literals, named variables, additions and
// multiplications. Layer is its pattern shape. Everything that walks a tree
// is a Fold or an Unfold over Layer:
// - Eval: partial evaluation, the integer or a residual Expr
// - String: infix rendering with minimal parentheses
// - Vars, Substitute, EvalWith: free variables and environments
// - Fresh, Generalize: variables with collision-free names
// - MarshalYAML, UnmarshalYAML: a document form for fixtures
package expr
