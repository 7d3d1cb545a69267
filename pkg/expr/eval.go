package expr

import (
	"slices"

	"github.com/ib-77/cata/pkg/kind/fallible"
)

// Eval folds e bottom-up. It is Ok with the value of e when e has no
// variables. Otherwise it is Err with the residual expression: e with every
// variable-free subtree replaced by its value.
func Eval(e Expr) fallible.Result[int64, Expr] {
	return Fold(e, evalLayer)
}

func (e Expr) Eval() fallible.Result[int64, Expr] {
	return Eval(e)
}

func evalLayer(layer Layer[fallible.Result[int64, Expr]]) fallible.Result[int64, Expr] {
	switch layer.Op {
	case OpVar:
		return fallible.Err[int64](Var(layer.Name))
	case OpAdd:
		return combine(layer, Add, func(a, b int64) int64 { return a + b })
	case OpMul:
		return combine(layer, Mul, func(a, b int64) int64 { return a * b })
	default:
		return fallible.Ok[Expr](layer.Int)
	}
}

func combine(layer Layer[fallible.Result[int64, Expr]], build func(l, r Expr) Expr,
	op func(a, b int64) int64) fallible.Result[int64, Expr] {

	if layer.Left.IsOk() && layer.Right.IsOk() {
		return fallible.ZipWith(layer.Left, layer.Right, op)
	}
	return fallible.Err[int64](build(residual(layer.Left), residual(layer.Right)))
}

func residual(r fallible.Result[int64, Expr]) Expr {
	return fallible.Finally(r, Int, func(e Expr) Expr { return e })
}

// Substitute replaces every variable bound in env with its value.
func Substitute(e Expr, env map[string]int64) Expr {
	return Fold(e, func(layer Layer[Expr]) Expr {
		if layer.Op == OpVar {
			if n, ok := env[layer.Name]; ok {
				return Int(n)
			}
		}
		return Wrap(layer)
	})
}

// EvalWith evaluates e after substituting the variables bound in env.
func EvalWith(e Expr, env map[string]int64) fallible.Result[int64, Expr] {
	return Eval(Substitute(e, env))
}

// Vars lists the variables of e in order of first appearance, left to right.
func Vars(e Expr) []string {
	return Fold(e, func(layer Layer[[]string]) []string {
		switch layer.Op {
		case OpVar:
			return []string{layer.Name}
		case OpAdd, OpMul:
			return merge(layer.Left, layer.Right)
		default:
			return nil
		}
	})
}

func merge(left, right []string) []string {
	if len(right) == 0 {
		return left
	}
	seen := make(map[string]struct{}, len(left))
	for _, name := range left {
		seen[name] = struct{}{}
	}
	out := slices.Clone(left)
	for _, name := range right {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
