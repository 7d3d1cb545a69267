package expr

import "github.com/ib-77/cata/pkg/scheme"

// Expr is an arithmetic expression. Values are immutable and every composite
// node owns its two children; no operation in this package shares or
// mutates a subtree. The zero Expr is Int(0).
type Expr struct {
	op    Op
	n     int64
	name  string
	left  *Expr
	right *Expr
}

func Int(n int64) Expr {
	return Expr{op: OpInt, n: n}
}

func Var(name string) Expr {
	return Expr{op: OpVar, name: name}
}

func Add(left, right Expr) Expr {
	return Expr{op: OpAdd, left: &left, right: &right}
}

func Mul(left, right Expr) Expr {
	return Expr{op: OpMul, left: &left, right: &right}
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	return Add(e, o)
}

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr {
	return Mul(e, o)
}

func (e Expr) Op() Op {
	return e.op
}

// Literal returns the value of an integer literal.
func (e Expr) Literal() (int64, bool) {
	return e.n, e.op == OpInt
}

// Name returns the name of a variable.
func (e Expr) Name() (string, bool) {
	return e.name, e.op == OpVar
}

// Operands returns both sides of an addition or a multiplication.
func (e Expr) Operands() (Expr, Expr, bool) {
	if e.op != OpAdd && e.op != OpMul {
		return Expr{}, Expr{}, false
	}
	return *e.left, *e.right, true
}

// Wrap builds an Expr from one layer whose children are already Exprs.
func Wrap(layer Layer[Expr]) Expr {
	switch layer.Op {
	case OpVar:
		return Var(layer.Name)
	case OpAdd:
		return Add(layer.Left, layer.Right)
	case OpMul:
		return Mul(layer.Left, layer.Right)
	default:
		return Int(layer.Int)
	}
}

// Unwrap exposes the top layer of e. Wrap(Unwrap(e)) equals e.
func Unwrap(e Expr) Layer[Expr] {
	switch e.op {
	case OpVar:
		return VarLayer[Expr](e.name)
	case OpAdd:
		return AddLayer(*e.left, *e.right)
	case OpMul:
		return MulLayer(*e.left, *e.right)
	default:
		return IntLayer[Expr](e.n)
	}
}

// Language is the scheme instance of Expr for folds into T and unfolds
// from seeds of type T.
func Language[T any]() scheme.Language[Expr, Layer[Expr], T, Layer[T]] {
	return scheme.Language[Expr, Layer[Expr], T, Layer[T]]{
		Wrap:        Wrap,
		Unwrap:      Unwrap,
		MapChildren: Fmap[Expr, T],
		MapSeeds:    Fmap[T, Expr],
	}
}

func Fold[T any](e Expr, alg func(Layer[T]) T) T {
	return Language[T]().Fold(e, alg)
}

func Unfold[T any](seed T, coalg func(T) Layer[T]) Expr {
	return Language[T]().Unfold(seed, coalg)
}
