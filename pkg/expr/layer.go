package expr

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[Layer[int], Layer[bool], int, bool] = Fmap[int, bool]

// Op tags the variant of an Expr or a Layer.
type Op uint8

const (
	OpInt Op = iota
	OpVar
	OpAdd
	OpMul
)

func (o Op) String() string {
	switch o {
	case OpInt:
		return "int"
	case OpVar:
		return "var"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Layer is one level of an Expr with its children replaced by T.
// Int is set for OpInt, Name for OpVar, Left and Right for OpAdd and OpMul.
type Layer[T any] struct {
	Op    Op
	Int   int64
	Name  string
	Left  T
	Right T
}

func IntLayer[T any](n int64) Layer[T] {
	return Layer[T]{Op: OpInt, Int: n}
}

func VarLayer[T any](name string) Layer[T] {
	return Layer[T]{Op: OpVar, Name: name}
}

func AddLayer[T any](left, right T) Layer[T] {
	return Layer[T]{Op: OpAdd, Left: left, Right: right}
}

func MulLayer[T any](left, right T) Layer[T] {
	return Layer[T]{Op: OpMul, Left: left, Right: right}
}

// Fmap applies f to the children of layer, left before right. Literal and
// variable layers have no children and are copied.
func Fmap[A, B any](layer Layer[A], f func(A) B) Layer[B] {
	switch layer.Op {
	case OpAdd, OpMul:
		left := f(layer.Left)
		right := f(layer.Right)
		return Layer[B]{Op: layer.Op, Left: left, Right: right}
	default:
		return Layer[B]{Op: layer.Op, Int: layer.Int, Name: layer.Name}
	}
}

// TraverseLayer applies an effectful f to the children of layer, left before
// right, and combines the two effects with the law of the container eff
// describes.
func TraverseLayer[GA, GL, A, B any](eff kind.Effect[GA, GL, B, Layer[B]], layer Layer[A],
	f func(A) GA) GL {

	switch layer.Op {
	case OpAdd, OpMul:
		op := layer.Op
		left := eff.Map(f(layer.Left), func(b B) Layer[B] {
			return Layer[B]{Op: op, Left: b}
		})
		return eff.ZipWith(left, f(layer.Right), func(l Layer[B], b B) Layer[B] {
			l.Right = b
			return l
		})
	default:
		return eff.Pure(Layer[B]{Op: layer.Op, Int: layer.Int, Name: layer.Name})
	}
}
