package expr

import "strconv"

const (
	precSum = iota + 1
	precProduct
	precAtom
)

type printed struct {
	text string
	prec int
}

// String renders e in infix form. Parentheses appear only where the tree
// shape differs from what left-associative + and * would read back.
func (e Expr) String() string {
	return Fold(e, printLayer).text
}

func printLayer(layer Layer[printed]) printed {
	switch layer.Op {
	case OpVar:
		return printed{text: layer.Name, prec: precAtom}
	case OpAdd:
		return infix(layer, " + ", precSum)
	case OpMul:
		return infix(layer, " * ", precProduct)
	default:
		return printed{text: strconv.FormatInt(layer.Int, 10), prec: precAtom}
	}
}

func infix(layer Layer[printed], sep string, prec int) printed {
	left := layer.Left.text
	if layer.Left.prec < prec {
		left = "(" + left + ")"
	}
	right := layer.Right.text
	if layer.Right.prec <= prec {
		right = "(" + right + ")"
	}
	return printed{text: left + sep + right, prec: prec}
}
