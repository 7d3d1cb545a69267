package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/cata/pkg/kind/fallible"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by every error UnmarshalYAML returns for a
// document that does not describe an Expr.
var ErrMalformed = errors.New("expr: malformed document")

var _ interface {
	yaml.Marshaler
	yaml.Unmarshaler
} = (*Expr)(nil)

// MarshalYAML encodes e in its document form:
//
//	3                  integer literal
//	x                  variable
//	{add: [l, r]}      l + r
//	{mul: [l, r]}      l * r
func (e Expr) MarshalYAML() (interface{}, error) {
	return Fold(e, encodeLayer), nil
}

func encodeLayer(layer Layer[*yaml.Node]) *yaml.Node {
	switch layer.Op {
	case OpVar:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: layer.Name}
	case OpAdd, OpMul:
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: layer.Op.String()},
				{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: []*yaml.Node{layer.Left, layer.Right}},
			},
		}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(layer.Int, 10)}
	}
}

// UnmarshalYAML decodes node into e. On error e is left unchanged.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	d := newDecoder(node)
	return fallible.Finally(d.decode(node),
		func(decoded Expr) error {
			*e = decoded
			return nil
		},
		func(err error) error { return err })
}

// aliasExpansion bounds how many nodes a document may expand to through
// aliases, as a multiple of the nodes it actually contains.
const (
	aliasExpansion = 16
	minNodeBudget  = 10000
)

// decoder tracks the alias targets being expanded on the current path and
// the number of nodes decoded so far. An alias may not expand inside its own
// target.
type decoder struct {
	expanding map[*yaml.Node]struct{}
	decoded   int
	budget    int
}

func newDecoder(root *yaml.Node) *decoder {
	return &decoder{
		expanding: make(map[*yaml.Node]struct{}),
		budget:    max(countNodes(root)*aliasExpansion, minNodeBudget),
	}
}

// countNodes counts the nodes of the document tree without following aliases.
func countNodes(node *yaml.Node) int {
	n := 1
	for _, child := range node.Content {
		n += countNodes(child)
	}
	return n
}

// decode grows an Expr from a node one layer at a time; the children of each
// layer are decoded under the Result effect, so the first malformed node
// scanning left to right is the one reported.
func (d *decoder) decode(node *yaml.Node) fallible.Result[Expr, error] {
	d.decoded++
	if d.decoded > d.budget {
		return fallible.Err[Expr](malformedErr(node, "document contains excessive aliasing"))
	}

	switch {
	case node.Kind == yaml.DocumentNode && len(node.Content) == 1:
		return d.decode(node.Content[0])
	case node.Kind == yaml.AliasNode && node.Alias != nil:
		if _, ok := d.expanding[node.Alias]; ok {
			return fallible.Err[Expr](malformedErr(node, "alias %q contains itself", node.Value))
		}
		d.expanding[node.Alias] = struct{}{}
		defer delete(d.expanding, node.Alias)
		return d.decode(node.Alias)
	}

	return fallible.AndThen(decodeLayer(node), func(layer Layer[*yaml.Node]) fallible.Result[Expr, error] {
		children := TraverseLayer(fallible.Effect[error, Expr, Layer[Expr]](), layer, d.decode)
		return fallible.Fmap(children, Wrap)
	})
}

func decodeLayer(node *yaml.Node) fallible.Result[Layer[*yaml.Node], error] {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.MappingNode:
		return decodeOperator(node)
	}
	return malformed(node, "unexpected %s", describe(node))
}

func decodeScalar(node *yaml.Node) fallible.Result[Layer[*yaml.Node], error] {
	switch node.ShortTag() {
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return malformed(node, "%v", err)
		}
		return fallible.Ok[error](IntLayer[*yaml.Node](n))
	case "!!str":
		return fallible.Ok[error](VarLayer[*yaml.Node](node.Value))
	default:
		return malformed(node, "scalar %q is neither an integer nor a name", node.Value)
	}
}

func decodeOperator(node *yaml.Node) fallible.Result[Layer[*yaml.Node], error] {
	if len(node.Content) != 2 {
		return malformed(node, "an operator mapping needs exactly one key")
	}
	key, args := node.Content[0], node.Content[1]
	if args.Kind != yaml.SequenceNode || len(args.Content) != 2 {
		return malformed(args, "%q needs a list of two operands", key.Value)
	}
	switch key.Value {
	case OpAdd.String():
		return fallible.Ok[error](AddLayer(args.Content[0], args.Content[1]))
	case OpMul.String():
		return fallible.Ok[error](MulLayer(args.Content[0], args.Content[1]))
	default:
		return malformed(key, "unknown operator %q", key.Value)
	}
}

func malformed(node *yaml.Node, format string, args ...any) fallible.Result[Layer[*yaml.Node], error] {
	return fallible.Err[Layer[*yaml.Node]](malformedErr(node, format, args...))
}

func malformedErr(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, node.Line, fmt.Sprintf(format, args...))
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
