package expr

import (
	"strings"

	"github.com/google/uuid"
)

// Fresh returns a variable named prefix followed by a random UUID, so it
// cannot collide with a hand-written name or with another fresh variable.
func Fresh(prefix string) Expr {
	return Var(prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Generalize replaces every integer literal of e with a fresh variable and
// returns the bindings that restore them: EvalWith(g, env) equals Eval(e).
func Generalize(e Expr) (Expr, map[string]int64) {
	env := make(map[string]int64)
	g := Fold(e, func(layer Layer[Expr]) Expr {
		if layer.Op != OpInt {
			return Wrap(layer)
		}
		v := Fresh("k")
		name, _ := v.Name()
		env[name] = layer.Int
		return v
	})
	return g, env
}
