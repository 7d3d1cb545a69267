package identity

import (
	"strconv"
	"testing"

	"github.com/ib-77/cata/pkg/kind"
	"github.com/ib-77/cata/pkg/kind/option"
	"github.com/stretchr/testify/assert"
)

func TestFunctor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", Fmap(7, strconv.Itoa))
	assert.Equal(t, 14, DMap(7, func(n int) int { return n * 2 }))
	assert.Equal(t, kind.Unit{}, Void("x"))
	assert.Equal(t, kind.Unit{}, DVoid(1))
	assert.Equal(t, "c", Constant(1, "c"))
	assert.Equal(t, "c", DConstant(1, "c"))
}

func TestApplicativeAndMonad(t *testing.T) {
	t.Parallel()

	id := func(n int) int { return n }
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 5, ZipMap(Pure(id), 5))
	assert.Equal(t, Pure(inc(5)), DZipMap(DPure(inc), DPure(5)))
	assert.Equal(t, "3x", ZipWith(3, "x", func(n int, s string) string { return strconv.Itoa(n) + s }))
	assert.Equal(t, 9, DZipWith(4, 5, func(a, b int) int { return a + b }))
	assert.Equal(t, 6, AndThen(5, inc))
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	eff := option.Effect[int, int]()
	half := func(n int) option.Option[int] {
		if n%2 != 0 {
			return option.None[int]()
		}
		return option.Some(n / 2)
	}

	assert.Equal(t, option.Some(3), Traverse(eff, 6, half))
	assert.Equal(t, option.None[int](), Traverse(eff, 5, half))
	assert.Equal(t, 10, Traverse(Effect[int, int](), 5, func(n int) int { return n * 2 }))
}
