package kind_test

import (
	"testing"

	"github.com/ib-77/cata/pkg/kind"
	"github.com/ib-77/cata/pkg/kind/identity"
	"github.com/ib-77/cata/pkg/kind/option"
	"github.com/ib-77/cata/pkg/kind/sequence"
	"github.com/stretchr/testify/assert"
)

func TestDerivedOperations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, option.Some(kind.Unit{}), kind.Void(option.Fmap[int, kind.Unit], option.Some(3)))
	assert.Equal(t, []string{"x", "x"}, kind.Constant(sequence.DMap[int, string], []int{1, 2}, "x"))

	inc := func(n int) int { return n + 1 }
	assert.Equal(t, 5, kind.ZipMap(identity.ZipWith[func(int) int, int, int], inc, 4))
}

func TestAppend_LeavesInputUntouched(t *testing.T) {
	t.Parallel()

	xs := make([]int, 1, 4)
	a := kind.Append(xs, 1)
	b := kind.Append(xs, 2)

	assert.Equal(t, []int{0, 1}, a)
	assert.Equal(t, []int{0, 2}, b)
	assert.Equal(t, []int{0}, xs)
}
