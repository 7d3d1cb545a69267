package sequence

import (
	"strconv"
	"testing"

	"github.com/ib-77/cata/pkg/kind"
	"github.com/ib-77/cata/pkg/kind/fallible"
	"github.com/ib-77/cata/pkg/kind/identity"
	"github.com/ib-77/cata/pkg/kind/option"
	"github.com/ib-77/cata/pkg/kind/zipseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMap_KeepsLengthAndOrder(t *testing.T) {
	t.Parallel()

	var visited []int
	got := DMap([]int{3, 1, 2}, func(n int) string {
		visited = append(visited, n)
		return strconv.Itoa(n * 10)
	})

	assert.Equal(t, []string{"30", "10", "20"}, got)
	assert.Equal(t, []int{3, 1, 2}, visited)
	assert.Nil(t, DMap([]int(nil), strconv.Itoa))
	assert.Equal(t, []string{}, DMap([]int{}, strconv.Itoa))
}

func TestVoidAndConstant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []kind.Unit{{}, {}}, DVoid([]string{"a", "b"}))
	assert.Equal(t, []string{"k", "k", "k"}, DConstant([]int{1, 2, 3}, "k"))
}

func TestDZipWith_TruncatesToShorter(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }

	assert.Equal(t, []int{11, 22}, DZipWith([]int{1, 2, 3}, []int{10, 20}, add))
	assert.Equal(t, []int{11, 22}, DZipWith([]int{1, 2}, []int{10, 20, 30}, add))
	assert.Equal(t, []int{}, DZipWith([]int{}, []int{10}, add))

	for _, tc := range []struct{ left, right int }{{0, 3}, {1, 4}, {5, 2}, {4, 4}} {
		out := DZipWith(make([]int, tc.left), make([]int, tc.right), add)
		assert.Len(t, out, min(tc.left, tc.right))
	}
}

func TestDZipMap(t *testing.T) {
	t.Parallel()

	fs := []func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 2 },
	}
	assert.Equal(t, []int{11, 40}, DZipMap(fs, []int{10, 20, 30}))

	id := func(n int) int { return n }
	assert.Equal(t, []int{5}, DZipMap(DPure(id), []int{5}))
	assert.Equal(t, DPure(6), DZipMap(DPure(func(n int) int { return n + 1 }), DPure(5)))
	// a one-element list of functions pairs with the first element only
	assert.Equal(t, []int{1}, DZipMap(DPure(id), []int{1, 2, 3}))
}

func TestTraverse_Option(t *testing.T) {
	t.Parallel()

	optEff := option.Effect[int, []int]()
	self := func(o option.Option[int]) option.Option[int] { return o }

	got := Traverse(optEff, []option.Option[int]{option.Some(1), option.Some(2), option.Some(3)}, self)
	assert.Equal(t, option.Some([]int{1, 2, 3}), got)

	got = Traverse(optEff, []option.Option[int]{option.Some(1), option.None[int](), option.Some(3)}, self)
	assert.Equal(t, option.None[[]int](), got)

	assert.Equal(t, option.Some([]int{}), Traverse(optEff, nil, self))
}

func TestTraverse_LeftToRight(t *testing.T) {
	t.Parallel()

	var log []string
	record := func(s string) option.Option[string] {
		log = append(log, s)
		return option.Some(s + "!")
	}

	got := Traverse(option.Effect[string, []string](), []string{"a", "b", "c"}, record)
	assert.Equal(t, option.Some([]string{"a!", "b!", "c!"}), got)
	assert.Equal(t, []string{"a", "b", "c"}, log)
}

func TestTraverse_FirstErrorWins(t *testing.T) {
	t.Parallel()

	parse := func(s string) fallible.Result[int, error] {
		n, err := strconv.Atoi(s)
		return fallible.FromPair(n, err)
	}
	eff := fallible.Effect[error, int, []int]()

	ok := Traverse(eff, []string{"1", "2", "3"}, parse)
	assert.Equal(t, fallible.Ok[error]([]int{1, 2, 3}), ok)

	bad := Traverse(eff, []string{"1", "x", "y"}, parse)
	err, failed := bad.Failure()
	require.True(t, failed)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "x", numErr.Num)
}

func TestTraverse_AlwaysSucceedingEffectKeepsShape(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	assert.Equal(t, []int{2, 4, 6}, Traverse(identity.Effect[int, []int](), []int{1, 2, 3}, double))
}

func TestTraverse_InnerLawDecidesShape(t *testing.T) {
	t.Parallel()

	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	self := func(row []int) []int { return row }

	// positional zip against the one-element start keeps only the first column
	assert.Equal(t, [][]int{{1, 4}}, Traverse(Effect[int, []int](), rows, self))

	// the broadcasting zip transposes
	zipSelf := func(row []int) zipseq.Zip[int] { return zipseq.Of(row...) }
	assert.Equal(t, zipseq.Of([]int{1, 4}, []int{2, 5}, []int{3, 6}),
		Traverse(zipseq.Effect[int, []int](), rows, zipSelf))
}
