package seq

import (
	"strconv"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/fn"
)

func TestCatConsButLast(t *testing.T) {
	a := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, Cat(a, []int{4}, nil, []int{5}))
	assert.Equal(t, []int{0, 1, 2, 3}, Cons(0, a))
	assert.Equal(t, []int{1, 2}, ButLast(a))
	assert.Empty(t, ButLast([]int{}))
	assert.Equal(t, []int{1, 2, 3}, a)
}

func TestSecond(t *testing.T) {
	v, ok := Second([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = Second([]int{1})
	assert.False(t, ok)
}

func TestInterpose(t *testing.T) {
	a := []int{1, 2, 3}
	assert.Equal(t, []int{1, 0, 2, 0, 3}, Interpose(0, a))
	assert.Equal(t, []int{1}, Interpose(0, []int{1}))
	assert.Empty(t, Interpose(0, []int{}))
	assert.Equal(t, []int{1, 2, 3}, a)
}

func TestInterleave(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2}

	assert.Equal(t, []int{1, 1, 2, 2, 3}, Interleave(a, b))
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, Interleave(a, a))
	assert.Equal(t, []string{"a", "1", "b", "2", "c"}, Interleave([]string{"a", "b", "c"}, []string{"1", "2"}))
	assert.Empty(t, Interleave([]int{}, []int{}))
	assert.Equal(t, []int{1, 2, 3}, Interleave([]int{}, a))
	assert.Equal(t, []int{1, 2, 3}, a)
}

func TestRepeat(t *testing.T) {
	got, err := Repeat(3, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, got)

	got, err = Repeat(0, "x")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Repeat(-1, "x")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))
}

func TestCycle(t *testing.T) {
	a := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2, 3}, Cycle(3, a))
	assert.Empty(t, Cycle(0, a))
	assert.Empty(t, Cycle(-3, a))
	assert.Equal(t, []int{1, 2, 3}, Cycle(33, a)[:3])
}

func TestSplitAt(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}

	tests := []struct {
		index      int
		head, tail []int
	}{
		{2, []int{1, 2}, []int{3, 4, 5}},
		{0, []int{}, []int{1, 2, 3, 4, 5}},
		{10, []int{1, 2, 3, 4, 5}, []int{}},
		{-1, []int{}, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.index), func(t *testing.T) {
			head, tail := SplitAt(tc.index, a)
			assert.Equal(t, tc.head, head)
			assert.Equal(t, tc.tail, tail)
		})
	}

	head, _ := SplitAt(2, a)
	head[0] = 99
	assert.Equal(t, 1, a[0], "split results do not alias the input")
}

func TestSplitWithTakeWhileDropWhile(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 1}
	small := func(n int) bool { return n <= 3 }

	head, tail := SplitWith(small, a)
	assert.Equal(t, []int{1, 2, 3}, head)
	assert.Equal(t, []int{4, 5, 1}, tail)

	assert.Equal(t, []int{1, 2, 3}, TakeWhile(small, a))
	assert.Equal(t, []int{4, 5, 1}, DropWhile(small, a))
	assert.Equal(t, a, TakeWhile(func(int) bool { return true }, a))
	assert.Empty(t, DropWhile(func(int) bool { return true }, a))
}

func TestTakeSkipping(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	got, err := TakeSkipping(2, a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, got)

	got, err = TakeSkipping(4, a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, got)

	_, err = TakeSkipping(0, a)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))
}

func TestKeep(t *testing.T) {
	evens := Keep(func(e int) mo.Option[int] {
		if fn.IsEven(e) {
			return mo.Some(e)
		}
		return mo.None[int]()
	}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, []int{0, 2, 4, 6, 8}, evens)

	flags := Keep(func(e int) mo.Option[bool] { return mo.Some(fn.IsEven(e)) }, []int{1, 2, 3})
	assert.Equal(t, []bool{false, true, false}, flags)
}

func TestKeepIndexed(t *testing.T) {
	got := KeepIndexed(func(i int, v string) mo.Option[string] {
		if fn.IsOdd(i) {
			return mo.Some(v)
		}
		return mo.None[string]()
	}, []string{"a", "b", "c", "d", "e"})
	assert.Equal(t, []string{"b", "d"}, got)
}

func TestRemove(t *testing.T) {
	assert.Equal(t, []int{0, -1}, Remove(fn.IsPos[int], []int{0, 1, 2, -1, 3}))
}

func TestMapcat(t *testing.T) {
	got := Mapcat(func(s string) []string { return strings.Split(s, "") }, []string{"ab", "", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestReductions(t *testing.T) {
	sums := Reductions(func(acc, e int) int { return acc + e }, 0, []int{1, 2, 3, 4})
	assert.Equal(t, []int{1, 3, 6, 10}, sums)
	assert.Empty(t, Reductions(func(acc, e int) int { return acc + e }, 0, nil))
}

func TestIterateUntil(t *testing.T) {
	got := IterateUntil(func(n int) int { return n * 2 }, func(n int) bool { return n <= 1024 }, 1)
	assert.Equal(t, []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}, got)
	assert.Empty(t, IterateUntil(func(n int) int { return n + 1 }, func(int) bool { return false }, 0))
}

func TestRepeatedly(t *testing.T) {
	got, err := Repeatedly(3, func(i int) string { return "id" + strconv.Itoa(i) })
	require.NoError(t, err)
	assert.Equal(t, []string{"id0", "id1", "id2"}, got)

	_, err = Repeatedly(-2, func(int) int { return 0 })
	assert.Error(t, err)
}

func TestMaxKey(t *testing.T) {
	size := func(s []int) int { return len(s) }

	got, ok := MaxKey(size, []int{1, 2}, []int{2}, []int{4, 5, 6})
	assert.True(t, ok)
	assert.Equal(t, []int{4, 5, 6}, got)

	got, _ = MaxKey(size, []int{1}, []int{2})
	assert.Equal(t, []int{2}, got, "ties go to the later item")

	_, ok = MaxKey(size)
	assert.False(t, ok)
}

func TestFrequencies(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 3, "b": 1}, Frequencies([]string{"a", "a", "b", "a"}))
}

func TestRenameKeys(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	assert.Equal(t, map[string]int{"b": 2, "A": 1}, RenameKeys(a, map[string]string{"a": "A"}))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, a)
}

func TestRenameKeys_RenamedEntryWins(t *testing.T) {
	for range 100 {
		assert.Equal(t, map[string]int{"b": 1}, RenameKeys(map[string]int{"a": 1, "b": 2}, map[string]string{"a": "b"}))
	}
	assert.Equal(t, map[string]int{"b": 1, "c": 2},
		RenameKeys(map[string]int{"a": 1, "b": 2}, map[string]string{"a": "b", "b": "c"}))
	assert.Equal(t, map[string]int{"a": 1}, RenameKeys(map[string]int{"a": 1}, map[string]string{"z": "y"}))
}

func TestSelectKeys(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 1}, SelectKeys(map[string]int{"a": 1, "b": 2}, []string{"a", "z"}))
}

func TestAssocIn(t *testing.T) {
	original := map[string]any{
		"user": map[string]any{"name": "ada", "langs": 1},
	}

	got, err := AssocIn(original, []string{"user", "name"}, "grace")
	require.NoError(t, err)
	assert.Equal(t, "grace", got["user"].(map[string]any)["name"])
	assert.Equal(t, "ada", original["user"].(map[string]any)["name"], "input is not modified")

	got, err = AssocIn(nil, []string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}, got)

	_, err = AssocIn(original, []string{"user", "langs", "go"}, true)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))

	_, err = AssocIn(original, nil, 1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))
}

func TestUpdateIn(t *testing.T) {
	original := map[string]any{"stats": map[string]any{"hits": 1}}

	got, err := UpdateIn(original, []string{"stats", "hits"}, func(v any) any { return v.(int) + 1 })
	require.NoError(t, err)
	assert.Equal(t, 2, got["stats"].(map[string]any)["hits"])
	assert.Equal(t, 1, original["stats"].(map[string]any)["hits"])

	got, err = UpdateIn(original, []string{"stats", "misses"}, func(v any) any {
		assert.Nil(t, v)
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got["stats"].(map[string]any)["misses"])
}
