package collections_test

import (
	"cmp"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plainview/go-collections/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

var (
	ik = collections.IntKey
	sk = collections.StrKey
)

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

// keysOf returns the keys as plain ints and strings.
func keysOf[V any](c *collections.Collection[V]) []any {
	out := make([]any, 0, c.Count())
	for _, k := range c.Keys() {
		out = append(out, k.Interface())
	}
	return out
}

// requirePanicsWith fails unless fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func even(n int, _ collections.Key) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	c := ints(10, 20, 30)
	require.Equal(t, []any{0, 1, 2}, keysOf(c))
	require.Equal(t, []int{10, 20, 30}, c.Items())
}

func TestFromEntries(t *testing.T) {
	c := collections.FromEntries(
		collections.E(sk("a"), 1),
		collections.E(collections.NoKey, 2),
		collections.E(sk("b"), 3),
		collections.E(sk("a"), 4),
	)
	require.Equal(t, []any{"a", 0, "b"}, keysOf(c))
	require.Equal(t, []int{4, 2, 3}, c.Items())
}

func TestFromMap(t *testing.T) {
	c := collections.FromMap(map[string]int{"b": 2, "a": 1, "10": 3})
	require.Equal(t, []any{10, "a", "b"}, keysOf(c))
	require.Equal(t, []int{3, 1, 2}, c.Items())
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	require.Zero(t, c.Count())
	require.True(t, c.IsEmpty())
	require.False(t, c.IsNotEmpty())

	var zero collections.Collection[string]
	zero.Append("x")
	require.Equal(t, []string{"x"}, zero.Items())
}

func TestMake(t *testing.T) {
	require.True(t, collections.Make(nil).IsEmpty())

	same := collections.New[any](1)
	require.Same(t, same, collections.Make(same))

	require.Equal(t, []any{1, 2}, collections.Make([]int{1, 2}).Items())

	m := collections.Make(map[string]int{"y": 2, "x": 1})
	require.Equal(t, []any{"x", "y"}, keysOf(m))

	typed := collections.Make(collections.FromEntries(collections.E(sk("k"), "v")))
	require.Equal(t, []any{"k"}, keysOf(typed))
	require.Equal(t, []any{"v"}, typed.Items())

	require.Equal(t, []any{"scalar"}, collections.Make("scalar").Items())
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys
// ─────────────────────────────────────────────────────────────────────────────

func TestStrKeyNormalisesIntegers(t *testing.T) {
	require.Equal(t, ik(7), sk("7"))
	require.Equal(t, ik(-3), sk("-3"))
	require.NotEqual(t, ik(7), sk("07"))
	require.NotEqual(t, ik(7), sk("+7"))
	require.False(t, sk("7.0").IsInt())
	require.True(t, collections.NoKey.IsZero())
}

func TestKeyOf(t *testing.T) {
	cases := []struct {
		in   any
		want collections.Key
	}{
		{"name", sk("name")},
		{"12", ik(12)},
		{true, ik(1)},
		{false, ik(0)},
		{int64(9), ik(9)},
		{uint8(4), ik(4)},
		{2.9, ik(2)},
		{nil, sk("")},
		{sk("k"), sk("k")},
	}
	for _, tc := range cases {
		got, err := collections.KeyOf(tc.in)
		require.NoError(t, err, "KeyOf(%#v)", tc.in)
		require.Equal(t, tc.want, got, "KeyOf(%#v)", tc.in)
	}

	_, err := collections.KeyOf(struct{}{})
	require.ErrorIs(t, err, collections.ErrInvalidKey)
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("name"), "Ada"))
	require.Equal(t, "Ada", c.Get(sk("name")))
	require.Equal(t, "", c.Get(sk("missing")))
	require.Equal(t, "anon", c.Get(sk("missing"), "anon"))

	v, ok := c.Lookup(sk("name"))
	require.True(t, ok)
	require.Equal(t, "Ada", v)
	_, ok = c.Lookup(sk("missing"))
	require.False(t, ok)
}

func TestPutKeepsPosition(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(sk("b"), 2))
	c.Put(sk("a"), 10).Put(sk("c"), 3)
	require.Equal(t, []any{"a", "b", "c"}, keysOf(c))
	require.Equal(t, []int{10, 2, 3}, c.Items())
}

func TestForget(t *testing.T) {
	c := ints(1, 2, 3).Forget(ik(1)).Forget(ik(42))
	require.Equal(t, []any{0, 2}, keysOf(c))
	require.False(t, c.Has(ik(1)))
}

func TestAppendAfterForget(t *testing.T) {
	c := collections.New("a", "b")
	c.Forget(ik(1)).Append("c")
	require.Equal(t, []any{0, 2}, keysOf(c))
}

func TestOffsetProtocol(t *testing.T) {
	c := collections.New("a")
	require.True(t, c.OffsetExists(ik(0)))

	v, err := c.OffsetGet(ik(0))
	require.NoError(t, err)
	require.Equal(t, "a", v)

	_, err = c.OffsetGet(sk("nope"))
	require.ErrorIs(t, err, collections.ErrKeyNotFound)

	c.OffsetSet(collections.NoKey, "b")
	c.OffsetSet(sk("x"), "c")
	require.Equal(t, []any{0, 1, "x"}, keysOf(c))

	c.OffsetUnset(ik(0))
	require.False(t, c.OffsetExists(ik(0)))
}

func TestIter(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(sk("b"), 2), collections.E(sk("c"), 3))

	var seen []string
	for k, v := range c.Iter() {
		if v == 3 {
			break
		}
		seen = append(seen, k.String())
	}
	require.Equal(t, []string{"a", "b"}, seen)

	n := 0
	for range c.Iter() {
		n++
	}
	require.Equal(t, 3, n, "every Iter call starts a fresh pass")
}

func TestToArrayIsCopy(t *testing.T) {
	c := ints(1, 2)
	entries := c.ToArray()
	entries[0].Value = 99
	require.Equal(t, []int{1, 2}, c.Items())
}

func TestString(t *testing.T) {
	require.Equal(t, "[1,2]", ints(1, 2).String())
	require.Equal(t, "0: 1", collections.E(ik(0), 1).String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMapMethod(t *testing.T) {
	c := ints(1, 2, 3)
	out := c.Map(func(n int, _ collections.Key) int { return n * 2 })
	require.Equal(t, []int{2, 4, 6}, out.Items())
	require.Equal(t, []int{1, 2, 3}, c.Items())
}

func TestMapKeepsKeys(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(sk("b"), 2))
	out := c.Map(func(n int, _ collections.Key) int { return n * 10 })
	require.Equal(t, []any{"a", "b"}, keysOf(out))
	require.Equal(t, []int{10, 20}, out.Items())
}

func TestFilter(t *testing.T) {
	out := ints(1, 2, 3, 4).Filter(even)
	require.Equal(t, []any{1, 3}, keysOf(out))
	require.Equal(t, []int{2, 4}, out.Items())

	assoc := collections.FromEntries(collections.E(sk("a"), 1), collections.E(sk("b"), 2)).
		Filter(func(n int, _ collections.Key) bool { return n > 1 })
	require.Equal(t, []collections.Entry[int]{collections.E(sk("b"), 2)}, assoc.ToArray())
}

func TestReject(t *testing.T) {
	require.Equal(t, []int{1, 3}, ints(1, 2, 3, 4).Reject(even).Items())
}

func TestNilCallbacksPanic(t *testing.T) {
	c := ints(1)
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.Each(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.Map(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.Filter(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.Reject(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.Sort(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.SortBy(nil) })
	requirePanicsWith(t, collections.ErrInvalidArgument, func() { c.SortByDesc(nil) })
}

func TestEach(t *testing.T) {
	var keys []string
	c := collections.FromEntries(collections.E(sk("x"), 1), collections.E(ik(4), 2))
	require.Same(t, c, c.Each(func(_ int, k collections.Key) { keys = append(keys, k.String()) }))
	require.Equal(t, []string{"x", "4"}, keys)
}

func TestReverse(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(ik(5), 2), collections.E(sk("b"), 3))
	r := c.Reverse()
	require.Equal(t, []any{"b", 5, "a"}, keysOf(r))
	require.Equal(t, c.ToArray(), r.Reverse().ToArray())
}

func TestMerge(t *testing.T) {
	a := collections.FromEntries(collections.E(ik(0), "a"), collections.E(sk("x"), "1"))
	b := collections.FromEntries(collections.E(ik(0), "b"), collections.E(sk("x"), "2"), collections.E(sk("y"), "3"))

	m, err := a.Merge(b)
	require.NoError(t, err)
	require.Equal(t, []any{0, "x", 1, "y"}, keysOf(m))
	require.Equal(t, []string{"a", "2", "b", "3"}, m.Items())
	require.Equal(t, []string{"a", "1"}, a.Items(), "receiver is untouched")
}

func TestMergeOperands(t *testing.T) {
	c := collections.FromEntries(collections.E(ik(5), 1))

	m, err := c.Merge([]int{2, 3})
	require.NoError(t, err)
	require.Equal(t, []any{0, 1, 2}, keysOf(m))

	m, err = c.Merge(map[string]int{"b": 2, "a": 3})
	require.NoError(t, err)
	require.Equal(t, []any{0, "a", "b"}, keysOf(m))

	m, err = c.Merge([]collections.Entry[int]{collections.E(sk("z"), 9)})
	require.NoError(t, err)
	require.Equal(t, []int{1, 9}, m.Items())

	m, err = c.Merge(nil)
	require.NoError(t, err)
	require.Equal(t, []any{0}, keysOf(m))

	_, err = c.Merge(42)
	require.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestCollapse(t *testing.T) {
	c := collections.New[any](
		[]int{1, 2},
		"not a list",
		collections.New(3),
		map[string]any{"k": "v"},
	)
	out := c.Collapse()
	require.Equal(t, []any{0, 1, 2, "k"}, keysOf(out))
	require.Equal(t, []any{1, 2, 3, "v"}, out.Items())

	bytesOnly := collections.New[any]([]byte("ab"), []any{"c"})
	require.Equal(t, []any{"c"}, bytesOnly.Collapse().Items())
	require.Equal(t, []any{[]byte("ab"), "c"}, bytesOnly.Flatten().Items())
	require.Equal(t, []any{[]byte("ab")}, collections.Make([]byte("ab")).Items())
}

func TestFlatten(t *testing.T) {
	c := collections.New[any](1, []any{2, []any{3, collections.New(4, 5)}}, map[string]int{"b": 7, "a": 6})
	require.Equal(t, []any{1, 2, 3, 4, 5, 6, 7}, c.Flatten().Items())
}

func TestSlice(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	require.Equal(t, []int{2, 3}, c.Slice(1, 2).Items())
	require.Equal(t, []any{0, 1}, keysOf(c.Slice(1, 2)))
	require.Equal(t, []int{4, 5}, c.Slice(-2).Items())
	require.Equal(t, []int{2, 3, 4}, c.Slice(1, -1).Items())
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.Slice(-10).Items())
	require.True(t, c.Slice(10).IsEmpty())
	require.True(t, c.Slice(3, -3).IsEmpty())
}

func TestSliceKeys(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(ik(5), 2), collections.E(ik(6), 3))
	require.Equal(t, []any{0, 1}, keysOf(c.Slice(1)))
	require.Equal(t, []any{5, 6}, keysOf(c.SlicePreservingKeys(1)))
	require.Equal(t, []any{"a"}, keysOf(c.Slice(0, 1)))
}

func TestTake(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	require.Equal(t, []int{1, 2}, c.Take(2).Items())
	require.Equal(t, []int{4, 5}, c.Take(-2).Items())
	require.Equal(t, []any{0, 1}, keysOf(c.Take(-2)))
	require.True(t, c.Take(0).IsEmpty())
	require.Equal(t, 5, c.Take(10).Count())
	require.Equal(t, 5, c.Take(math.MinInt).Count())
	require.Equal(t, 5, c.Take(math.MinInt+1).Count())
	require.True(t, collections.Empty[int]().Take(math.MinInt).IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSortIsAssociative(t *testing.T) {
	c := ints(5, 3, 1)
	require.Same(t, c, c.Sort(cmp.Compare[int]))
	require.Equal(t, []int{1, 3, 5}, c.Items())
	require.Equal(t, []any{2, 1, 0}, keysOf(c))
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func people() *collections.Collection[person] {
	return collections.New(
		person{"Carol", 40},
		person{"Alice", 30},
		person{"Bob", 40},
		person{"Dave", 30},
	)
}

func names(c *collections.Collection[person]) []string {
	return collections.Pluck(c, func(p person) string { return p.Name }).Items()
}

func TestSortByIsStable(t *testing.T) {
	c := people().SortBy(func(p person) any { return p.Age })
	require.Equal(t, []string{"Alice", "Dave", "Carol", "Bob"}, names(c))
	require.Equal(t, []any{1, 3, 0, 2}, keysOf(c))
}

func TestSortByDescIsStable(t *testing.T) {
	c := people().SortByDesc(func(p person) any { return p.Age })
	require.Equal(t, []string{"Carol", "Bob", "Alice", "Dave"}, names(c))
}

func TestSortByLooseComparison(t *testing.T) {
	c := collections.New[any]("10", 9, "100", "b", nil, true, "a", 2.5)
	c.SortBy(func(v any) any { return v })
	require.Equal(t, []any{nil, true, 2.5, 9, "10", "100", "a", "b"}, c.Items())
}

func TestValues(t *testing.T) {
	c := collections.FromEntries(collections.E(sk("a"), 1), collections.E(ik(9), 2))
	require.Same(t, c, c.Values())
	require.Equal(t, []any{0, 1}, keysOf(c))
	require.Equal(t, []int{1, 2}, c.Items())
	c.Append(3)
	require.Equal(t, []any{0, 1, 2}, keysOf(c))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ends
// ─────────────────────────────────────────────────────────────────────────────

func TestEndsOnEmpty(t *testing.T) {
	c := collections.Empty[int]()
	for name, fn := range map[string]func() (int, bool){
		"First": c.First,
		"Last":  c.Last,
		"Pop":   c.Pop,
		"Shift": c.Shift,
	} {
		v, ok := fn()
		require.False(t, ok, name)
		require.Zero(t, v, name)
	}
}

func TestFirstLast(t *testing.T) {
	c := ints(1, 2, 3)
	first, _ := c.First()
	last, _ := c.Last()
	require.Equal(t, 1, first)
	require.Equal(t, 3, last)
}

func TestPop(t *testing.T) {
	c := ints(1, 2, 3)
	v, ok := c.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	c.Append(9)
	require.Equal(t, []any{0, 1, 2}, keysOf(c))
}

func TestShift(t *testing.T) {
	c := collections.FromEntries(
		collections.E(ik(3), "a"),
		collections.E(sk("x"), "b"),
		collections.E(ik(7), "c"),
	)
	v, ok := c.Shift()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, []any{"x", 0}, keysOf(c))
}

func TestPushPrepends(t *testing.T) {
	c := collections.New("b", "c")
	require.Same(t, c, c.Push("a"))
	require.Equal(t, []string{"a", "b", "c"}, c.Items())
	require.Equal(t, []any{0, 1, 2}, keysOf(c))

	assoc := collections.FromEntries(collections.E(sk("k"), "v"), collections.E(ik(5), "w")).Push("z")
	require.Equal(t, []any{0, "k", 1}, keysOf(assoc))
	require.Equal(t, []string{"z", "v", "w"}, assoc.Items())
}

// ─────────────────────────────────────────────────────────────────────────────
// Plucking
// ─────────────────────────────────────────────────────────────────────────────

func TestLists(t *testing.T) {
	c := people()
	byName, err := c.Lists("Name")
	require.NoError(t, err)
	require.Equal(t, []any{"Carol", "Alice", "Bob", "Dave"}, byName.Items())

	byTag, err := c.Lists("age", "name")
	require.NoError(t, err)
	require.Equal(t, []any{"Carol", "Alice", "Bob", "Dave"}, keysOf(byTag))
	require.Equal(t, []any{40, 30, 40, 30}, byTag.Items())

	maps := collections.New(
		map[string]any{"id": 3, "v": "x"},
		map[string]any{"id": "7", "v": "y"},
		map[string]any{"id": 3, "v": "z"},
	)
	keyed, err := maps.Lists("v", "id")
	require.NoError(t, err)
	require.Equal(t, []any{3, 7}, keysOf(keyed))
	require.Equal(t, []any{"z", "y"}, keyed.Items())
}

func TestListsUnresolvedField(t *testing.T) {
	_, err := people().Lists("Salary")
	require.ErrorIs(t, err, collections.ErrFieldResolution)

	_, err = collections.New[any](map[string]any{"a": 1}, 42).Lists("a")
	require.ErrorIs(t, err, collections.ErrFieldResolution)
}

func TestImplode(t *testing.T) {
	s, err := people().Take(2).Implode("name", ", ")
	require.NoError(t, err)
	require.Equal(t, "Carol, Alice", s)

	s, err = collections.New(
		map[string]any{"v": 1},
		map[string]any{"v": true},
		map[string]any{"v": 2.5},
	).Implode("v")
	require.NoError(t, err)
	require.Equal(t, "1true2.5", s)

	_, err = people().Implode("missing")
	require.True(t, errors.Is(err, collections.ErrFieldResolution))
}

func TestFetch(t *testing.T) {
	c := collections.New[any](
		map[string]any{"user": map[string]any{"name": "Alice"}},
		map[string]any{"team": "ops"},
		map[string]any{"user": collections.FromEntries(collections.E[any](sk("name"), "Bob"))},
	)
	require.Equal(t, []any{"Alice", "Bob"}, c.Fetch("user.name").Items())
	require.True(t, c.Fetch("nothing").IsEmpty())
}

func TestEntriesRoundTrip(t *testing.T) {
	c := collections.FromEntries(
		collections.E[any](sk("b"), 1),
		collections.E[any](ik(4), []any{"x"}),
		collections.E[any](sk("a"), nil),
	)
	c.Sort(func(x, y any) int { return 0 }).Forget(sk("missing"))

	again := collections.FromEntries(c.ToArray()...)
	require.Equal(t, c.ToArray(), again.ToArray())
	require.Equal(t, c.Count(), len(again.ToArray()))
	require.Equal(t, c.String(), again.String())
}
