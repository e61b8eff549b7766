package collections

import (
	"fmt"
	"slices"

	"github.com/plainview/go-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry in iteration order and returns c.
// Panics with an error wrapping [ErrInvalidArgument] if fn is nil.
func (c *Collection[V]) Each(fn func(V, Key)) *Collection[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: Each requires a callback", ErrInvalidArgument))
	}
	for _, k := range c.keys {
		fn(c.values[k], k)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new collection with the same keys in the same order and every
// value replaced by fn(value, key).
//
// For a transformation to another element type use the package-level [Map].
func (c *Collection[V]) Map(fn func(V, Key) V) *Collection[V] {
	return Map(c, fn)
}

// Filter returns a new collection with only the entries for which
// fn(value, key) returns true. Keys and relative order are kept.
func (c *Collection[V]) Filter(fn func(V, Key) bool) *Collection[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: Filter requires a predicate", ErrInvalidArgument))
	}
	out := newSized[V](len(c.keys))
	for _, k := range c.keys {
		if v := c.values[k]; fn(v, k) {
			out.put(k, v)
		}
	}
	out.next = max(out.next, c.next)
	return out
}

// Reject returns a new collection without the entries for which fn returns
// true. It is the complement of [Collection.Filter].
func (c *Collection[V]) Reject(fn func(V, Key) bool) *Collection[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: Reject requires a predicate", ErrInvalidArgument))
	}
	return c.Filter(func(v V, k Key) bool { return !fn(v, k) })
}

// Reverse returns a new collection with the entries in reverse order. Every
// value keeps its key.
func (c *Collection[V]) Reverse() *Collection[V] {
	out := newSized[V](len(c.keys))
	for i := len(c.keys) - 1; i >= 0; i-- {
		k := c.keys[i]
		out.put(k, c.values[k])
	}
	out.next = max(out.next, c.next)
	return out
}

// Merge returns a new collection holding the entries of c followed by those
// of items, using array-merge rules:
//
//   - integer keys from both sides are renumbered 0, 1, 2, … in order;
//   - a string key of items overwrites the same key of c in place, otherwise
//     it is appended.
//
// items may be a *Collection[V], []Entry[V], []V or map[string]V (keys in
// ascending order). Anything else yields an error wrapping
// [ErrInvalidArgument].
//
//	a := collections.FromEntries(E(IntKey(0), "a"), E(StrKey("x"), "1"))
//	b := collections.FromEntries(E(IntKey(0), "b"), E(StrKey("x"), "2"), E(StrKey("y"), "3"))
//	m, _ := a.Merge(b) // {0: a, x: 2, 1: b, y: 3}
func (c *Collection[V]) Merge(items any) (*Collection[V], error) {
	var entries []Entry[V]
	switch v := items.(type) {
	case nil:
	case *Collection[V]:
		if v != nil {
			entries = v.ToArray()
		}
	case []Entry[V]:
		entries = v
	case []V:
		entries = New(v...).ToArray()
	case map[string]V:
		entries = FromMap(v).ToArray()
	default:
		return nil, fmt.Errorf("%w: cannot merge %T", ErrInvalidArgument, items)
	}

	out := newSized[V](len(c.keys) + len(entries))
	out.mergeEntries(c.ToArray())
	out.mergeEntries(entries)
	return out, nil
}

// mergeEntries appends entries with array-merge rules (see Merge).
func (c *Collection[V]) mergeEntries(entries []Entry[V]) {
	for _, e := range entries {
		if e.Key.kind == kindString {
			c.put(e.Key, e.Value)
		} else {
			c.appendValue(e.Value)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Collapse merges every array-like value (collections, slices, arrays, maps)
// into one collection, one level deep, using the same rules as
// [Collection.Merge]: integer keys are renumbered, string keys overwrite.
// Values that are not array-like are skipped.
//
//	collections.New([]int{1, 2}, []int{3}).Collapse() // [1, 2, 3]
func (c *Collection[V]) Collapse() *Collection[any] {
	out := Empty[any]()
	for _, k := range c.keys {
		if entries, ok := sequenceEntries(c.values[k]); ok {
			out.mergeEntries(entries)
		}
	}
	return out
}

// Flatten returns a list collection of every leaf value, descending through
// nested collections, slices, arrays and maps to any depth. Keys are
// discarded.
//
//	collections.New[any](1, []any{2, []any{3}}).Flatten() // [1, 2, 3]
func (c *Collection[V]) Flatten() *Collection[any] {
	return New(arr.Flatten(c)...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a new collection with the entries starting at offset.
//
// A negative offset counts from the end. Without length the slice runs to the
// end; a non-negative length caps the number of entries and a negative length
// stops that many entries before the end. Integer keys are renumbered from
// zero, string keys are kept.
//
//	collections.New(1, 2, 3, 4, 5).Slice(1, 2)   // [2, 3]
//	collections.New(1, 2, 3, 4, 5).Slice(-2)     // [4, 5]
//	collections.New(1, 2, 3, 4, 5).Slice(1, -1)  // [2, 3, 4]
func (c *Collection[V]) Slice(offset int, length ...int) *Collection[V] {
	return c.slice(offset, length, false)
}

// SlicePreservingKeys is [Collection.Slice] without renumbering integer keys.
func (c *Collection[V]) SlicePreservingKeys(offset int, length ...int) *Collection[V] {
	return c.slice(offset, length, true)
}

func (c *Collection[V]) slice(offset int, length []int, preserveKeys bool) *Collection[V] {
	n := len(c.keys)
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	end := n
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			end = n + l
		} else if l < n-start {
			end = start + l
		}
	}
	if start >= n || end <= start {
		return Empty[V]()
	}

	out := newSized[V](end - start)
	for _, k := range c.keys[start:end] {
		if preserveKeys || k.kind == kindString {
			out.put(k, c.values[k])
		} else {
			out.appendValue(c.values[k])
		}
	}
	return out
}

// Take returns the first limit entries, or the last -limit entries when limit
// is negative. Take(0) is empty.
func (c *Collection[V]) Take(limit int) *Collection[V] {
	if limit < 0 {
		limit = max(limit, -len(c.keys))
		return c.Slice(limit, -limit)
	}
	return c.Slice(0, limit)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering (mutating)
// ─────────────────────────────────────────────────────────────────────────────

// Sort reorders the entries in place with a stable sort driven by
// cmp(a, b) (negative, zero or positive, like [cmp.Compare]). Keys stay
// attached to their values. Returns c.
//
//	c := collections.New(5, 3, 1).Sort(cmp.Compare[int])
//	// iteration order: 2 → 1, 1 → 3, 0 → 5
func (c *Collection[V]) Sort(cmp func(a, b V) int) *Collection[V] {
	if cmp == nil {
		panic(fmt.Errorf("%w: Sort requires a comparison function", ErrInvalidArgument))
	}
	slices.SortStableFunc(c.keys, func(a, b Key) int {
		return cmp(c.values[a], c.values[b])
	})
	return c
}

// SortBy reorders the entries in place, ascending by fn(value). Ties keep
// their relative order and keys stay attached to their values. Returns c.
//
// Derived values are compared loosely: numbers (and numeric strings) by
// value, strings lexically, false before true, nil first, time.Time
// chronologically; values of unrelated types are ordered by kind.
//
// Mixing numeric and non-numeric strings breaks transitivity ("2" < "10"
// numerically, "10" < "1x" and "1x" < "2" lexically), so such values have no
// well-defined order.
func (c *Collection[V]) SortBy(fn func(V) any) *Collection[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: SortBy requires a callback", ErrInvalidArgument))
	}
	return c.sortBy(fn, compareLoose)
}

// SortByDesc is [Collection.SortBy] in descending order. Ties keep their
// relative order.
func (c *Collection[V]) SortByDesc(fn func(V) any) *Collection[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: SortByDesc requires a callback", ErrInvalidArgument))
	}
	return c.sortBy(fn, func(a, b any) int { return compareLoose(b, a) })
}

func (c *Collection[V]) sortBy(fn func(V) any, compare func(a, b any) int) *Collection[V] {
	type ranked struct {
		key Key
		by  any
	}
	rs := make([]ranked, len(c.keys))
	for i, k := range c.keys {
		rs[i] = ranked{key: k, by: fn(c.values[k])}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int { return compare(a.by, b.by) })
	for i, r := range rs {
		c.keys[i] = r.key
	}
	return c
}

// Values discards the keys in place, renumbering the entries 0..n-1 in their
// current order. Returns c.
func (c *Collection[V]) Values() *Collection[V] {
	values := c.Items()
	c.keys = make([]Key, 0, len(values))
	c.values = make(map[Key]V, len(values))
	c.next = 0
	for _, v := range values {
		c.appendValue(v)
	}
	return c
}
