package collections

import (
	"iter"
	"reflect"
	"slices"
)

// Collection is a generic ordered associative container.
//
// Every entry pairs a unique [Key] with a value of type V. Iteration follows
// insertion order unless an operation explicitly reorders (Sort, SortBy,
// Reverse) or reindexes (Values, Shift, Push, Slice) the entries.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)                     // keys 0, 1, 2
//	c := collections.FromEntries(
//	    collections.E(collections.StrKey("a"), 1),
//	    collections.E(collections.StrKey("b"), 2),
//	)
//	c := collections.Empty[string]()
//
// # Mutating vs transforming
//
// The split between the two kinds of operation is part of the contract:
//
//   - mutating operations change the receiver and return it for chaining:
//     Each, Sort, SortBy, SortByDesc, Values, Put, Set, Forget, Push, Pop,
//     Shift, Append, OffsetSet, OffsetUnset;
//   - transforming operations leave the receiver untouched and return a new
//     collection: Map, Filter, Reject, Collapse, Flatten, Merge, Reverse,
//     Slice, Take, Fetch.
//
// Values are never deep-copied: a transformation shares element values with
// its source but never its storage.
//
// The zero value is an empty collection ready to use. A Collection is not
// safe for concurrent mutation.
type Collection[V any] struct {
	keys   []Key
	values map[Key]V
	// next is the next free integer key used by Append.
	next int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list collection: values are stored under the keys 0..n-1.
func New[V any](values ...V) *Collection[V] {
	c := newSized[V](len(values))
	for _, v := range values {
		c.appendValue(v)
	}
	return c
}

// FromEntries creates a collection from key/value pairs in order. A later
// entry with an already used key overwrites the value in place.
// Entries keyed with [NoKey] are appended under the next free integer key.
func FromEntries[V any](entries ...Entry[V]) *Collection[V] {
	c := newSized[V](len(entries))
	for _, e := range entries {
		c.OffsetSet(e.Key, e.Value)
	}
	return c
}

// FromMap creates a collection from a Go map. Go maps are unordered, so the
// keys are inserted in ascending order (integer-like keys first).
func FromMap[V any](m map[string]V) *Collection[V] {
	keys := make([]Key, 0, len(m))
	raw := make(map[Key]string, len(m))
	for s := range m {
		k := StrKey(s)
		keys = append(keys, k)
		raw[k] = s
	}
	slices.SortFunc(keys, compareKeys)
	c := newSized[V](len(keys))
	for _, k := range keys {
		c.put(k, m[raw[k]])
	}
	return c
}

// Empty creates an empty collection.
func Empty[V any]() *Collection[V] { return newSized[V](0) }

// Make wraps an arbitrary value in a Collection[any]:
//
//   - nil yields an empty collection;
//   - a *Collection[any] is returned as-is (same instance);
//   - any other *Collection[X] is rewrapped with the same keys and order;
//   - slices and arrays become list collections ([]byte is a scalar);
//   - maps with string or integer keys are inserted in ascending key order;
//   - []Entry[any] is used as the entry list;
//   - anything else becomes a one-element list.
func Make(value any) *Collection[any] {
	switch v := value.(type) {
	case nil:
		return Empty[any]()
	case *Collection[any]:
		if v == nil {
			return Empty[any]()
		}
		return v
	case []Entry[any]:
		return FromEntries(v...)
	}
	if entries, ok := sequenceEntries(value); ok {
		return FromEntries(entries...)
	}
	return New(value)
}

func newSized[V any](n int) *Collection[V] {
	return &Collection[V]{
		keys:   make([]Key, 0, n),
		values: make(map[Key]V, n),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Storage primitives
// ─────────────────────────────────────────────────────────────────────────────

// put inserts or overwrites k. Overwriting keeps the entry's position.
func (c *Collection[V]) put(k Key, v V) {
	if c.values == nil {
		c.values = make(map[Key]V)
	}
	if _, exists := c.values[k]; !exists {
		c.keys = append(c.keys, k)
		if k.kind == kindInt && k.num >= c.next {
			c.next = k.num + 1
		}
	}
	c.values[k] = v
}

// appendValue stores v under the next free integer key.
func (c *Collection[V]) appendValue(v V) {
	c.put(IntKey(c.next), v)
}

// remove deletes k and reports whether it was present.
func (c *Collection[V]) remove(k Key) bool {
	if _, exists := c.values[k]; !exists {
		return false
	}
	delete(c.values, k)
	if i := slices.Index(c.keys, k); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	return true
}

// rebuild replaces the contents with entries, renumbering integer keys from
// zero and keeping string keys.
func (c *Collection[V]) rebuild(entries []Entry[V]) {
	c.keys = make([]Key, 0, len(entries))
	c.values = make(map[Key]V, len(entries))
	c.next = 0
	for _, e := range entries {
		if e.Key.kind == kindString {
			c.put(e.Key, e.Value)
		} else {
			c.appendValue(e.Value)
		}
	}
}

// isList reports whether the keys are exactly 0..n-1 in iteration order.
func (c *Collection[V]) isList() bool {
	for i, k := range c.keys {
		if k.kind != kindInt || k.num != i {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Core accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (c *Collection[V]) Count() int { return len(c.keys) }

// IsEmpty reports whether the collection has no entries.
func (c *Collection[V]) IsEmpty() bool { return len(c.keys) == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[V]) IsNotEmpty() bool { return len(c.keys) > 0 }

// ToArray returns the entries in iteration order. The slice is a copy;
// changing it does not affect the collection.
func (c *Collection[V]) ToArray() []Entry[V] {
	out := make([]Entry[V], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[V]{Key: k, Value: c.values[k]}
	}
	return out
}

// All is an alias for [Collection.ToArray].
func (c *Collection[V]) All() []Entry[V] { return c.ToArray() }

// Keys returns the keys in iteration order.
func (c *Collection[V]) Keys() []Key { return slices.Clone(c.keys) }

// Items returns the values in iteration order.
func (c *Collection[V]) Items() []V {
	out := make([]V, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.values[k]
	}
	return out
}

// Iter returns an iterator over the key/value pairs in iteration order.
// Each call starts a fresh pass.
//
//	for k, v := range c.Iter() {
//	    fmt.Println(k, v)
//	}
func (c *Collection[V]) Iter() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// String returns the JSON form of the collection. It implements
// [fmt.Stringer]; encoding errors render as an empty string.
func (c *Collection[V]) String() string {
	b, err := c.ToJSON(0)
	if err != nil {
		return ""
	}
	return string(b)
}

// SequenceValues returns the values as []any. It lets the arr helpers
// descend into collections of any element type.
func (c *Collection[V]) SequenceValues() []any {
	if c == nil {
		return nil
	}
	out := make([]any, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.values[k]
	}
	return out
}

// ReadField resolves name as a key, so collections can sit anywhere along a
// dot-notation path.
func (c *Collection[V]) ReadField(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[StrKey(name)]
	return v, ok
}

// entriesAny returns the entries with values widened to any.
func (c *Collection[V]) entriesAny() []Entry[any] {
	if c == nil {
		return nil
	}
	out := make([]Entry[any], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[any]{Key: k, Value: c.values[k]}
	}
	return out
}

// anyEntrySource is satisfied by every *Collection[X].
type anyEntrySource interface {
	entriesAny() []Entry[any]
}

// sequenceEntries reports whether v is array-like and, if so, returns its
// entries: collections keep their keys, slices and arrays are keyed 0..n-1
// and maps with string or integer keys are returned in ascending key order.
// []byte is a scalar, as in arr.Flatten.
func sequenceEntries(v any) ([]Entry[any], bool) {
	switch s := v.(type) {
	case anyEntrySource:
		return s.entriesAny(), true
	case []byte:
		return nil, false
	case []any:
		out := make([]Entry[any], len(s))
		for i, item := range s {
			out[i] = Entry[any]{Key: IntKey(i), Value: item}
		}
		return out, true
	case map[string]any:
		return FromMap(s).entriesAny(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Entry[any], rv.Len())
		for i := range out {
			out[i] = Entry[any]{Key: IntKey(i), Value: rv.Index(i).Interface()}
		}
		return out, true
	case reflect.Map:
		out := make([]Entry[any], 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k, err := KeyOf(it.Key().Interface())
			if err != nil {
				return nil, false
			}
			out = append(out, Entry[any]{Key: k, Value: it.Value().Interface()})
		}
		slices.SortFunc(out, func(a, b Entry[any]) int { return compareKeys(a.Key, b.Key) })
		return out, true
	}
	return nil, false
}
