package collections

import "iter"

// Countable is satisfied by anything that reports an element count.
type Countable interface {
	Count() int
}

// IndexAccessible is the index-style access protocol of [Collection].
//
// OffsetGet is the strict accessor: a missing key is an error wrapping
// [ErrKeyNotFound]. OffsetSet with [NoKey] appends under the next free
// integer key.
type IndexAccessible[V any] interface {
	OffsetExists(key Key) bool
	OffsetGet(key Key) (V, error)
	OffsetSet(key Key, value V)
	OffsetUnset(key Key)
}

// Enumerable is the read/iterate surface of [Collection][V].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative ordered containers without depending on the concrete
// *Collection type.
type Enumerable[V any] interface {
	Countable
	IndexAccessible[V]

	// Iter yields the key/value pairs in iteration order. Every call starts
	// a fresh pass.
	Iter() iter.Seq2[Key, V]

	// ToArray returns a copy of the entries in iteration order.
	ToArray() []Entry[V]

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// First and Last return the value at either end, or the zero value and
	// false when empty.
	First() (V, bool)
	Last() (V, bool)
}

var (
	_ Enumerable[any]      = (*Collection[any])(nil)
	_ IndexAccessible[int] = (*Collection[int])(nil)
)
