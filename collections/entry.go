package collections

import "fmt"

// Entry is a single key/value pair of a [Collection]. It is the element type
// of [Collection.ToArray] and the input of [FromEntries].
type Entry[V any] struct {
	Key   Key
	Value V
}

// E builds an [Entry]; it keeps FromEntries calls short.
//
//	collections.FromEntries(
//	    collections.E(collections.StrKey("a"), 1),
//	    collections.E(collections.NoKey, 2), // appended under key 0
//	)
func E[V any](key Key, value V) Entry[V] { return Entry[V]{Key: key, Value: value} }

// String returns a human-readable representation: "key: value".
func (e Entry[V]) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}
