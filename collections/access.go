package collections

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Key-based access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, or def[0] (the zero value when no
// default is given) when key is absent. It never fails.
//
//	c.Get(collections.StrKey("name"), "anonymous")
func (c *Collection[V]) Get(key Key, def ...V) V {
	if v, ok := c.values[key]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	var zero V
	return zero
}

// Lookup returns the value stored under key together with a presence flag.
func (c *Collection[V]) Lookup(key Key) (V, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Collection[V]) Has(key Key) bool {
	_, ok := c.values[key]
	return ok
}

// Put stores value under key. An existing key keeps its position; a new key
// is appended at the end. Put(NoKey, v) behaves like [Collection.Append].
func (c *Collection[V]) Put(key Key, value V) *Collection[V] {
	c.OffsetSet(key, value)
	return c
}

// Set is an alias for [Collection.Put].
func (c *Collection[V]) Set(key Key, value V) *Collection[V] { return c.Put(key, value) }

// Forget removes key. Removing an absent key is a no-op.
func (c *Collection[V]) Forget(key Key) *Collection[V] {
	c.remove(key)
	return c
}

// Append stores value under the next free integer key: one more than the
// largest integer key ever stored, or 0.
//
//	c := collections.New("a", "b")
//	c.Forget(collections.IntKey(1)).Append("c") // keys 0, 2
func (c *Collection[V]) Append(value V) *Collection[V] {
	c.appendValue(value)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Index-access protocol
//
// These methods implement [IndexAccessible]. They differ from the methods
// above only in OffsetGet, which reports a missing key as an error instead of
// falling back to a default.
// ─────────────────────────────────────────────────────────────────────────────

// OffsetExists reports whether key is present.
func (c *Collection[V]) OffsetExists(key Key) bool { return c.Has(key) }

// OffsetGet returns the value stored under key, or an error wrapping
// [ErrKeyNotFound] when key is absent.
func (c *Collection[V]) OffsetGet(key Key) (V, error) {
	v, ok := c.values[key]
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrKeyNotFound, key.String())
	}
	return v, nil
}

// OffsetSet stores value under key, or under the next free integer key when
// key is [NoKey].
func (c *Collection[V]) OffsetSet(key Key, value V) {
	if key.IsZero() {
		c.appendValue(value)
		return
	}
	c.put(key, value)
}

// OffsetUnset removes key. Removing an absent key is a no-op.
func (c *Collection[V]) OffsetUnset(key Key) { c.remove(key) }
