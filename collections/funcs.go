package collections

import "fmt"

// This file contains package-level generic functions for operations that
// turn a Collection[V] into a Collection[U] (U ≠ V) or into a collection
// keyed by derived values.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	labels := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every entry and returns a new Collection[U] with the same
// keys in the same order.
//
//	labels := collections.Map(collections.New(1, 2),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) })
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	if fn == nil {
		panic(fmt.Errorf("%w: Map requires a callback", ErrInvalidArgument))
	}
	out := newSized[U](len(c.keys))
	for _, k := range c.keys {
		out.put(k, fn(c.values[k], k))
	}
	out.next = max(out.next, c.next)
	return out
}

// Reduce folds the values in iteration order into a single U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3),
//	    func(acc, n int, _ collections.Key) int { return acc + n }, 0)
func Reduce[V, U any](c *Collection[V], fn func(U, V, Key) U, initial U) U {
	result := initial
	for _, k := range c.keys {
		result = fn(result, c.values[k], k)
	}
	return result
}

// Pluck extracts a U from every value and returns the results as a list.
// It is the typed counterpart of [Collection.Lists].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[V, U any](c *Collection[V], fn func(V) U) *Collection[U] {
	out := newSized[U](len(c.keys))
	for _, k := range c.keys {
		out.appendValue(fn(c.values[k]))
	}
	return out
}

// GroupBy groups the values by the key fn derives from each of them. Groups
// appear in the order their first member appears; members of a group are
// listed under 0..n-1 in their original order.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) collections.Key { return collections.StrKey(e.Department) })
func GroupBy[V any](c *Collection[V], fn func(V) Key) *Collection[*Collection[V]] {
	groups := Empty[*Collection[V]]()
	for _, k := range c.keys {
		v := c.values[k]
		gk := fn(v)
		group, ok := groups.Lookup(gk)
		if !ok {
			group = Empty[V]()
			groups.OffsetSet(gk, group)
		}
		group.appendValue(v)
	}
	return groups
}

// KeyBy re-keys the values by the key fn derives from each of them. When two
// values share a key the later one wins and takes the earlier one's
// position.
//
//	byID := collections.KeyBy(users,
//	    func(u User) collections.Key { return collections.IntKey(u.ID) })
func KeyBy[V any](c *Collection[V], fn func(V) Key) *Collection[V] {
	out := newSized[V](len(c.keys))
	for _, k := range c.keys {
		v := c.values[k]
		out.OffsetSet(fn(v), v)
	}
	return out
}
