package collections

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/plainview/go-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ends
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value. Returns the zero value and false when the
// collection is empty.
func (c *Collection[V]) First() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	return c.values[c.keys[0]], true
}

// Last returns the last value. Returns the zero value and false when the
// collection is empty.
func (c *Collection[V]) Last() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	return c.values[c.keys[len(c.keys)-1]], true
}

// Pop removes and returns the last value. Returns the zero value and false
// when the collection is empty.
func (c *Collection[V]) Pop() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	k := c.keys[len(c.keys)-1]
	v := c.values[k]
	delete(c.values, k)
	c.keys = c.keys[:len(c.keys)-1]
	if k.kind == kindInt && k.num == c.next-1 {
		c.next = k.num
	}
	return v, true
}

// Shift removes and returns the first value. The remaining integer keys are
// renumbered from zero; string keys are left untouched. Returns the zero value
// and false when the collection is empty.
func (c *Collection[V]) Shift() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	entries := c.ToArray()
	c.rebuild(entries[1:])
	return entries[0].Value, true
}

// Push inserts value at the front of the collection and renumbers the integer
// keys from zero, so value ends up under key 0. Returns c.
//
// Push prepends rather than appends; use [Collection.Append] to add at the
// end.
//
//	c := collections.New("b", "c").Push("a") // [a, b, c]
func (c *Collection[V]) Push(value V) *Collection[V] {
	entries := make([]Entry[V], 0, len(c.keys)+1)
	entries = append(entries, Entry[V]{Key: IntKey(0), Value: value})
	entries = append(entries, c.ToArray()...)
	c.rebuild(entries)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Plucking
// ─────────────────────────────────────────────────────────────────────────────

// Lists reads valueField from every item and returns the results as a list.
// When keyField is given, each result is stored under the key read from
// keyField instead (a repeated key overwrites in place).
//
// Fields are resolved with [arr.Field]: struct fields by name or json tag,
// map keys, collection keys. An item on which a field cannot be resolved
// aborts the call with an error wrapping [ErrFieldResolution].
//
//	names, _ := users.Lists("Name")
//	byID, _ := users.Lists("Name", "ID")
func (c *Collection[V]) Lists(valueField string, keyField ...string) (*Collection[any], error) {
	out := newSized[any](len(c.keys))
	for _, k := range c.keys {
		item := c.values[k]
		value, err := listValue(item, k, valueField)
		if err != nil {
			return nil, err
		}
		if len(keyField) == 0 {
			out.appendValue(value)
			continue
		}
		raw, err := listValue(item, k, keyField[0])
		if err != nil {
			return nil, err
		}
		key, err := KeyOf(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q of entry %q: %w", keyField[0], k.String(), err)
		}
		out.put(key, value)
	}
	return out, nil
}

func listValue(item any, k Key, field string) (any, error) {
	v, ok := arr.Field(item, field)
	if !ok {
		return nil, fmt.Errorf("%w: %q on entry %q (%T)", ErrFieldResolution, field, k.String(), item)
	}
	return v, nil
}

// Implode joins the valueField of every item with glue[0] (no separator when
// glue is omitted). Values are converted with [cast.ToStringE].
//
//	s, _ := users.Implode("Name", ", ") // "Alice, Bob"
func (c *Collection[V]) Implode(valueField string, glue ...string) (string, error) {
	values, err := c.Lists(valueField)
	if err != nil {
		return "", err
	}
	sep := ""
	if len(glue) > 0 {
		sep = glue[0]
	}
	parts := make([]string, 0, values.Count())
	for _, v := range values.Items() {
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", fmt.Errorf("collections: implode %q: %w", valueField, err)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// Fetch extracts a nested column from every value using a dot-notation path
// and returns it as a new list. Values on which the path does not resolve are
// left out.
//
//	collections.New[any](
//	    map[string]any{"user": map[string]any{"name": "Alice"}},
//	    map[string]any{"team": "ops"},
//	).Fetch("user.name") // [Alice]
func (c *Collection[V]) Fetch(path string) *Collection[any] {
	return New(arr.Fetch(c.SequenceValues(), path)...)
}
