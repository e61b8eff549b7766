package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

type keyKind uint8

const (
	kindNone keyKind = iota
	kindInt
	kindString
)

// Key identifies an entry of a [Collection]. A key is either an integer or a
// string; the two never compare equal, so IntKey(1) and a string key "a" can
// live side by side.
//
// String keys that spell a canonical decimal integer ("7", "-3") are stored
// as integer keys, so StrKey("7") == IntKey(7). Non-canonical spellings such
// as "07", "+7" or "7.0" stay strings.
//
// The zero Key is [NoKey], the append sentinel accepted by
// [Collection.OffsetSet].
type Key struct {
	kind keyKind
	num  int
	str  string
}

// NoKey is the append sentinel: OffsetSet(NoKey, v) stores v under the next
// free integer key.
var NoKey Key

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{kind: kindInt, num: n} }

// StrKey returns the string key s, normalised to an integer key when s is a
// canonical decimal integer.
func StrKey(s string) Key {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return IntKey(n)
	}
	return Key{kind: kindString, str: s}
}

// KeyOf converts a dynamic value to a Key.
//
//   - nil becomes the string key "";
//   - strings go through [StrKey];
//   - bools become 0 or 1;
//   - integers, unsigned integers, floats and json.Number become integer keys
//     (floats are truncated);
//   - a Key is returned unchanged.
//
// Any other type yields an error wrapping [ErrInvalidKey].
func KeyOf(v any) (Key, error) {
	switch k := v.(type) {
	case nil:
		return StrKey(""), nil
	case Key:
		return k, nil
	case string:
		return StrKey(k), nil
	case bool:
		if k {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		n, err := cast.ToIntE(k)
		if err != nil {
			return NoKey, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return IntKey(n), nil
	}
	return NoKey, fmt.Errorf("%w: %T", ErrInvalidKey, v)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.kind == kindInt }

// IsZero reports whether k is the [NoKey] sentinel.
func (k Key) IsZero() bool { return k.kind == kindNone }

// Int returns the integer value of an integer key and 0 otherwise.
func (k Key) Int() int { return k.num }

// String returns the decimal form of an integer key or the string itself.
// [NoKey] renders as the empty string.
func (k Key) String() string {
	if k.kind == kindInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Interface returns the key as a plain int or string.
func (k Key) Interface() any {
	if k.kind == kindInt {
		return k.num
	}
	return k.str
}

// compareKeys orders integer keys numerically before string keys, which are
// ordered lexically.
func compareKeys(a, b Key) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	if a.kind == kindInt {
		return cmp.Compare(a.num, b.num)
	}
	return cmp.Compare(a.str, b.str)
}
