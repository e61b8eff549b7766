package collections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strings"
)

// JSONFlag controls [Collection.ToJSON]. Flags combine with |.
type JSONFlag uint

const (
	// JSONPrettyPrint indents the output with four spaces.
	JSONPrettyPrint JSONFlag = 1 << iota

	// JSONUnescapedHTML leaves <, > and & unescaped in strings.
	JSONUnescapedHTML

	// JSONForceObject encodes every collection as an object, lists included.
	JSONForceObject
)

// jsonWriter is implemented by every *Collection[X] so that nested
// collections honour the flags of the outermost call.
type jsonWriter interface {
	writeJSON(buf *bytes.Buffer, flags JSONFlag) error
}

// ToJSON encodes the collection.
//
// A collection whose keys are exactly 0..n-1 in iteration order encodes as a
// JSON array; any other collection encodes as an object whose members follow
// iteration order (integer keys become their decimal strings). Flags also
// reach collections nested in []any and map[string]any values. Whole-number
// floats keep a fraction (2.0) so they decode back as floats.
//
//	collections.New(1, 2).ToJSON(0)                                // [1,2]
//	collections.New(1, 2).Forget(collections.IntKey(0)).ToJSON(0)  // {"1":2}
func (c *Collection[V]) ToJSON(flags JSONFlag) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.writeJSON(&buf, flags); err != nil {
		return nil, err
	}
	if flags&JSONPrettyPrint == 0 {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, fmt.Errorf("collections: indent json: %w", err)
	}
	return out.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler]; it is ToJSON(0).
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	return c.ToJSON(0)
}

func (c *Collection[V]) writeJSON(buf *bytes.Buffer, flags JSONFlag) error {
	if c == nil {
		buf.WriteString("null")
		return nil
	}
	if flags&JSONForceObject == 0 && c.isList() {
		buf.WriteByte('[')
		for i, k := range c.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, c.values[k], flags); err != nil {
				return fmt.Errorf("collections: encode index %d: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	}

	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(buf, k.String(), flags); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(buf, c.values[k], flags); err != nil {
			return fmt.Errorf("collections: encode key %q: %w", k.String(), err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any, flags JSONFlag) error {
	switch val := v.(type) {
	case jsonWriter:
		return val.writeJSON(buf, flags)
	case float64:
		return writeJSONFloat(buf, val, flags)
	case float32:
		return writeJSONFloat(buf, val, flags)
	case []any:
		if val == nil {
			break
		}
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item, flags); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]any:
		if val == nil {
			break
		}
		buf.WriteByte('{')
		for i, name := range slices.Sorted(maps.Keys(val)) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, name, flags); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, val[name], flags); err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
		}
		buf.WriteByte('}')
		return nil
	}
	return encodeJSON(buf, v, flags)
}

// writeJSONFloat keeps a fractional part on whole numbers (2 → 2.0) so that
// they decode back as floats.
func writeJSONFloat[F float32 | float64](buf *bytes.Buffer, f F, flags JSONFlag) error {
	start := buf.Len()
	if err := encodeJSON(buf, f, flags); err != nil {
		return err
	}
	if !bytes.ContainsAny(buf.Bytes()[start:], ".eE") {
		buf.WriteString(".0")
	}
	return nil
}

func encodeJSON(buf *bytes.Buffer, v any, flags JSONFlag) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(flags&JSONUnescapedHTML == 0)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a JSON array
// (keys 0..n-1), a JSON object (members in document order, numeric member
// names become integer keys) or null (empty collection). A repeated member
// name keeps its first position and its last value.
//
// For Collection[any], nested arrays and objects are decoded as
// *Collection[any] as well, so member order is kept at every depth, and
// numbers become int when written without a fraction or exponent and in
// range, float64 otherwise.
func (c *Collection[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	_, deep := any(new(V)).(*any)
	if deep {
		dec.UseNumber()
	}

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("collections: decode json: %w", err)
	}
	fresh := Empty[V]()
	switch tok {
	case nil:
	case json.Delim('['), json.Delim('{'):
		if err := fresh.decodeJSONBody(dec, tok.(json.Delim), deep); err != nil {
			return err
		}
	default:
		return fmt.Errorf("collections: decode json: expected array or object, got %v", tok)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("collections: decode json: trailing data after top-level value")
	}
	*c = *fresh
	return nil
}

// decodeJSONBody reads the members of an array or object whose opening
// delimiter has already been consumed, including the closing delimiter.
func (c *Collection[V]) decodeJSONBody(dec *json.Decoder, open json.Delim, deep bool) error {
	for dec.More() {
		key := NoKey
		if open == '{' {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("collections: decode json: %w", err)
			}
			name, ok := tok.(string)
			if !ok {
				return fmt.Errorf("collections: decode json: object key %v is not a string", tok)
			}
			key = StrKey(name)
		}

		var v V
		if deep {
			raw, err := decodeJSONAny(dec)
			if err != nil {
				return err
			}
			// V is any here; the comma-ok form also accepts a JSON null.
			v, _ = raw.(V)
		} else if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("collections: decode json: %w", err)
		}
		c.OffsetSet(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("collections: decode json: %w", err)
	}
	return nil
}

// decodeJSONAny reads one value, turning arrays and objects into
// *Collection[any]. The decoder must have UseNumber enabled.
func decodeJSONAny(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("collections: decode json: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		nested := Empty[any]()
		if err := nested.decodeJSONBody(dec, v, true); err != nil {
			return nil, err
		}
		return nested, nil
	case json.Number:
		return jsonNumber(v)
	}
	return tok, nil
}

// jsonNumber returns int for integer literals that fit and float64 for
// everything else, including 2.0 and 1e3.
func jsonNumber(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("collections: decode json number %q: %w", n.String(), err)
	}
	return f, nil
}

// FromJSON decodes a JSON array or object into a Collection[any], keeping
// member order at every depth. See [Collection.UnmarshalJSON].
func FromJSON(data []byte) (*Collection[any], error) {
	c := Empty[any]()
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}
