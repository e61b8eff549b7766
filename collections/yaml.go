package collections

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements [yaml.Marshaler]. Lists (keys 0..n-1 in order)
// become sequences; everything else becomes a mapping whose pairs follow
// iteration order.
func (c *Collection[V]) MarshalYAML() (any, error) {
	return c.yamlNode()
}

func (c *Collection[V]) yamlNode() (*yaml.Node, error) {
	if c.isList() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, k := range c.keys {
			vn, err := yamlValueNode(c.values[k])
			if err != nil {
				return nil, fmt.Errorf("collections: encode yaml index %d: %w", i, err)
			}
			node.Content = append(node.Content, vn)
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range c.keys {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
		if k.IsInt() {
			kn.Tag = "!!int"
		}
		vn, err := yamlValueNode(c.values[k])
		if err != nil {
			return nil, fmt.Errorf("collections: encode yaml key %q: %w", k.String(), err)
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

func yamlValueNode(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return &n, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Sequences become lists,
// mappings keep their pair order (keys go through [KeyOf]) and a null node
// yields an empty collection.
//
// For Collection[any], nested sequences and mappings are decoded as
// *Collection[any] as well.
func (c *Collection[V]) UnmarshalYAML(value *yaml.Node) error {
	node := resolveAlias(value)
	_, deep := any(new(V)).(*any)
	fresh := Empty[V]()

	switch node.Kind {
	case yaml.SequenceNode:
		for _, child := range node.Content {
			v, err := decodeYAMLValue[V](child, deep)
			if err != nil {
				return err
			}
			fresh.appendValue(v)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var raw any
			if err := resolveAlias(node.Content[i]).Decode(&raw); err != nil {
				return fmt.Errorf("collections: decode yaml key: %w", err)
			}
			k, err := KeyOf(raw)
			if err != nil {
				return fmt.Errorf("collections: decode yaml key at line %d: %w", node.Content[i].Line, err)
			}
			v, err := decodeYAMLValue[V](node.Content[i+1], deep)
			if err != nil {
				return err
			}
			fresh.put(k, v)
		}
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return fmt.Errorf("collections: decode yaml: line %d: expected sequence or mapping, got %s", node.Line, node.Tag)
		}
	default:
		return errors.New("collections: decode yaml: unsupported node")
	}
	*c = *fresh
	return nil
}

func decodeYAMLValue[V any](n *yaml.Node, deep bool) (V, error) {
	var v V
	n = resolveAlias(n)
	if deep && (n.Kind == yaml.SequenceNode || n.Kind == yaml.MappingNode) {
		nested := Empty[any]()
		if err := nested.UnmarshalYAML(n); err != nil {
			return v, err
		}
		v, _ = any(nested).(V)
		return v, nil
	}
	if err := n.Decode(&v); err != nil {
		return v, fmt.Errorf("collections: decode yaml value at line %d: %w", n.Line, err)
	}
	return v, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// FromYAML decodes a YAML sequence or mapping into a Collection[any],
// keeping mapping order at every depth. An empty document yields an empty
// collection.
func FromYAML(data []byte) (*Collection[any], error) {
	c := Empty[any]()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("collections: decode yaml: %w", err)
	}
	return c, nil
}
