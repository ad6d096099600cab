package filter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Clause is an ordered attribute-name → WrappedValue mapping, interpreted
// as a conjunction over its keys (§3). Order is preserved from the
// authored document because it's observable in round-trip serialization
// and in reproducible test output (§9's "ordered vs unordered maps" note).
type Clause struct {
	keys   []string
	values map[string]WrappedValue
}

// NewClause builds a Clause from an explicit key order. Intended for
// programmatic construction (tests, save-blocks built in code); authored
// documents go through UnmarshalYAML instead.
func NewClause(pairs ...ClauseEntry) Clause {
	c := Clause{values: make(map[string]WrappedValue, len(pairs))}
	for _, p := range pairs {
		c.set(p.Key, p.Value)
	}
	return c
}

// ClauseEntry is one key/value pair used by NewClause.
type ClauseEntry struct {
	Key   string
	Value WrappedValue
}

func (c *Clause) set(key string, value WrappedValue) {
	if c.values == nil {
		c.values = make(map[string]WrappedValue)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Keys returns the attribute names in authored order.
func (c Clause) Keys() []string { return c.keys }

// Get returns the WrappedValue for key, if present.
func (c Clause) Get(key string) (WrappedValue, bool) {
	wv, ok := c.values[key]
	return wv, ok
}

// Len reports the number of attributes in the clause.
func (c Clause) Len() int { return len(c.keys) }

// Matches reports whether attrs satisfies every predicate in the clause
// (AND over keys, per §3: "Interpreted as conjunction over keys").
// attrs provides, for each attribute name the clause may reference,
// whether it is present on the candidate and its Scalar value if so.
func (c Clause) Matches(attrs map[string]Scalar, env EvalEnv) bool {
	for _, key := range c.keys {
		attr, present := attrs[key]
		if !c.values[key].Eval(attr, present, env) {
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a clause mapping, preserving key order and
// routing each value through ParseValue.
func (c *Clause) UnmarshalYAML(node *yaml.Node) error {
	const op = "filter.Clause.UnmarshalYAML"
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %w: expected a mapping", op, ErrInvalidValue)
	}

	*c = Clause{values: make(map[string]WrappedValue, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("%s: %w: %v", op, ErrInvalidVariableName, err)
		}

		raw, err := decodeYAMLValue(valNode)
		if err != nil {
			return fmt.Errorf("%s: attribute %q: %w", op, key, err)
		}
		wv, err := ParseValue(raw)
		if err != nil {
			return fmt.Errorf("%s: attribute %q: %w", op, key, err)
		}
		c.set(key, wv)
	}
	return nil
}

// MarshalYAML re-emits the clause as a mapping in its original key order.
func (c Clause) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(c.values[key].String()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// decodeYAMLValue turns a yaml.Node into the plain any (string, int64,
// float64, bool, []any, map[string]any) shape ParseValue expects.
func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := decodeYAMLValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			v, err := decodeYAMLValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node kind %v", ErrInvalidValue, node.Kind)
	}
}
