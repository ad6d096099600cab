package filter

import (
	"fmt"
	"strings"

	"github.com/area-audit/auditor/internal/lexer"
)

// ParseValue interprets one attribute's authored value per §4.1:
//
//   - a bare scalar becomes Single({op: =, value})
//   - a string beginning with "!" becomes Single({op: ≠, value})
//   - a string beginning with "<", "<=", ">", ">=" becomes the matching
//     comparator
//   - a string containing " & " becomes an And of the split parts
//   - a string containing " | " becomes an Or of the split parts (checked
//     before " & ", so OR is the outermost grouping)
//   - a sequence becomes an Or of its elements
//   - a mapping of the form {operator, value} is the explicit TaggedValue
//     form, the only way to author ∈/∉
func ParseValue(raw any) (WrappedValue, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("filter.ParseValue: %w: nil", ErrInvalidValue)
	case []any:
		items := make([]WrappedValue, 0, len(v))
		for _, el := range v {
			wv, err := ParseValue(el)
			if err != nil {
				return nil, err
			}
			items = append(items, wv)
		}
		return Or(items...), nil
	case map[string]any:
		return parseTaggedObject(v)
	case string:
		return parseString(v)
	case int:
		return Single(TaggedValue{Op: OpEqual, Value: NewInt(int64(v))}), nil
	case int64:
		return Single(TaggedValue{Op: OpEqual, Value: NewInt(v)}), nil
	case uint64:
		return Single(TaggedValue{Op: OpEqual, Value: NewInt(int64(v))}), nil
	case float64:
		return Single(TaggedValue{Op: OpEqual, Value: NewFloat(v)}), nil
	case bool:
		return Single(TaggedValue{Op: OpEqual, Value: NewBool(v)}), nil
	default:
		return nil, fmt.Errorf("filter.ParseValue: %w: unsupported type %T", ErrInvalidValue, raw)
	}
}

func parseTaggedObject(m map[string]any) (WrappedValue, error) {
	const op = "filter.parseTaggedObject"
	rawOp, ok := m["operator"]
	if !ok {
		return nil, fmt.Errorf("%s: %w: missing \"operator\" key", op, ErrInvalidValue)
	}
	opStr, ok := rawOp.(string)
	if !ok {
		return nil, fmt.Errorf("%s: %w: \"operator\" must be a string", op, ErrInvalidValue)
	}
	operator, err := newOperator(opStr)
	if err != nil {
		return nil, err
	}

	rawValue, ok := m["value"]
	if !ok {
		return nil, fmt.Errorf("%s: %w: missing \"value\" key", op, ErrInvalidValue)
	}

	if operator == OpIn || operator == OpNotIn {
		elems, ok := rawValue.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %s requires a list value", op, ErrInvalidValue, operator)
		}
		set := make([]Scalar, len(elems))
		for i, el := range elems {
			s, err := scalarOf(el)
			if err != nil {
				return nil, err
			}
			set[i] = s
		}
		return Single(TaggedValue{Op: operator, Set: set}), nil
	}

	s, err := scalarOf(rawValue)
	if err != nil {
		return nil, err
	}
	return Single(TaggedValue{Op: operator, Value: s}), nil
}

func scalarOf(raw any) (Scalar, error) {
	switch v := raw.(type) {
	case string:
		if c, ok := constantFromString(v); ok {
			return NewConstant(c), nil
		}
		return NewString(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint64:
		return NewInt(int64(v)), nil
	case float64:
		return NewFloat(v), nil
	case bool:
		return NewBool(v), nil
	default:
		return Scalar{}, fmt.Errorf("filter.scalarOf: %w: unsupported type %T", ErrInvalidValue, raw)
	}
}

// parseString splits on the textual " | "/" & " delimiters (OR outermost,
// AND inside, per §4.1) and parses each atom's leading comparator prefix.
func parseString(s string) (WrappedValue, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, " | ") {
		parts := strings.Split(s, " | ")
		items := make([]WrappedValue, 0, len(parts))
		for _, p := range parts {
			wv, err := parseString(p)
			if err != nil {
				return nil, err
			}
			items = append(items, wv)
		}
		return Or(items...), nil
	}

	if strings.Contains(s, " & ") {
		parts := strings.Split(s, " & ")
		items := make([]WrappedValue, 0, len(parts))
		for _, p := range parts {
			wv, err := parseString(p)
			if err != nil {
				return nil, err
			}
			items = append(items, wv)
		}
		return And(items...), nil
	}

	return parseAtom(s)
}

// parseAtom parses a single comparator-prefixed literal, such as "<100" or
// "!MATH", using the lexer package's token scan.
func parseAtom(s string) (WrappedValue, error) {
	const op = "filter.parseAtom"

	lx := lexer.New(strings.TrimSpace(s))
	opTok, err := lx.Next()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidValue, err)
	}
	valTok, err := lx.Next()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidValue, err)
	}

	operator, err := operatorFromToken(opTok)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return Single(TaggedValue{Op: operator, Value: inferScalar(valTok.Value)}), nil
}

func operatorFromToken(t lexer.Token) (Operator, error) {
	switch t.String() {
	case "=":
		return OpEqual, nil
	case "!=":
		return OpNotEqual, nil
	case "<":
		return OpLessThan, nil
	case "<=":
		return OpLessOrEqual, nil
	case ">":
		return OpGreaterThan, nil
	case ">=":
		return OpGreaterOrEqual, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, t.String())
	}
}
