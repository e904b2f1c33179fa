package query

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ParseCriteria decodes a YAML or JSON criteria document. Keys are logical
// field names and keep their document order. A sequence becomes AnyOf, a
// mapping of operator names becomes Operators, null is skipped and any other
// scalar is a Literal.
func ParseCriteria(data []byte) (*Criteria, error) {
	criteria := NewCriteria()

	err := yaml.Unmarshal(data, criteria)
	if err != nil {
		return nil, fmt.Errorf("decoding criteria: %w", err)
	}

	return criteria, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Criteria) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidCriteria, node.Line)
	}

	c.entries = nil

	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value

		value, err := decodeFieldValue(node.Content[i+1])
		if err != nil {
			return &FieldError{Field: field, Err: err}
		}

		c.Where(field, value)
	}

	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func decodeFieldValue(node *yaml.Node) (FieldValue, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return FieldValue{}, nil
		}

		v, err := decodeScalar(node)
		if err != nil {
			return FieldValue{}, err
		}

		return LiteralValue(v), nil

	case yaml.SequenceNode:
		values, err := decodeScalars(node)
		if err != nil {
			return FieldValue{}, err
		}

		return AnyOfValues(values...), nil

	case yaml.MappingNode:
		conds := make([]Condition, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			cond, ok, err := decodeCondition(node.Content[i].Value, resolveAlias(node.Content[i+1]))
			if err != nil {
				return FieldValue{}, err
			}

			if ok {
				conds = append(conds, cond)
			}
		}

		return Operators(conds...), nil

	default:
		return FieldValue{}, fmt.Errorf("%w: unexpected node at line %d", ErrInvalidCriteria, node.Line)
	}
}

// decodeCondition returns ok == false for a null operand, which is skipped
// like an unset field.
func decodeCondition(name string, node *yaml.Node) (Condition, bool, error) {
	op, err := ParseOp(name)
	if err != nil {
		return Condition{}, false, err
	}

	if isNull(node) {
		return Condition{}, false, nil
	}

	var values []Value

	switch {
	case node.Kind == yaml.SequenceNode && op == OpIn:
		values, err = decodeScalars(node)
	case node.Kind == yaml.ScalarNode:
		var v Value

		v, err = decodeScalar(node)
		values = []Value{v}
	default:
		err = fmt.Errorf("%w: operator %s needs a single value at line %d", ErrInvalidCriteria, op, node.Line)
	}

	if err != nil {
		return Condition{}, false, err
	}

	cond, err := NewCondition(op, values...)
	if err != nil {
		return Condition{}, false, err
	}

	return cond, true, nil
}

func decodeScalars(node *yaml.Node) ([]Value, error) {
	values := make([]Value, 0, len(node.Content))

	for _, item := range node.Content {
		item = resolveAlias(item)
		if isNull(item) {
			continue
		}

		v, err := decodeScalar(item)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func decodeScalar(node *yaml.Node) (Value, error) {
	if node.Kind != yaml.ScalarNode {
		return Value{}, fmt.Errorf("%w: nested value at line %d", ErrUnsupportedValue, node.Line)
	}

	var err error

	switch node.ShortTag() {
	case "!!str":
		return ValueOf(node.Value), nil
	case "!!bool":
		var b bool
		if err = node.Decode(&b); err == nil {
			return ValueOf(b), nil
		}
	case "!!int":
		var i int64
		if err = node.Decode(&i); err == nil {
			return ValueOf(i), nil
		}

		var u uint64
		if err = node.Decode(&u); err == nil {
			return ValueOf(u), nil
		}
	case "!!float":
		var f float64
		if err = node.Decode(&f); err == nil {
			return ValueOf(f), nil
		}
	case "!!timestamp":
		var t time.Time
		if err = node.Decode(&t); err == nil {
			return ValueOf(t), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: %s at line %d", ErrUnsupportedValue, node.ShortTag(), node.Line)
	}

	return Value{}, fmt.Errorf("%w: %q at line %d: %w", ErrUnsupportedValue, node.Value, node.Line, err)
}

type optionsDocument struct {
	Limit       *int      `yaml:"limit"`
	Offset      *int      `yaml:"offset"`
	Sort        yaml.Node `yaml:"sort"`
	Fields      []string  `yaml:"fields"`
	Q           string    `yaml:"q"`
	Count       bool      `yaml:"count"`
	ExpandLevel string    `yaml:"expandLevel"`
	Criteria    *Criteria `yaml:"criteria"`
}

// ParseOptionsDocument decodes a YAML or JSON options document. Unknown keys
// are ignored. A criteria key is compiled into Q and replaces any q given
// alongside it, the same way SearchOptions does.
func ParseOptionsDocument(data []byte) (*Options, error) {
	var doc optionsDocument

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	opts := &Options{
		Limit:       doc.Limit,
		Offset:      doc.Offset,
		Fields:      doc.Fields,
		Q:           doc.Q,
		Count:       doc.Count,
		ExpandLevel: doc.ExpandLevel,
	}

	if doc.Sort.Kind != 0 && !isNull(&doc.Sort) {
		sort, err := decodeSort(&doc.Sort)
		if err != nil {
			return nil, err
		}

		opts.WithSort(sort)
	}

	if doc.Criteria != nil {
		opts.WithCriteria(doc.Criteria)
	}

	return opts, nil
}

// decodeSort accepts the encoded string form ("A,-B") and the list forms
// [field], [field, dir], [[fields...], dir] and [[fields...]].
func decodeSort(node *yaml.Node) (Sort, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		return ParseSort(node.Value)
	case yaml.SequenceNode:
	default:
		return Sort{}, fmt.Errorf("%w: line %d", ErrInvalidSort, node.Line)
	}

	if len(node.Content) == 0 || len(node.Content) > 2 {
		return Sort{}, fmt.Errorf("%w: expected [fields] or [fields, direction] at line %d", ErrInvalidSort, node.Line)
	}

	var fields []string

	head := resolveAlias(node.Content[0])

	switch head.Kind {
	case yaml.ScalarNode:
		fields = []string{head.Value}
	case yaml.SequenceNode:
		for _, item := range head.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode || item.Value == "" {
				return Sort{}, fmt.Errorf("%w: field names must be strings at line %d", ErrInvalidSort, item.Line)
			}

			fields = append(fields, item.Value)
		}
	default:
		return Sort{}, fmt.Errorf("%w: line %d", ErrInvalidSort, head.Line)
	}

	if len(fields) == 0 || fields[0] == "" {
		return Sort{}, fmt.Errorf("%w: no field at line %d", ErrInvalidSort, head.Line)
	}

	dir := Ascending

	if len(node.Content) == 2 {
		var err error

		dir, err = ParseDirection(resolveAlias(node.Content[1]).Value)
		if err != nil {
			return Sort{}, err
		}
	}

	return SortBy(dir, fields...), nil
}
