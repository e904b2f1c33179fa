package query

// Shape tells how a FieldValue is compiled.
type Shape int

const (
	// ShapeUndefined is the zero FieldValue; it produces no clause.
	ShapeUndefined Shape = iota
	// ShapeLiteral compares with implicit equality.
	ShapeLiteral
	// ShapeOperators applies each condition in order, AND-ed together.
	ShapeOperators
	// ShapeAnyOf is an OR-group of equalities.
	ShapeAnyOf
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeLiteral:
		return "literal"
	case ShapeOperators:
		return "operators"
	case ShapeAnyOf:
		return "anyOf"
	default:
		return "undefined"
	}
}

// FieldValue is the value side of a criteria entry. Build it with Literal,
// Operators or AnyOf; the zero value means "not set".
type FieldValue struct {
	shape      Shape
	literal    Value
	conditions []Condition
	anyOf      []Value
}

// Literal compares the field for equality with v.
func Literal[T Scalar](v T) FieldValue {
	return LiteralValue(ValueOf(v))
}

// LiteralValue is Literal for an already converted value.
func LiteralValue(v Value) FieldValue {
	if !v.IsValid() {
		return FieldValue{}
	}

	return FieldValue{shape: ShapeLiteral, literal: v}
}

// Operators applies every condition to the field; conditions are AND-ed in
// the order given.
func Operators(conds ...Condition) FieldValue {
	if len(conds) == 0 {
		return FieldValue{}
	}

	return FieldValue{shape: ShapeOperators, conditions: conds}
}

// AnyOf matches when the field equals any of vs.
func AnyOf[T Scalar](vs ...T) FieldValue {
	return AnyOfValues(valuesOf(vs)...)
}

// AnyOfValues is AnyOf for already converted values.
func AnyOfValues(vs ...Value) FieldValue {
	return FieldValue{shape: ShapeAnyOf, anyOf: vs}
}

// Shape reports how the value was constructed.
func (f FieldValue) Shape() Shape {
	return f.shape
}

// IsSet reports whether the value produces any clause at all.
func (f FieldValue) IsSet() bool {
	return f.shape != ShapeUndefined
}

// Entry is one field of a Criteria.
type Entry struct {
	Field string
	Value FieldValue
}

// Criteria is an ordered set of field filters. Entry order is clause order.
type Criteria struct {
	entries []Entry
}

// NewCriteria creates an empty criteria set.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Where appends a filter on the logical (camelCase) field name. Adding the
// same field twice emits two clauses.
func (c *Criteria) Where(field string, value FieldValue) *Criteria {
	c.entries = append(c.entries, Entry{Field: field, Value: value})

	return c
}

// Entries returns a copy of the entries in insertion order.
func (c *Criteria) Entries() []Entry {
	if c == nil {
		return nil
	}

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Len returns the number of entries, including unset ones.
func (c *Criteria) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}
