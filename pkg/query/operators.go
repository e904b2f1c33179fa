package query

import (
	"fmt"
	"strings"
)

// Op is a comparison operator understood by the filter language.
type Op string

// Supported operators.
const (
	OpEq   Op = "eq"
	OpNe   Op = "ne"
	OpGt   Op = "gt"
	OpGte  Op = "gte"
	OpLt   Op = "lt"
	OpLte  Op = "lte"
	OpLike Op = "like"
	OpIn   Op = "in"
)

var knownOps = map[Op]struct{}{
	OpEq: {}, OpNe: {}, OpGt: {}, OpGte: {}, OpLt: {}, OpLte: {}, OpLike: {}, OpIn: {},
}

// ParseOp resolves an operator name. Names are case-insensitive.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := knownOps[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}

	return op, nil
}

// String implements fmt.Stringer.
func (o Op) String() string {
	return string(o)
}

// Condition is one operator applied to a field. Only OpIn carries more than
// one value.
type Condition struct {
	op     Op
	values []Value
}

// Op returns the condition's operator.
func (c Condition) Op() Op {
	return c.op
}

// Values returns the condition's operands.
func (c Condition) Values() []Value {
	return c.values
}

func single[T Scalar](op Op, v T) Condition {
	return Condition{op: op, values: []Value{ValueOf(v)}}
}

// Eq builds an equality condition.
func Eq[T Scalar](v T) Condition { return single(OpEq, v) }

// Ne builds an inequality condition.
func Ne[T Scalar](v T) Condition { return single(OpNe, v) }

// Gt builds a greater-than condition.
func Gt[T Scalar](v T) Condition { return single(OpGt, v) }

// Gte builds a greater-than-or-equal condition.
func Gte[T Scalar](v T) Condition { return single(OpGte, v) }

// Lt builds a less-than condition.
func Lt[T Scalar](v T) Condition { return single(OpLt, v) }

// Lte builds a less-than-or-equal condition.
func Lte[T Scalar](v T) Condition { return single(OpLte, v) }

// Like builds a pattern match condition. The pattern is sent as-is, wildcards
// included.
func Like(pattern string) Condition { return single(OpLike, pattern) }

// In builds a membership condition, compiled to an OR-group of equalities.
func In[T Scalar](vs ...T) Condition {
	return Condition{op: OpIn, values: valuesOf(vs)}
}

// NewCondition builds a condition from already converted values. It is used
// by decoders that learn the operator at runtime.
func NewCondition(op Op, values ...Value) (Condition, error) {
	if _, ok := knownOps[op]; !ok {
		return Condition{}, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}

	if op != OpIn && len(values) != 1 {
		return Condition{}, fmt.Errorf("%w: operator %s takes exactly one value", ErrInvalidCriteria, op)
	}

	return Condition{op: op, values: values}, nil
}
