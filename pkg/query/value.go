package query

import (
	"reflect"
	"time"
)

// Scalar is the set of Go types that can appear as a literal in a filter.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		time.Time
}

// Kind identifies the concrete shape of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
)

// Value is a single literal operand. The zero Value is invalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	f    float64
	bits int
	b    bool
	t    time.Time
}

// ValueOf converts a scalar into a Value.
func ValueOf[T Scalar](v T) Value {
	if t, ok := any(v).(time.Time); ok {
		return Value{kind: KindTime, t: t}
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String:
		return Value{kind: KindString, s: rv.String()}
	case reflect.Bool:
		return Value{kind: KindBool, b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{kind: KindUint, u: rv.Uint()}
	case reflect.Float32:
		return Value{kind: KindFloat, f: rv.Float(), bits: 32}
	case reflect.Float64:
		return Value{kind: KindFloat, f: rv.Float(), bits: 64}
	default:
		return Value{}
	}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether the value was built from a scalar.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Interface returns the value as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	default:
		return nil
	}
}

func valuesOf[T Scalar](vs []T) []Value {
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		out = append(out, ValueOf(v))
	}

	return out
}
