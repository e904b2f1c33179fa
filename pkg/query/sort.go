package query

import (
	"fmt"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// descPrefix marks a descending field in the encoded sort value, the same way
// order_by=-created_at does.
const descPrefix = "-"

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}

	return "asc"
}

// ParseDirection accepts asc, desc, ascending and descending in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, s)
	}
}

// Sort orders results by one or more columns sharing one direction.
type Sort struct {
	Fields    []string
	Direction Direction
}

// Asc sorts ascending by the given columns.
func Asc(fields ...string) Sort {
	return Sort{Fields: fields, Direction: Ascending}
}

// Desc sorts descending by the given columns.
func Desc(fields ...string) Sort {
	return Sort{Fields: fields, Direction: Descending}
}

// SortBy sorts by the given columns in direction dir.
func SortBy(dir Direction, fields ...string) Sort {
	return Sort{Fields: fields, Direction: dir}
}

// IsZero reports whether the sort names no field.
func (s Sort) IsZero() bool {
	return len(s.Fields) == 0
}

// String returns the unescaped sort value: fields comma-joined, each prefixed
// with "-" when descending. Ascending single field sorts encode as the bare
// column name.
func (s Sort) String() string {
	return s.encode(func(v string) string { return v })
}

func (s Sort) encode(escape func(string) string) string {
	parts := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		if s.Direction == Descending {
			parts = append(parts, descPrefix+escape(f))
		} else {
			parts = append(parts, escape(f))
		}
	}

	return strings.Join(parts, ",")
}

// ParseSort decodes a value produced by Sort.String.
func ParseSort(raw string) (Sort, error) {
	if strings.TrimSpace(raw) == "" {
		return Sort{}, fmt.Errorf("%w: empty value", ErrInvalidSort)
	}

	var (
		fields []string
		desc   int
	)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)

		if strings.HasPrefix(part, descPrefix) {
			desc++
			part = strings.TrimPrefix(part, descPrefix)
		}

		if part == "" {
			return Sort{}, fmt.Errorf("%w: empty field in %q", ErrInvalidSort, raw)
		}

		fields = append(fields, part)
	}

	switch desc {
	case 0:
		return Asc(fields...), nil
	case len(fields):
		return Desc(fields...), nil
	default:
		return Sort{}, fmt.Errorf("%w: %q", ErrMixedSortDirection, raw)
	}
}
