package query

import (
	"strings"
)

const (
	andSep = " and "
	orSep  = " or "
)

// Compile turns criteria into a filter expression for the q option.
// Entries are emitted in insertion order and joined with "and"; unset entries
// are skipped. ok is false when nothing was emitted, in which case the caller
// must leave q out instead of sending it empty.
func Compile(c *Criteria) (filter string, ok bool) {
	return compile(c, nil)
}

// Tracer compiles criteria like Compile and reports every emitted clause to a
// Logger at debug level.
type Tracer struct {
	logger Logger
}

// NewTracer creates a tracer. A nil logger discards output.
func NewTracer(logger Logger) *Tracer {
	if logger == nil {
		logger = NopLogger{}
	}

	return &Tracer{logger: logger}
}

// Compile implements the same contract as the package level Compile.
func (t *Tracer) Compile(c *Criteria) (string, bool) {
	filter, ok := compile(c, t.logger)

	t.logger.Debug("criteria compiled", map[string]interface{}{
		"entries": c.Len(),
		"empty":   !ok,
		"filter":  filter,
	})

	return filter, ok
}

func compile(c *Criteria, logger Logger) (string, bool) {
	if c == nil {
		return "", false
	}

	clauses := make([]string, 0, len(c.entries))

	for _, entry := range c.entries {
		clause := fieldClause(ColumnName(entry.Field), entry.Value)
		if clause == "" {
			if logger != nil {
				logger.Debug("criteria entry skipped", map[string]interface{}{"field": entry.Field})
			}

			continue
		}

		if logger != nil {
			logger.Debug("criteria clause", map[string]interface{}{
				"field":  entry.Field,
				"clause": clause,
			})
		}

		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return "", false
	}

	return strings.Join(clauses, andSep), true
}

func fieldClause(column string, value FieldValue) string {
	switch value.shape {
	case ShapeLiteral:
		return comparison(column, OpEq, value.literal)
	case ShapeAnyOf:
		return orGroup(column, value.anyOf)
	case ShapeOperators:
		parts := make([]string, 0, len(value.conditions))

		for _, cond := range value.conditions {
			var part string
			if cond.op == OpIn {
				part = orGroup(column, cond.values)
			} else if len(cond.values) > 0 {
				part = comparison(column, cond.op, cond.values[0])
			}

			if part != "" {
				parts = append(parts, part)
			}
		}

		return strings.Join(parts, andSep)
	default:
		return ""
	}
}

func comparison(column string, op Op, v Value) string {
	if !v.IsValid() {
		return ""
	}

	return column + " " + string(op) + " " + FormatValue(v)
}

// orGroup renders (COL eq a or COL eq b ...). Invalid values are dropped and
// an empty list renders nothing.
func orGroup(column string, values []Value) string {
	parts := make([]string, 0, len(values))

	for _, v := range values {
		if clause := comparison(column, OpEq, v); clause != "" {
			parts = append(parts, clause)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return "(" + strings.Join(parts, orSep) + ")"
}
