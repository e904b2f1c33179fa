package query

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout used for date-like literals.
const DateLayout = time.RFC3339

// FormatValue renders a literal in the filter language: strings and dates are
// single-quoted with embedded quotes doubled, numbers and booleans are bare.
// The invalid Value renders as the empty string.
func FormatValue(v Value) string {
	switch v.kind {
	case KindString:
		return quote(v.s)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, v.bits)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return quote(v.t.Format(DateLayout))
	default:
		return ""
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
