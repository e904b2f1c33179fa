package query

import (
	"strings"
	"unicode"
)

// ColumnName maps a camelCase property name to the backend's UPPER_SNAKE_CASE
// column, e.g. arpCode -> ARP_CODE. An underscore is inserted before each
// upper-case letter that directly follows a lower-case letter or a digit.
// Applying it to its own output returns the input unchanged.
func ColumnName(name string) string {
	var b strings.Builder

	b.Grow(len(name) + len(name)/4)

	prev := rune(-1)

	for _, r := range name {
		if unicode.IsUpper(r) && prev >= 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToUpper(r))
		prev = r
	}

	return b.String()
}
