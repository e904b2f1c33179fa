package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names, in the order Encode emits them.
const (
	ParamLimit       = "limit"
	ParamOffset      = "offset"
	ParamSort        = "sort"
	ParamFields      = "fields"
	ParamQ           = "q"
	ParamCount       = "count"
	ParamExpandLevel = "expandLevel"
)

// ParamNames returns the recognized parameter names in emission order.
func ParamNames() []string {
	return []string{ParamLimit, ParamOffset, ParamSort, ParamFields, ParamQ, ParamCount, ParamExpandLevel}
}

// Options represents the query options accepted by list and get endpoints.
// Nil pointers, empty strings and empty slices are left out of the query.
type Options struct {
	Limit       *int
	Offset      *int
	Sort        *Sort
	Fields      []string
	Q           string
	Count       bool
	ExpandLevel string
}

// NewOptions creates empty options.
func NewOptions() *Options {
	return &Options{}
}

// WithLimit sets the page size.
func (o *Options) WithLimit(limit int) *Options {
	o.Limit = &limit

	return o
}

// WithOffset sets the page start.
func (o *Options) WithOffset(offset int) *Options {
	o.Offset = &offset

	return o
}

// WithSort sets the sort specification.
func (o *Options) WithSort(sort Sort) *Options {
	o.Sort = &sort

	return o
}

// WithFields replaces the projected columns.
func (o *Options) WithFields(fields ...string) *Options {
	o.Fields = fields

	return o
}

// WithQ sets a raw filter expression.
func (o *Options) WithQ(q string) *Options {
	o.Q = q

	return o
}

// WithCriteria compiles c into Q. Criteria that compile to nothing clear Q.
func (o *Options) WithCriteria(c *Criteria) *Options {
	o.Q, _ = Compile(c)

	return o
}

// WithCount asks the server for the total count.
func (o *Options) WithCount(count bool) *Options {
	o.Count = count

	return o
}

// WithExpandLevel sets the relation expansion mode.
func (o *Options) WithExpandLevel(level string) *Options {
	o.ExpandLevel = level

	return o
}

// Clone returns a deep copy.
func (o *Options) Clone() *Options {
	if o == nil {
		return NewOptions()
	}

	out := *o

	if o.Limit != nil {
		limit := *o.Limit
		out.Limit = &limit
	}

	if o.Offset != nil {
		offset := *o.Offset
		out.Offset = &offset
	}

	if o.Sort != nil {
		sort := Sort{Fields: append([]string(nil), o.Sort.Fields...), Direction: o.Sort.Direction}
		out.Sort = &sort
	}

	if o.Fields != nil {
		out.Fields = append([]string(nil), o.Fields...)
	}

	return &out
}

type param struct {
	key   string
	value string
}

// params lists the set options in emission order with unescaped values.
func (o *Options) params() []param {
	if o == nil {
		return nil
	}

	var out []param

	if o.Limit != nil {
		out = append(out, param{ParamLimit, strconv.Itoa(*o.Limit)})
	}

	if o.Offset != nil {
		out = append(out, param{ParamOffset, strconv.Itoa(*o.Offset)})
	}

	if o.Sort != nil && !o.Sort.IsZero() {
		out = append(out, param{ParamSort, o.Sort.String()})
	}

	if len(o.Fields) > 0 {
		out = append(out, param{ParamFields, strings.Join(o.Fields, ",")})
	}

	if o.Q != "" {
		out = append(out, param{ParamQ, o.Q})
	}

	if o.Count {
		out = append(out, param{ParamCount, "true"})
	}

	if o.ExpandLevel != "" {
		out = append(out, param{ParamExpandLevel, o.ExpandLevel})
	}

	return out
}

// ToValues converts the options to url.Values. url.Values does not keep key
// order; use Encode for the wire form.
func (o *Options) ToValues() url.Values {
	values := url.Values{}

	for _, p := range o.params() {
		values.Set(p.key, p.value)
	}

	return values
}

// Encode builds the query string without the leading "?". The key order is
// fixed: limit, offset, sort, fields, q, count, expandLevel.
func (o *Options) Encode() string {
	if o == nil {
		return ""
	}

	params := o.params()
	pairs := make([]string, 0, len(params))

	for _, p := range params {
		var value string

		switch p.key {
		case ParamSort:
			value = o.Sort.encode(escapeComponent)
		case ParamFields:
			value = escapeList(o.Fields)
		default:
			value = escapeComponent(p.value)
		}

		pairs = append(pairs, p.key+"="+value)
	}

	return strings.Join(pairs, "&")
}

// Build is Encode for possibly nil options.
func Build(o *Options) string {
	return o.Encode()
}

// escapeComponent percent-encodes like encodeURIComponent: spaces become %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// escapeList escapes each element and keeps the separating commas literal.
func escapeList(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = escapeComponent(item)
	}

	return strings.Join(escaped, ",")
}
