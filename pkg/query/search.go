package query

// SearchOptions returns a copy of o whose Q is the compiled criteria. When
// the criteria produce no clause the copy has no q at all, so a search with
// empty criteria behaves like a plain list.
func SearchOptions(c *Criteria, o *Options) *Options {
	return o.Clone().WithCriteria(c)
}

// PathWithQuery appends the encoded options to path. No "?" is added when
// there is nothing to encode.
func PathWithQuery(path string, o *Options) string {
	if query := Build(o); query != "" {
		return path + "?" + query
	}

	return path
}
