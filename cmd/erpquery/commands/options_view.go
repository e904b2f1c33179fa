package commands

import (
	"github.com/fivetwenty-io/erpquery/pkg/query"
)

// OptionsView is the document form of query options. Its YAML output is
// accepted back by "build --options".
type OptionsView struct {
	Limit       *int     `json:"limit,omitempty"       yaml:"limit,omitempty"`
	Offset      *int     `json:"offset,omitempty"      yaml:"offset,omitempty"`
	Sort        string   `json:"sort,omitempty"        yaml:"sort,omitempty"`
	Fields      []string `json:"fields,omitempty"      yaml:"fields,omitempty"`
	Q           string   `json:"q,omitempty"           yaml:"q,omitempty"`
	Count       bool     `json:"count,omitempty"       yaml:"count,omitempty"`
	ExpandLevel string   `json:"expandLevel,omitempty" yaml:"expandLevel,omitempty"`
}

// QueryResult is the structured output of the build and parse commands.
type QueryResult struct {
	Query   string      `json:"query"          yaml:"query"`
	Path    string      `json:"path,omitempty" yaml:"path,omitempty"`
	Options OptionsView `json:"options"        yaml:"options"`
}

func newOptionsView(opts *query.Options) OptionsView {
	view := OptionsView{
		Limit:       opts.Limit,
		Offset:      opts.Offset,
		Fields:      opts.Fields,
		Q:           opts.Q,
		Count:       opts.Count,
		ExpandLevel: opts.ExpandLevel,
	}

	if opts.Sort != nil {
		view.Sort = opts.Sort.String()
	}

	return view
}

// paramRows lists the set parameters with decoded values in emission order.
func paramRows(opts *query.Options) [][]string {
	values := opts.ToValues()
	rows := make([][]string, 0, len(values))

	for _, name := range query.ParamNames() {
		if values.Has(name) {
			rows = append(rows, []string{name, values.Get(name)})
		}
	}

	return rows
}
