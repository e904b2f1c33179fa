package commands

import (
	"fmt"

	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/spf13/cobra"
)

// ColumnMapping pairs a logical field name with its column.
type ColumnMapping struct {
	Field  string `json:"field"  yaml:"field"`
	Column string `json:"column" yaml:"column"`
}

// NewColumnCommand creates the column command.
func NewColumnCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "column NAME...",
		Aliases: []string{"columns", "col"},
		Short:   "Show the column name for logical field names",
		Long:    "Convert camelCase field names to the UPPER_SNAKE_CASE columns used in filters",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings := make([]ColumnMapping, 0, len(args))
			for _, name := range args {
				mappings = append(mappings, ColumnMapping{Field: name, Column: query.ColumnName(name)})
			}

			out := cmd.OutOrStdout()

			format, err := outputFormat(out)
			if err != nil {
				return err
			}

			switch format {
			case constants.FormatPlain:
				for _, m := range mappings {
					if _, err := fmt.Fprintln(out, m.Column); err != nil {
						return err
					}
				}

				return nil
			case constants.FormatTable:
				rows := make([][]string, 0, len(mappings))
				for _, m := range mappings {
					rows = append(rows, []string{m.Field, m.Column})
				}

				return renderTable(out, []string{"Field", "Column"}, rows)
			default:
				return encodeStructured(out, format, mappings)
			}
		},
	}
}
