package commands

import (
	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse QUERY",
		Short: "Decode a list query string",
		Long: `Decode a query string built by "build" (with or without the leading "?")
back into options. Unknown parameters are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := query.ParseOptions(args[0])
			if err != nil {
				return err
			}

			return writeQueryResult(cmd, QueryResult{
				Query:   opts.Encode(),
				Options: newOptionsView(opts),
			}, opts)
		},
	}
}
