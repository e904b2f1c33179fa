package commands

import (
	"fmt"

	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type buildFlags struct {
	limit        int
	offset       int
	sort         string
	fields       []string
	q            string
	criteriaFile string
	optionsFile  string
	count        bool
	expandLevel  string
	path         string
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a list query string",
		Long: `Build the query string for a list or get request. Parameters are emitted
in the order limit, offset, sort, fields, q, count, expandLevel.

Sort takes comma separated columns; prefix every column with "-" to sort
descending. Flags override values read with --options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, flags)
			if err != nil {
				return err
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			result := QueryResult{
				Query:   opts.Encode(),
				Options: newOptionsView(opts),
			}

			if flags.path != "" {
				result.Path = query.PathWithQuery(flags.path, opts)
			}

			logger.Debug("query built", map[string]interface{}{
				"query": result.Query,
				"path":  result.Path,
			})

			return writeQueryResult(cmd, result, opts)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "page start")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort columns, e.g. FICHENO or -DATE,-FICHENO")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", nil, "projected columns")
	cmd.Flags().StringVar(&flags.q, "q", "", "raw filter expression")
	cmd.Flags().StringVar(&flags.criteriaFile, "criteria", "", "criteria document compiled into q")
	cmd.Flags().StringVar(&flags.optionsFile, "options", "", "options document (YAML or JSON)")
	cmd.Flags().BoolVar(&flags.count, "count", false, "request the total count")
	cmd.Flags().StringVar(&flags.expandLevel, constants.KeyExpandLevel, "", "relation expansion level")
	cmd.Flags().StringVar(&flags.path, "path", "", "resource path to prefix, e.g. /items")

	return cmd
}

func buildOptions(cmd *cobra.Command, flags *buildFlags) (*query.Options, error) {
	opts := query.NewOptions()

	if flags.optionsFile != "" {
		data, err := readInput(cmd, flags.optionsFile)
		if err != nil {
			return nil, err
		}

		opts, err = query.ParseOptionsDocument(data)
		if err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed

	switch {
	case changed("limit"):
		opts.WithLimit(flags.limit)
	case opts.Limit == nil && viper.IsSet(constants.KeyLimit):
		opts.WithLimit(viper.GetInt(constants.KeyLimit))
	}

	if changed("offset") {
		opts.WithOffset(flags.offset)
	}

	if (opts.Limit != nil && *opts.Limit < 0) || (opts.Offset != nil && *opts.Offset < 0) {
		return nil, constants.ErrNegativePageValue
	}

	if changed("sort") {
		sort, err := query.ParseSort(flags.sort)
		if err != nil {
			return nil, err
		}

		opts.WithSort(sort)
	}

	if changed("fields") {
		opts.WithFields(flags.fields...)
	}

	if changed("q") && changed("criteria") {
		return nil, constants.ErrConflictingQuery
	}

	if changed("q") {
		opts.WithQ(flags.q)
	}

	if changed("criteria") {
		data, err := readInput(cmd, flags.criteriaFile)
		if err != nil {
			return nil, err
		}

		criteria, err := query.ParseCriteria(data)
		if err != nil {
			return nil, err
		}

		opts = query.SearchOptions(criteria, opts)
	}

	if changed("count") {
		opts.WithCount(flags.count)
	}

	switch {
	case changed(constants.KeyExpandLevel):
		opts.WithExpandLevel(flags.expandLevel)
	case opts.ExpandLevel == "" && viper.IsSet(constants.KeyExpandLevel):
		opts.WithExpandLevel(viper.GetString(constants.KeyExpandLevel))
	}

	return opts, nil
}

func writeQueryResult(cmd *cobra.Command, result QueryResult, opts *query.Options) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatPlain:
		line := result.Query
		if result.Path != "" {
			line = result.Path
		}

		_, err = fmt.Fprintln(out, line)

		return err
	case constants.FormatTable:
		return renderTable(out, []string{"Parameter", "Value"}, paramRows(opts))
	default:
		return encodeStructured(out, format, result)
	}
}
