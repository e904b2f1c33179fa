package commands

import (
	"fmt"

	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/spf13/cobra"
)

// ClauseRow describes the clause emitted for one criteria entry.
type ClauseRow struct {
	Field  string `json:"field"  yaml:"field"`
	Column string `json:"column" yaml:"column"`
	Shape  string `json:"shape"  yaml:"shape"`
	Clause string `json:"clause" yaml:"clause"`
}

// CompileResult is the structured output of the compile command.
type CompileResult struct {
	Q       string      `json:"q"       yaml:"q"`
	Empty   bool        `json:"empty"   yaml:"empty"`
	Clauses []ClauseRow `json:"clauses" yaml:"clauses"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "compile [FILE]",
		Short: "Compile a criteria document into a filter",
		Long: `Compile a YAML or JSON criteria document into the filter expression sent
as the q parameter. Reads stdin when FILE is omitted or "-".

  code: {like: "AB*"}
  status: [1, 2]
  price: {gte: 100, lte: 500}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			data, err := readInput(cmd, name)
			if err != nil {
				return err
			}

			criteria, err := query.ParseCriteria(data)
			if err != nil {
				return err
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			result := compileCriteria(query.NewTracer(logger), criteria)
			if result.Empty && strict {
				return constants.ErrEmptyCriteria
			}

			return writeCompileResult(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the criteria produce no filter")

	return cmd
}

func compileCriteria(tracer *query.Tracer, criteria *query.Criteria) CompileResult {
	q, ok := tracer.Compile(criteria)

	result := CompileResult{Q: q, Empty: !ok}

	for _, entry := range criteria.Entries() {
		clause, _ := query.Compile(query.NewCriteria().Where(entry.Field, entry.Value))

		result.Clauses = append(result.Clauses, ClauseRow{
			Field:  entry.Field,
			Column: query.ColumnName(entry.Field),
			Shape:  entry.Value.Shape().String(),
			Clause: clause,
		})
	}

	return result
}

func writeCompileResult(cmd *cobra.Command, result CompileResult) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatPlain:
		if result.Empty {
			return nil
		}

		_, err = fmt.Fprintln(out, result.Q)

		return err
	case constants.FormatTable:
		rows := make([][]string, 0, len(result.Clauses))
		for _, c := range result.Clauses {
			rows = append(rows, []string{c.Field, c.Column, c.Shape, orNone(c.Clause)})
		}

		err = renderTable(out, []string{"Field", "Column", "Shape", "Clause"}, rows)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "\nq: %s\n", orNone(result.Q))

		return err
	default:
		return encodeStructured(out, format, result)
	}
}
