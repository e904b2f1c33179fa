package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/fivetwenty-io/erpquery/internal/logging"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// outputFormat resolves the output format. Without an explicit choice a
// terminal gets a table and a pipe gets plain values.
func outputFormat(w io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString(constants.KeyOutput))

	switch format {
	case constants.FormatJSON, constants.FormatYAML, constants.FormatTable, constants.FormatPlain:
		return format, nil
	case "":
		if isTerminal(w) {
			return constants.FormatTable, nil
		}

		return constants.FormatPlain, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// encodeStructured writes v as JSON or YAML.
func encodeStructured(w io.Writer, format string, v any) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", constants.JSONIndent)

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()

		return encoder.Encode(v)
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// renderTable writes rows under header.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}

	table := tablewriter.NewWriter(w)
	table.Header(cells...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == constants.Stdin {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return nil, constants.ErrNoInput
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	path, err := validateFilePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

func validateFilePath(name string) (string, error) {
	if strings.Contains(filepath.ToSlash(name), "../") {
		return "", fmt.Errorf("%w: %s", constants.ErrDirectoryTraversalDetected, name)
	}

	path := filepath.Clean(name)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", constants.ErrNotRegularFile, path)
	}

	return path, nil
}

// newLogger builds the command logger from the verbose setting.
func newLogger() (*logging.Logger, error) {
	logger, err := logging.NewCLI(viper.GetBool(constants.KeyVerbose))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return logger, nil
}

func orNone(s string) string {
	if s == "" {
		return constants.None
	}

	return s
}
