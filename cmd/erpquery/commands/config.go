package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the effective CLI configuration.
type Config struct {
	File        string `json:"file,omitempty"         yaml:"file,omitempty"`
	Output      string `json:"output"                 yaml:"output"`
	Verbose     bool   `json:"verbose"                yaml:"verbose"`
	Limit       *int   `json:"limit,omitempty"        yaml:"limit,omitempty"`
	ExpandLevel string `json:"expand-level,omitempty" yaml:"expand-level,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and update the erpquery configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after merging file, environment and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			out := cmd.OutOrStdout()

			format, err := outputFormat(out)
			if err != nil {
				return err
			}

			switch format {
			case constants.FormatTable, constants.FormatPlain:
				limit := constants.NotAvailable
				if config.Limit != nil {
					limit = strconv.Itoa(*config.Limit)
				}

				return renderTable(out, []string{"Property", "Value"}, [][]string{
					{"File", orNone(config.File)},
					{"Output", orNone(config.Output)},
					{"Verbose", strconv.FormatBool(config.Verbose)},
					{"Limit", limit},
					{"Expand Level", orNone(config.ExpandLevel)},
				})
			default:
				return encodeStructured(out, format, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value and write it to the configuration file.

Keys: output, verbose, limit, expand-level`,
		Args: cobra.ExactArgs(constants.KeyValueArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := strings.ToLower(args[0]), args[1]

			parsed, err := parseConfigValue(key, value)
			if err != nil {
				return err
			}

			viper.Set(key, parsed)

			path, err := saveConfig(key)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s in %s\n", key, value, path)

			return err
		},
	}
}

var persistedKeys = []string{
	constants.KeyOutput,
	constants.KeyVerbose,
	constants.KeyLimit,
	constants.KeyExpandLevel,
}

func loadConfig() *Config {
	config := &Config{
		File:        viper.ConfigFileUsed(),
		Output:      viper.GetString(constants.KeyOutput),
		Verbose:     viper.GetBool(constants.KeyVerbose),
		ExpandLevel: viper.GetString(constants.KeyExpandLevel),
	}

	if viper.IsSet(constants.KeyLimit) {
		limit := viper.GetInt(constants.KeyLimit)
		config.Limit = &limit
	}

	return config
}

func parseConfigValue(key, value string) (any, error) {
	switch key {
	case constants.KeyOutput:
		format := strings.ToLower(value)
		switch format {
		case constants.FormatJSON, constants.FormatYAML, constants.FormatTable, constants.FormatPlain:
			return format, nil
		default:
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	case constants.KeyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", constants.ErrInvalidConfigValue, key, value)
		}

		return verbose, nil
	case constants.KeyLimit:
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("%w: %s=%q", constants.ErrInvalidConfigValue, key, value)
		}

		return limit, nil
	case constants.KeyExpandLevel:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

// saveConfig writes the keys read from the config file, plus key, to the
// file in use or to the default location when no file was loaded.
func saveConfig(key string) (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType)
	}

	persisted := viper.New()
	persisted.SetConfigType(constants.ConfigFileType)

	for _, name := range persistedKeys {
		if name == key || viper.InConfig(name) {
			persisted.Set(name, viper.Get(name))
		}
	}

	err := persisted.WriteConfigAs(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	err = os.Chmod(configFile, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to set config file permissions: %w", err)
	}

	return configFile, nil
}
