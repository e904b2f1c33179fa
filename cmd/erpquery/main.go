package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/erpquery/cmd/erpquery/commands"
	"github.com/fivetwenty-io/erpquery/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "erpquery",
	Short: "ERP REST API query compiler",
	Long: `A command-line interface for the ERP REST API query compiler.

It turns criteria documents into filter expressions for the q parameter and
builds or decodes the list query strings (limit, offset, sort, fields, q,
count, expandLevel) sent to the API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP(constants.KeyConfig, "c", "", "config file (default is $HOME/.erpquery/config.yml)")
	rootCmd.PersistentFlags().StringP(constants.KeyOutput, "o", "", "output format (table, json, yaml, plain)")
	rootCmd.PersistentFlags().BoolP(constants.KeyVerbose, "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag(constants.KeyConfig, rootCmd.PersistentFlags().Lookup(constants.KeyConfig))
	_ = viper.BindPFlag(constants.KeyOutput, rootCmd.PersistentFlags().Lookup(constants.KeyOutput))
	_ = viper.BindPFlag(constants.KeyVerbose, rootCmd.PersistentFlags().Lookup(constants.KeyVerbose))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewColumnCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
}

func initConfig() {
	cfgFile := viper.GetString(constants.KeyConfig)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.erpquery/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(constants.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
