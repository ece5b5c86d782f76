package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vizkit/violin/internal/contract"
	"github.com/vizkit/violin/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// logger is the structured logger shared by all commands.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "violin",
	Short:              "Render violin charts as standalone d3.js HTML pages.",
	Long:               `Violin turns a categorical/continuous table into a self-contained d3.js violin chart.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".violin") // Name of config file (without extension)
		viper.SetConfigType("yaml")    // We'll use YAML format
		viper.AddConfigPath(".")       // Look in the current directory
		viper.AddConfigPath("$HOME")   // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("VIOLIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("title", schema.DefaultTitle)
	viper.SetDefault("filepath", schema.DefaultFilename)
	viper.SetDefault("overwrite", true)
	viper.SetDefault("grace", schema.DefaultOverwriteGrace.String())
	viper.SetDefault("bins", schema.DefaultBins)
	viper.SetDefault("cmap", schema.DefaultCmap)
	viper.SetDefault("size", schema.DefaultSize)
	viper.SetDefault("stroke", schema.DefaultStroke)
	viper.SetDefault("opacity", schema.DefaultOpacity)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run validation and complex parsing. This populates the global
	// 'cfg' from 'input', including the positional input path.
	return contract.ProcessAndValidate(cfg, input, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
