// Package main provides the entry point for the resume-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/carematch/resume-matcher/internal/config"
)

var rootCmd = &cobra.Command{
	Use:               "matcher",
	Short:             "Healthcare résumé parsing and candidate/job match scoring",
	Long:              "matcher extracts normalized candidate profiles from healthcare résumés (PDF, DOC, DOCX, TXT) and computes explainable match scores between candidates and job requirements.",
	PersistentPreRunE: loadAppConfig,
}

var (
	configFile   string
	taxonomyFile string
	verbose      bool
	logJSON      bool
	logDebug     bool

	// appCfg holds config-file and environment defaults for flags the user
	// did not set explicitly. Populated by loadAppConfig.
	appCfg config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config JSON file")
	rootCmd.PersistentFlags().StringVar(&taxonomyFile, "taxonomy", "", "Path to a taxonomy override JSON file (default: built-in dictionaries)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries of intermediate results")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON instead of console format")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")
}

// loadAppConfig layers configuration sources: environment variables first,
// then the config file, then explicit command-line flags.
func loadAppConfig(cmd *cobra.Command, _ []string) error {
	appCfg = config.FromEnv()

	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		appCfg = fileCfg.MergeWithDefaults(appCfg)
	}
	if err := appCfg.Validate(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("taxonomy") && appCfg.Taxonomy != "" {
		taxonomyFile = appCfg.Taxonomy
	}
	if !flags.Changed("verbose") {
		verbose = verbose || appCfg.Verbose
	}
	if !flags.Changed("log-json") {
		logJSON = logJSON || appCfg.LogJSON
	}
	if !flags.Changed("debug") {
		logDebug = logDebug || appCfg.Debug
	}

	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
