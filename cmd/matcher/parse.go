package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carematch/resume-matcher/internal/observability"
	"github.com/carematch/resume-matcher/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a résumé document into a normalized candidate profile",
	Long:  "Parse a résumé document (PDF, DOC, DOCX or TXT) into a normalized candidate profile with per-field validation and a confidence ratio.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the résumé document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to the output JSON file (default: stdout)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	result, err := parser.New(tax).ParseFile(context.Background(), parseInputFile)
	if err != nil {
		return err
	}
	result.ParsedData.ID = uuid.NewString()

	log.Info("parsed resume",
		zap.String("file", parseInputFile),
		zap.Float64("confidence", result.Confidence),
		zap.String("specialty", result.ParsedData.Specialty),
	)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintParseResult(result)
	}

	return writeJSONOutput(parseOutputFile, result)
}
