package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carematch/resume-matcher/internal/matching"
	"github.com/carematch/resume-matcher/internal/observability"
	"github.com/carematch/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate profile against one job requirement",
	RunE:  runMatch,
}

var (
	matchCandidateFile string
	matchJobFile       string
	matchOutputFile    string
	matchThreshold     float64
)

func init() {
	matchCmd.Flags().StringVar(&matchCandidateFile, "candidate", "", "Path to the candidate profile JSON (required)")
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to the job requirement JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to the output JSON file (default: stdout)")
	matchCmd.Flags().Float64Var(&matchThreshold, "threshold", matching.DefaultStrongMatchThreshold, "Strong-match threshold (0-100)")
	_ = matchCmd.MarkFlagRequired("candidate")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("threshold") && appCfg.StrongMatchThreshold > 0 {
		matchThreshold = appCfg.StrongMatchThreshold
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	var candidate types.CandidateProfile
	if err := readJSONFile(matchCandidateFile, &candidate); err != nil {
		return err
	}

	var job types.JobRequirement
	if err := readJSONFile(matchJobFile, &job); err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	scorer := matching.NewScorer(tax, matching.Options{StrongMatchThreshold: matchThreshold})
	result := scorer.Score(&candidate, &job)

	log.Info("scored match",
		zap.Float64("match_percentage", result.MatchPercentage),
		zap.Bool("strong", result.IsStrongMatch),
	)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(&result)
	}

	return writeJSONOutput(matchOutputFile, result)
}
