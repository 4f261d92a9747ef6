package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carematch/resume-matcher/internal/matching"
	"github.com/carematch/resume-matcher/internal/observability"
	"github.com/carematch/resume-matcher/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score a batch of candidates against a job and rank the results",
	Long:  "Score every candidate in a JSON array against one job requirement, then filter, sort and truncate the results. Scoring runs across a bounded worker pool; ranking restores a deterministic order.",
	RunE:  runRank,
}

var (
	rankCandidatesFile string
	rankJobFile        string
	rankOutputFile     string
	rankMin            float64
	rankLimit          int
	rankWorkers        int
)

func init() {
	rankCmd.Flags().StringVar(&rankCandidatesFile, "candidates", "", "Path to a JSON array of candidate profiles (required)")
	rankCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to the job requirement JSON (required)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to the output JSON file (default: stdout)")
	rankCmd.Flags().Float64Var(&rankMin, "min", 0, "Minimum match percentage to keep (0-100)")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum number of results (0 = unlimited)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Scoring worker pool size (0 = number of CPUs)")
	_ = rankCmd.MarkFlagRequired("candidates")
	_ = rankCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("min") && appCfg.MinMatchPercentage > 0 {
		rankMin = appCfg.MinMatchPercentage
	}
	if !flags.Changed("limit") && appCfg.Limit > 0 {
		rankLimit = appCfg.Limit
	}
	if !flags.Changed("workers") && appCfg.Workers > 0 {
		rankWorkers = appCfg.Workers
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

	var candidates []types.CandidateProfile
	if err := readJSONFile(rankCandidatesFile, &candidates); err != nil {
		return err
	}
	for i := range candidates {
		if candidates[i].ID == "" {
			candidates[i].ID = uuid.NewString()
		}
	}

	var job types.JobRequirement
	if err := readJSONFile(rankJobFile, &job); err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	scorer := matching.NewScorer(tax, matching.Options{StrongMatchThreshold: appCfg.StrongMatchThreshold})
	results, err := scorer.ScoreAll(context.Background(), candidates, &job, rankWorkers)
	if err != nil {
		return err
	}

	ranked := matching.Rank(results, matching.RankOptions{
		MinMatchPercentage: rankMin,
		Limit:              rankLimit,
	})

	log.Info("ranked candidates",
		zap.Int("scored", len(results)),
		zap.Int("kept", len(ranked)),
		zap.Float64("min_match_percentage", rankMin),
	)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintRankedResults(ranked)
	}

	return writeJSONOutput(rankOutputFile, ranked)
}
