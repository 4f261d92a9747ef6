package matching

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/carematch/resume-matcher/internal/types"
)

// ScoreAll scores every candidate against the job across a bounded worker
// pool. Each pair is independent; results land at the index of their
// candidate regardless of completion order, so output order is
// deterministic. workers <= 0 uses the number of CPUs. The only possible
// error is context cancellation.
func (s *Scorer) ScoreAll(ctx context.Context, candidates []types.CandidateProfile, job *types.JobRequirement, workers int) ([]types.MatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]types.MatchResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = s.Score(&candidates[i], job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
