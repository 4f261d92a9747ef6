package matching

import (
	"sort"

	"github.com/carematch/resume-matcher/internal/types"
)

// RankOptions configures Rank. A zero MinMatchPercentage keeps everything;
// a zero or negative Limit means unlimited.
type RankOptions struct {
	MinMatchPercentage float64
	Limit              int
}

// Rank filters results below the floor, sorts the remainder by match
// percentage descending, and truncates to the limit. The sort is stable:
// equal percentages keep their input order, with no secondary key. The
// input slice is not modified.
func Rank(results []types.MatchResult, opts RankOptions) []types.MatchResult {
	ranked := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchPercentage >= opts.MinMatchPercentage {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked
}
