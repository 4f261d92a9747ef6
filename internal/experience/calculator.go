// Package experience infers a years-of-experience category from noisy
// position date ranges.
package experience

import (
	"time"

	"github.com/carematch/resume-matcher/internal/types"
)

// Category is a discretized years-of-experience range. The empty string
// means the category could not be inferred.
type Category string

// The canonical bucket set, ordered. Numeric years map through the same
// thresholds everywhere; no alternative bucket table exists.
const (
	CategoryUnknown Category = ""
	Category0to1    Category = "0-1"
	Category1to3    Category = "1-3"
	Category3to5    Category = "3-5"
	Category5to10   Category = "5-10"
	Category10Plus  Category = "10+"
)

// ordering maps each category to its ordinal position.
var ordering = map[Category]int{
	Category0to1:   0,
	Category1to3:   1,
	Category3to5:   2,
	Category5to10:  3,
	Category10Plus: 4,
}

// MaxOrdinal is the ordinal of the highest bucket.
const MaxOrdinal = 4

// Years computes the maximum (end - start) across all positions. Open
// ranges ending in "present" resolve to the current calendar year at now.
// Positions without a start year are skipped.
func Years(positions []types.Position, now time.Time) int {
	maxYears := 0
	for _, p := range positions {
		if p.StartYear == 0 {
			continue
		}
		end := p.EndYear
		if p.Current || end == 0 {
			if !p.Current {
				continue
			}
			end = now.Year()
		}
		if span := end - p.StartYear; span > maxYears {
			maxYears = span
		}
	}
	return maxYears
}

// Categorize infers the category for a position history, CategoryUnknown
// when no position carries a usable date range.
func Categorize(positions []types.Position, now time.Time) Category {
	usable := false
	for _, p := range positions {
		if p.StartYear != 0 && (p.EndYear != 0 || p.Current) {
			usable = true
			break
		}
	}
	if !usable {
		return CategoryUnknown
	}
	return BucketYears(float64(Years(positions, now)))
}

// BucketYears maps a numeric year count into the canonical bucket set.
func BucketYears(years float64) Category {
	switch {
	case years < 1:
		return Category0to1
	case years < 3:
		return Category1to3
	case years < 5:
		return Category3to5
	case years < 10:
		return Category5to10
	default:
		return Category10Plus
	}
}

// Ordinal returns the position of a category in the bucket ordering. The
// second return is false for CategoryUnknown or unrecognized values.
func Ordinal(c Category) (int, bool) {
	ord, ok := ordering[c]
	return ord, ok
}
