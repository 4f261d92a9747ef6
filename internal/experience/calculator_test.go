package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carematch/resume-matcher/internal/types"
)

var testNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestYears_LongestRangeWins(t *testing.T) {
	positions := []types.Position{
		{StartYear: 2020, EndYear: 2022},
		{StartYear: 2010, EndYear: 2018},
	}

	assert.Equal(t, 8, Years(positions, testNow))
}

func TestYears_CurrentPositionUsesNow(t *testing.T) {
	positions := []types.Position{{StartYear: 2020, Current: true}}

	assert.Equal(t, 6, Years(positions, testNow))
}

func TestYears_SkipsPositionsWithoutStart(t *testing.T) {
	positions := []types.Position{
		{EndYear: 2022},
		{StartYear: 2021, EndYear: 2023},
	}

	assert.Equal(t, 2, Years(positions, testNow))
}

func TestYears_SkipsOpenNonCurrentRanges(t *testing.T) {
	positions := []types.Position{{StartYear: 2015}}

	assert.Zero(t, Years(positions, testNow))
}

func TestYears_Empty(t *testing.T) {
	assert.Zero(t, Years(nil, testNow))
}

func TestCategorize_Buckets(t *testing.T) {
	cases := []struct {
		start, end int
		want       Category
	}{
		{2026, 2026, Category0to1},
		{2024, 2026, Category1to3},
		{2022, 2026, Category3to5},
		{2018, 2026, Category5to10},
		{2010, 2026, Category10Plus},
	}
	for _, tc := range cases {
		positions := []types.Position{{StartYear: tc.start, EndYear: tc.end}}
		assert.Equal(t, tc.want, Categorize(positions, testNow), "range %d-%d", tc.start, tc.end)
	}
}

func TestCategorize_NoUsableRanges(t *testing.T) {
	positions := []types.Position{{Title: "Staff Nurse"}, {StartYear: 2019}}

	assert.Equal(t, CategoryUnknown, Categorize(positions, testNow))
}

func TestBucketYears_Boundaries(t *testing.T) {
	assert.Equal(t, Category0to1, BucketYears(0))
	assert.Equal(t, Category0to1, BucketYears(0.9))
	assert.Equal(t, Category1to3, BucketYears(1))
	assert.Equal(t, Category3to5, BucketYears(3))
	assert.Equal(t, Category5to10, BucketYears(5))
	assert.Equal(t, Category10Plus, BucketYears(10))
	assert.Equal(t, Category10Plus, BucketYears(25))
}

func TestOrdinal_Known(t *testing.T) {
	ord, ok := Ordinal(Category5to10)
	require.True(t, ok)
	assert.Equal(t, 3, ord)

	ord, ok = Ordinal(Category10Plus)
	require.True(t, ok)
	assert.Equal(t, MaxOrdinal, ord)
}

func TestOrdinal_Unknown(t *testing.T) {
	_, ok := Ordinal(CategoryUnknown)
	assert.False(t, ok)

	_, ok = Ordinal(Category("2-4"))
	assert.False(t, ok)
}
