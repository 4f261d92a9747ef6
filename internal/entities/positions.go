package entities

import (
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

// titleRe matches the job-title keywords that open a new position record.
var (
	titleRe      = regexp.MustCompile(`(?i)\b(nurse|rn|lpn|cna|clinical|staff|travel|contract)\b`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// ExtractPositions parses the experience section. A line containing a
// job-title keyword starts a new position; a year range on that line or a
// following line attaches to the most recent position without dates.
func ExtractPositions(sectionText string) []types.Position {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}

	var positions []types.Position
	openIdx := -1 // index of the most recent position without dates

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line == "" {
			continue
		}

		if titleRe.MatchString(line) {
			positions = append(positions, types.Position{Title: positionTitle(line)})
			openIdx = len(positions) - 1
		}

		if r, ok := parseYearRange(line); ok && openIdx >= 0 {
			positions[openIdx].StartYear = r.start
			positions[openIdx].EndYear = r.end
			positions[openIdx].Current = r.current
			openIdx = -1
		}
	}

	return positions
}

// positionTitle strips the date range and trailing separators from a title
// line.
func positionTitle(line string) string {
	clean := yearRangeRe.ReplaceAllString(line, "")
	clean = multiSpaceRe.ReplaceAllString(clean, " ")
	return strings.Trim(strings.TrimSpace(clean), ",|-")
}
