package entities

import (
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

// degreeRe matches the degree keywords that open a new education record.
var degreeRe = regexp.MustCompile(`(?i)\b(bachelor|master|associate|ph\.?d|bsn|msn|adn|diploma)\b`)

// ExtractEducation parses the education section. A line containing a degree
// keyword starts a new record; a year range on that line or a following
// line attaches to the most recent record without dates.
func ExtractEducation(sectionText string) []types.Education {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}

	var records []types.Education
	openIdx := -1 // index of the most recent record without dates

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line == "" {
			continue
		}

		if degreeRe.MatchString(line) {
			records = append(records, newEducation(line))
			openIdx = len(records) - 1
		}

		if r, ok := parseYearRange(line); ok && openIdx >= 0 {
			records[openIdx].StartYear = r.start
			records[openIdx].EndYear = r.end
			openIdx = -1
		}
	}

	return records
}

// newEducation builds a record from a degree line. A comma splits degree
// from institution ("BSN, State University" style).
func newEducation(line string) types.Education {
	clean := yearRangeRe.ReplaceAllString(line, "")
	clean = strings.Trim(strings.TrimSpace(clean), ",|-")

	if idx := strings.Index(clean, ","); idx > 0 {
		return types.Education{
			Degree:      strings.TrimSpace(clean[:idx]),
			Institution: strings.TrimSpace(clean[idx+1:]),
		}
	}
	return types.Education{Degree: strings.TrimSpace(clean)}
}
