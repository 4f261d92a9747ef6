package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// yearRangeRe matches noisy résumé date ranges such as "2018-2022",
// "2019 – present" and "2015 to 2017".
var yearRangeRe = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:19|20)\d{2}|present|current)\b`)

// yearRange is a parsed date range. end is zero when the range is open;
// current marks ranges ending in "present"/"current".
type yearRange struct {
	start   int
	end     int
	current bool
}

// parseYearRange extracts the first year range on a line.
func parseYearRange(line string) (yearRange, bool) {
	m := yearRangeRe.FindStringSubmatch(line)
	if m == nil {
		return yearRange{}, false
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return yearRange{}, false
	}

	r := yearRange{start: start}
	endToken := strings.ToLower(m[2])
	if endToken == "present" || endToken == "current" {
		r.current = true
	} else if end, err := strconv.Atoi(m[2]); err == nil {
		r.end = end
	}

	return r, true
}
