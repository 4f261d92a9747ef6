package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/taxonomy"
)

// shortTermLength is the synonym length at or below which matching is
// case-sensitive against the uppercased form. "ER", "OR" and "ED" collide
// with common English words when lowercased.
const shortTermLength = 3

// ExtractSpecialty finds specialty dictionary terms anywhere in the
// document and returns the canonical taxonomy value of the most frequent
// one. Ties break in favor of the term appearing earliest. The empty string
// means no specialty was found.
func ExtractSpecialty(text string, tax *taxonomy.Taxonomy) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lower := strings.ToLower(text)

	type tally struct {
		count    int
		firstIdx int
	}
	counts := make(map[string]*tally)

	for _, term := range tax.SpecialtyTerms() {
		var re *regexp.Regexp
		haystack := lower
		if len(term.Term) <= shortTermLength {
			re = compileTermPattern(strings.ToUpper(term.Term))
			haystack = text
		} else {
			re = compileTermPattern(term.Term)
		}

		matches := re.FindAllStringIndex(haystack, -1)
		if len(matches) == 0 {
			continue
		}

		t, ok := counts[term.Canonical]
		if !ok {
			t = &tally{firstIdx: matches[0][0]}
			counts[term.Canonical] = t
		}
		t.count += len(matches)
		if matches[0][0] < t.firstIdx {
			t.firstIdx = matches[0][0]
		}
	}

	best := ""
	for canonical, t := range counts {
		if best == "" {
			best = canonical
			continue
		}
		b := counts[best]
		if t.count > b.count || (t.count == b.count && t.firstIdx < b.firstIdx) {
			best = canonical
		}
	}
	return best
}

// compileTermPattern builds a word-boundary pattern for a dictionary term.
// Interior punctuation ("l&d", "med-surg") is fine: terms start and end
// with word characters, which is all \b needs.
func compileTermPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(term)))
}
