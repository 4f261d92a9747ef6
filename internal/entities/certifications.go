package entities

import (
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/taxonomy"
	"github.com/carematch/resume-matcher/internal/types"
)

var (
	wordTokenRe = regexp.MustCompile(`\b[A-Za-z]{2,10}\b`)
	nonAlnumRe  = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// certIndicators marks lines that enumerate certifications outside the
// dictionary scan, e.g. "Certified in BLS/ACLS".
var certIndicators = []string{"certified in", "certification:", "certifications:", "certificate in"}

// ExtractCertifications scans the whole document for known certification
// abbreviations, then re-scans indicator lines with a looser tokenizer for
// any dictionary term not already captured. Results keep document order and
// are deduplicated by name.
func ExtractCertifications(text string, tax *taxonomy.Taxonomy) []types.Certification {
	var results []types.Certification
	seen := make(map[string]bool)

	capture := func(token string) {
		name, ok := tax.CanonicalCertification(token)
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		results = append(results, types.Certification{Name: name})
	}

	for _, token := range wordTokenRe.FindAllString(text, -1) {
		capture(token)
	}

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, indicator := range certIndicators {
			if !strings.Contains(lower, indicator) {
				continue
			}
			// Split on anything non-alphanumeric to catch "BLS/ACLS" runs
			for _, token := range nonAlnumRe.Split(line, -1) {
				capture(token)
			}
			break
		}
	}

	return results
}
