// Package entities extracts domain entities from résumé text with regex and
// dictionary heuristics. Extractors are pure functions; absence of a match
// is a zero value, never an error, because résumé text is noisy by nature.
package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// ExtractContact pulls the first email address and first North-American
// phone number found anywhere in the document. The name is taken from the
// first non-empty line when that line is neither an email nor a phone
// number and has at least two words. Headers are frequently absent, so the
// contact section is deliberately not required.
func ExtractContact(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email: emailRe.FindString(text),
	}

	if phone := phoneRe.FindString(text); phone != "" {
		info.Phone = NormalizePhone(phone)
	}

	info.Name = extractName(text)
	return info
}

// extractName returns the first non-empty line when it plausibly is a
// person's name.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if emailRe.MatchString(line) || phoneRe.MatchString(line) {
			return ""
		}
		if len(strings.Fields(line)) < 2 {
			return ""
		}
		return line
	}
	return ""
}

// NormalizePhone standardizes North-American phone numbers to
// "(XXX) XXX-XXXX"; anything else is returned unchanged.
func NormalizePhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	default:
		return phone
	}
}
