package entities

import (
	"regexp"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

var (
	licenseIndicatorRe = regexp.MustCompile(`(?i)\b(license[ds]?|licensure|licensed)\b`)
	stateTokenRe       = regexp.MustCompile(`\b[A-Z]{2}\b`)
	licenseNumberRe    = regexp.MustCompile(`\b[A-Za-z0-9]{5,15}\b`)
	digitRe            = regexp.MustCompile(`\d`)
)

// usStates is the set of two-letter USPS state codes, plus DC.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// ExtractLicenses scans lines containing a license indicator for a US state
// code and a plausible license number (an alphanumeric token of length 5-15
// containing at least one digit). A record is emitted when at least one of
// the two is found. Expiration dates are never extracted from free text.
func ExtractLicenses(text string) []types.License {
	var results []types.License
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		if !licenseIndicatorRe.MatchString(line) {
			continue
		}

		license := types.License{
			State:         findStateCode(line),
			LicenseNumber: findLicenseNumber(line),
		}
		if license.State == "" && license.LicenseNumber == "" {
			continue
		}

		key := license.State + "|" + license.LicenseNumber
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, license)
	}

	return results
}

// findStateCode returns the first uppercase two-letter token that is a US
// state code. Matching is case-sensitive: lowercased state codes are
// indistinguishable from ordinary words ("in", "or", "me").
func findStateCode(line string) string {
	for _, token := range stateTokenRe.FindAllString(line, -1) {
		if usStates[token] {
			return token
		}
	}
	return ""
}

// findLicenseNumber returns the first alphanumeric token of length 5-15
// with at least one digit. The digit requirement keeps ordinary words out.
func findLicenseNumber(line string) string {
	for _, token := range licenseNumberRe.FindAllString(line, -1) {
		if digitRe.MatchString(token) {
			return token
		}
	}
	return ""
}
