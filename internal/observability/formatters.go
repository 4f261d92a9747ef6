// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseResult outputs a human-readable summary of a parsed résumé.
func (p *Printer) PrintParseResult(result *types.ParseResult) {
	if result == nil {
		return
	}
	profile := result.ParsedData

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(profile.ContactInfo.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(profile.ContactInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(profile.ContactInfo.Phone)))
	sb.WriteString(fmt.Sprintf("Specialty:  %s\n", orDash(profile.Specialty)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", orDash(profile.YearsExperienceCategory)))
	sb.WriteString("\n")

	if len(profile.Certifications) > 0 {
		names := make([]string, 0, len(profile.Certifications))
		for _, cert := range profile.Certifications {
			names = append(names, cert.Name)
		}
		sb.WriteString(fmt.Sprintf("Certifications: %s\n", strings.Join(names, ", ")))
	}

	if len(profile.Licenses) > 0 {
		sb.WriteString("Licenses:\n")
		count := min(len(profile.Licenses), maxItemsToShow)
		for i := 0; i < count; i++ {
			lic := profile.Licenses[i]
			sb.WriteString(fmt.Sprintf("  • %s %s\n", orDash(lic.State), lic.LicenseNumber))
		}
		if len(profile.Licenses) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Licenses)-maxItemsToShow))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Education[i].Degree))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Missing:    %s", strings.Join(missingFields(result.Validation), ", ")))

	p.printBox("PARSED CANDIDATE PROFILE", sb.String())
}

// PrintMatchResult outputs the per-factor breakdown of a match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:          %.1f%%", result.MatchPercentage))
	if result.IsStrongMatch {
		sb.WriteString("  (strong)")
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Specialty:      %6.1f\n", result.Scores.Specialty))
	sb.WriteString(fmt.Sprintf("Experience:     %6.1f\n", result.Scores.Experience))
	sb.WriteString(fmt.Sprintf("Location:       %6.1f\n", result.Scores.Location))
	sb.WriteString(fmt.Sprintf("Certifications: %6.1f\n", result.Scores.Certifications))
	sb.WriteString(fmt.Sprintf("Licenses:       %6.1f\n", result.Scores.Licenses))

	if result.Explanation != "" {
		sb.WriteString("\n")
		sb.WriteString(result.Explanation)
	}

	p.printBox("MATCH BREAKDOWN", sb.String())
}

// PrintRankedResults outputs the top ranked matches.
func (p *Printer) PrintRankedResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, orDash(r.CandidateID)))
		sb.WriteString(fmt.Sprintf("    %.1f%%", r.MatchPercentage))
		if r.IsStrongMatch {
			sb.WriteString("  (strong)")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", sb.String())
}

// missingFields lists validation fields that were not satisfied, sorted for
// stable output.
func missingFields(validation map[string]bool) []string {
	missing := make([]string, 0, len(validation))
	for field, ok := range validation {
		if !ok {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	if len(missing) == 0 {
		return []string{"none"}
	}
	return missing
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
