// Package segmenter splits résumé plain text into labeled sections with a
// single-pass line scanner. Section boundaries are soft: a line is assigned
// to the section active when it is seen and never re-classified.
package segmenter

import (
	"fmt"
	"regexp"
	"strings"
)

// Label identifies a résumé section.
type Label string

// Known section labels. Text before the first recognized header, or a whole
// document without headers, is labeled Other.
const (
	LabelContact        Label = "contact"
	LabelEducation      Label = "education"
	LabelExperience     Label = "experience"
	LabelSkills         Label = "skills"
	LabelCertifications Label = "certifications"
	LabelLicenses       Label = "licenses"
	LabelOther          Label = "other"
)

// labelOrder fixes the precedence when a line matches keywords for more
// than one section.
var labelOrder = []Label{
	LabelContact,
	LabelEducation,
	LabelExperience,
	LabelSkills,
	LabelCertifications,
	LabelLicenses,
}

// Header detection thresholds. A header line is short: at most 40
// characters and 5 words after trimming.
const (
	maxHeaderLength = 40
	maxHeaderWords  = 5
)

// Section is one labeled span of résumé text.
type Section struct {
	Label   Label
	Content string
}

// Sections is the ordered segmentation result, one entry per label in order
// of first appearance.
type Sections []Section

// Text returns the content for a label, or the empty string when the label
// was not seen.
func (s Sections) Text(label Label) string {
	for _, section := range s {
		if section.Label == label {
			return section.Content
		}
	}
	return ""
}

type headerPattern struct {
	label Label
	re    *regexp.Regexp
}

// Segmenter matches header lines against a keyword table compiled once at
// construction.
type Segmenter struct {
	patterns []headerPattern
}

// New compiles a Segmenter from a section-label -> header-keywords table,
// such as the one carried by the taxonomy.
func New(headerKeywords map[string][]string) *Segmenter {
	s := &Segmenter{}
	for _, label := range labelOrder {
		keywords := headerKeywords[string(label)]
		if len(keywords) == 0 {
			continue
		}
		quoted := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(kw)))
		}
		re := regexp.MustCompile(fmt.Sprintf(`\b(?:%s)\b`, strings.Join(quoted, "|")))
		s.patterns = append(s.patterns, headerPattern{label: label, re: re})
	}
	return s
}

// Segment scans the text line by line. A short line matching a header
// keyword for a different section switches the active section and is
// consumed; every other non-empty line is appended to the active section,
// which starts as Other.
func (s *Segmenter) Segment(text string) Sections {
	content := make(map[Label][]string)
	var order []Label

	appendLine := func(label Label, line string) {
		if _, seen := content[label]; !seen {
			order = append(order, label)
		}
		content[label] = append(content[label], line)
	}

	enter := func(label Label) {
		if _, seen := content[label]; !seen {
			order = append(order, label)
			content[label] = nil
		}
	}

	current := LabelOther
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if label, ok := s.headerLabel(line); ok && label != current {
			current = label
			enter(label)
			continue
		}

		appendLine(current, line)
	}

	sections := make(Sections, 0, len(order))
	for _, label := range order {
		sections = append(sections, Section{
			Label:   label,
			Content: strings.Join(content[label], "\n"),
		})
	}
	return sections
}

// headerLabel reports whether a line looks like a section header and which
// section it opens.
func (s *Segmenter) headerLabel(line string) (Label, bool) {
	trimmed := strings.TrimRight(strings.TrimSpace(line), ":")
	if len(trimmed) > maxHeaderLength || len(strings.Fields(trimmed)) > maxHeaderWords {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, pattern := range s.patterns {
		if pattern.re.MatchString(lower) {
			return pattern.label, true
		}
	}
	return "", false
}
