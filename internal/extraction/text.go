package extraction

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes extracted text while preserving line
// structure, which the section segmenter depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")

	// Reduce runs of blank lines to at most two
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line: bullet markers become "- ", interior
// whitespace collapses to single spaces.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	for _, marker := range []string{"•", "·", "●", "*"} {
		if strings.HasPrefix(trimmed, marker) {
			trimmed = "- " + strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
			break
		}
	}

	return multiSpaceRe.ReplaceAllString(trimmed, " ")
}
