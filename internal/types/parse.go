package types

// ParseResult represents the outcome of parsing a résumé document.
// Validation maps each checked field name to whether it was extracted;
// Confidence is the ratio of satisfied checks and is 0.0 when nothing was
// checked.
type ParseResult struct {
	ParsedData CandidateProfile `json:"parsed_data"`
	Validation map[string]bool  `json:"validation"`
	Confidence float64          `json:"confidence"`
	RawText    string           `json:"raw_text,omitempty"`
}
