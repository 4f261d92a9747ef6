package types

// FactorScores holds the per-factor breakdown of a match score. Each factor
// is in the range [0, 100].
type FactorScores struct {
	Specialty      float64 `json:"specialty"`
	Experience     float64 `json:"experience"`
	Location       float64 `json:"location"`
	Certifications float64 `json:"certifications"`
	Licenses       float64 `json:"licenses"`
}

// MatchResult represents the outcome of scoring one candidate against one
// job. It references the candidate and job by identifier only and is
// immutable once returned.
type MatchResult struct {
	CandidateID     string       `json:"candidate_id,omitempty"`
	JobID           string       `json:"job_id,omitempty"`
	MatchPercentage float64      `json:"match_percentage"`
	Scores          FactorScores `json:"scores"`
	IsStrongMatch   bool         `json:"is_strong_match"`
	Explanation     string       `json:"explanation,omitempty"`
}
