// Package matching scores candidate profiles against job requirements and
// ranks the results.
package matching

import (
	"math"
	"strings"

	"github.com/carematch/resume-matcher/internal/experience"
	"github.com/carematch/resume-matcher/internal/taxonomy"
	"github.com/carematch/resume-matcher/internal/types"
)

// Weights for the five scoring factors, summing to 1.0. Specialty carries
// the highest weight.
const (
	specialtyWeight     = 0.35
	experienceWeight    = 0.25
	locationWeight      = 0.15
	certificationWeight = 0.15
	licenseWeight       = 0.10
)

const (
	// DefaultStrongMatchThreshold marks a result as a strong match.
	DefaultStrongMatchThreshold = 80.0

	// sameStateScore is the partial location score for same state,
	// different city.
	sameStateScore = 75.0

	// experienceGapPenalty is subtracted per ordinal bucket the candidate
	// falls short of the requirement.
	experienceGapPenalty = 25.0
)

// Options configures a Scorer. The zero value uses defaults.
type Options struct {
	StrongMatchThreshold float64
}

// Scorer computes match results. Scoring is a total function: missing
// candidate or job fields contribute zero to their factor, they never cause
// an error.
type Scorer struct {
	tax       *taxonomy.Taxonomy
	threshold float64
}

// NewScorer returns a Scorer using the given taxonomy for specialty
// normalization.
func NewScorer(tax *taxonomy.Taxonomy, opts Options) *Scorer {
	threshold := opts.StrongMatchThreshold
	if threshold <= 0 {
		threshold = DefaultStrongMatchThreshold
	}
	return &Scorer{tax: tax, threshold: threshold}
}

// Score computes the weighted match between one candidate and one job.
func (s *Scorer) Score(candidate *types.CandidateProfile, job *types.JobRequirement) types.MatchResult {
	if candidate == nil {
		candidate = &types.CandidateProfile{}
	}
	if job == nil {
		job = &types.JobRequirement{}
	}

	scores := types.FactorScores{
		Specialty:      s.specialtyScore(candidate, job),
		Experience:     experienceScore(candidate, job),
		Location:       locationScore(candidate, job),
		Certifications: certificationScore(candidate, job),
		Licenses:       licenseScore(candidate, job),
	}

	percentage := round1(scores.Specialty*specialtyWeight +
		scores.Experience*experienceWeight +
		scores.Location*locationWeight +
		scores.Certifications*certificationWeight +
		scores.Licenses*licenseWeight)

	return types.MatchResult{
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		MatchPercentage: percentage,
		Scores:          scores,
		IsStrongMatch:   percentage >= s.threshold,
		Explanation:     buildExplanation(scores, job),
	}
}

// specialtyScore is all-or-nothing after synonym normalization. A missing
// candidate specialty scores 0, never skips the factor.
func (s *Scorer) specialtyScore(candidate *types.CandidateProfile, job *types.JobRequirement) float64 {
	if candidate.Specialty == "" || job.Specialty == "" {
		return 0
	}
	if s.normalizeSpecialty(candidate.Specialty) == s.normalizeSpecialty(job.Specialty) {
		return 100
	}
	return 0
}

// normalizeSpecialty maps a term through the synonym table, falling back to
// a case-folded form for terms outside the taxonomy.
func (s *Scorer) normalizeSpecialty(term string) string {
	if canonical, ok := s.tax.CanonicalSpecialty(term); ok {
		return canonical
	}
	return strings.ToLower(strings.TrimSpace(term))
}

// experienceScore compares bucket ordinals: meeting or exceeding the
// requirement scores 100, each bucket short subtracts the gap penalty.
func experienceScore(candidate *types.CandidateProfile, job *types.JobRequirement) float64 {
	candOrd, ok := experience.Ordinal(experience.Category(candidate.YearsExperienceCategory))
	if !ok {
		return 0
	}

	jobOrd, ok := experience.Ordinal(experience.Category(job.RequiredExperienceCategory))
	if !ok {
		jobOrd, _ = experience.Ordinal(experience.BucketYears(job.RequiredExperienceYears))
	}

	if candOrd >= jobOrd {
		return 100
	}
	score := 100 - float64(jobOrd-candOrd)*experienceGapPenalty
	if score < 0 {
		return 0
	}
	return score
}

// locationScore: exact city+state is 100, same state is partial, and a
// different state scores only for candidates willing to relocate. A job
// without a location is unconstrained.
func locationScore(candidate *types.CandidateProfile, job *types.JobRequirement) float64 {
	if job.Location.State == "" {
		return 100
	}

	if strings.EqualFold(candidate.Location.State, job.Location.State) {
		if job.Location.City == "" || strings.EqualFold(candidate.Location.City, job.Location.City) {
			return 100
		}
		return sameStateScore
	}

	if candidate.Location.WillingToRelocate {
		return 100
	}
	return 0
}

// certificationScore is the fraction of job-required certification names the
// candidate holds, case-insensitive. No requirements means vacuous
// satisfaction.
func certificationScore(candidate *types.CandidateProfile, job *types.JobRequirement) float64 {
	if len(job.RequiredCertifications) == 0 {
		return 100
	}

	held := make(map[string]bool, len(candidate.Certifications))
	for _, cert := range candidate.Certifications {
		held[strings.ToLower(strings.TrimSpace(cert.Name))] = true
	}

	matched := 0
	for _, required := range job.RequiredCertifications {
		if held[strings.ToLower(strings.TrimSpace(required))] {
			matched++
		}
	}

	return float64(matched) / float64(len(job.RequiredCertifications)) * 100
}

// licenseScore: holding any license for the job's state scores 100; a job
// without a state is unconstrained.
func licenseScore(candidate *types.CandidateProfile, job *types.JobRequirement) float64 {
	if job.Location.State == "" {
		return 100
	}
	for _, license := range candidate.Licenses {
		if strings.EqualFold(license.State, job.Location.State) {
			return 100
		}
	}
	return 0
}

// round1 rounds to one decimal place, the stable precision of
// MatchPercentage.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
