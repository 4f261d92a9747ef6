package matching

import (
	"fmt"
	"strings"

	"github.com/carematch/resume-matcher/internal/types"
)

// buildExplanation creates a brief account of the factor breakdown for
// caller-side rendering.
func buildExplanation(scores types.FactorScores, job *types.JobRequirement) string {
	var parts []string

	if scores.Specialty == 100 {
		parts = append(parts, fmt.Sprintf("Specialty matches %s", job.Specialty))
	} else {
		parts = append(parts, "No specialty match")
	}

	switch {
	case scores.Experience == 100:
		parts = append(parts, "Meets experience requirement")
	case scores.Experience > 0:
		parts = append(parts, "Below required experience")
	default:
		parts = append(parts, "Experience unknown or well below requirement")
	}

	switch {
	case scores.Location == 100:
		parts = append(parts, "Location fits")
	case scores.Location > 0:
		parts = append(parts, "Same state, different city")
	default:
		parts = append(parts, "Location mismatch")
	}

	if len(job.RequiredCertifications) == 0 {
		parts = append(parts, "No certifications required")
	} else if scores.Certifications == 100 {
		parts = append(parts, "Holds all required certifications")
	} else {
		parts = append(parts, fmt.Sprintf("Holds %.0f%% of required certifications", scores.Certifications))
	}

	if job.Location.State != "" {
		if scores.Licenses == 100 {
			parts = append(parts, fmt.Sprintf("Licensed in %s", job.Location.State))
		} else {
			parts = append(parts, fmt.Sprintf("No %s license", job.Location.State))
		}
	}

	return strings.Join(parts, ". ")
}
