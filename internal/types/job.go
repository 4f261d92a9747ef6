package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRequirement represents a structured job requirement supplied by the
// caller. RequiredExperienceYears and RequiredExperienceCategory are
// alternative forms of the same constraint; the category wins when both are
// set. The record is treated as read-only input.
type JobRequirement struct {
	ID                         string   `json:"id,omitempty"`
	Specialty                  string   `json:"specialty" validate:"required"`
	RequiredExperienceYears    float64  `json:"required_experience_years,omitempty" validate:"gte=0"`
	RequiredExperienceCategory string   `json:"required_experience_category,omitempty"`
	Location                   Location `json:"location"`
	RequiredCertifications     []string `json:"required_certifications"`
}

// Validate validates the JobRequirement using the validator. The match
// scorer itself never rejects input; this is for callers that want to catch
// malformed records at the boundary.
func (j *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
