// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo represents contact details extracted from a résumé.
type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Location represents a city/state location. WillingToRelocate only has
// meaning on a candidate profile.
type Location struct {
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	WillingToRelocate bool   `json:"willing_to_relocate,omitempty"`
}

// Education represents a single education entry extracted from a résumé.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
}

// Certification represents a professional certification held by a candidate.
type Certification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization,omitempty"`
	ExpirationDate      string `json:"expiration_date,omitempty"`
}

// License represents a state professional license held by a candidate.
// ExpirationDate is never populated by the parser; free-text expiration
// extraction is not attempted.
type License struct {
	State          string `json:"state,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

// Position represents a single work-history entry. EndYear is zero when the
// range is open; Current marks ranges ending in "present", which resolve to
// the current calendar year at evaluation time.
type Position struct {
	Title     string `json:"title"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
	Current   bool   `json:"current,omitempty"`
}

// CandidateProfile represents a normalized candidate extracted from résumé
// free text. Specialty, when present, is a canonical taxonomy value.
// Profiles are created fresh per parse call and never mutated afterwards.
type CandidateProfile struct {
	ID                      string          `json:"id,omitempty"`
	ContactInfo             ContactInfo     `json:"contact_info"`
	Specialty               string          `json:"specialty,omitempty"`
	YearsExperienceCategory string          `json:"years_experience_category,omitempty"`
	Education               []Education     `json:"education"`
	Positions               []Position      `json:"positions,omitempty"`
	Certifications          []Certification `json:"certifications"`
	Licenses                []License       `json:"licenses"`
	Location                Location        `json:"location"`
}
