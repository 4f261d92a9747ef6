// Package parser orchestrates résumé parsing: document bytes in, a
// normalized CandidateProfile with field validation and a confidence ratio
// out.
package parser

import (
	"context"
	"time"

	"github.com/carematch/resume-matcher/internal/entities"
	"github.com/carematch/resume-matcher/internal/experience"
	"github.com/carematch/resume-matcher/internal/extraction"
	"github.com/carematch/resume-matcher/internal/segmenter"
	"github.com/carematch/resume-matcher/internal/taxonomy"
	"github.com/carematch/resume-matcher/internal/types"
)

// checkedFields are the profile fields counted into the confidence ratio.
var checkedFields = []string{
	"name",
	"email",
	"phone",
	"specialty",
	"experience",
	"education",
	"certifications",
	"licenses",
}

// Parser turns résumé documents into CandidateProfiles. It holds only
// immutable configuration and is safe for concurrent use.
type Parser struct {
	tax       *taxonomy.Taxonomy
	segmenter *segmenter.Segmenter
	extractor *extraction.Extractor
	now       func() time.Time
}

// New returns a Parser using the given taxonomy and the default document
// extractor.
func New(tax *taxonomy.Taxonomy) *Parser {
	return &Parser{
		tax:       tax,
		segmenter: segmenter.New(tax.HeaderKeywords),
		extractor: extraction.New(),
		now:       time.Now,
	}
}

// ParseFile extracts and parses a résumé document from disk. Extraction
// errors (unsupported format, conversion failure) surface unchanged; there
// is no fallback parsing of a failed conversion.
func (p *Parser) ParseFile(ctx context.Context, path string) (*types.ParseResult, error) {
	text, err := p.extractor.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseBytes extracts and parses a résumé document from a byte buffer with
// a declared extension.
func (p *Parser) ParseBytes(ctx context.Context, data []byte, ext string) (*types.ParseResult, error) {
	text, err := p.extractor.ExtractBytes(ctx, data, ext)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseText parses already-extracted plain text. It never fails: every
// extractor degrades to an empty value on absence, and the validation map
// records what was found.
func (p *Parser) ParseText(raw string) *types.ParseResult {
	clean := extraction.CleanText(raw)
	sections := p.segmenter.Segment(clean)

	// Extractors fall back to the unlabeled remainder when their section
	// was never identified; headers are frequently absent.
	educationText := sections.Text(segmenter.LabelEducation)
	if educationText == "" {
		educationText = sections.Text(segmenter.LabelOther)
	}
	experienceText := sections.Text(segmenter.LabelExperience)
	if experienceText == "" {
		experienceText = sections.Text(segmenter.LabelOther)
	}

	positions := entities.ExtractPositions(experienceText)

	profile := types.CandidateProfile{
		ContactInfo:             entities.ExtractContact(clean),
		Specialty:               entities.ExtractSpecialty(clean, p.tax),
		YearsExperienceCategory: string(experience.Categorize(positions, p.now())),
		Education:               entities.ExtractEducation(educationText),
		Positions:               positions,
		Certifications:          entities.ExtractCertifications(clean, p.tax),
		Licenses:                entities.ExtractLicenses(clean),
	}

	validation := map[string]bool{
		"name":           profile.ContactInfo.Name != "",
		"email":          profile.ContactInfo.Email != "",
		"phone":          profile.ContactInfo.Phone != "",
		"specialty":      profile.Specialty != "",
		"experience":     profile.YearsExperienceCategory != "",
		"education":      len(profile.Education) > 0,
		"certifications": len(profile.Certifications) > 0,
		"licenses":       len(profile.Licenses) > 0,
	}

	return &types.ParseResult{
		ParsedData: profile,
		Validation: validation,
		Confidence: confidence(validation),
		RawText:    clean,
	}
}

// confidence is the ratio of satisfied checks, 0.0 when nothing was
// checked.
func confidence(validation map[string]bool) float64 {
	if len(validation) == 0 {
		return 0.0
	}
	valid := 0
	for _, field := range checkedFields {
		if validation[field] {
			valid++
		}
	}
	return float64(valid) / float64(len(checkedFields))
}
