package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carematch/resume-matcher/internal/extraction"
	"github.com/carematch/resume-matcher/internal/taxonomy"
)

const sampleResume = `Jane Smith
jane@example.com
(555) 123-4567

EXPERIENCE
ICU Staff Nurse, General Hospital
2018 - Present
- Managed ventilated patients in the ICU

EDUCATION
BSN, State University
2014-2018

CERTIFICATIONS
BLS certified, ACLS

LICENSES
CA RN license RN123456`

func TestParseText_FullResume(t *testing.T) {
	p := New(taxonomy.Default())
	result := p.ParseText(sampleResume)

	assert.Equal(t, "Jane Smith", result.ParsedData.ContactInfo.Name)
	assert.Equal(t, "jane@example.com", result.ParsedData.ContactInfo.Email)
	assert.Equal(t, "(555) 123-4567", result.ParsedData.ContactInfo.Phone)
	assert.Equal(t, "ICU", result.ParsedData.Specialty)

	require.NotEmpty(t, result.ParsedData.Certifications)
	names := make([]string, 0, len(result.ParsedData.Certifications))
	for _, c := range result.ParsedData.Certifications {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "BLS")
	assert.Contains(t, names, "ACLS")

	require.Len(t, result.ParsedData.Positions, 1)
	assert.True(t, result.ParsedData.Positions[0].Current)
	assert.NotEmpty(t, result.ParsedData.YearsExperienceCategory)

	require.Len(t, result.ParsedData.Education, 1)
	assert.Equal(t, "BSN", result.ParsedData.Education[0].Degree)

	require.Len(t, result.ParsedData.Licenses, 1)
	assert.Equal(t, "CA", result.ParsedData.Licenses[0].State)
}

func TestParseText_ValidationMapCoversAllFields(t *testing.T) {
	p := New(taxonomy.Default())
	result := p.ParseText(sampleResume)

	for _, field := range checkedFields {
		valid, present := result.Validation[field]
		assert.True(t, present, "validation entry for %s", field)
		assert.True(t, valid, "field %s should validate", field)
	}
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

func TestParseText_PartialResumeConfidence(t *testing.T) {
	p := New(taxonomy.Default())
	result := p.ParseText("Jane Smith\njane@example.com")

	assert.True(t, result.Validation["name"])
	assert.True(t, result.Validation["email"])
	assert.False(t, result.Validation["phone"])
	assert.False(t, result.Validation["specialty"])
	assert.InDelta(t, 0.25, result.Confidence, 1e-9)
}

func TestParseText_EmptyInput(t *testing.T) {
	p := New(taxonomy.Default())
	result := p.ParseText("")

	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.ParsedData.Specialty)
	assert.Empty(t, result.RawText)
}

func TestParseText_NoHeadersFallsBackToUnlabeledText(t *testing.T) {
	p := New(taxonomy.Default())
	text := "Jane Smith\nICU Staff Nurse 2019-2023\nBSN, State University"
	result := p.ParseText(text)

	require.Len(t, result.ParsedData.Positions, 1)
	require.Len(t, result.ParsedData.Education, 1)
}

func TestParseText_Idempotent(t *testing.T) {
	p := New(taxonomy.Default())
	first := p.ParseText(sampleResume)
	second := p.ParseText(sampleResume)

	assert.Equal(t, first, second)
}

func TestParseBytes_UnsupportedFormatNoResult(t *testing.T) {
	p := New(taxonomy.Default())
	result, err := p.ParseBytes(context.Background(), []byte("a,b,c"), ".csv")

	require.Error(t, err)
	assert.Nil(t, result)
	var unsupported *extraction.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
}

func TestParseFile_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	p := New(taxonomy.Default())
	result, err := p.ParseFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", result.ParsedData.ContactInfo.Name)
}

func TestParseFile_MissingFile(t *testing.T) {
	p := New(taxonomy.Default())
	_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	var failure *extraction.ExtractionFailureError
	assert.True(t, errors.As(err, &failure))
}
