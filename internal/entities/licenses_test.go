package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLicenses_StateAndNumber(t *testing.T) {
	licenses := ExtractLicenses("Licensed RN, CA license RN123456")

	require.Len(t, licenses, 1)
	assert.Equal(t, "CA", licenses[0].State)
	assert.Equal(t, "RN123456", licenses[0].LicenseNumber)
}

func TestExtractLicenses_StateOnly(t *testing.T) {
	licenses := ExtractLicenses("Active licensure in TX")

	require.Len(t, licenses, 1)
	assert.Equal(t, "TX", licenses[0].State)
	assert.Empty(t, licenses[0].LicenseNumber)
}

func TestExtractLicenses_NumberOnly(t *testing.T) {
	licenses := ExtractLicenses("License number 7734921")

	require.Len(t, licenses, 1)
	assert.Empty(t, licenses[0].State)
	assert.Equal(t, "7734921", licenses[0].LicenseNumber)
}

func TestExtractLicenses_LineWithoutIndicatorSkipped(t *testing.T) {
	assert.Empty(t, ExtractLicenses("Worked in CA and NY hospitals"))
}

func TestExtractLicenses_LowercaseStateNotMatched(t *testing.T) {
	licenses := ExtractLicenses("licensed in ca")

	assert.Empty(t, licenses)
}

func TestExtractLicenses_OrdinaryWordsNotLicenseNumbers(t *testing.T) {
	// "registered" has no digits; it must not be read as a number.
	assert.Empty(t, ExtractLicenses("licensed registered nurse"))
}

func TestExtractLicenses_Deduplicated(t *testing.T) {
	text := "CA license RN123456\nCA license RN123456"
	licenses := ExtractLicenses(text)

	require.Len(t, licenses, 1)
}

func TestExtractLicenses_MultipleStates(t *testing.T) {
	text := "NY license 1234567\nNJ license 9876543"
	licenses := ExtractLicenses(text)

	require.Len(t, licenses, 2)
	assert.Equal(t, "NY", licenses[0].State)
	assert.Equal(t, "NJ", licenses[1].State)
}

func TestParseYearRange_Forms(t *testing.T) {
	r, ok := parseYearRange("2018-2022")
	require.True(t, ok)
	assert.Equal(t, 2018, r.start)
	assert.Equal(t, 2022, r.end)
	assert.False(t, r.current)

	r, ok = parseYearRange("2019 – Present")
	require.True(t, ok)
	assert.Equal(t, 2019, r.start)
	assert.Zero(t, r.end)
	assert.True(t, r.current)

	r, ok = parseYearRange("2015 to 2017")
	require.True(t, ok)
	assert.Equal(t, 2015, r.start)
	assert.Equal(t, 2017, r.end)
}

func TestParseYearRange_NoMatch(t *testing.T) {
	_, ok := parseYearRange("worked for 5 years")
	assert.False(t, ok)
}
