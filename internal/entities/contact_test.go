package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_NameEmailPhone(t *testing.T) {
	text := "Jane Smith\njane.smith@example.com\n555-123-4567\n\nEXPERIENCE\nICU Nurse"
	info := ExtractContact(text)

	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane.smith@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
}

func TestExtractContact_FirstEmailWins(t *testing.T) {
	text := "Jane Smith\nfirst@example.com\nsecond@example.com"
	info := ExtractContact(text)

	assert.Equal(t, "first@example.com", info.Email)
}

func TestExtractContact_NoName_FirstLineIsEmail(t *testing.T) {
	info := ExtractContact("jane@example.com\nICU Nurse resume")

	assert.Empty(t, info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestExtractContact_NoName_SingleWordFirstLine(t *testing.T) {
	info := ExtractContact("Resume\nJane Smith\njane@example.com")

	assert.Empty(t, info.Name)
}

func TestExtractContact_MissingFieldsAreEmpty(t *testing.T) {
	info := ExtractContact("Experienced nurse seeking a new role")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestNormalizePhone_TenDigits(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", NormalizePhone("555.123.4567"))
	assert.Equal(t, "(555) 123-4567", NormalizePhone("(555) 123 4567"))
	assert.Equal(t, "(555) 123-4567", NormalizePhone("5551234567"))
}

func TestNormalizePhone_CountryCode(t *testing.T) {
	assert.Equal(t, "+1 (555) 123-4567", NormalizePhone("+1 555-123-4567"))
	assert.Equal(t, "+1 (555) 123-4567", NormalizePhone("15551234567"))
}

func TestNormalizePhone_UnrecognizedReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "12345", NormalizePhone("12345"))
}
