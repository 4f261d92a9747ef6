// Package taxonomy provides the healthcare reference dictionaries used by the
// parser and scorer: specialty synonyms, certification abbreviations, and
// section header keywords. A Taxonomy is built once and never mutated; custom
// dictionaries can be loaded from a JSON file validated against an embedded
// schema.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/carematch/resume-matcher/internal/schemas"
)

//go:embed taxonomy.schema.json
var schemaJSON string

// Taxonomy holds the reference dictionaries. Specialties maps a canonical
// specialty to its accepted synonyms (the canonical term is always accepted
// for itself). HeaderKeywords maps a section label to the keywords that mark
// its header line.
type Taxonomy struct {
	Specialties    map[string][]string `json:"specialties"`
	Certifications []string            `json:"certifications"`
	HeaderKeywords map[string][]string `json:"header_keywords"`

	synonymIndex       map[string]string // lowercased synonym -> canonical
	certificationIndex map[string]string // uppercased abbreviation -> canonical name
}

// SpecialtyTerm is one dictionary entry the specialty extractor scans for.
type SpecialtyTerm struct {
	Term      string // the raw synonym, lowercased
	Canonical string
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t := &Taxonomy{
		Specialties:    defaultSpecialties,
		Certifications: defaultCertifications,
		HeaderKeywords: defaultHeaderKeywords,
	}
	t.compile()
	return t
}

// Load reads a taxonomy override file, validates it against the embedded
// schema, and returns a compiled Taxonomy. Sections missing from the file
// fall back to the built-in dictionaries.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if err := schemas.ValidateJSONString(schemaJSON, string(data)); err != nil {
		return nil, fmt.Errorf("taxonomy file %s is invalid: %w", path, err)
	}

	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	if len(t.Specialties) == 0 {
		t.Specialties = defaultSpecialties
	}
	if len(t.Certifications) == 0 {
		t.Certifications = defaultCertifications
	}
	if len(t.HeaderKeywords) == 0 {
		t.HeaderKeywords = defaultHeaderKeywords
	}

	t.compile()
	return &t, nil
}

// compile builds the lookup indexes. Called exactly once per Taxonomy.
func (t *Taxonomy) compile() {
	t.synonymIndex = make(map[string]string)
	for canonical, synonyms := range t.Specialties {
		t.synonymIndex[strings.ToLower(canonical)] = canonical
		for _, syn := range synonyms {
			t.synonymIndex[strings.ToLower(syn)] = canonical
		}
	}

	t.certificationIndex = make(map[string]string, len(t.Certifications))
	for _, cert := range t.Certifications {
		t.certificationIndex[strings.ToUpper(cert)] = cert
	}
}

// CanonicalSpecialty maps a raw specialty term to its canonical taxonomy
// value. The second return is false when the term is unknown.
func (t *Taxonomy) CanonicalSpecialty(term string) (string, bool) {
	canonical, ok := t.synonymIndex[strings.ToLower(strings.TrimSpace(term))]
	return canonical, ok
}

// CanonicalCertification maps a token to a known certification name. Lookup
// is case-insensitive; the dictionary spelling is returned.
func (t *Taxonomy) CanonicalCertification(token string) (string, bool) {
	name, ok := t.certificationIndex[strings.ToUpper(strings.TrimSpace(token))]
	return name, ok
}

// SpecialtyTerms returns every dictionary term in deterministic order:
// longer terms first so multi-word synonyms are matched before their
// substrings, then lexicographic.
func (t *Taxonomy) SpecialtyTerms() []SpecialtyTerm {
	terms := make([]SpecialtyTerm, 0, len(t.synonymIndex))
	for term, canonical := range t.synonymIndex {
		terms = append(terms, SpecialtyTerm{Term: term, Canonical: canonical})
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i].Term) != len(terms[j].Term) {
			return len(terms[i].Term) > len(terms[j].Term)
		}
		return terms[i].Term < terms[j].Term
	})
	return terms
}
