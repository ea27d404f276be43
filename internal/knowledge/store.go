// Package knowledge holds the static policy-type and FAQ reference data used
// to ground model prompts. The table is loaded once at startup and is
// read-only during request handling.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrNotFound is returned when a policy type is not in the table.
var ErrNotFound = errors.New("knowledge: policy type not found")

// Entry describes a single life-insurance policy type.
type Entry struct {
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Eligibility string   `json:"eligibility"`
	Duration    string   `json:"duration"`
}

// EligibilityFacts are the general eligibility answers in the FAQ section.
type EligibilityFacts struct {
	AgeRequirements    string `json:"age_requirements"`
	HealthRequirements string `json:"health_requirements"`
	IncomeRequirements string `json:"income_requirements"`
}

// ClaimsFacts describe the claims process in the FAQ section.
type ClaimsFacts struct {
	RequiredDocuments []string `json:"required_documents"`
	ProcessingTime    string   `json:"processing_time"`
	Contact           string   `json:"contact"`
}

// PremiumFacts list the factors that drive premium calculation.
type PremiumFacts struct {
	Factors []string `json:"factors"`
}

// FAQ is the nested common-questions section of the knowledge source.
type FAQ struct {
	Eligibility        EligibilityFacts `json:"eligibility"`
	ClaimsProcess      ClaimsFacts      `json:"claims_process"`
	PremiumCalculation PremiumFacts     `json:"premium_calculation"`
}

// Table is the full knowledge source shape.
type Table struct {
	PolicyTypes map[string]Entry `json:"policy_types"`
	FAQ         FAQ              `json:"common_questions"`
}

// Store is a read-only in-memory knowledge table.
type Store struct {
	table Table
}

// NewStore wraps an already-built table, mainly for tests.
func NewStore(table Table) *Store {
	return &Store{table: table}
}

// Load reads the knowledge source document at path. A missing file or
// malformed content is not fatal: Load falls back to the built-in default
// table and reports what happened, so the service stays operational with
// degraded knowledge.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return NewStore(defaultTable()), fmt.Errorf("knowledge: read %s: %w", path, err)
	}
	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return NewStore(defaultTable()), fmt.Errorf("knowledge: parse %s: %w", path, err)
	}
	if len(table.PolicyTypes) == 0 {
		return NewStore(defaultTable()), fmt.Errorf("knowledge: %s has no policy types", path)
	}
	return NewStore(table), nil
}

// NormalizePolicyType lower-cases and underscores a policy-type name so that
// "Term Life" and "term_life" address the same entry.
func NormalizePolicyType(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// LookupPolicyType returns the entry for the given (unnormalized) name.
func (s *Store) LookupPolicyType(name string) (Entry, error) {
	entry, ok := s.table.PolicyTypes[NormalizePolicyType(name)]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// PolicyTypeNames returns the normalized names of all known policy types in
// sorted order.
func (s *Store) PolicyTypeNames() []string {
	names := make([]string, 0, len(s.table.PolicyTypes))
	for name := range s.table.PolicyTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Questions returns the FAQ section.
func (s *Store) Questions() FAQ {
	return s.table.FAQ
}
