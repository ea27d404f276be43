// Package capability exposes the assistant's knowledge lookups as a closed
// set of typed functions over the knowledge store. Each one renders a plain
// text answer suitable for grounding a model prompt or answering directly.
package capability

import (
	"fmt"
	"strings"

	"insurance-agent/internal/knowledge"
)

// Name identifies one capability.
type Name string

const (
	PolicyTypeLookup  Name = "get_policy_type_info"
	EligibilityCheck  Name = "check_eligibility"
	ClaimsProcessInfo Name = "get_claims_process"
)

// PolicyTypeInfo renders the entry for the given policy type, or lists the
// available types when the name is unknown.
func PolicyTypeInfo(store *knowledge.Store, policyType string) string {
	entry, err := store.LookupPolicyType(policyType)
	if err != nil {
		return fmt.Sprintf(
			"I couldn't find information about %q specifically.\nAvailable policy types include: %s.",
			policyType, strings.Join(store.PolicyTypeNames(), ", "),
		)
	}
	return fmt.Sprintf(
		"%s\n\nBenefits: %s\nDuration: %s\nEligibility: %s",
		entry.Description,
		strings.Join(entry.Benefits, ", "),
		entry.Duration,
		entry.Eligibility,
	)
}

// Eligibility renders eligibility guidance, tailored to the caller's age and
// health status when provided.
func Eligibility(store *knowledge.Store, age *int, healthStatus string) string {
	faq := store.Questions().Eligibility

	parts := []string{"Life insurance eligibility typically depends on several factors:"}

	switch {
	case age == nil:
		parts = append(parts, "- Age: "+faq.AgeRequirements)
	case *age < 18:
		parts = append(parts, fmt.Sprintf("- Age: You must be at least 18 years old to qualify. Current age: %d", *age))
	case *age > 80:
		parts = append(parts, fmt.Sprintf("- Age: Most policies are not available after age 80. Current age: %d", *age))
	default:
		parts = append(parts, fmt.Sprintf("- Age: Qualifies within standard range (18-80 years). Current age: %d", *age))
	}

	if healthStatus != "" {
		parts = append(parts, "- Health status: "+healthStatus)
	} else {
		parts = append(parts, "- Health status: "+faq.HealthRequirements)
	}

	parts = append(parts,
		"- Medical history: Full disclosure required",
		"- Lifestyle factors: Smoking, alcohol consumption, etc.",
		"- Financial stability: "+faq.IncomeRequirements,
		"- Occupation risk level: Higher risk occupations may have restrictions",
	)
	return strings.Join(parts, "\n")
}

// ClaimsProcess renders the claims process steps from the FAQ.
func ClaimsProcess(store *knowledge.Store) string {
	claims := store.Questions().ClaimsProcess
	return fmt.Sprintf(
		"The life insurance claims process involves these steps:\n\n"+
			"1. Notify the insurance company of the policyholder's death\n"+
			"2. Submit the following documents: %s\n"+
			"3. The claim will be reviewed (typically takes %s)\n"+
			"4. Upon approval, the death benefit will be paid to beneficiaries\n\n"+
			"%s.",
		strings.Join(claims.RequiredDocuments, ", "),
		claims.ProcessingTime,
		claims.Contact,
	)
}
