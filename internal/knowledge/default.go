package knowledge

// defaultTable is the built-in knowledge base used when the source document
// is absent or malformed.
func defaultTable() Table {
	return Table{
		PolicyTypes: map[string]Entry{
			"term_life": {
				Description: "Provides coverage for a specific term period (10-30 years)",
				Benefits:    []string{"Affordable premiums", "Pure death benefit", "Flexible term lengths"},
				Eligibility: "Generally available up to age 80",
				Duration:    "Fixed term (10, 15, 20, 25, 30 years)",
			},
			"whole_life": {
				Description: "Permanent coverage with guaranteed cash value component",
				Benefits:    []string{"Lifelong coverage", "Cash value accumulation", "Dividends (if applicable)"},
				Eligibility: "Available up to age 75",
				Duration:    "Lifelong",
			},
			"universal_life": {
				Description: "Flexible premium permanent life insurance with adjustable death benefit",
				Benefits:    []string{"Flexible premiums", "Adjustable coverage", "Cash value growth"},
				Eligibility: "Available up to age 70",
				Duration:    "Lifelong",
			},
		},
		FAQ: FAQ{
			Eligibility: EligibilityFacts{
				AgeRequirements:    "Typically 18-80 years old",
				HealthRequirements: "Medical examination required",
				IncomeRequirements: "Proof of insurable interest needed",
			},
			ClaimsProcess: ClaimsFacts{
				RequiredDocuments: []string{"Death certificate", "Policy document", "Claim form", "Medical records"},
				ProcessingTime:    "Usually 30-60 days after receiving complete documentation",
				Contact:           "Contact your insurance company directly to initiate claims",
			},
			PremiumCalculation: PremiumFacts{
				Factors: []string{"Age", "Gender", "Health status", "Smoking status", "Coverage amount", "Policy type"},
			},
		},
	}
}
