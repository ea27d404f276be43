// Package classifier maps a raw user message to one insurance topic via
// ordered keyword matching.
package classifier

import "strings"

// Topic is the classification tag assigned to an incoming message. It routes
// knowledge lookups and shows up in logs and API responses.
type Topic string

const (
	TopicPolicyType  Topic = "policy_type"
	TopicEligibility Topic = "eligibility"
	TopicClaims      Topic = "claims"
	TopicBenefits    Topic = "benefits"
	TopicCost        Topic = "cost"
	TopicComparison  Topic = "comparison"
	TopicGeneral     Topic = "general"
)

// keywordSets is checked in order; the first set containing a matching
// substring wins. Reordering changes classification results, e.g. "file a
// claim and know the cost" must land on claims, not cost.
var keywordSets = []struct {
	topic    Topic
	keywords []string
}{
	{TopicPolicyType, []string{"term", "policy type", "coverage type", "difference between"}},
	{TopicEligibility, []string{"eligibility", "qualify", "requirement", "can i get", "am i eligible"}},
	{TopicClaims, []string{"claim", "file", "payout", "death benefit", "submit"}},
	{TopicBenefits, []string{"benefit", "coverage", "what does", "include", "covered"}},
	{TopicCost, []string{"cost", "price", "premium", "how much"}},
	{TopicComparison, []string{"compare", "vs", "versus"}},
}

// Classify assigns a topic to the given message. It never fails; messages
// matching no keyword set classify as general.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.topic
			}
		}
	}
	return TopicGeneral
}
