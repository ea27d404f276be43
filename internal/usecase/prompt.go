package usecase

import (
	"strings"

	"insurance-agent/internal/capability"
	"insurance-agent/internal/classifier"
	"insurance-agent/internal/domain"
	"insurance-agent/internal/knowledge"
)

func buildPromptMessages(store *knowledge.Store, topic classifier.Topic, history []domain.Turn, message string) []domain.ChatMessage {
	system := buildSystemPrompt()
	if grounding := knowledgeGrounding(store, topic); grounding != "" {
		system += "\n\nReference Facts:\n" + grounding
	}

	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: system},
	}
	for _, turn := range history {
		messages = append(messages, domain.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	return append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: message})
}

func buildSystemPrompt() string {
	return strings.Join([]string{
		"You are a knowledgeable and professional life insurance support assistant.",
		"Your role is to provide accurate, helpful, and clear information about life insurance products and services.",
		"",
		"Guidelines:",
		"1. Always be truthful and admit when you don't know something",
		"2. Provide concise but comprehensive answers",
		"3. Use plain language that's easy to understand",
		"4. Be empathetic and professional in tone",
		"5. When appropriate, suggest consulting with a licensed insurance professional",
		"",
		"Always maintain conversation context.",
	}, "\n")
}

// knowledgeGrounding selects knowledge-base facts for the classified topic so
// the model can ground its answer. General messages get no extra facts.
func knowledgeGrounding(store *knowledge.Store, topic classifier.Topic) string {
	switch topic {
	case classifier.TopicPolicyType, classifier.TopicComparison:
		return "Known policy types: " + strings.Join(store.PolicyTypeNames(), ", ")
	case classifier.TopicEligibility:
		return capability.Eligibility(store, nil, "")
	case classifier.TopicClaims:
		return capability.ClaimsProcess(store)
	case classifier.TopicCost:
		factors := store.Questions().PremiumCalculation.Factors
		if len(factors) == 0 {
			return ""
		}
		return "Premiums are driven by: " + strings.Join(factors, ", ")
	default:
		return ""
	}
}
