package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"insurance-agent/internal/classifier"
	"insurance-agent/internal/domain"
)

func TestBuildPromptMessages_Shape(t *testing.T) {
	store := testKnowledge(t)
	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "earlier question"},
		{Role: domain.RoleAssistant, Content: "earlier answer"},
	}

	messages := buildPromptMessages(store, classifier.TopicGeneral, history, "current question")

	require.Len(t, messages, 4)
	require.Equal(t, domain.RoleSystem, messages[0].Role)
	require.Contains(t, messages[0].Content, "life insurance support assistant")
	require.Equal(t, domain.ChatMessage{Role: domain.RoleUser, Content: "earlier question"}, messages[1])
	require.Equal(t, domain.ChatMessage{Role: domain.RoleAssistant, Content: "earlier answer"}, messages[2])
	require.Equal(t, domain.ChatMessage{Role: domain.RoleUser, Content: "current question"}, messages[3])
}

func TestBuildPromptMessages_PolicyTypeGrounding(t *testing.T) {
	store := testKnowledge(t)

	messages := buildPromptMessages(store, classifier.TopicPolicyType, nil, "what is term life?")
	require.Contains(t, messages[0].Content, "Known policy types: term_life, universal_life, whole_life")
}

func TestBuildPromptMessages_TopicGrounding(t *testing.T) {
	store := testKnowledge(t)

	tests := []struct {
		topic classifier.Topic
		want  string
	}{
		{classifier.TopicEligibility, "eligibility typically depends"},
		{classifier.TopicClaims, "claims process involves these steps"},
		{classifier.TopicCost, "Premiums are driven by: Age"},
		{classifier.TopicComparison, "Known policy types:"},
	}
	for _, tc := range tests {
		messages := buildPromptMessages(store, tc.topic, nil, "question")
		require.Contains(t, messages[0].Content, tc.want, "topic %s", tc.topic)
	}
}

func TestBuildPromptMessages_GeneralHasNoGrounding(t *testing.T) {
	store := testKnowledge(t)

	messages := buildPromptMessages(store, classifier.TopicGeneral, nil, "hello")
	require.NotContains(t, messages[0].Content, "Reference Facts:")
}
