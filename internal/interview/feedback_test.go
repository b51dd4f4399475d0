package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_SanitizesResponse(t *testing.T) {
	client := &fakeClient{response: "**Strength:** Clear structure.\n*Improve:* Add metrics."}

	gen := NewGenerator(client, 5)
	feedback, err := gen.Feedback(context.Background(), "Q1", "my answer", testPosting())
	require.NoError(t, err)

	assert.Equal(t, "✓ Strength: Clear structure.\n△ Improve: Add metrics.", feedback)
}

func TestFeedback_PromptContainsQuestionAndAnswer(t *testing.T) {
	client := &fakeClient{response: "Strength: ok\nImprove: more"}

	gen := NewGenerator(client, 5)
	_, err := gen.Feedback(context.Background(), "Describe a hard bug.", "I once debugged a deadlock.", testPosting())
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Describe a hard bug.")
	assert.Contains(t, client.prompts[0], "I once debugged a deadlock.")
	assert.Contains(t, client.prompts[0], "Senior Backend Engineer")
}

func TestFeedback_GenerationFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("timeout")}

	gen := NewGenerator(client, 5)
	_, err := gen.Feedback(context.Background(), "Q", "A", testPosting())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, client.err)
}

func TestSanitizeFeedback_Idempotent(t *testing.T) {
	input := "Strength: good pacing\nImprove: quantify impact"
	once := SanitizeFeedback(input)
	twice := SanitizeFeedback(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, "✓ Strength: good pacing\n△ Improve: quantify impact", once)
}

func TestSanitizeFeedback_StripsMarkdown(t *testing.T) {
	assert.Equal(t, "plain", SanitizeFeedback("`plain`"))
	assert.Equal(t, "note", SanitizeFeedback("## note"))
	assert.NotContains(t, SanitizeFeedback("**bold** text"), "*")
}
