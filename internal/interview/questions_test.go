package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/llm"
)

// fakeClient implements llm.Client with canned responses.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateWithAudio(_ context.Context, prompt string, _ []byte, _ string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func testPosting() *extract.JobPosting {
	return &extract.JobPosting{
		Title:            "Senior Backend Engineer",
		URL:              "https://example.com/jobs/123",
		Requirements:     []string{"5+ years of Go experience", "Production Kubernetes experience"},
		Responsibilities: []string{"Design and operate payment services"},
		ExperienceLevel:  "5+ years",
		Description:      "We build payment infrastructure for marketplaces.",
	}
}

func TestQuestions_FiltersNonNumberedLines(t *testing.T) {
	client := &fakeClient{response: "Here are your questions:\n" +
		"1. Describe a Go service you scaled.\n" +
		"\n" +
		"2. How do you roll out schema changes safely?\n" +
		"Good luck!\n" +
		"3. Tell me about a production incident you led.\n"}

	gen := NewGenerator(client, 5)
	questions, err := gen.Questions(context.Background(), testPosting())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1. Describe a Go service you scaled.",
		"2. How do you roll out schema changes safely?",
		"3. Tell me about a production incident you led.",
	}, questions)
}

func TestQuestions_TruncatesToCount(t *testing.T) {
	client := &fakeClient{response: "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g"}

	gen := NewGenerator(client, 5)
	questions, err := gen.Questions(context.Background(), testPosting())
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestQuestions_PromptContainsPostingContext(t *testing.T) {
	client := &fakeClient{response: "1. q"}

	gen := NewGenerator(client, 5)
	_, err := gen.Questions(context.Background(), testPosting())
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Senior Backend Engineer")
	assert.Contains(t, prompt, "- 5+ years of Go experience")
	assert.Contains(t, prompt, "- Design and operate payment services")
	assert.Contains(t, prompt, "Experience Level: 5+ years")
	assert.Contains(t, prompt, "payment infrastructure")
	assert.Contains(t, prompt, "Generate 5 targeted interview questions")
}

func TestQuestions_EmptyFieldsMarkedNotSpecified(t *testing.T) {
	client := &fakeClient{response: "1. q"}
	posting := &extract.JobPosting{
		Title:       "Engineer",
		Description: "A role.",
	}

	gen := NewGenerator(client, 5)
	_, err := gen.Questions(context.Background(), posting)
	require.NoError(t, err)

	assert.Contains(t, client.prompts[0], "Not specified")
}

func TestQuestions_GenerationFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	gen := NewGenerator(client, 5)
	questions, err := gen.Questions(context.Background(), testPosting())
	assert.Nil(t, questions)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestFilterNumbered(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected int
	}{
		{name: "all numbered", input: "1. a\n2. b", max: 5, expected: 2},
		{name: "no numbered lines", input: "intro\noutro", max: 5, expected: 0},
		{name: "empty input", input: "", max: 5, expected: 0},
		{name: "truncated", input: "1. a\n2. b\n3. c", max: 2, expected: 2},
		{name: "indented numbered", input: "  1. a", max: 5, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterNumbered(tt.input, tt.max), tt.expected)
		})
	}
}
