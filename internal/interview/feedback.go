package interview

import (
	"context"
	"strings"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/normalize"
	"github.com/jonathan/interview-coach/internal/prompts"
)

// Feedback generates short evaluative feedback for one answer. The response
// is treated as opaque text: it is sanitized for display but never parsed
// into fields.
func (g *Generator) Feedback(ctx context.Context, question, answer string, posting *extract.JobPosting) (string, error) {
	template := prompts.MustGet("interview.json", "generate-feedback")
	prompt := prompts.Format(template, map[string]string{
		"Position": posting.Title,
		"Question": question,
		"Answer":   answer,
	})

	response, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &GenerationError{Message: "feedback generation failed", Cause: err}
	}

	return SanitizeFeedback(response), nil
}

// SanitizeFeedback strips markdown noise and normalizes the strength/improve
// markers. Normalization is idempotent: markers already present are not
// doubled.
func SanitizeFeedback(text string) string {
	text = strings.TrimSpace(normalize.StripMarkup(text))

	// Reduce to bare labels first so re-sanitizing never stacks markers.
	text = strings.ReplaceAll(text, "✓ Strength:", "Strength:")
	text = strings.ReplaceAll(text, "△ Improve:", "Improve:")
	text = strings.ReplaceAll(text, "Strength:", "✓ Strength:")
	text = strings.ReplaceAll(text, "Improve:", "△ Improve:")

	return text
}
