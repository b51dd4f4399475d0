package interview

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/normalize"
	"github.com/jonathan/interview-coach/internal/prompts"
)

const (
	// maxContextItems caps how many requirements/responsibilities are fed
	// into the prompt.
	maxContextItems = 5
	// maxDescriptionChars caps the free-text description in the prompt.
	maxDescriptionChars = 1000
)

// Generator shapes prompts from a job posting and sanitizes the collaborator
// responses into usable questions and feedback.
type Generator struct {
	client llm.Client
	count  int
}

// NewGenerator builds a Generator requesting count questions per posting.
func NewGenerator(client llm.Client, count int) *Generator {
	if count <= 0 {
		count = 5
	}
	return &Generator{client: client, count: count}
}

// Questions generates an ordered list of interview questions for a posting.
// Only well-formed items (lines starting with a numeral) are kept, and the
// list is truncated to the configured count. A shorter list is accepted as
// is; there is no re-prompting.
func (g *Generator) Questions(ctx context.Context, posting *extract.JobPosting) ([]string, error) {
	template := prompts.MustGet("interview.json", "generate-questions")
	prompt := prompts.Format(template, map[string]string{
		"Count":   strconv.Itoa(g.count),
		"Context": buildContext(posting),
	})

	response, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Message: "question generation failed", Cause: err}
	}

	return FilterNumbered(response, g.count), nil
}

// FilterNumbered keeps lines that start with a numeral, trimmed, up to max.
// The collaborator is asked for a numbered list but nothing enforces that;
// preamble and commentary lines are dropped here.
func FilterNumbered(text string, max int) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !unicode.IsDigit(rune(line[0])) {
			continue
		}
		questions = append(questions, line)
		if len(questions) == max {
			break
		}
	}
	return questions
}

// buildContext renders the posting into the prompt context block.
func buildContext(posting *extract.JobPosting) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Job Title: %s\n\n", posting.Title)

	sb.WriteString("Key Responsibilities:\n")
	sb.WriteString(itemList(posting.Responsibilities))

	sb.WriteString("\nRequirements/Qualifications:\n")
	sb.WriteString(itemList(posting.Requirements))

	experience := posting.ExperienceLevel
	if experience == "" {
		experience = "Not specified"
	}
	fmt.Fprintf(&sb, "\nExperience Level: %s\n", experience)

	if posting.Description != "" {
		fmt.Fprintf(&sb, "\nAdditional Context:\n%s\n",
			normalize.Truncate(posting.Description, maxDescriptionChars))
	}

	return sb.String()
}

func itemList(items []string) string {
	if len(items) == 0 {
		return "Not specified\n"
	}
	if len(items) > maxContextItems {
		items = items[:maxContextItems]
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	return sb.String()
}
