package report

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/session"
)

// FeedbackSource regenerates feedback for answers that reached the report
// without a cached copy.
type FeedbackSource interface {
	Feedback(ctx context.Context, question, answer string, posting *extract.JobPosting) (string, error)
}

// Builder assembles completed sessions into rendered reports. It implements
// session.ReportBuilder.
type Builder struct {
	feedback FeedbackSource
}

// NewBuilder creates a report Builder.
func NewBuilder(feedback FeedbackSource) *Builder {
	return &Builder{feedback: feedback}
}

// Build assembles the document blocks and renders them to PDF bytes.
func (b *Builder) Build(ctx context.Context, posting *extract.JobPosting, answers []session.Answer) (*session.Report, error) {
	blocks, err := b.Assemble(ctx, posting, answers)
	if err != nil {
		return nil, err
	}

	data, err := RenderPDF(blocks)
	if err != nil {
		return nil, err
	}

	return &session.Report{
		FileName: FileName(posting.Title),
		Data:     data,
	}, nil
}

// Assemble produces the ordered block sequence for a completed interview:
// report headings followed by one group per recorded answer (question
// heading, question text, answer/feedback table). Feedback cached during the
// live session is reused verbatim; only records missing it trigger
// regeneration, done concurrently since each call is independent.
func (b *Builder) Assemble(ctx context.Context, posting *extract.JobPosting, answers []session.Answer) ([]Block, error) {
	feedbacks, err := b.fillMissingFeedback(ctx, posting, answers)
	if err != nil {
		return nil, err
	}

	blocks := []Block{
		heading(1, "Interview Performance Report"),
		heading(2, "Position: "+posting.Title),
		heading(2, "Performance Analysis"),
	}

	for i, answer := range answers {
		blocks = append(blocks,
			heading(3, fmt.Sprintf("Question %d:", i+1)),
			paragraph(answer.Question),
			table(
				[2]string{"Your Response:", "Feedback:"},
				[2]string{answer.Answer, feedbacks[i]},
			),
		)
	}

	return blocks, nil
}

func (b *Builder) fillMissingFeedback(ctx context.Context, posting *extract.JobPosting, answers []session.Answer) ([]string, error) {
	feedbacks := make([]string, len(answers))

	group, ctx := errgroup.WithContext(ctx)
	for i, answer := range answers {
		i, answer := i, answer
		if answer.Feedback != "" {
			feedbacks[i] = answer.Feedback
			continue
		}
		group.Go(func() error {
			feedback, err := b.feedback.Feedback(ctx, answer.Question, answer.Answer, posting)
			if err != nil {
				return err
			}
			feedbacks[i] = feedback
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9 _-]+`)

// FileName derives the report filename from the job title, sanitized for
// filesystem use.
func FileName(title string) string {
	cleaned := unsafeFileChars.ReplaceAllString(title, "")
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	if cleaned == "" {
		cleaned = "Interview"
	}
	return fmt.Sprintf("Interview_Report_%s.pdf", cleaned)
}
