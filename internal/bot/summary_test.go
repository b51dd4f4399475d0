package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/transcribe"
)

func TestFormatSummary(t *testing.T) {
	posting := &extract.JobPosting{
		Title: "Senior Backend Engineer",
		URL:   "https://example.com/jobs/1",
		Requirements: []string{
			"5+ years of experience building distributed systems in Go",
			"short",
			"Strong understanding of **relational databases** and query tuning",
		},
		Responsibilities: []string{
			"Design and operate the services behind our public API platform",
		},
		ExperienceLevel: "5+ years",
	}

	summary := formatSummary(posting)

	assert.Contains(t, summary, "📋 Role\nSenior Backend Engineer")
	assert.Contains(t, summary, "• 5+ years of experience building distributed systems in Go")
	assert.Contains(t, summary, "• Strong understanding of relational databases and query tuning")
	assert.NotContains(t, summary, "• short")
	assert.Contains(t, summary, "⭐ Experience Required\n5+ years")
	assert.Contains(t, summary, "🎯 Next Steps")
}

func TestFormatSummary_Placeholders(t *testing.T) {
	posting := &extract.JobPosting{
		Title: "Engineer",
		URL:   "https://example.com",
	}

	summary := formatSummary(posting)

	assert.Contains(t, summary, "• Requirements not specified in the job posting")
	assert.Contains(t, summary, "• Responsibilities not specified in the job posting")
	assert.NotContains(t, summary, "⭐ Experience Required")
}

func TestFormatSummary_TruncatesLongItems(t *testing.T) {
	long := strings.Repeat("very long ", 40)
	posting := &extract.JobPosting{
		Title:        "Engineer",
		URL:          "https://example.com",
		Requirements: []string{long},
	}

	summary := formatSummary(posting)
	assert.Contains(t, summary, "...")
	assert.NotContains(t, summary, long)
}

func TestContainsURL(t *testing.T) {
	assert.True(t, containsURL("check https://example.com/jobs/1"))
	assert.True(t, containsURL("http://example.com"))
	assert.False(t, containsURL("my answer mentions no links"))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "no session",
			err:      &session.NoSessionError{UserID: 1},
			expected: noSessionMessage,
		},
		{
			name:     "no active question",
			err:      &session.NoActiveQuestionError{UserID: 1},
			expected: noSessionMessage,
		},
		{
			name:     "extraction failure",
			err:      &extract.ExtractionError{URL: "https://x", Reason: "no title found"},
			expected: noContentMessage,
		},
		{
			name:     "thin posting",
			err:      &session.NoContentError{Reason: "not enough questions"},
			expected: noContentMessage,
		},
		{
			name:     "transcription failure",
			err:      &transcribe.TranscriptionError{Message: "unintelligible audio"},
			expected: transcriptionFailedMessage,
		},
		{
			name:     "generation failure",
			err:      &interview.GenerationError{Message: "model unavailable"},
			expected: "❌ Error: model unavailable",
		},
		{
			name:     "unknown failure",
			err:      errors.New("boom"),
			expected: "❌ Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userMessage(tt.err))
		})
	}
}

func TestFormatFeedback(t *testing.T) {
	framed := formatFeedback("✓ Strength: concise\n△ Improve: add metrics")
	assert.Contains(t, framed, "Feedback")
	assert.Contains(t, framed, "✓ Strength: concise")
}
