package report

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/session"
)

type fakeFeedback struct {
	calls int32
	err   error
}

func (f *fakeFeedback) Feedback(_ context.Context, question, _ string, _ *extract.JobPosting) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	return "regenerated for " + question, nil
}

func reportPosting() *extract.JobPosting {
	return &extract.JobPosting{Title: "Senior Backend Engineer", URL: "https://example.com/jobs/1"}
}

func TestAssemble_BlockSequence(t *testing.T) {
	feedback := &fakeFeedback{}
	builder := NewBuilder(feedback)

	answers := []session.Answer{
		{Question: "1. Q1", Answer: "answer one", Feedback: "✓ Strength: concise"},
		{Question: "2. Q2", Answer: "answer two", Feedback: "✓ Strength: specific"},
	}

	blocks, err := builder.Assemble(context.Background(), reportPosting(), answers)
	require.NoError(t, err)

	// 3 report headings + 3 blocks per answer.
	require.Len(t, blocks, 9)
	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, "Interview Performance Report", blocks[0].Text)
	assert.Equal(t, "Position: Senior Backend Engineer", blocks[1].Text)

	assert.Equal(t, "Question 1:", blocks[3].Text)
	assert.Equal(t, BlockParagraph, blocks[4].Kind)
	assert.Equal(t, "1. Q1", blocks[4].Text)
	assert.Equal(t, BlockTable, blocks[5].Kind)
	assert.Equal(t, [2]string{"Your Response:", "Feedback:"}, blocks[5].Header)
	assert.Equal(t, [2]string{"answer one", "✓ Strength: concise"}, blocks[5].Cells)

	assert.Equal(t, "Question 2:", blocks[6].Text)
}

func TestAssemble_CachedFeedbackSkipsRegeneration(t *testing.T) {
	feedback := &fakeFeedback{}
	builder := NewBuilder(feedback)

	answers := []session.Answer{
		{Question: "1. Q1", Answer: "a", Feedback: "cached"},
	}

	_, err := builder.Assemble(context.Background(), reportPosting(), answers)
	require.NoError(t, err)
	assert.Equal(t, int32(0), feedback.calls)
}

func TestAssemble_RegeneratesMissingFeedback(t *testing.T) {
	feedback := &fakeFeedback{}
	builder := NewBuilder(feedback)

	answers := []session.Answer{
		{Question: "1. Q1", Answer: "a", Feedback: "cached"},
		{Question: "2. Q2", Answer: "b"},
		{Question: "3. Q3", Answer: "c"},
	}

	blocks, err := builder.Assemble(context.Background(), reportPosting(), answers)
	require.NoError(t, err)
	assert.Equal(t, int32(2), feedback.calls)

	assert.Equal(t, "cached", blocks[5].Cells[1])
	assert.Equal(t, "regenerated for 2. Q2", blocks[8].Cells[1])
	assert.Equal(t, "regenerated for 3. Q3", blocks[11].Cells[1])
}

func TestAssemble_RegenerationFailure(t *testing.T) {
	feedback := &fakeFeedback{err: errors.New("model down")}
	builder := NewBuilder(feedback)

	answers := []session.Answer{{Question: "1. Q1", Answer: "a"}}

	blocks, err := builder.Assemble(context.Background(), reportPosting(), answers)
	assert.Nil(t, blocks)
	assert.ErrorIs(t, err, feedback.err)
}

func TestBuild_ProducesPDF(t *testing.T) {
	builder := NewBuilder(&fakeFeedback{})

	answers := []session.Answer{
		{Question: "1. Q1", Answer: "answer one", Feedback: "✓ Strength: clear\n△ Improve: add metrics"},
		{Question: "2. Q2", Answer: "answer two", Feedback: "✓ Strength: honest"},
	}

	report, err := builder.Build(context.Background(), reportPosting(), answers)
	require.NoError(t, err)

	assert.Equal(t, "Interview_Report_Senior_Backend_Engineer.pdf", report.FileName)
	assert.True(t, bytes.HasPrefix(report.Data, []byte("%PDF")), "output should be a PDF document")
}

func TestFileName_Sanitization(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Senior Backend Engineer", "Interview_Report_Senior_Backend_Engineer.pdf"},
		{"C++/Go Developer (Remote)", "Interview_Report_CGo_Developer_Remote.pdf"},
		{"   ", "Interview_Report_Interview.pdf"},
		{"日本語タイトル", "Interview_Report_Interview.pdf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FileName(tt.title), tt.title)
	}
}
