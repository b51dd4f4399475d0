// Package transcribe adapts the speech-to-text collaborator. Voice answers
// are decoded to transcripts before entering the session engine; a failed
// transcription never advances the active question.
package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
)

// unintelligibleMarker is what the model is instructed to return when the
// audio carries no recognizable speech.
const unintelligibleMarker = "[unintelligible]"

// TranscriptionError indicates the audio could not be decoded or recognized.
// The user may retype or resend; the session is untouched.
type TranscriptionError struct {
	Message string
	Cause   error
}

func (e *TranscriptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transcription error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transcription error: %s", e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// Transcriber turns an audio buffer into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// GeminiTranscriber implements Transcriber on the Gemini audio modality.
type GeminiTranscriber struct {
	client llm.Client
}

// NewGeminiTranscriber builds a Transcriber over an existing LLM client.
func NewGeminiTranscriber(client llm.Client) *GeminiTranscriber {
	return &GeminiTranscriber{client: client}
}

// Transcribe decodes spoken audio into plain text.
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", &TranscriptionError{Message: "empty audio buffer"}
	}

	prompt := prompts.MustGet("interview.json", "transcribe-audio")
	transcript, err := t.client.GenerateWithAudio(ctx, prompt, audio, mimeType, llm.TierLite)
	if err != nil {
		return "", &TranscriptionError{Message: "speech recognition failed", Cause: err}
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" || strings.Contains(transcript, unintelligibleMarker) {
		return "", &TranscriptionError{Message: "audio was unintelligible"}
	}

	return transcript, nil
}
