package transcribe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	mimeType string
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) GenerateWithAudio(_ context.Context, _ string, _ []byte, mimeType string, _ llm.ModelTier) (string, error) {
	f.mimeType = mimeType
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestTranscribe_Success(t *testing.T) {
	client := &fakeClient{response: "  I led the migration to event sourcing.  "}
	tr := NewGeminiTranscriber(client)

	transcript, err := tr.Transcribe(context.Background(), []byte{0x4f, 0x67}, "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "I led the migration to event sourcing.", transcript)
	assert.Equal(t, "audio/wav", client.mimeType)
}

func TestTranscribe_EmptyAudio(t *testing.T) {
	tr := NewGeminiTranscriber(&fakeClient{response: "text"})

	_, err := tr.Transcribe(context.Background(), nil, "audio/wav")

	var trErr *TranscriptionError
	require.ErrorAs(t, err, &trErr)
}

func TestTranscribe_Unintelligible(t *testing.T) {
	tr := NewGeminiTranscriber(&fakeClient{response: "[unintelligible]"})

	_, err := tr.Transcribe(context.Background(), []byte{1}, "audio/ogg")

	var trErr *TranscriptionError
	require.ErrorAs(t, err, &trErr)
	assert.Contains(t, err.Error(), "unintelligible")
}

func TestTranscribe_CollaboratorFailure(t *testing.T) {
	cause := errors.New("model unavailable")
	tr := NewGeminiTranscriber(&fakeClient{err: cause})

	_, err := tr.Transcribe(context.Background(), []byte{1}, "audio/ogg")

	var trErr *TranscriptionError
	require.ErrorAs(t, err, &trErr)
	assert.ErrorIs(t, err, cause)
}
