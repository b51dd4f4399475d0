package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jonathan/interview-coach/internal/transcribe"
)

// transcribeVoice downloads a Telegram voice note (OGG/Opus), converts it to
// WAV with ffmpeg, and runs it through the speech-to-text collaborator. The
// temporary audio files are removed whether or not transcription succeeds.
func (b *Bot) transcribeVoice(ctx context.Context, voice *tgbotapi.Voice) (string, error) {
	audio, err := b.downloadVoice(ctx, voice)
	if err != nil {
		return "", &transcribe.TranscriptionError{Message: "failed to download voice note", Cause: err}
	}

	dir, err := os.MkdirTemp("", "interview-voice-*")
	if err != nil {
		return "", &transcribe.TranscriptionError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(dir)

	oggPath := filepath.Join(dir, "answer.ogg")
	wavPath := filepath.Join(dir, "answer.wav")

	if err := os.WriteFile(oggPath, audio, 0o600); err != nil {
		return "", &transcribe.TranscriptionError{Message: "failed to write audio file", Cause: err}
	}

	if out, err := exec.CommandContext(ctx, "ffmpeg", "-i", oggPath, wavPath).CombinedOutput(); err != nil {
		return "", &transcribe.TranscriptionError{
			Message: fmt.Sprintf("audio conversion failed: %s", string(out)),
			Cause:   err,
		}
	}

	wav, err := os.ReadFile(wavPath)
	if err != nil {
		return "", &transcribe.TranscriptionError{Message: "failed to read converted audio", Cause: err}
	}

	return b.transcriber.Transcribe(ctx, wav, "audio/wav")
}

func (b *Bot) downloadVoice(ctx context.Context, voice *tgbotapi.Voice) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: voice.FileID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d downloading voice file", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
