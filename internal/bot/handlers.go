package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/transcribe"
)

const (
	welcomeMessage = "🚀 Welcome to Interview Prep Bot!\n" +
		"Send me a job listing URL (LinkedIn, Indeed, etc.) to begin."

	analyzingMessage  = "🔍 Analyzing the job posting..."
	processingMessage = "🔄 Processing your answer..."
	reportingMessage  = "📊 Creating your interview performance report..."

	noSessionMessage = "Please send a job URL first!"

	noContentMessage = "❌ I couldn't find enough details in this job posting. " +
		"Please try with a different job URL that contains more information."

	transcriptionFailedMessage = "❌ I couldn't understand the audio. " +
		"Please resend the voice message or type your answer instead."
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.engine.Start(msg.From.ID)
		b.reply(msg.Chat.ID, welcomeMessage)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Send /start to begin a new practice session.")
	}
}

func (b *Bot) handleURL(ctx context.Context, msg *tgbotapi.Message) {
	url := strings.TrimSpace(msg.Text)
	b.reply(msg.Chat.ID, analyzingMessage)

	posting, err := b.engine.SubmitURL(ctx, msg.From.ID, url)
	if err != nil {
		b.log.Warn("url submission failed", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}

	b.log.Info("session started",
		zap.Int64("user_id", msg.From.ID),
		zap.String("title", posting.Title))

	b.reply(msg.Chat.ID, formatSummary(posting))
	b.askQuestion(ctx, msg)
}

func (b *Bot) handleAnswer(ctx context.Context, msg *tgbotapi.Message, answer string) {
	feedback, done, err := b.engine.SubmitAnswer(ctx, msg.From.ID, answer)
	if err != nil {
		b.log.Warn("answer rejected", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}

	b.reply(msg.Chat.ID, formatFeedback(feedback))

	if done {
		b.deliverReport(ctx, msg)
		return
	}
	b.askQuestion(ctx, msg)
}

func (b *Bot) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	progress, err := b.engine.CurrentQuestion(msg.From.ID)
	if err != nil {
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}
	// Every question already answered: nothing to transcribe, so skip the
	// download and conversion and go straight to the report.
	if progress.Done {
		b.deliverReport(ctx, msg)
		return
	}

	b.reply(msg.Chat.ID, processingMessage)

	transcript, err := b.transcribeVoice(ctx, msg.Voice)
	if err != nil {
		b.log.Warn("voice transcription failed", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}

	b.handleAnswer(ctx, msg, transcript)
}

func (b *Bot) askQuestion(ctx context.Context, msg *tgbotapi.Message) {
	progress, err := b.engine.CurrentQuestion(msg.From.ID)
	if err != nil {
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}
	if progress.Done {
		b.deliverReport(ctx, msg)
		return
	}

	text := fmt.Sprintf(
		"📝 Interview Question %d of %d\n\n%s\n\n"+
			"🎙️ You can:\n"+
			"• Send a voice message (recommended for practice)\n"+
			"• Type your answer\n"+
			"\nTake your time to think and structure your response!",
		progress.Number, progress.Total, progress.Question)
	b.reply(msg.Chat.ID, text)
}

func (b *Bot) deliverReport(ctx context.Context, msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, reportingMessage)

	report, err := b.engine.Finalize(ctx, msg.From.ID)
	if err != nil {
		b.log.Error("report generation failed", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}

	if err := b.replyDocument(msg.Chat.ID, report.FileName, report.Data); err != nil {
		b.log.Error("report delivery failed", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ I couldn't deliver the report. Please try /start to begin a new session.")
		return
	}

	b.log.Info("report delivered",
		zap.Int64("user_id", msg.From.ID),
		zap.String("file", report.FileName))

	b.reply(msg.Chat.ID, "✅ Your interview practice is complete! "+
		"Review the report above, then send a new job URL whenever you want another round.")
}

// formatFeedback frames live feedback the way it appears in chat.
func formatFeedback(feedback string) string {
	return "╭──────────────────────╮\n" +
		"  Feedback\n" +
		"╰──────────────────────╯\n\n" +
		feedback
}

// userMessage converts engine and collaborator failures into the messages
// shown in chat. Nothing here crashes the process; every failure is terminal
// for its single operation and the user re-initiates.
func userMessage(err error) string {
	var (
		noSession     *session.NoSessionError
		noQuestion    *session.NoActiveQuestionError
		noContent     *session.NoContentError
		extraction    *extract.ExtractionError
		generation    *interview.GenerationError
		transcription *transcribe.TranscriptionError
	)

	switch {
	case errors.As(err, &noSession), errors.As(err, &noQuestion):
		return noSessionMessage
	case errors.As(err, &extraction), errors.As(err, &noContent):
		return noContentMessage
	case errors.As(err, &transcription):
		return transcriptionFailedMessage
	case errors.As(err, &generation):
		return fmt.Sprintf("❌ Error: %s", generation.Message)
	default:
		return fmt.Sprintf("❌ Error: %v", err)
	}
}
