// Package bot is the Telegram transport layer: it receives commands, text
// messages and voice notes, hands them to the session engine, and sends back
// replies and the final report document.
package bot

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/transcribe"
)

const updateTimeout = 30 // long-poll timeout in seconds

// sender is the outbound slice of the Telegram API used by the handlers.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot wires Telegram updates to the session engine.
type Bot struct {
	api         *tgbotapi.BotAPI
	send        sender
	engine      *session.Engine
	transcriber transcribe.Transcriber
	log         *zap.Logger

	// Per-user serialization: the engine mutates one user's session without
	// internal locking, so each user's updates are processed one at a time.
	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

// New creates a Bot connected to the Telegram API.
func New(token string, engine *session.Engine, transcriber transcribe.Transcriber, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		send:        api,
		engine:      engine,
		transcriber: transcriber,
		log:         log,
		locks:       map[int64]*sync.Mutex{},
	}, nil
}

// Run polls for updates until ctx is cancelled. Each update is handled on its
// own goroutine so a slow model call for one user never blocks the others.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = updateTimeout
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.dispatch(ctx, update.Message)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	lock := b.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case msg.Voice != nil:
		b.handleVoice(ctx, msg)
	case msg.Text != "" && containsURL(msg.Text):
		b.handleURL(ctx, msg)
	case msg.Text != "":
		b.handleAnswer(ctx, msg, msg.Text)
	}
}

func (b *Bot) userLock(userID int64) *sync.Mutex {
	b.locksMu.Lock()
	defer b.locksMu.Unlock()

	lock, ok := b.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		b.locks[userID] = lock
	}
	return lock
}

func containsURL(text string) bool {
	return strings.Contains(text, "http://") || strings.Contains(text, "https://")
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.send.Send(msg); err != nil {
		b.log.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) replyDocument(chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	_, err := b.send.Send(doc)
	return err
}
