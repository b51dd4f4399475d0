package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/bot"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/fetch"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/report"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/transcribe"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Telegram bot",
	Long:  "Start long-polling Telegram for updates and serve practice interviews until interrupted.",
	RunE:  runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	renderer := fetch.NewRenderer(cfg.UseBrowser, cfg.BrowserTimeout)
	generator := interview.NewGenerator(client, cfg.QuestionCount)
	transcriber := transcribe.NewGeminiTranscriber(client)
	reports := report.NewBuilder(generator)

	store := session.NewStore()
	go store.RunJanitor(ctx, cfg.EvictInterval, cfg.SessionTTL, log)

	engine := session.NewEngine(store, renderer, generator, reports, cfg.MinQuestions, log)

	b, err := bot.New(cfg.TelegramToken, engine, transcriber, log)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}

	log.Info("starting interview coach",
		zap.Int("question_count", cfg.QuestionCount),
		zap.Bool("browser_rendering", cfg.UseBrowser))

	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	log.Info("shutting down")
	return nil
}
