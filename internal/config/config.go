// Package config provides configuration loading and validation. Values come
// from the environment; a .env file is loaded by main before this runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for optional settings.
const (
	DefaultQuestionCount  = 5
	DefaultMinQuestions   = 1
	DefaultSessionTTL     = 2 * time.Hour
	DefaultEvictInterval  = 10 * time.Minute
	DefaultBrowserTimeout = 30 * time.Second
)

// Config holds the runtime configuration for the bot.
type Config struct {
	TelegramToken string `validate:"required"`
	GeminiAPIKey  string `validate:"required"`

	// QuestionCount is how many questions are requested per job;
	// MinQuestions is the smallest well-formed subset accepted from
	// generation before the posting is rejected as too thin.
	QuestionCount int `validate:"gte=1,lte=10"`
	MinQuestions  int `validate:"gte=1,ltefield=QuestionCount"`

	UseBrowser     bool
	BrowserTimeout time.Duration `validate:"gt=0"`

	SessionTTL    time.Duration `validate:"gt=0"`
	EvictInterval time.Duration `validate:"gt=0"`

	Debug   bool
	JSONLog bool
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset. Validation is separate so commands that need only part of
// the config can skip it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		QuestionCount:  DefaultQuestionCount,
		MinQuestions:   DefaultMinQuestions,
		UseBrowser:     envBool("USE_BROWSER", true),
		BrowserTimeout: DefaultBrowserTimeout,
		SessionTTL:     DefaultSessionTTL,
		EvictInterval:  DefaultEvictInterval,
		Debug:          envBool("DEBUG", false),
		JSONLog:        envBool("JSON_LOG", false),
	}

	var err error
	if cfg.QuestionCount, err = envInt("QUESTION_COUNT", cfg.QuestionCount); err != nil {
		return nil, err
	}
	if cfg.MinQuestions, err = envInt("MIN_QUESTIONS", cfg.MinQuestions); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = envDuration("SESSION_TTL", cfg.SessionTTL); err != nil {
		return nil, err
	}
	if cfg.EvictInterval, err = envDuration("EVICT_INTERVAL", cfg.EvictInterval); err != nil {
		return nil, err
	}
	if cfg.BrowserTimeout, err = envDuration("BROWSER_TIMEOUT", cfg.BrowserTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for the long-running bot.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
