package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredential is returned when the chat API key is not configured.
var ErrMissingCredential = errors.New("OPENAI_API_KEY is not set")

// Config holds all application configuration.
type Config struct {
	// Hot search board
	BoardURL     string
	FetchTimeout time.Duration
	OutputPath   string // Snapshot file written by fetch --output (default: data/hotsearch.json)

	// Database
	DatabasePath string

	// OpenAI API (chat)
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string // Optional, for compatible gateways

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		BoardURL:      getEnv("HOTBOARD_URL", "https://top.baidu.com/api/board?tab=realtime"),
		OutputPath:    getEnv("HOTBOARD_OUTPUT", "data/hotsearch.json"),
		DatabasePath:  getEnv("DATABASE_PATH", "data/hotboard.db"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4.1-nano"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations
	var err error
	cfg.FetchTimeout, err = time.ParseDuration(getEnv("HOTBOARD_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOTBOARD_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.BoardURL == "" {
		return fmt.Errorf("HOTBOARD_URL is required")
	}
	return nil
}

// ValidateForFetch checks configuration needed for fetching the board.
func (c *Config) ValidateForFetch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	u, err := url.Parse(c.BoardURL)
	if err != nil {
		return fmt.Errorf("invalid HOTBOARD_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid HOTBOARD_URL: scheme must be http or https, got %q", u.Scheme)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("HOTBOARD_TIMEOUT must be positive")
	}
	return nil
}

// ValidateForArchive checks configuration needed for the snapshot archive.
func (c *Config) ValidateForArchive() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForChat checks configuration needed for the chat REPL.
func (c *Config) ValidateForChat() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingCredential
	}
	if c.OpenAIModel == "" {
		return fmt.Errorf("OPENAI_MODEL is required for chat")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
