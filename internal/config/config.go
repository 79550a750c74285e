package config

import (
	"log/slog"
	"strings"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// HackerNewsConfig controls the Hacker News search source.
type HackerNewsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Depth   string `mapstructure:"depth"` // quick, default or deep
	Days    int    `mapstructure:"days"`  // lookback window when no dates are given
}

// UIConfig controls progress output on the error stream.
type UIConfig struct {
	Interactive string `mapstructure:"interactive"` // auto, always or never
	Banner      bool   `mapstructure:"banner"`
}

// OpenAIConfig configures the optional digest summarizer.
type OpenAIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	HackerNews HackerNewsConfig `mapstructure:"hackernews"`
	UI         UIConfig         `mapstructure:"ui"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.HackerNews.BaseURL == "" {
		c.HackerNews.BaseURL = "https://hn.algolia.com/api/v1/search_by_date"
	}
	if c.HackerNews.Depth == "" {
		c.HackerNews.Depth = "default"
	}
	if c.HackerNews.Days <= 0 {
		c.HackerNews.Days = 30
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Interactive)) {
	case "always", "never":
		c.UI.Interactive = strings.ToLower(strings.TrimSpace(c.UI.Interactive))
	default:
		c.UI.Interactive = "auto"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
}

// SlogLevel maps App.LogLevel to a slog level; unknown names mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.App.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
