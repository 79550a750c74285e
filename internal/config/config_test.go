package config

import (
	"log/slog"
	"testing"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()
	if c.App.LogLevel != "info" {
		t.Errorf("log level = %q", c.App.LogLevel)
	}
	if c.HackerNews.BaseURL != "https://hn.algolia.com/api/v1/search_by_date" {
		t.Errorf("base url = %q", c.HackerNews.BaseURL)
	}
	if c.HackerNews.Depth != "default" || c.HackerNews.Days != 30 {
		t.Errorf("hackernews = %+v", c.HackerNews)
	}
	if c.UI.Interactive != "auto" {
		t.Errorf("interactive = %q", c.UI.Interactive)
	}
}

func TestFillDefaultsKeepsValues(t *testing.T) {
	c := Config{
		App:        AppConfig{LogLevel: "debug"},
		HackerNews: HackerNewsConfig{BaseURL: "http://localhost:9999", Depth: "deep", Days: 7},
		UI:         UIConfig{Interactive: " Never "},
		OpenAI:     OpenAIConfig{Model: "local"},
	}
	c.FillDefaults()
	if c.HackerNews.BaseURL != "http://localhost:9999" || c.HackerNews.Depth != "deep" || c.HackerNews.Days != 7 {
		t.Errorf("hackernews overwritten: %+v", c.HackerNews)
	}
	if c.UI.Interactive != "never" {
		t.Errorf("interactive = %q", c.UI.Interactive)
	}
	if c.OpenAI.Model != "local" {
		t.Errorf("model = %q", c.OpenAI.Model)
	}
	if c.SlogLevel() != slog.LevelDebug {
		t.Errorf("slog level = %v", c.SlogLevel())
	}
}
