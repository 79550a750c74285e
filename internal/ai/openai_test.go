package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"last30days/internal/model"
)

func intp(v int) *int { return &v }

func TestFindingsListCapsAndFormats(t *testing.T) {
	items := []model.Item{
		{Title: "A", Engagement: model.Engagement{Score: intp(10), NumComments: intp(2)}},
		{Title: "B"},
		{Title: "C"},
	}
	got := findingsList(items, 2)
	want := "- A (10 points, 2 comments)\n- B (? points, ? comments)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewOpenAIRequiresModel(t *testing.T) {
	if _, err := NewOpenAI(Config{APIKey: "k"}); err == nil {
		t.Fatalf("expected error without model")
	}
}

func TestSummarizeFindingsCallsChatCompletions(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  People argued about generics.  "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c, err := NewOpenAI(Config{APIKey: "test", Model: "gpt-test", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	out, err := c.SummarizeFindings(context.Background(), "golang", []model.Item{{Title: "Generics"}}, "")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if out != "People argued about generics." {
		t.Fatalf("summary = %q", out)
	}
	if gotBody["model"] != "gpt-test" {
		t.Fatalf("model = %v", gotBody["model"])
	}
}

func TestSummarizeFindingsEmpty(t *testing.T) {
	c, _ := NewOpenAI(Config{APIKey: "k", Model: "m", BaseURL: "http://127.0.0.1:0"})
	out, err := c.SummarizeFindings(context.Background(), "x", nil, "")
	if err != nil || out != "" {
		t.Fatalf("got %q, %v", out, err)
	}
}
