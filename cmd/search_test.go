package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"last30days/internal/model"
	"last30days/internal/report"

	"github.com/spf13/cobra"
)

func TestRunSearchWithMockFile(t *testing.T) {
	mockPath := filepath.Join(t.TempDir(), "resp.json")
	body := `{"hits":[{"title":"A","objectID":"1","points":5},{"objectID":"2"},{"story_title":"C","objectID":"3","url":"https://c.example"}]}`
	if err := os.WriteFile(mockPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write mock: %v", err)
	}

	var errBuf bytes.Buffer
	c := &cobra.Command{}
	c.SetErr(&errBuf)
	run, err := runSearch(context.Background(), c, "testing", searchOpts{
		from: "2024-01-01", to: "2024-01-31", depth: "bogus", mockFile: mockPath, interactive: "never",
	})
	if err != nil {
		t.Fatalf("runSearch: %v", err)
	}
	if len(run.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(run.Items))
	}
	if run.Items[0].ID != "HN1" || run.Items[1].ID != "HN3" {
		t.Fatalf("ids = %q, %q", run.Items[0].ID, run.Items[1].ID)
	}
	if run.Meta.Depth != "default" {
		t.Fatalf("depth = %q", run.Meta.Depth)
	}
	if !strings.Contains(errBuf.String(), "✓ HN Found 2 stories") {
		t.Fatalf("progress output = %q", errBuf.String())
	}
}

func TestRunSearchDefaultsWindowFromDays(t *testing.T) {
	mockPath := filepath.Join(t.TempDir(), "resp.json")
	if err := os.WriteFile(mockPath, []byte(`{"hits":[]}`), 0o644); err != nil {
		t.Fatalf("write mock: %v", err)
	}
	c := &cobra.Command{}
	c.SetErr(&bytes.Buffer{})
	run, err := runSearch(context.Background(), c, "x", searchOpts{to: "2024-03-31", days: 30, mockFile: mockPath, interactive: "never"})
	if err != nil {
		t.Fatalf("runSearch: %v", err)
	}
	if run.Meta.From != "2024-03-01" {
		t.Fatalf("from = %q, want 2024-03-01", run.Meta.From)
	}
}

func TestFormatItems(t *testing.T) {
	items := []model.Item{{ID: "HN1", Title: "A", URL: "u", DiscussionURL: "d", Relevance: 0.7}}
	meta := report.Meta{Topic: "t", From: "2024-01-01", To: "2024-01-31"}

	js, err := formatItems("json", meta, items)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(js), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded[0]["hn_url"] != "d" || decoded[0]["relevance"] != 0.7 {
		t.Fatalf("unexpected json item: %v", decoded[0])
	}
	if _, ok := decoded[0]["date"]; ok {
		t.Fatalf("absent date should be omitted: %v", decoded[0])
	}

	ym, err := formatItems("yaml", meta, items)
	if err != nil || !strings.Contains(ym, "id: HN1") {
		t.Fatalf("yaml = %q, err %v", ym, err)
	}

	md, err := formatItems("md", meta, items)
	if err != nil || !strings.Contains(md, "## HN1 [A](u)") {
		t.Fatalf("md = %q, err %v", md, err)
	}

	if _, err := formatItems("xml", meta, items); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestInteractiveModes(t *testing.T) {
	var buf bytes.Buffer
	if !interactive("always", &buf) {
		t.Errorf("always should force interactive")
	}
	if interactive("never", os.Stderr) {
		t.Errorf("never should disable interactive")
	}
	if interactive("auto", &buf) {
		t.Errorf("a buffer is not a terminal")
	}
}
