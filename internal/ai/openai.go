package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"last30days/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer condenses normalized search results into prose.
type Summarizer interface {
	// SummarizeFindings writes a short digest of items about topic in the given language.
	SummarizeFindings(ctx context.Context, topic string, items []model.Item, language string) (string, error)
}

// OpenAIClient implements Summarizer using the Chat Completions API of any
// OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("ai: model must be specified")
	}
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	return &OpenAIClient{client: c, model: cfg.Model}, nil
}

// maxDigestItems caps how many items are sent to the model.
const maxDigestItems = 20

func (o *OpenAIClient) SummarizeFindings(ctx context.Context, topic string, items []model.Item, language string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		You summarize Hacker News discussions for a researcher. Write in %s.
		Return 3 to 5 sentences describing what the community discussed about the topic in the period,
		naming recurring themes and notable disagreements. Plain text, no links, no lists.
		`, langOrDefault(language))
	user := fmt.Sprintf("Topic: %s\nStories (title, points, comments):\n%s", topic, findingsList(items, maxDigestItems))
	out, err := o.create(ctx, sys, user)
	if err != nil {
		slog.Error("openai: summarize findings error", "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// findingsList renders up to limit items as prompt lines.
func findingsList(items []model.Item, limit int) string {
	b := &strings.Builder{}
	for i, it := range items {
		if i >= limit {
			break
		}
		fmt.Fprintf(b, "- %s (%s points, %s comments)\n", it.Title, count(it.Engagement.Score), count(it.Engagement.NumComments))
	}
	return b.String()
}

func count(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
