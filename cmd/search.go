package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"last30days/internal/hackernews"
	"last30days/internal/model"
	"last30days/internal/report"
	"last30days/internal/ui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// searchOpts are the flags shared by commands that run a search.
type searchOpts struct {
	from        string
	to          string
	days        int
	depth       string
	mockFile    string
	noBanner    bool
	interactive string
}

func (o *searchOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.from, "from", "", "start date YYYY-MM-DD (default: today minus --days)")
	f.StringVar(&o.to, "to", "", "end date YYYY-MM-DD, inclusive (default: today)")
	f.IntVar(&o.days, "days", 0, "lookback window in days when --from is not set (default from config, 30)")
	f.StringVar(&o.depth, "depth", "", "result depth: quick, default or deep")
	f.StringVar(&o.mockFile, "mock-file", "", "read the search response from a JSON file instead of the network")
	f.BoolVar(&o.noBanner, "no-banner", false, "do not print the banner")
	f.StringVar(&o.interactive, "interactive", "", "progress style: auto, always or never")
}

// searchRun is the outcome of one search, ready for output.
type searchRun struct {
	Meta    report.Meta
	Items   []model.Item
	Display *ui.ProgressDisplay
}

// runSearch drives the progress display around a single Hacker News search.
func runSearch(ctx context.Context, cmd *cobra.Command, topic string, o searchOpts) (*searchRun, error) {
	cfg := GetConfig()
	now := time.Now()

	days := o.days
	if days <= 0 {
		days = cfg.HackerNews.Days
	}
	to := strings.TrimSpace(o.to)
	if to == "" {
		to = now.Format("2006-01-02")
	}
	from := strings.TrimSpace(o.from)
	if from == "" {
		end, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		from = end.AddDate(0, 0, -days).Format("2006-01-02")
	}
	depthName := o.depth
	if depthName == "" {
		depthName = cfg.HackerNews.Depth
	}
	depth := hackernews.DepthFor(depthName)

	var mock *hackernews.Response
	if o.mockFile != "" {
		m, err := loadMock(o.mockFile)
		if err != nil {
			return nil, err
		}
		mock = m
	}

	mode := o.interactive
	if mode == "" {
		mode = cfg.UI.Interactive
	}
	errOut := cmd.ErrOrStderr()
	display := ui.NewProgressDisplay(topic, ui.Options{
		Out:           errOut,
		Interactive:   interactive(mode, errOut),
		ShowBanner:    cfg.UI.Banner && !o.noBanner,
		ExternalLabel: "HN",
		ExternalNoun:  "stories",
		Messages: ui.MessagePools{External: []string{
			"Searching Hacker News...",
			"Reading the orange site...",
			"Checking what hackers are discussing...",
			"Scanning Show HN and Ask HN...",
		}},
	})

	client := hackernews.NewClient(hackernews.Config{BaseURL: cfg.HackerNews.BaseURL})
	q := hackernews.Query{Topic: topic, From: from, To: to, Depth: depth}

	display.StartExternal()
	resp := client.Search(ctx, q, mock)
	items := client.Parse(resp)
	display.EndExternal(len(items))
	if resp.Failed() {
		display.ShowError(resp.Error)
	}

	return &searchRun{
		Meta: report.Meta{
			Topic:     topic,
			From:      from,
			To:        to,
			Depth:     string(depth),
			Source:    "hackernews",
			Generated: now.UTC(),
		},
		Items:   items,
		Display: display,
	}, nil
}

func loadMock(path string) (*hackernews.Response, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mock response: %w", err)
	}
	var r hackernews.Response
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse mock response %s: %w", path, err)
	}
	return &r, nil
}

// interactive resolves the progress mode against the writer progress goes to.
func interactive(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	hnOpts   searchOpts
	hnFormat string
)

// hnCmd searches Hacker News and prints normalized items.
var hnCmd = &cobra.Command{
	Use:   "hn <topic>",
	Short: "Search Hacker News stories about a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		run, err := runSearch(cmd.Context(), cmd, topic, hnOpts)
		if err != nil {
			return err
		}
		run.Display.StartProcessing()
		out, err := formatItems(hnFormat, run.Meta, run.Items)
		run.Display.EndProcessing()
		if err != nil {
			run.Display.ShowError(err.Error())
			return err
		}
		ui.PrintPhase(cmd.ErrOrStderr(), "done", fmt.Sprintf("%d stories about %q", len(run.Items), topic))
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

// formatItems renders items as json, yaml or md.
func formatItems(format string, meta report.Meta, items []model.Item) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case "yaml", "yml":
		b, err := yaml.Marshal(items)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "md", "markdown":
		return report.Render(meta, items)
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or md)", format)
	}
}

func init() {
	hnOpts.register(hnCmd)
	hnCmd.Flags().StringVar(&hnFormat, "format", "json", "output format: json, yaml or md")
	rootCmd.AddCommand(hnCmd)
}
