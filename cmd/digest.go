package cmd

import (
	"errors"
	"fmt"
	"strings"

	"last30days/internal/ai"

	"github.com/spf13/cobra"
)

var (
	digestOpts     searchOpts
	digestLanguage string
)

// digestCmd searches Hacker News and asks the configured model for a summary.
var digestCmd = &cobra.Command{
	Use:   "digest <topic>",
	Short: "Summarize recent Hacker News discussion about a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.OpenAI.APIKey == "" {
			return errors.New("digest: openai.api_key is not configured")
		}
		summarizer, err := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
		if err != nil {
			return err
		}

		topic := strings.Join(args, " ")
		run, err := runSearch(cmd.Context(), cmd, topic, digestOpts)
		if err != nil {
			return err
		}
		if len(run.Items) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No Hacker News stories about %q between %s and %s.\n", topic, run.Meta.From, run.Meta.To)
			return nil
		}

		lang := digestLanguage
		if lang == "" {
			lang = cfg.OpenAI.Language
		}
		run.Display.StartProcessing()
		summary, err := summarizer.SummarizeFindings(cmd.Context(), topic, run.Items, lang)
		run.Display.EndProcessing()
		if err != nil {
			run.Display.ShowError(err.Error())
			return fmt.Errorf("digest: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	digestOpts.register(digestCmd)
	digestCmd.Flags().StringVar(&digestLanguage, "language", "", "summary language (default from config, English)")
	rootCmd.AddCommand(digestCmd)
}
