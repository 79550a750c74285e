package cmd

import (
	"fmt"

	"last30days/internal/report"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.md>",
	Short: "Print the search metadata of a report written by `hn --format md`",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := report.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("inspect %s: %w", args[0], err)
		}
		if len(doc.Frontmatter) == 0 {
			return fmt.Errorf("inspect %s: no frontmatter found", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "topic:  %s\n", field(doc, "topic"))
		fmt.Fprintf(out, "window: %s .. %s\n", field(doc, "from"), field(doc, "to"))
		fmt.Fprintf(out, "depth:  %s\n", field(doc, "depth"))
		fmt.Fprintf(out, "count:  %s\n", field(doc, "count"))
		fmt.Fprintf(out, "body bytes: %d\n", len(doc.Body))
		return nil
	},
}

// field formats a frontmatter value, "-" when missing.
func field(doc report.Document, key string) string {
	v, ok := doc.Frontmatter[key]
	if !ok || v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
