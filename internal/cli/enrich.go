package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/bookmark-brain/internal/core"
	"github.com/valter-silva-au/bookmark-brain/internal/observability"
)

var (
	enrichDryRun bool
	enrichLimit  int
)

var (
	enrichHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	enrichOkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	enrichWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	enrichDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <dir>",
	Short: "Enrich markdown notes with tags, wikilinks, and index pointers",
	Long: `Enrich every markdown note in a directory with topic tags, wikilinks,
and a curated index pointer, rewriting each note in place.

Enrichment is idempotent: running it twice over the same vault produces
byte-identical notes. Use --dry-run to preview the topics each note would
receive without writing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if BatchEnricher == nil {
			return fmt.Errorf("enricher not initialized")
		}

		stats, err := BatchEnricher.Run(args[0], core.BatchOptions{
			DryRun: enrichDryRun,
			Limit:  enrichLimit,
		})
		if err != nil {
			return fmt.Errorf("enriching notes: %w", err)
		}

		logEnrichmentEvents(stats)
		printEnrichmentReport(stats, enrichDryRun)
		return nil
	},
}

// logEnrichmentEvents records one note.enriched event per processed note.
// Event logging is best-effort and never fails the run.
func logEnrichmentEvents(stats *core.BatchStats) {
	if EventLog == nil {
		return
	}
	for _, r := range stats.Results {
		topics := make([]any, len(r.TopicIDs))
		for i, id := range r.TopicIDs {
			topics[i] = id
		}
		_ = EventLog.Write(observability.Event{
			Time:    time.Now().UTC(),
			Level:   "INFO",
			Type:    observability.EventNoteEnriched,
			Message: fmt.Sprintf("enriched %s", r.Name),
			Data: map[string]any{
				"note":   r.Name,
				"topics": topics,
				"index":  r.IndexTarget,
			},
		})
	}
}

func printEnrichmentReport(stats *core.BatchStats, dryRun bool) {
	mode := "Enriched"
	if dryRun {
		mode = "Dry run"
	}
	fmt.Println(enrichHeaderStyle.Render(fmt.Sprintf("%s: %d note(s)", mode, stats.Total)))

	for _, r := range stats.Results {
		if len(r.TopicIDs) == 0 {
			fmt.Printf("  %s %s\n", enrichWarnStyle.Render("·"), enrichDimStyle.Render(r.Name+" (no topics)"))
			continue
		}
		line := fmt.Sprintf("%s: %s", r.Name, strings.Join(r.TopicIDs, ", "))
		if r.IndexTarget != "" {
			line += enrichDimStyle.Render(" -> " + r.IndexTarget)
		}
		fmt.Printf("  %s %s\n", enrichOkStyle.Render("+"), line)
	}

	if stats.NoTopics > 0 {
		fmt.Println(enrichWarnStyle.Render(fmt.Sprintf("\n%d note(s) matched no topic", stats.NoTopics)))
	}

	if len(stats.Topics) > 0 {
		fmt.Println(enrichHeaderStyle.Render("\nTopic frequency:"))
		for _, e := range stats.Topics {
			fmt.Printf("  %-28s %d\n", e.Key, e.Count)
		}
	}

	if len(stats.Indexes) > 0 {
		fmt.Println(enrichHeaderStyle.Render("\nIndex targets:"))
		for _, e := range stats.Indexes {
			fmt.Printf("  %-28s %d\n", e.Key, e.Count)
		}
	}
}

func init() {
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "Preview enrichment without writing notes")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "Process at most N notes (0 = all)")
	rootCmd.AddCommand(enrichCmd)
}
