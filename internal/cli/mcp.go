package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	bkbmcp "github.com/valter-silva-au/bookmark-brain/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the bkb MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bkb MCP server on stdio",
	Long: `Start the bkb MCP server on stdio transport.

The server exposes bkb functionality as MCP tools that AI coding assistants
can call: classify_content, build_prompt, preview_enrichment, get_metrics,
get_alerts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Classifier == nil || PromptEngine == nil || Enricher == nil {
			return fmt.Errorf("pipeline not initialized")
		}

		srv := bkbmcp.NewServer(Classifier, PromptEngine, Enricher, MetricsCalc, AlertEngine, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
