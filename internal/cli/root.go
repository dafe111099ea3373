package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "bkb",
	Short: "Bookmark Brain - knowledge graph enrichment for social bookmarks",
	Long: `Bookmark Brain (bkb) turns captured social-media bookmarks into a
connected knowledge vault. It classifies bookmark text against a topic
registry, rewrites markdown notes with hierarchical tags, wikilinks, and
curated index pointers, and builds content-aware analysis prompts.

It provides CLI commands for batch note enrichment, content shape
classification, prompt building, and pipeline observability.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bkb %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
