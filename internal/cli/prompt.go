package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/bookmark-brain/internal/observability"
	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

var (
	promptAuthor        string
	promptLikes         int
	promptVideo         bool
	promptImage         bool
	promptLink          bool
	promptLinkFile      string
	promptImageFile     string
	promptVideoFile     string
	promptShowSystem    bool
	promptShowShapeOnly bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt [text]",
	Short: "Build a content-aware analysis prompt for bookmark text",
	Long: `Classify bookmark text and build the matching analysis prompt, with
author, engagement, and media context filled in.

Text is taken from the argument, or from stdin when no argument is given.
Pre-fetched media fragments (linked page content, image or video analysis)
can be supplied from files and are wrapped in labeled delimiter blocks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PromptEngine == nil {
			return fmt.Errorf("prompt engine not initialized")
		}

		text, err := textFromArgsOrStdin(args)
		if err != nil {
			return err
		}

		linkContent, err := readFragmentFile(promptLinkFile)
		if err != nil {
			return err
		}
		imageAnalysis, err := readFragmentFile(promptImageFile)
		if err != nil {
			return err
		}
		videoAnalysis, err := readFragmentFile(promptVideoFile)
		if err != nil {
			return err
		}

		shape, userPrompt, systemPrompt := PromptEngine.Build(models.PromptInput{
			Text:          text,
			Author:        promptAuthor,
			Likes:         promptLikes,
			HasVideo:      promptVideo || videoAnalysis != "",
			HasImage:      promptImage || imageAnalysis != "",
			HasLink:       promptLink || linkContent != "",
			LinkContent:   linkContent,
			ImageAnalysis: imageAnalysis,
			VideoAnalysis: videoAnalysis,
		})

		if EventLog != nil {
			_ = EventLog.Write(observability.Event{
				Time:    time.Now().UTC(),
				Level:   "INFO",
				Type:    observability.EventPromptBuilt,
				Message: fmt.Sprintf("built %s prompt", shape),
				Data:    map[string]any{"shape": shape.String()},
			})
		}

		if promptShowShapeOnly {
			fmt.Println(shape)
			return nil
		}

		if promptShowSystem {
			fmt.Printf("# shape: %s\n# system:\n%s\n\n# user:\n", shape, systemPrompt)
		}
		fmt.Println(userPrompt)
		return nil
	},
}

// readFragmentFile reads an optional media fragment file, returning "" when
// no path was given.
func readFragmentFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading fragment file %s: %w", path, err)
	}
	return string(data), nil
}

func init() {
	promptCmd.Flags().StringVar(&promptAuthor, "author", "", "Author handle, without the @ prefix")
	promptCmd.Flags().IntVar(&promptLikes, "likes", 0, "Like count at capture time")
	promptCmd.Flags().BoolVar(&promptVideo, "video", false, "Bookmark carries a video attachment")
	promptCmd.Flags().BoolVar(&promptImage, "image", false, "Bookmark carries an image attachment")
	promptCmd.Flags().BoolVar(&promptLink, "link", false, "Bookmark carries an external link")
	promptCmd.Flags().StringVar(&promptLinkFile, "link-content", "", "File with fetched content of the linked page")
	promptCmd.Flags().StringVar(&promptImageFile, "image-analysis", "", "File with prior analysis of the attached image")
	promptCmd.Flags().StringVar(&promptVideoFile, "video-analysis", "", "File with prior analysis of the attached video")
	promptCmd.Flags().BoolVar(&promptShowSystem, "system", false, "Also print the system prompt")
	promptCmd.Flags().BoolVar(&promptShowShapeOnly, "shape-only", false, "Print only the detected shape")
	rootCmd.AddCommand(promptCmd)
}
