package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/bookmark-brain/internal/observability"
)

var (
	classifyVideo bool
	classifyImage bool
	classifyLink  bool
	classifyJSON  bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify bookmark text into a content shape",
	Long: `Classify bookmark text into one of the content shapes (top_list,
tutorial_guide, tool_announcement, code_snippet, opinion_take, news_update,
thread_content, screenshot_info, article_link, video_content, unknown).

Text is taken from the argument, or from stdin when no argument is given.
Media flags describe attachments that take part in the decision: --video
always wins, --image applies to short text, --link is the fallback.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Classifier == nil {
			return fmt.Errorf("classifier not initialized")
		}

		text, err := textFromArgsOrStdin(args)
		if err != nil {
			return err
		}

		shape := Classifier.Classify(text, classifyVideo, classifyImage, classifyLink)

		if EventLog != nil {
			_ = EventLog.Write(observability.Event{
				Time:    time.Now().UTC(),
				Level:   "INFO",
				Type:    observability.EventContentClassified,
				Message: fmt.Sprintf("classified as %s", shape),
				Data:    map[string]any{"shape": shape.String()},
			})
		}

		if classifyJSON {
			out := map[string]string{
				"shape":       shape.String(),
				"description": shape.Description(),
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting result as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%s\n%s\n", shape, shape.Description())
		return nil
	},
}

// textFromArgsOrStdin returns the first argument, or reads all of stdin
// when no argument was given.
func textFromArgsOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading text from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyVideo, "video", false, "Bookmark carries a video attachment")
	classifyCmd.Flags().BoolVar(&classifyImage, "image", false, "Bookmark carries an image attachment")
	classifyCmd.Flags().BoolVar(&classifyLink, "link", false, "Bookmark carries an external link")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output result as JSON")
	rootCmd.AddCommand(classifyCmd)
}
