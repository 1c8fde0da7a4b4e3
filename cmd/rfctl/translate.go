package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	translateDaysSinceRest int
	translateTrack         bool
)

// translateCmd translates a reflection from a file or stdin
var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a reflection from a file or stdin",
	Long: `Translate a clinician reflection through the default lens.

Examples:
  # Translate a file
  rfctl translate reflection.txt

  # Translate from stdin
  echo "lost a patient today" | rfctl translate -

  # Track the translation in accumulation history
  rfctl translate --track --days-since-rest 3 reflection.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().IntVar(&translateDaysSinceRest, "days-since-rest", 0, "days since last real rest")
	translateCmd.Flags().BoolVar(&translateTrack, "track", false, "record this translation in accumulation history")
}

// TranslateRequest matches internal/httpapi TranslateRequest.
type TranslateRequest struct {
	Text          string `json:"text"`
	DaysSinceRest int    `json:"days_since_rest"`
	Track         bool   `json:"track"`
	Narrative     bool   `json:"narrative"`
}

// TranslateResponse carries the narrative rendering of a translation.
type TranslateResponse struct {
	Narrative string `json:"narrative"`
}

func runTranslate(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	var resp TranslateResponse
	if err := postJSON("/api/v1/translate", TranslateRequest{
		Text:          text,
		DaysSinceRest: translateDaysSinceRest,
		Track:         translateTrack,
		Narrative:     true,
	}, &resp); err != nil {
		return err
	}

	fmt.Print(resp.Narrative)
	return nil
}

// readInput reads reflection text from the named file, or stdin when
// no file (or "-") is given.
func readInput(args []string) (string, error) {
	var content []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", fmt.Errorf("no reflection text to send")
	}
	return text, nil
}
