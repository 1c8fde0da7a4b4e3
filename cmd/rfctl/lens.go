package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var lensCulture string

// lensCmd runs a named lens over a reflection
var lensCmd = &cobra.Command{
	Use:   "lens <name> [file]",
	Short: "Run one interpretive lens over a reflection",
	Long: `Run a named lens (compassion, grief, presence, cultural) over a
reflection from a file or stdin.

Examples:
  # Grief lens on a file
  rfctl lens grief reflection.txt

  # Cultural lens with a profile
  cat note.txt | rfctl lens cultural --culture hindu_indian

  # List available lenses
  rfctl lens list`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLens,
}

func init() {
	lensCmd.Flags().StringVar(&lensCulture, "culture", "", "cultural profile key for the cultural lens")
}

// LensRequest matches internal/httpapi LensRequest.
type LensRequest struct {
	Text    string `json:"text"`
	Culture string `json:"culture,omitempty"`
}

// LensReport mirrors the lens report envelope.
type LensReport struct {
	Lens           string             `json:"lens"`
	Classification string             `json:"classification"`
	Confidence     float64            `json:"confidence,omitempty"`
	Scores         map[string]float64 `json:"scores,omitempty"`
	Sections       []struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	} `json:"sections"`
}

// LensesResponse matches internal/httpapi LensesResponse.
type LensesResponse struct {
	Lenses []string `json:"lenses"`
}

func runLens(cmd *cobra.Command, args []string) error {
	if args[0] == "list" {
		var resp LensesResponse
		if err := getJSON("/api/v1/lenses", &resp); err != nil {
			return err
		}
		for _, name := range resp.Lenses {
			fmt.Println(name)
		}
		return nil
	}

	text, err := readInput(args[1:])
	if err != nil {
		return err
	}

	var report LensReport
	if err := postJSON("/api/v1/lens/"+args[0], LensRequest{
		Text:    text,
		Culture: lensCulture,
	}, &report); err != nil {
		return err
	}

	fmt.Printf("Lens: %s\n", report.Lens)
	fmt.Printf("Classification: %s\n", report.Classification)
	if report.Confidence > 0 {
		fmt.Printf("Confidence: %.0f%%\n", report.Confidence*100)
	}
	if len(report.Scores) > 0 {
		fmt.Println("\nScores:")
		keys := make([]string, 0, len(report.Scores))
		for k := range report.Scores {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-24s %.2f\n", k, report.Scores[k])
		}
	}
	for _, section := range report.Sections {
		fmt.Printf("\n%s:\n", section.Title)
		for _, item := range section.Items {
			fmt.Printf("  - %s\n", item)
		}
	}
	return nil
}
