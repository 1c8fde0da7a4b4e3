package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// trendCmd reports the direction of recently tracked translations
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the direction of recently tracked translations",
	Long: `Show grief, wisdom, and reserve directions over the most recently
tracked translations. Requires at least three tracked translations.

Examples:
  rfctl trend`,
	RunE: runTrend,
}

// TrendResponse mirrors the glass trend shape.
type TrendResponse struct {
	GriefDirection   string `json:"grief_direction"`
	WisdomDirection  string `json:"wisdom_direction"`
	ReserveDirection string `json:"reserve_direction"`
	SampleSize       int    `json:"sample_size"`
	Note             string `json:"note"`
}

func runTrend(cmd *cobra.Command, args []string) error {
	var resp TrendResponse
	if err := getJSON("/api/v1/trend", &resp); err != nil {
		return err
	}

	fmt.Printf("Sample size: %d\n", resp.SampleSize)
	fmt.Printf("Grief load:        %s\n", resp.GriefDirection)
	fmt.Printf("Wisdom:            %s\n", resp.WisdomDirection)
	fmt.Printf("Compassion reserve: %s\n", resp.ReserveDirection)
	fmt.Printf("\n%s\n", resp.Note)
	return nil
}

var timelineDays int

// timelineCmd renders the long-range timeline narrative
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the accumulation timeline over recent days",
	Long: `Render the timeline narrative comparing early and late periods of
the tracked history. Requires at least five tracked points.

Examples:
  rfctl timeline
  rfctl timeline --days 90`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().IntVar(&timelineDays, "days", 30, "number of days to summarize")
}

// TimelineResponse matches internal/httpapi TimelineResponse.
type TimelineResponse struct {
	Days    int    `json:"days"`
	Summary string `json:"summary"`
}

func runTimeline(cmd *cobra.Command, args []string) error {
	var resp TimelineResponse
	if err := getJSON(fmt.Sprintf("/api/v1/timeline?days=%d", timelineDays), &resp); err != nil {
		return err
	}
	fmt.Println(resp.Summary)
	return nil
}
