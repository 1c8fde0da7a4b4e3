package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	guidanceCulture string
	guidanceContext string
)

// guidanceCmd fetches culturally-informed communication guidance
var guidanceCmd = &cobra.Command{
	Use:   "guidance",
	Short: "Fetch culturally-informed communication guidance",
	Long: `Fetch guidance for a communication moment in a cultural context.

Contexts: prognosis, goals_of_care, imminent_death

Examples:
  rfctl guidance --culture hindu_indian --context prognosis
  rfctl guidance --context goals_of_care`,
	RunE: runGuidance,
}

func init() {
	guidanceCmd.Flags().StringVar(&guidanceCulture, "culture", "", "cultural profile key")
	guidanceCmd.Flags().StringVar(&guidanceContext, "context", "", "communication context (required)")
	_ = guidanceCmd.MarkFlagRequired("context")
}

// GuidanceRequest matches internal/httpapi GuidanceRequest.
type GuidanceRequest struct {
	Culture string `json:"culture"`
	Context string `json:"context"`
}

// GuidanceResponse mirrors the cultural guidance shape.
type GuidanceResponse struct {
	Awareness            []string `json:"cultural_awareness"`
	SuggestedApproach    []string `json:"suggested_approach"`
	SuggestedLanguage    []string `json:"suggested_language"`
	Cautions             []string `json:"cautions"`
	FamilyQuestions      []string `json:"questions_to_ask_family"`
	RitualConsiderations []string `json:"ritual_considerations"`
	CriticalReminder     string   `json:"critical_reminder"`
}

func runGuidance(cmd *cobra.Command, args []string) error {
	var resp GuidanceResponse
	if err := postJSON("/api/v1/guidance", GuidanceRequest{
		Culture: guidanceCulture,
		Context: guidanceContext,
	}, &resp); err != nil {
		return err
	}

	printGuidanceSection("Cultural awareness", resp.Awareness)
	printGuidanceSection("Suggested approach", resp.SuggestedApproach)
	printGuidanceSection("Suggested language", resp.SuggestedLanguage)
	printGuidanceSection("Cautions", resp.Cautions)
	printGuidanceSection("Questions to ask the family", resp.FamilyQuestions)
	printGuidanceSection("Ritual considerations", resp.RitualConsiderations)

	if resp.CriticalReminder != "" {
		fmt.Printf("\nRemember: %s\n", resp.CriticalReminder)
	}
	return nil
}

func printGuidanceSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}
