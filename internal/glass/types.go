package glass

import (
	"fmt"
	"strings"
	"time"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

// CompassionState classifies the overall pattern of a reflection.
type CompassionState string

const (
	// StateFullPresence: engaged, connected, sustainable.
	StateFullPresence CompassionState = "full_presence"
	// StateProtectiveDistance: healthy boundary.
	StateProtectiveDistance CompassionState = "protective_distance"
	// StateCompassionFatigue: traumatic stress present.
	StateCompassionFatigue CompassionState = "compassion_fatigue"
	// StateBurnoutPrecursor: energy depletion beginning.
	StateBurnoutPrecursor CompassionState = "burnout_precursor"
	// StateCrisis: immediate support needed.
	StateCrisis CompassionState = "crisis"
)

// Translation is the result of translating one reflection.
type Translation struct {
	Variables gct.Variables   `json:"variables"`
	LensUsed  string          `json:"lens_used"`
	State     CompassionState `json:"compassion_state"`

	PatternSummary         string   `json:"pattern_summary"`
	WisdomPathway          string   `json:"wisdom_pathway"`
	SupportSuggestions     []string `json:"support_suggestions,omitempty"`
	CulturalConsiderations []string `json:"cultural_considerations,omitempty"`

	Confidence          float64  `json:"confidence"`
	AlternativeReadings []string `json:"alternative_readings,omitempty"`
	UncertaintyNotes    []string `json:"uncertainty_notes,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Narrative renders the translation as a human-readable report.
func (t *Translation) Narrative() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reflection Translation\n")
	fmt.Fprintf(&b, "Lens: %s\n", t.LensUsed)
	fmt.Fprintf(&b, "Compassion state: %s\n", t.State)
	fmt.Fprintf(&b, "Confidence: %.0f%%\n\n", t.Confidence*100)

	fmt.Fprintf(&b, "Pattern dimensions:\n")
	fmt.Fprintf(&b, "  psi    clinical-human integration  %.2f\n", t.Variables.Psi)
	fmt.Fprintf(&b, "  rho    wisdom accumulation         %.2f\n", t.Variables.Rho)
	fmt.Fprintf(&b, "  q      emotional engagement        %.2f\n", t.Variables.Q)
	fmt.Fprintf(&b, "  f      community connection        %.2f\n", t.Variables.F)
	fmt.Fprintf(&b, "  tau    temporal pattern depth      %.2f\n", t.Variables.Tau)
	fmt.Fprintf(&b, "  lambda frame ambiguity             %.2f\n\n", t.Variables.Lambda)

	fmt.Fprintf(&b, "Derived insights:\n")
	fmt.Fprintf(&b, "  wisdom compression   %.2f\n", t.Variables.WisdomCompression)
	fmt.Fprintf(&b, "  compassion reserve   %.2f\n", t.Variables.CompassionReserve)
	fmt.Fprintf(&b, "  grief load           %.2f\n\n", t.Variables.GriefLoad)

	fmt.Fprintf(&b, "Pattern summary:\n%s\n\n", t.PatternSummary)
	fmt.Fprintf(&b, "Wisdom pathway:\n%s\n", t.WisdomPathway)

	writeSection(&b, "Support considerations", t.SupportSuggestions)
	writeSection(&b, "Cultural bridge notes", t.CulturalConsiderations)
	writeSection(&b, "Alternative readings", t.AlternativeReadings)
	writeSection(&b, "Uncertainty notes", t.UncertaintyNotes)

	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

// Trend summarizes the direction of recent accumulation history.
type Trend struct {
	GriefDirection   string `json:"grief_direction"`
	WisdomDirection  string `json:"wisdom_direction"`
	ReserveDirection string `json:"reserve_direction"`
	SampleSize       int    `json:"sample_size"`
	Note             string `json:"note"`
}
