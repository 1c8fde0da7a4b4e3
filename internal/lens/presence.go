package lens

import (
	"fmt"
	"strings"
)

// PresenceMode is the mode of professional presence. Some emotional
// distance from patient deaths is necessary for sustainable practice;
// the question is whether the distance serves protection while
// preserving capacity for genuine connection when needed.
type PresenceMode string

const (
	PresenceFull             PresenceMode = "full_presence"
	PresenceProtective       PresenceMode = "protective_distance"
	PresenceAdaptiveNumbing  PresenceMode = "adaptive_numbing"
	PresenceDetachment       PresenceMode = "problematic_detachment"
	PresenceDisconnect       PresenceMode = "complete_disconnect"
)

// PresenceResult is the typed result of the protective presence lens.
type PresenceResult struct {
	Mode PresenceMode `json:"mode"`

	PresenceWhenNeeded  float64 `json:"presence_when_needed"`
	ProtectiveFunction  float64 `json:"protective_function"`
	ConnectionPreserved float64 `json:"connection_preserved"`

	Interpretation    string   `json:"interpretation"`
	HealthAssessment  string   `json:"health_assessment"`
	AccessibilityNote string   `json:"accessibility_note"`
	Recommendations   []string `json:"recommendations"`
}

var (
	presenceFullMarkers = []string{
		"present", "connected", "felt", "moved", "touched",
		"tears", "cried", "heart", "soul", "deep",
	}
	presenceDistanceMarkers = []string{
		"professional", "clinical", "objective", "boundary",
		"separate", "step back", "perspective",
	}
	presenceAdaptiveMarkers = []string{
		"manage", "cope", "sustainable", "continue", "carry on",
		"find a way", "learned to", "balance",
	}
	presenceDetachmentMarkers = []string{
		"don't feel", "numb", "empty", "nothing", "detached",
		"disconnected", "can't connect", "going through motions",
	}
	presenceConnectionMarkers = []string{
		"when needed", "for the family", "with patients",
		"genuine", "authentic", "real", "care", "matter",
	}
)

// PresenceLens assesses the quality of professional distancing.
type PresenceLens struct{}

// Ensure PresenceLens implements Lens.
var _ Lens = PresenceLens{}

// Name returns the registry name.
func (PresenceLens) Name() string { return "presence" }

// Assess evaluates presence and distancing patterns in text.
func (l PresenceLens) Assess(text string) *PresenceResult {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	if wordCount == 0 {
		return &PresenceResult{
			Mode:              PresenceProtective,
			Interpretation:    "No text to analyze",
			HealthAssessment:  "Insufficient data",
			AccessibilityNote: "Cannot assess",
		}
	}

	presence := density(lower, presenceFullMarkers, wordCount)
	distance := density(lower, presenceDistanceMarkers, wordCount)
	adaptation := density(lower, presenceAdaptiveMarkers, wordCount)
	detachment := density(lower, presenceDetachmentMarkers, wordCount)
	connection := density(lower, presenceConnectionMarkers, wordCount)

	mode := presenceMode(presence, distance, adaptation, detachment, connection)

	accessibility := ((connection+(1-detachment))/2 + presence) / 2
	protection := clamp01((distance + adaptation - detachment*0.5) / 2)

	return &PresenceResult{
		Mode:                mode,
		PresenceWhenNeeded:  accessibility,
		ProtectiveFunction:  protection,
		ConnectionPreserved: connection,
		Interpretation:      presenceInterpretation(mode),
		HealthAssessment:    presenceHealth(mode, protection, connection),
		AccessibilityNote:   accessibilityNote(accessibility),
		Recommendations:     presenceRecommendations(mode),
	}
}

// View implements Lens.
func (l PresenceLens) View(text string, _ ViewOptions) (*Report, error) {
	r := l.Assess(text)
	return &Report{
		Lens:           l.Name(),
		Classification: string(r.Mode),
		Scores: map[string]float64{
			"presence_when_needed": r.PresenceWhenNeeded,
			"protective_function":  r.ProtectiveFunction,
			"connection_preserved": r.ConnectionPreserved,
		},
		Sections: []Section{
			{Title: "Interpretation", Items: []string{r.Interpretation}},
			{Title: "Health", Items: []string{r.HealthAssessment}},
			{Title: "Accessibility", Items: []string{r.AccessibilityNote}},
			{Title: "Recommendations", Items: r.Recommendations},
		},
	}, nil
}

// presenceMode maps dimension scores to a mode. Checks run from most
// to least concerning; the first match wins.
func presenceMode(presence, distance, adaptation, detachment, connection float64) PresenceMode {
	switch {
	case detachment > 0.6 && connection < 0.2:
		return PresenceDisconnect
	case detachment > 0.4 && adaptation < 0.3:
		return PresenceDetachment
	case detachment > 0.2 && adaptation > 0.3 && connection > 0.3:
		return PresenceAdaptiveNumbing
	case distance > 0.3 && connection > 0.3 && detachment < 0.3:
		return PresenceProtective
	case presence > 0.4 && detachment < 0.2:
		return PresenceFull
	default:
		return PresenceProtective
	}
}

func presenceInterpretation(mode PresenceMode) string {
	switch mode {
	case PresenceFull:
		return "Operating with full emotional presence. This allows deep connection " +
			"but requires attention to sustainability and adequate recovery practices."
	case PresenceProtective:
		return "Maintaining professional distance while preserving capacity for " +
			"genuine connection. This is often the sustainable mode for long-term " +
			"practice in oncology."
	case PresenceAdaptiveNumbing:
		return "Some emotional numbing present but appears to be serving adaptive " +
			"function. This 'little bit numb to death' can be protective if genuine " +
			"connection remains accessible."
	case PresenceDetachment:
		return "Detachment patterns may be affecting capacity for connection. This " +
			"could indicate burnout precursors or compassion fatigue. Consider " +
			"whether this is chosen distance or forced withdrawal."
	case PresenceDisconnect:
		return "Significant disconnection detected. This may indicate crisis state " +
			"requiring attention. This is not failure; it's a signal that the " +
			"system needs care."
	default:
		return "Mode requires further analysis."
	}
}

func presenceHealth(mode PresenceMode, protection, connection float64) string {
	switch mode {
	case PresenceFull, PresenceProtective:
		return fmt.Sprintf("Current mode appears healthy and sustainable. "+
			"Protection function: %.0f%%, Connection preserved: %.0f%%",
			protection*100, connection*100)
	case PresenceAdaptiveNumbing:
		if connection > 0.4 {
			return "Numbing appears adaptive; connection capacity preserved. " +
				"Monitor for further detachment."
		}
		return "Numbing may be shifting toward problematic detachment. " +
			"Connection capacity showing strain."
	case PresenceDetachment:
		return "Current mode may not be sustainable. Consider support to restore " +
			"connection capacity."
	default:
		return "Crisis state indicated. Immediate support warranted. This is a " +
			"signal, not a character flaw."
	}
}

func accessibilityNote(accessibility float64) string {
	switch {
	case accessibility > 0.7:
		return "Genuine presence appears accessible when needed. Can access " +
			"emotional connection for patients and families."
	case accessibility > 0.4:
		return "Moderate presence accessibility. May require effort to access " +
			"genuine connection in some situations."
	default:
		return "Presence accessibility appears limited. May benefit from support " +
			"to restore connection capacity."
	}
}

func presenceRecommendations(mode PresenceMode) []string {
	switch mode {
	case PresenceFull:
		return []string{
			"Ensure adequate recovery practices to sustain this presence",
			"Monitor for signs of over-extension or compassion fatigue",
			"This mode is valuable but requires self-care to maintain",
		}
	case PresenceProtective:
		return []string{
			"Current mode appears sustainable; continue practices",
			"Periodically check that connection remains accessible",
			"This balance serves both you and your patients",
		}
	case PresenceAdaptiveNumbing:
		return []string{
			"Monitor whether numbing remains adaptive or shifts further",
			"Ensure genuine connection remains accessible when needed",
			"Consider whether recovery practices are adequate",
		}
	case PresenceDetachment:
		return []string{
			"Consider whether this is chosen distance or forced withdrawal",
			"Support may help restore connection capacity",
			"This pattern often responds to dedicated intervention",
		}
	case PresenceDisconnect:
		return []string{
			"This is a crisis signal; please seek support",
			"Professional resources specifically for physician wellbeing exist",
			"Taking time for restoration is not abandonment",
		}
	default:
		return []string{"Monitor and reassess"}
	}
}
