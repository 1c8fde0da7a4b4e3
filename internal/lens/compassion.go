package lens

import (
	"fmt"
	"strings"
)

// CompassionMode is the compassion operating mode this lens detects.
//
// Compassion fatigue is distinct from burnout: burnout is chronic
// workplace stress leading to exhaustion and cynicism, while
// compassion fatigue is secondary traumatic stress from caring for
// the traumatized. The mode taxonomy keeps the two apart.
type CompassionMode string

const (
	ModeFullEngagement     CompassionMode = "full_engagement"
	ModeSustainableRhythm  CompassionMode = "sustainable_rhythm"
	ModeProtectiveDistance CompassionMode = "protective_distance"
	ModeCompassionFatigue  CompassionMode = "compassion_fatigue"
	ModeBurnoutCascade     CompassionMode = "burnout_cascade"
)

// CompassionAssessment is the typed result of the compassion
// preservation lens.
type CompassionAssessment struct {
	Mode       CompassionMode `json:"mode"`
	Confidence float64        `json:"mode_confidence"`

	EngagementLevel    float64 `json:"engagement_level"`
	BoundaryHealth     float64 `json:"boundary_health"`
	RecoveryCapacity   float64 `json:"recovery_capacity"`
	TraumaticIntrusion float64 `json:"traumatic_intrusion"`

	PatternDescription string `json:"pattern_description"`
	Sustainability     string `json:"sustainability_assessment"`

	Recommendations []string `json:"recommendations"`
	WarningSigns    []string `json:"warning_signs"`
}

var (
	compassionFatigueMarkers = []string{
		"can't stop thinking", "nightmares", "intrusive", "haunted",
		"triggered", "flashback", "images", "won't leave", "keeps coming back",
	}
	compassionBurnoutMarkers = []string{
		"exhausted", "empty", "going through motions", "don't care",
		"what's the point", "mechanical", "cynical", "jaded",
	}
	compassionPresenceMarkers = []string{
		"present", "connected", "honored", "privilege", "meaningful",
		"rewarding", "grateful", "touched",
	}
	compassionDistanceMarkers = []string{
		"professional", "boundary", "separate", "clinical",
		"detached", "objective", "distance",
	}
	compassionRecoveryMarkers = []string{
		"rest", "restored", "recharged", "supported", "processed",
		"talked", "shared", "cried", "grieved",
	}
	overInvolvementMarkers = []string{
		"too much", "can't let go", "my patient", "felt like mine",
	}
)

// CompassionLens assesses compassion sustainability and distinguishes
// fatigue, burnout, and protective distance.
type CompassionLens struct{}

// Ensure CompassionLens implements Lens.
var _ Lens = CompassionLens{}

// Name returns the registry name.
func (CompassionLens) Name() string { return "compassion" }

// Assess evaluates the compassion state expressed in text.
func (l CompassionLens) Assess(text string) *CompassionAssessment {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	if wordCount == 0 {
		return &CompassionAssessment{
			Mode:               ModeSustainableRhythm,
			PatternDescription: "No text to analyze",
			Sustainability:     "Insufficient data",
		}
	}

	engagement := compassionEngagement(lower)
	boundary := boundaryHealth(lower)
	recovery := recoveryCapacity(lower)
	intrusion := traumaticIntrusion(lower)

	mode, confidence := compassionMode(engagement, boundary, recovery, intrusion)

	return &CompassionAssessment{
		Mode:               mode,
		Confidence:         confidence,
		EngagementLevel:    engagement,
		BoundaryHealth:     boundary,
		RecoveryCapacity:   recovery,
		TraumaticIntrusion: intrusion,
		PatternDescription: compassionPattern(mode, engagement),
		Sustainability:     compassionSustainability(mode, recovery),
		Recommendations:    compassionRecommendations(mode),
		WarningSigns:       compassionWarnings(mode, intrusion, recovery),
	}
}

// View implements Lens.
func (l CompassionLens) View(text string, _ ViewOptions) (*Report, error) {
	a := l.Assess(text)
	return &Report{
		Lens:           l.Name(),
		Classification: string(a.Mode),
		Confidence:     a.Confidence,
		Scores: map[string]float64{
			"engagement_level":    a.EngagementLevel,
			"boundary_health":     a.BoundaryHealth,
			"recovery_capacity":   a.RecoveryCapacity,
			"traumatic_intrusion": a.TraumaticIntrusion,
		},
		Sections: []Section{
			{Title: "Pattern", Items: []string{a.PatternDescription}},
			{Title: "Sustainability", Items: []string{a.Sustainability}},
			{Title: "Recommendations", Items: a.Recommendations},
			{Title: "Warning signs", Items: a.WarningSigns},
		},
	}, nil
}

// compassionEngagement starts from a neutral baseline; presence
// markers raise it, burnout markers lower it.
func compassionEngagement(text string) float64 {
	presence := float64(countPresent(text, compassionPresenceMarkers)) * 0.15
	if presence > 0.4 {
		presence = 0.4
	}
	burnout := float64(countPresent(text, compassionBurnoutMarkers)) * 0.15
	if burnout > 0.4 {
		burnout = 0.4
	}
	return clamp01(0.5 + presence - burnout)
}

// boundaryHealth scores professional boundaries. Some distance is
// healthy; too much or too little is concerning.
func boundaryHealth(text string) float64 {
	distance := countPresent(text, compassionDistanceMarkers)
	over := countPresent(text, overInvolvementMarkers)

	switch {
	case distance >= 1 && over == 0:
		return 0.7
	case over > 0:
		return 0.3
	case distance >= 3:
		return 0.4
	default:
		return 0.5
	}
}

func recoveryCapacity(text string) float64 {
	recovery := float64(countPresent(text, compassionRecoveryMarkers)) * 0.2
	if recovery > 0.8 {
		recovery = 0.8
	}
	return recovery + 0.1
}

func traumaticIntrusion(text string) float64 {
	intrusion := float64(countPresent(text, compassionFatigueMarkers)) * 0.2
	if intrusion > 1 {
		return 1
	}
	return intrusion
}

// compassionMode maps component scores to a mode with confidence.
// Checks run in severity order; the first match wins.
func compassionMode(engagement, boundary, recovery, intrusion float64) (CompassionMode, float64) {
	switch {
	case intrusion > 0.5:
		confidence := intrusion
		if confidence > 0.8 {
			confidence = 0.8
		}
		return ModeCompassionFatigue, confidence
	case engagement < 0.3 && recovery < 0.3:
		return ModeBurnoutCascade, 0.7
	case boundary >= 0.6 && engagement >= 0.3 && engagement <= 0.7:
		return ModeProtectiveDistance, 0.6
	case engagement > 0.7 && recovery > 0.4:
		return ModeFullEngagement, 0.7
	default:
		return ModeSustainableRhythm, 0.5
	}
}

func compassionPattern(mode CompassionMode, engagement float64) string {
	switch mode {
	case ModeFullEngagement:
		return fmt.Sprintf("High emotional engagement with patients and families. "+
			"Engagement level: %.0f%%. This can be deeply rewarding but requires "+
			"attention to sustainability.", engagement*100)
	case ModeSustainableRhythm:
		return "Balanced engagement pattern detected. Emotional presence appears " +
			"sustainable with current practices."
	case ModeProtectiveDistance:
		return "Healthy professional boundaries evident. This 'becoming a little " +
			"numb to death' can be adaptive when genuine compassion remains " +
			"accessible when needed."
	case ModeCompassionFatigue:
		return "Patterns suggest secondary traumatic stress may be present. " +
			"Intrusive symptoms indicate the work may be affecting you in ways " +
			"that deserve attention and support."
	case ModeBurnoutCascade:
		return "Patterns suggest energy depletion and diminished engagement. " +
			"This is a signal, not a failure. The system is indicating need for restoration."
	default:
		return "Pattern requires additional context."
	}
}

func compassionSustainability(mode CompassionMode, recovery float64) string {
	switch {
	case mode == ModeCompassionFatigue || mode == ModeBurnoutCascade:
		return "Current pattern appears unsustainable. Intervention or support " +
			"may prevent deterioration."
	case recovery < 0.3:
		return "Recovery capacity appears limited. Current engagement may not be " +
			"sustainable long-term."
	case mode == ModeProtectiveDistance && recovery > 0.4:
		return "Current protective stance appears sustainable. Boundaries serving " +
			"protective function while maintaining capacity."
	case mode == ModeFullEngagement && recovery > 0.5:
		return "High engagement appears sustainable with current recovery " +
			"practices. Continue practices that restore."
	default:
		return "Sustainability assessment uncertain. Monitor over time."
	}
}

func compassionRecommendations(mode CompassionMode) []string {
	switch mode {
	case ModeFullEngagement:
		return []string{
			"Maintain practices that restore compassion reserves",
			"Monitor for signs of over-extension",
			"Ensure boundaries remain healthy alongside engagement",
		}
	case ModeSustainableRhythm:
		return []string{
			"Current practices appear effective; continue",
			"Note what helps maintain this balance",
			"Share what works with colleagues who may be struggling",
		}
	case ModeProtectiveDistance:
		return []string{
			"This distance may be serving a protective function",
			"Check: is genuine connection still accessible when needed?",
			"Ensure distance is chosen, not forced by depletion",
		}
	case ModeCompassionFatigue:
		return []string{
			"Secondary traumatic stress responds to specific interventions",
			"Consider speaking with someone trained in trauma support",
			"Processing rituals after difficult cases may help",
			"This is not weakness; it's the cost of caring work",
		}
	case ModeBurnoutCascade:
		return []string{
			"Restoration needed before continued depletion",
			"Professional support specifically for physician burnout exists",
			"Time off is not abandonment; it's preservation of capacity to serve",
		}
	default:
		return []string{"Monitor and reassess"}
	}
}

func compassionWarnings(mode CompassionMode, intrusion, recovery float64) []string {
	var signs []string

	if intrusion > 0.3 {
		signs = append(signs, "Intrusive thoughts about patients increasing")
	}
	if recovery < 0.3 {
		signs = append(signs, "Recovery practices not restoring reserves")
	}
	switch mode {
	case ModeBurnoutCascade:
		signs = append(signs,
			"Cynicism or detachment affecting patient care",
			"Considering leaving medicine due to burnout",
		)
	case ModeCompassionFatigue:
		signs = append(signs,
			"Nightmares or sleep disruption from work",
			"Avoiding certain patient types or situations",
		)
	}

	return signs
}
