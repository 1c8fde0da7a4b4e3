package lens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/reflectd/internal/cultural"
)

// CulturalTranslation is the typed result of the cultural bridge lens.
type CulturalTranslation struct {
	DetectedAssumptions []string `json:"detected_assumptions"`
	Considerations      []string `json:"cultural_considerations"`
	Adaptations         []string `json:"suggested_adaptations"`
	Questions           []string `json:"questions_to_explore"`
	HumilityReminder    string   `json:"humility_reminder"`
}

var (
	autonomyMarkers = []string{
		"your decision", "you should decide", "what do you want",
		"it's up to you", "your choice", "your right",
	}
	directDisclosureMarkers = []string{
		"i need to tell you", "you should know", "the truth is",
		"honestly", "frankly", "you have to understand",
	}
	timePressureMarkers = []string{
		"we need to decide", "time is important", "quickly",
		"right away", "immediately", "can't wait",
	}
)

// CulturalLens detects default cultural assumptions in physician
// communication and suggests adaptations, drawing on the profile
// registry when a cultural context is given.
type CulturalLens struct {
	bridge *cultural.Bridge
}

// Ensure CulturalLens implements Lens.
var _ Lens = (*CulturalLens)(nil)

// NewCulturalLens creates a cultural bridge lens backed by the given
// profile registry.
func NewCulturalLens(bridge *cultural.Bridge) *CulturalLens {
	return &CulturalLens{bridge: bridge}
}

// Name returns the registry name.
func (*CulturalLens) Name() string { return "cultural" }

// Translate analyzes communication text, optionally against a
// specific cultural profile key.
func (l *CulturalLens) Translate(text, culturalKey string) *CulturalTranslation {
	lower := strings.ToLower(text)

	assumptions := detectAssumptions(lower)

	var considerations, adaptations []string
	if profile, ok := l.bridge.Lookup(culturalKey); culturalKey != "" && ok {
		considerations = profileConsiderations(profile)
		adaptations = profileAdaptations(profile)
	} else {
		considerations = generalConsiderations()
		adaptations = generalAdaptations(assumptions)
	}

	questions := l.bridge.UniversalQuestions()
	if len(questions) > 4 {
		questions = questions[:4]
	}

	return &CulturalTranslation{
		DetectedAssumptions: assumptions,
		Considerations:      considerations,
		Adaptations:         adaptations,
		Questions:           questions,
		HumilityReminder: "These are possibilities to consider, not cultural diagnoses. " +
			"The family's actual preferences can only be learned by asking them.",
	}
}

// View implements Lens. Classification is the cultural key when a
// profile matched, otherwise "general".
func (l *CulturalLens) View(text string, opts ViewOptions) (*Report, error) {
	t := l.Translate(text, opts.Culture)

	classification := "general"
	if _, ok := l.bridge.Lookup(opts.Culture); opts.Culture != "" && ok {
		classification = strings.ToLower(opts.Culture)
	}

	return &Report{
		Lens:           l.Name(),
		Classification: classification,
		Sections: []Section{
			{Title: "Detected assumptions", Items: t.DetectedAssumptions},
			{Title: "Cultural considerations", Items: t.Considerations},
			{Title: "Suggested adaptations", Items: t.Adaptations},
			{Title: "Questions to explore", Items: t.Questions},
			{Title: "Humility reminder", Items: []string{t.HumilityReminder}},
		},
	}, nil
}

func detectAssumptions(text string) []string {
	var assumptions []string

	if countPresent(text, autonomyMarkers) > 0 {
		assumptions = append(assumptions,
			"Assumption of individual autonomous decision-making. "+
				"Many cultures use family-collective or elder-directed models.")
	}
	if countPresent(text, directDisclosureMarkers) > 0 {
		assumptions = append(assumptions,
			"Assumption that direct disclosure to patient is preferred. "+
				"Some cultures prefer family-mediated or graduated disclosure.")
	}
	if countPresent(text, timePressureMarkers) > 0 {
		assumptions = append(assumptions,
			"Time pressure in decision-making. "+
				"Family consultation may require more time in collective cultures.")
	}

	if len(assumptions) == 0 {
		assumptions = append(assumptions,
			"No obvious cultural assumptions detected in this sample, "+
				"but cultural sensitivity should remain active.")
	}

	return assumptions
}

func profileConsiderations(p cultural.Profile) []string {
	considerations := []string{
		fmt.Sprintf("Cultural context: %s", p.Tradition),
		fmt.Sprintf("Typical decision style: %s", p.DecisionStyle),
		fmt.Sprintf("Disclosure preference often: %s", p.Disclosure),
	}
	if len(p.FamilyRoles) > 0 {
		considerations = append(considerations,
			"Key roles: "+joinFirstN(p.FamilyRoles, 2))
	}
	if p.SufferingBeliefs != "" {
		beliefs := p.SufferingBeliefs
		if len(beliefs) > 100 {
			beliefs = beliefs[:100] + "..."
		}
		considerations = append(considerations, "Suffering context: "+beliefs)
	}
	return considerations
}

func generalConsiderations() []string {
	return []string{
		"Cultural context not specified; consider asking family preferences",
		"Decision-making style may be individual, family, or elder-directed",
		"Disclosure preferences vary; ask before assuming direct disclosure",
		"Time frames for decisions may need flexibility for family consultation",
	}
}

func profileAdaptations(p cultural.Profile) []string {
	var adaptations []string

	if p.DecisionStyle == cultural.DecisionFamily {
		adaptations = append(adaptations,
			"Consider inviting family members to discussions first")
	}
	if p.Disclosure == cultural.DisclosureFamilyFirst {
		adaptations = append(adaptations,
			"Ask family about disclosure preferences before discussing "+
				"prognosis directly with patient")
	}

	n := 0
	for _, phrase := range sortedLanguage(p.Language) {
		if n >= 2 {
			break
		}
		adaptations = append(adaptations, fmt.Sprintf("Consider: '%s'", phrase))
		n++
	}
	for _, avoid := range firstN(p.AvoidLanguage, 2) {
		adaptations = append(adaptations, fmt.Sprintf("Consider avoiding: '%s'", avoid))
	}

	return adaptations
}

func generalAdaptations(assumptions []string) []string {
	var adaptations []string

	if anyContains(assumptions, "autonom") {
		adaptations = append(adaptations,
			"Consider asking: 'How does your family make important decisions together?'")
	}
	if anyContains(assumptions, "disclosure") {
		adaptations = append(adaptations,
			"Consider asking: 'How would you like to receive information "+
				"about your loved one's condition?'")
	}
	if anyContains(assumptions, "time") {
		adaptations = append(adaptations,
			"Consider offering: 'Would your family like time to consult "+
				"before making this decision?'")
	}

	adaptations = append(adaptations,
		"Build relationship before crisis; ask about preferences early")

	return adaptations
}

func anyContains(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), substr) {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinFirstN(items []string, n int) string {
	return strings.Join(firstN(items, n), ", ")
}

// sortedLanguage returns suggested phrasings in deterministic key order.
func sortedLanguage(language map[string]string) []string {
	keys := make([]string, 0, len(language))
	for k := range language {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	phrases := make([]string, 0, len(keys))
	for _, k := range keys {
		phrases = append(phrases, language[k])
	}
	return phrases
}
