package cultural

import (
	"fmt"
	"strings"
)

// Communication contexts understood by Guidance.
const (
	ContextPrognosis     = "prognosis"
	ContextGoalsOfCare   = "goals_of_care"
	ContextImminentDeath = "imminent_death"
)

// Guidance is culturally-informed advice for one communication moment.
type Guidance struct {
	Awareness            []string `json:"cultural_awareness"`
	SuggestedApproach    []string `json:"suggested_approach"`
	SuggestedLanguage    []string `json:"suggested_language"`
	Cautions             []string `json:"cautions"`
	FamilyQuestions      []string `json:"questions_to_ask_family"`
	RitualConsiderations []string `json:"ritual_considerations"`
	CriticalReminder     string   `json:"critical_reminder"`
}

// Guidance builds communication guidance for a cultural key and a
// communication context. Unknown keys produce generic,
// humility-centered guidance rather than an error.
func (b *Bridge) Guidance(culturalKey, commContext string) *Guidance {
	profile, ok := b.Lookup(culturalKey)
	if !ok {
		return b.genericGuidance()
	}

	g := &Guidance{
		CriticalReminder: "Always ask the family about their specific preferences",
	}

	g.Awareness = append(g.Awareness,
		fmt.Sprintf("Decision-making style often: %s", profile.DecisionStyle),
		fmt.Sprintf("Disclosure preference may be: %s", profile.Disclosure),
		fmt.Sprintf("Death beliefs context: %s", profile.DeathBeliefs),
	)
	if len(profile.Concepts) > 0 {
		g.Awareness = append(g.Awareness,
			"Key concepts: "+joinFirst(profile.Concepts, 3))
	}

	switch commContext {
	case ContextPrognosis:
		b.addPrognosisGuidance(g, profile)
	case ContextGoalsOfCare:
		b.addGoalsGuidance(g, profile)
	case ContextImminentDeath:
		b.addImminentDeathGuidance(g, profile)
	}

	return g
}

func (b *Bridge) addPrognosisGuidance(g *Guidance, p Profile) {
	if p.Disclosure == DisclosureFamilyFirst {
		g.SuggestedApproach = append(g.SuggestedApproach,
			"Consider meeting with family first before patient",
			"Ask: 'How does your family prefer to receive difficult news?'",
			"Allow family to determine how much patient is told",
		)
		g.FamilyQuestions = append(g.FamilyQuestions,
			"Who should be involved in these discussions?",
			"How much information would you like your loved one to receive directly?",
			"What is the best way for us to communicate with your family?",
		)
	}
	if phrase, ok := p.Language["prognosis"]; ok {
		g.SuggestedLanguage = append(g.SuggestedLanguage, phrase)
	}
	for _, avoid := range firstN(p.AvoidLanguage, 3) {
		g.Cautions = append(g.Cautions, fmt.Sprintf("Consider avoiding: '%s'", avoid))
	}
}

func (b *Bridge) addGoalsGuidance(g *Guidance, p Profile) {
	if p.DecisionStyle == DecisionFamily {
		g.SuggestedApproach = append(g.SuggestedApproach,
			"Allow time for family consultation before decisions",
			"Ask about family hierarchy and who should be in the room",
			"Understand that decisions may take longer than an individual-autonomy model expects",
		)
	}
	if len(p.FamilyRoles) > 0 {
		g.SuggestedApproach = append(g.SuggestedApproach,
			"Key roles to be aware of: "+joinFirst(p.FamilyRoles, 2))
	}
	if p.SufferingBeliefs != "" {
		g.Awareness = append(g.Awareness,
			"Perspective on suffering: "+truncate(p.SufferingBeliefs, 200))
		g.FamilyQuestions = append(g.FamilyQuestions,
			"How does your family understand suffering and what gives comfort?")
	}
}

func (b *Bridge) addImminentDeathGuidance(g *Guidance, p Profile) {
	if len(p.Rituals) > 0 {
		g.RitualConsiderations = append(g.RitualConsiderations, firstN(p.Rituals, 5)...)
		g.SuggestedApproach = append(g.SuggestedApproach,
			"Ask family about ritual preferences early enough to accommodate")
	}
	if p.RitualTiming != "" {
		g.RitualConsiderations = append(g.RitualConsiderations,
			"Timing note: "+p.RitualTiming)
	}
	if phrase, ok := p.Language["death_approaching"]; ok {
		g.SuggestedLanguage = append(g.SuggestedLanguage, phrase)
	}
	if phrase, ok := p.Language["transition"]; ok {
		g.SuggestedLanguage = append(g.SuggestedLanguage, phrase)
	}
	g.FamilyQuestions = append(g.FamilyQuestions,
		"What are your wishes regarding pain medication?",
		"How important is it for your loved one to be alert?",
		"Are there specific prayers or rituals you would like to perform?",
	)
}

func (b *Bridge) genericGuidance() *Guidance {
	return &Guidance{
		Awareness: []string{
			"No specific cultural profile - approach with cultural humility",
		},
		SuggestedApproach: []string{
			"Ask about family preferences before assuming communication style",
			"Inquire about religious or spiritual needs",
			"Ask who should be involved in discussions and decisions",
		},
		Cautions: []string{
			"Don't assume an individual autonomy model",
			"Don't assume the patient wants full direct disclosure",
		},
		FamilyQuestions: []string{
			"How does your family prefer to make medical decisions together?",
			"Are there cultural or religious considerations we should know about?",
			"Who would you like to be present for important discussions?",
		},
		RitualConsiderations: []string{
			"Ask about any end-of-life rituals that are important to the family",
		},
		CriticalReminder: "Always ask the family about their specific preferences",
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinFirst(items []string, n int) string {
	return strings.Join(firstN(items, n), ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
