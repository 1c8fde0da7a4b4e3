package glass

import (
	"fmt"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

// patternSummary narrates the detected pattern for a state.
func patternSummary(v gct.Variables, state CompassionState) string {
	switch state {
	case StateFullPresence:
		return fmt.Sprintf(
			"Patterns suggest integration of clinical and human dimensions (psi=%.2f). "+
				"Emotional engagement is present and sustainable (q=%.2f). "+
				"Compassion reserves appear adequate (%.0f%%).",
			v.Psi, v.Q, v.CompassionReserve*100)
	case StateProtectiveDistance:
		return "Patterns indicate healthy professional boundaries. " +
			"The clinical frame may be providing necessary protection. " +
			"Some distance from death can be adaptive when sustained compassion is also present."
	case StateCompassionFatigue:
		return fmt.Sprintf(
			"Patterns suggest traumatic stress exposure may be accumulating faster than "+
				"processing (compression ratio=%.2f). High emotional activation (%.2f) with "+
				"limited wisdom integration (%.2f) may indicate need for supported meaning-making.",
			v.WisdomCompression, v.Q, v.Rho)
	case StateBurnoutPrecursor:
		return fmt.Sprintf(
			"Energy depletion patterns detected. Cumulative grief load (%.2f) exceeds "+
				"current wisdom compression capacity. Support structures may help before "+
				"a burnout cascade.",
			v.GriefLoad)
	case StateCrisis:
		return fmt.Sprintf(
			"Pattern intensity suggests immediate support is warranted. Compassion reserves "+
				"are critically low (%.0f%%). This is not a failure; it is a signal that the "+
				"system needs care.",
			v.CompassionReserve*100)
	default:
		return "Pattern requires further analysis."
	}
}

// wisdomPathway suggests a direction for grief-to-wisdom transformation.
func wisdomPathway(v gct.Variables) string {
	switch {
	case v.WisdomCompression > 0.6:
		return "Transformation already occurring. The suffering is finding meaning. " +
			"Continue practices that support this integration: reflection, connection, " +
			"allowing the accumulated wisdom to become accessible to others."
	case v.GriefLoad > 0.5 && v.Rho < 0.3:
		return "Raw grief has accumulated faster than processing capacity. Deliberate, " +
			"time-bounded revisiting of losses may help transform weight into wisdom. " +
			"Consider: what have these patients taught you about living? What would you " +
			"want their families to know you learned from them?"
	case v.F < 0.3:
		return "Isolation may be limiting transformation pathways. Social support is a key " +
			"factor in post-traumatic growth. Sharing experiences with trusted colleagues " +
			"can help construct new meaning from accumulated loss."
	default:
		return "Current patterns suggest normal grief processing. Wisdom from suffering " +
			"requires time and presence, not acceleration."
	}
}

// supportSuggestions lists state- and variable-driven support ideas.
func supportSuggestions(v gct.Variables, state CompassionState) []string {
	var suggestions []string

	switch state {
	case StateCrisis:
		suggestions = append(suggestions,
			"Consider reaching out to a trusted colleague today",
			"Professional support is available; seeking it is wisdom, not weakness",
			"Rest is not abandonment of patients; it preserves capacity to serve",
		)
	case StateCompassionFatigue:
		suggestions = append(suggestions,
			"Debrief support after particularly difficult cases may help",
			"The heaviness you feel is shared by others who do this work",
			"Consider whether current load matches recovery capacity",
		)
	case StateBurnoutPrecursor:
		suggestions = append(suggestions,
			"Early intervention prevents cascade; now is the time",
			"Ask which practices restore rather than merely distract",
			"Permission to acknowledge the cost of this work",
		)
	}

	if v.F < 0.3 {
		suggestions = append(suggestions,
			"Connection with others who understand may help; isolation compounds grief")
	}
	if v.Tau > 0.6 {
		suggestions = append(suggestions,
			"Long temporal pattern acknowledged. The weight of years deserves witness.")
	}

	return suggestions
}

// alternativeReadings offers competing interpretations of the pattern.
func alternativeReadings(v gct.Variables) []string {
	var alternatives []string

	if v.Q < 0.3 {
		alternatives = append(alternatives,
			"Low emotional activation could indicate protective presence or concerning "+
				"detachment; context and history are needed to distinguish")
	}
	if v.Psi > 0.7 {
		alternatives = append(alternatives,
			"High integration could reflect mature practice or suppressed conflict "+
				"between clinical and human responses")
	}
	if v.Rho > 0.6 {
		alternatives = append(alternatives,
			"Strong wisdom markers could indicate genuine transformation or "+
				"intellectualization as defense against raw grief")
	}

	alternatives = append(alternatives,
		"This reading is through one lens; other calibrations may reveal different "+
			"patterns equally present in the same expression")

	return alternatives
}

// uncertaintyNotes makes the limits of the reading explicit.
func uncertaintyNotes(v gct.Variables) []string {
	var notes []string

	if v.Lambda > 0.5 {
		notes = append(notes,
			"High frame ambiguity: clinical and personal dimensions are mixing in ways "+
				"that complicate interpretation")
	}

	notes = append(notes,
		"Coherence is constructed, not discovered. This translation reflects pattern "+
			"visibility through this lens, not ground truth about internal states.")

	return notes
}
