package cultural

import "fmt"

// DecisionStyle describes how a family tends to make medical decisions.
type DecisionStyle string

const (
	// DecisionIndividual is the Western default of individual autonomy.
	DecisionIndividual DecisionStyle = "individual"

	// DecisionFamily indicates collective family decision-making.
	DecisionFamily DecisionStyle = "family"

	// DecisionElder indicates decisions deferred to family elders.
	DecisionElder DecisionStyle = "elder"

	// DecisionCommunity indicates community consensus models.
	DecisionCommunity DecisionStyle = "community"

	// DecisionReligious indicates deference to a spiritual authority.
	DecisionReligious DecisionStyle = "religious"
)

// DisclosurePreference describes how prognosis information tends to
// be received.
type DisclosurePreference string

const (
	// DisclosureFull prefers direct, complete information.
	DisclosureFull DisclosurePreference = "full"

	// DisclosureGraduated prefers information delivered in stages.
	DisclosureGraduated DisclosurePreference = "graduated"

	// DisclosureFamilyFirst prefers the family to receive information
	// before the patient.
	DisclosureFamilyFirst DisclosurePreference = "family_first"

	// DisclosureProtective prefers shielding the patient from prognosis.
	DisclosureProtective DisclosurePreference = "protective"

	// DisclosurePatientChoice lets the patient determine the level.
	DisclosurePatientChoice DisclosurePreference = "patient_choice"
)

// DeathBelief is a broad category of death and afterlife beliefs.
type DeathBelief string

const (
	BeliefReincarnation DeathBelief = "reincarnation"
	BeliefHeavenHell    DeathBelief = "heaven_hell"
	BeliefContinuation  DeathBelief = "continuation"
	BeliefFinality      DeathBelief = "finality"
	BeliefLiberation    DeathBelief = "liberation"
	BeliefUnknown       DeathBelief = "unknown"
)

// Profile captures the cultural factors that shape end-of-life
// communication for one tradition. Profiles describe tendencies, not
// certainties; the guidance they drive always carries that caveat.
type Profile struct {
	Tradition     string               `toml:"tradition" json:"tradition"`
	DecisionStyle DecisionStyle        `toml:"decision_style" json:"decision_style"`
	Disclosure    DisclosurePreference `toml:"disclosure_preference" json:"disclosure_preference"`
	DeathBeliefs  DeathBelief          `toml:"death_beliefs" json:"death_beliefs"`

	// Concepts a clinician should understand before the conversation.
	Concepts []string `toml:"concepts" json:"concepts,omitempty"`

	// Language maps communication moments (prognosis, death_approaching,
	// transition, ...) to suggested phrasings.
	Language      map[string]string `toml:"language" json:"language,omitempty"`
	AvoidLanguage []string          `toml:"avoid_language" json:"avoid_language,omitempty"`

	Rituals      []string `toml:"rituals" json:"rituals,omitempty"`
	RitualTiming string   `toml:"ritual_timing" json:"ritual_timing,omitempty"`

	FamilyRoles      []string `toml:"family_roles" json:"family_roles,omitempty"`
	SufferingBeliefs string   `toml:"suffering_beliefs" json:"suffering_beliefs,omitempty"`
}

var validDecisionStyles = map[DecisionStyle]bool{
	DecisionIndividual: true,
	DecisionFamily:     true,
	DecisionElder:      true,
	DecisionCommunity:  true,
	DecisionReligious:  true,
}

var validDisclosures = map[DisclosurePreference]bool{
	DisclosureFull:          true,
	DisclosureGraduated:     true,
	DisclosureFamilyFirst:   true,
	DisclosureProtective:    true,
	DisclosurePatientChoice: true,
}

var validBeliefs = map[DeathBelief]bool{
	BeliefReincarnation: true,
	BeliefHeavenHell:    true,
	BeliefContinuation:  true,
	BeliefFinality:      true,
	BeliefLiberation:    true,
	BeliefUnknown:       true,
}

// Validate checks that the profile names a tradition and uses known
// enum values.
func (p Profile) Validate() error {
	if p.Tradition == "" {
		return fmt.Errorf("%w: tradition is required", ErrInvalidProfile)
	}
	if !validDecisionStyles[p.DecisionStyle] {
		return fmt.Errorf("%w: unknown decision_style %q", ErrInvalidProfile, p.DecisionStyle)
	}
	if !validDisclosures[p.Disclosure] {
		return fmt.Errorf("%w: unknown disclosure_preference %q", ErrInvalidProfile, p.Disclosure)
	}
	if !validBeliefs[p.DeathBeliefs] {
		return fmt.Errorf("%w: unknown death_beliefs %q", ErrInvalidProfile, p.DeathBeliefs)
	}
	return nil
}
