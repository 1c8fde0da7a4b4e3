package transform

import "time"

// Phase is a stage in the grief-to-wisdom transformation.
type Phase string

const (
	// PhaseRaw is unprocessed, intrusive grief.
	PhaseRaw Phase = "raw"

	// PhaseAcknowledged is grief recognized but not integrated.
	PhaseAcknowledged Phase = "acknowledged"

	// PhaseProcessing is active deliberate rumination.
	PhaseProcessing Phase = "processing"

	// PhaseIntegrating is meaning-making in progress.
	PhaseIntegrating Phase = "integrating"

	// PhaseCompressed is grief transformed into accessible wisdom.
	PhaseCompressed Phase = "compressed"
)

// WisdomType is a dimension of wisdom that can emerge from grief.
type WisdomType string

const (
	// WisdomPresence is how to be with suffering.
	WisdomPresence WisdomType = "presence"

	// WisdomCommunication is what to say and what not to say.
	WisdomCommunication WisdomType = "communication"

	// WisdomCompassion is deeper capacity for connection.
	WisdomCompassion WisdomType = "compassion"

	// WisdomPerspective is life priorities, what matters.
	WisdomPerspective WisdomType = "perspective"

	// WisdomResilience is capacity to endure.
	WisdomResilience WisdomType = "resilience"

	// WisdomService is how to help others through similar experiences.
	WisdomService WisdomType = "service"
)

// AllWisdomTypes lists wisdom types in canonical order.
var AllWisdomTypes = []WisdomType{
	WisdomPresence,
	WisdomCommunication,
	WisdomCompassion,
	WisdomPerspective,
	WisdomResilience,
	WisdomService,
}

// Event is a grief-inducing event in clinician experience, tracked
// through its transformation phases.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// PatientType is pediatric, adult, or elderly.
	PatientType string `json:"patient_type"`

	// RelationshipDepth is how connected the clinician was, 0 to 1.
	RelationshipDepth float64 `json:"relationship_depth"`

	// Circumstances are qualifiers such as sudden, prolonged, complicated.
	Circumstances []string `json:"circumstances,omitempty"`

	// Intensity is the raw grief intensity at registration, 0 to 1.
	Intensity float64 `json:"initial_intensity"`

	Phase              Phase        `json:"current_phase"`
	WisdomExtracted    []WisdomType `json:"wisdom_extracted,omitempty"`
	ProcessingAttempts int          `json:"processing_attempts"`
	LastProcessed      time.Time    `json:"last_processed,omitempty"`
}

// Fragment is a piece of wisdom extracted from grief.
type Fragment struct {
	Type         WisdomType `json:"wisdom_type"`
	SourceEvents []string   `json:"source_events"`
	Insight      string     `json:"insight"`

	// Accessibility is how readily available the wisdom is, 0 to 1.
	Accessibility float64 `json:"accessibility"`

	// Shareable marks wisdom containing generalizable insight.
	Shareable   bool      `json:"shareable"`
	ExtractedAt time.Time `json:"extraction_date"`
}

// Result summarizes one transformation session.
type Result struct {
	EventsProcessed int        `json:"grief_events_processed"`
	Wisdom          []Fragment `json:"wisdom_generated"`
	RhoChange       float64    `json:"rho_change"`
	RemainingLoad   float64    `json:"remaining_load"`
	Pathway         WisdomType `json:"pathway_used"`
	Reflections     []string   `json:"reflections"`
	NextSteps       []string   `json:"next_steps"`
}
