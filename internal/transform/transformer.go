// Package transform implements the grief-to-wisdom pipeline: grief
// events are registered, revisited through deliberate rumination, and
// advanced phase by phase until their weight compresses into wisdom
// fragments that can serve others.
package transform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownEvent indicates a reference to an event ID that was never
// registered.
var ErrUnknownEvent = errors.New("unknown grief event")

// Processing attempts required before an event can move from
// processing into integrating.
const processingThreshold = 3

// Wisdom types required before an event compresses.
const compressionTypes = 3

var phaseWeights = map[Phase]float64{
	PhaseRaw:          1.0,
	PhaseAcknowledged: 0.8,
	PhaseProcessing:   0.5,
	PhaseIntegrating:  0.3,
	PhaseCompressed:   0.1,
}

var typeMarkers = map[WisdomType][]string{
	WisdomPresence:      {"being with", "showed up", "present", "stayed"},
	WisdomCommunication: {"said", "told", "words", "listen", "heard"},
	WisdomCompassion:    {"feel", "connect", "human", "heart", "care"},
	WisdomPerspective:   {"realize", "understand", "matter", "important", "life"},
	WisdomResilience:    {"continue", "strength", "endure", "carry on", "cope"},
	WisdomService:       {"help", "share", "teach", "guide", "support"},
}

var shareableMarkers = []string{"others", "anyone", "people", "colleagues", "we"}

var typeInsights = map[WisdomType]string{
	WisdomPresence:      "Learned to be present with suffering in new ways",
	WisdomCommunication: "Discovered what words matter when facing loss",
	WisdomCompassion:    "Deepened capacity for human connection through shared grief",
	WisdomPerspective:   "Gained clarity on what matters through witnessing loss",
	WisdomResilience:    "Found inner resources to continue serving through difficulty",
	WisdomService:       "Discovered how grief equips us to help others",
}

var typeReflections = map[WisdomType]string{
	WisdomPresence:      "The capacity to be with suffering grows with each encounter honored.",
	WisdomCommunication: "Words found in grief's depth often reach others facing similar shadows.",
	WisdomCompassion:    "The heart broken open by loss holds more, not less.",
	WisdomPerspective:   "Loss clarifies what matters; a gift wrapped in darkness.",
	WisdomResilience:    "Each passage through grief maps the terrain for those who follow.",
	WisdomService:       "What you extract from your suffering becomes medicine for others.",
}

// Transformer converts accumulated grief into wisdom. Suffering
// encountered with presence becomes wisdom; suffering avoided or
// suppressed accumulates as weight.
type Transformer struct {
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	events map[string]*Event
	bank   []Fragment
}

// New creates a Transformer.
func New(logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{
		logger: logger,
		now:    time.Now,
		events: make(map[string]*Event),
	}
}

// Register adds a grief event for tracking and returns its ID. Events
// without an ID get a generated one; events without a phase start raw.
func (t *Transformer) Register(e Event) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = t.now()
	}
	if e.Phase == "" {
		e.Phase = PhaseRaw
	}

	t.mu.Lock()
	t.events[e.ID] = &e
	t.mu.Unlock()

	t.logger.Debug("registered grief event",
		zap.String("event_id", e.ID),
		zap.String("patient_type", e.PatientType),
		zap.Float64("intensity", e.Intensity),
	)
	return e.ID
}

// Event returns a copy of the event with the given ID.
func (t *Transformer) Event(id string) (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.events[id]
	if !ok {
		return Event{}, false
	}
	return *e, true
}

// CurrentLoad is the cumulative grief load in [0, 1]. Unprocessed
// grief contributes more than compressed grief.
func (t *Transformer) CurrentLoad() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentLoadLocked()
}

func (t *Transformer) currentLoadLocked() float64 {
	total := 0.0
	for _, e := range t.events {
		weight, ok := phaseWeights[e.Phase]
		if !ok {
			weight = 0.5
		}
		total += e.Intensity * weight * e.RelationshipDepth
	}
	load := total / 10
	if load > 1 {
		return 1
	}
	return load
}

// CurrentRho is the accumulated wisdom score in [0, 1].
func (t *Transformer) CurrentRho() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentRhoLocked()
}

func (t *Transformer) currentRhoLocked() float64 {
	total := 0.0
	for _, w := range t.bank {
		total += w.Accessibility
	}
	rho := total / 10
	if rho > 1 {
		return 1
	}
	return rho
}

// CompressionRatio is how much registered grief has transformed into
// wisdom. With no grief registered there is nothing to transform and
// the ratio sits at the neutral 0.5.
func (t *Transformer) CompressionRatio() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	totalGrief := 0.0
	for _, e := range t.events {
		totalGrief += e.Intensity * e.RelationshipDepth
	}
	if totalGrief == 0 {
		return 0.5
	}

	totalWisdom := 0.0
	for _, w := range t.bank {
		totalWisdom += w.Accessibility
	}
	ratio := totalWisdom / totalGrief
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Candidates returns up to max grief events ready for transformation
// work, best candidates first. Compressed events are excluded.
func (t *Transformer) Candidates(max int) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	type scored struct {
		event Event
		score float64
	}
	var candidates []scored

	for _, e := range t.events {
		if e.Phase == PhaseCompressed {
			continue
		}

		score := 0.0
		switch e.Phase {
		case PhaseAcknowledged:
			score += 0.3
		case PhaseProcessing:
			score += 0.5
		case PhaseIntegrating:
			score += 0.4
		}
		score += e.RelationshipDepth * 0.3

		if e.LastProcessed.IsZero() {
			score += 0.1
		} else if t.now().Sub(e.LastProcessed) > 7*24*time.Hour {
			score += 0.2
		}

		candidates = append(candidates, scored{event: *e, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].event.ID < candidates[j].event.ID
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]Event, len(candidates))
	for i, c := range candidates {
		out[i] = c.event
	}
	return out
}

// SuggestPathway suggests which wisdom type to pursue for an event,
// with matching rumination prompts. Sudden losses point to
// resilience, prolonged ones to compassion, pediatric ones to
// perspective; otherwise the first unextracted type is suggested.
func (t *Transformer) SuggestPathway(eventID string) (WisdomType, []string, error) {
	t.mu.Lock()
	e, ok := t.events[eventID]
	if !ok {
		t.mu.Unlock()
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownEvent, eventID)
	}
	extracted := make(map[WisdomType]bool, len(e.WisdomExtracted))
	for _, wt := range e.WisdomExtracted {
		extracted[wt] = true
	}
	circumstances := append([]string(nil), e.Circumstances...)
	patientType := e.PatientType
	t.mu.Unlock()

	var available []WisdomType
	for _, wt := range AllWisdomTypes {
		if !extracted[wt] {
			available = append(available, wt)
		}
	}

	suggested := WisdomPresence
	if len(available) > 0 {
		suggested = available[0]
		switch {
		case hasCircumstance(circumstances, "sudden") && !extracted[WisdomResilience]:
			suggested = WisdomResilience
		case hasCircumstance(circumstances, "prolonged") && !extracted[WisdomCompassion]:
			suggested = WisdomCompassion
		case patientType == "pediatric" && !extracted[WisdomPerspective]:
			suggested = WisdomPerspective
		}
	}

	return suggested, Prompts(suggested), nil
}

// ProcessReflection processes a deliberate reflection on a grief
// event. The event's phase advances with repeated processing, and
// wisdom is extracted when the reflection carries enough markers of
// the chosen type. Extracting three wisdom types compresses the event.
func (t *Transformer) ProcessReflection(eventID, text string, wt WisdomType) (*Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, eventID)
	}

	e.ProcessingAttempts++
	e.LastProcessed = t.now()

	switch {
	case e.Phase == PhaseRaw:
		e.Phase = PhaseAcknowledged
	case e.Phase == PhaseAcknowledged && e.ProcessingAttempts >= 2:
		e.Phase = PhaseProcessing
	case e.Phase == PhaseProcessing && e.ProcessingAttempts >= processingThreshold:
		e.Phase = PhaseIntegrating
	}

	fragment := t.extractWisdom(text, wt, eventID)
	rhoChange := 0.0
	var generated []Fragment
	if fragment != nil {
		t.bank = append(t.bank, *fragment)
		e.WisdomExtracted = append(e.WisdomExtracted, wt)
		generated = []Fragment{*fragment}
		rhoChange = 0.1

		if len(e.WisdomExtracted) >= compressionTypes {
			e.Phase = PhaseCompressed
		}
	}

	t.logger.Debug("processed reflection",
		zap.String("event_id", eventID),
		zap.String("pathway", string(wt)),
		zap.String("phase", string(e.Phase)),
		zap.Bool("wisdom_extracted", fragment != nil),
	)

	return &Result{
		EventsProcessed: 1,
		Wisdom:          generated,
		RhoChange:       rhoChange,
		RemainingLoad:   t.currentLoadLocked(),
		Pathway:         wt,
		Reflections:     transformationReflections(e, wt),
		NextSteps:       nextSteps(e),
	}, nil
}

// Inventory returns accumulated wisdom organized by type. Every type
// is present, possibly with an empty list.
func (t *Transformer) Inventory() map[WisdomType][]Fragment {
	t.mu.Lock()
	defer t.mu.Unlock()

	inventory := make(map[WisdomType][]Fragment, len(AllWisdomTypes))
	for _, wt := range AllWisdomTypes {
		inventory[wt] = []Fragment{}
	}
	for _, w := range t.bank {
		inventory[w.Type] = append(inventory[w.Type], w)
	}
	return inventory
}

// Shareable returns wisdom fragments that can be shared with others.
func (t *Transformer) Shareable() []Fragment {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Fragment
	for _, w := range t.bank {
		if w.Shareable {
			out = append(out, w)
		}
	}
	return out
}

// extractWisdom pulls a wisdom fragment out of reflection text. At
// least two markers of the wisdom type are required; accessibility
// grows with reflection length and marker count.
func (t *Transformer) extractWisdom(text string, wt WisdomType, eventID string) *Fragment {
	lower := strings.ToLower(text)

	markerCount := 0
	for _, m := range typeMarkers[wt] {
		if strings.Contains(lower, m) {
			markerCount++
		}
	}
	if markerCount < 2 {
		return nil
	}

	wordCount := float64(len(strings.Fields(text)))
	accessibility := wordCount / 100
	if accessibility > 0.8 {
		accessibility = 0.8
	}
	accessibility += float64(markerCount) * 0.05
	if accessibility > 1 {
		accessibility = 1
	}

	shareable := false
	for _, m := range shareableMarkers {
		if strings.Contains(lower, m) {
			shareable = true
			break
		}
	}

	return &Fragment{
		Type:          wt,
		SourceEvents:  []string{eventID},
		Insight:       typeInsights[wt],
		Accessibility: accessibility,
		Shareable:     shareable,
		ExtractedAt:   t.now(),
	}
}

func transformationReflections(e *Event, wt WisdomType) []string {
	var reflections []string

	switch e.Phase {
	case PhaseCompressed:
		reflections = append(reflections,
			"This loss has moved through transformation. The grief has "+
				"compressed into wisdom that can serve others.")
	case PhaseIntegrating:
		reflections = append(reflections,
			"Integration is occurring. The loss is becoming part of your "+
				"expanded capacity rather than just weight carried.")
	default:
		reflections = append(reflections,
			"Processing continues. Each deliberate return adds to transformation.")
	}

	if r, ok := typeReflections[wt]; ok {
		reflections = append(reflections, r)
	}
	return reflections
}

func nextSteps(e *Event) []string {
	var steps []string

	switch e.Phase {
	case PhaseRaw:
		steps = append(steps,
			"Allow acknowledgment without forcing processing",
			"Notice when this loss surfaces; these are invitations, not intrusions",
		)
	case PhaseAcknowledged:
		steps = append(steps,
			"When ready, consider which dimension of wisdom this loss offers",
			"Short, time-bounded deliberate reflection is more helpful than extended rumination",
		)
	case PhaseProcessing:
		steps = append(steps,
			"Continue deliberate engagement; transformation is in process",
			"Consider sharing insights with trusted colleague",
		)
	case PhaseIntegrating:
		steps = append(steps,
			"Notice how this loss has changed your practice",
			"The wisdom is becoming accessible; let it inform how you serve",
		)
	case PhaseCompressed:
		steps = append(steps,
			"This transformation is largely complete",
			"The wisdom can now be shared without re-opening the wound",
		)
	}

	if e.Phase != PhaseRaw && e.Phase != PhaseCompressed {
		extracted := make(map[WisdomType]bool, len(e.WisdomExtracted))
		for _, wt := range e.WisdomExtracted {
			extracted[wt] = true
		}
		for _, wt := range AllWisdomTypes {
			if !extracted[wt] {
				steps = append(steps, "Consider exploring: "+string(wt))
				break
			}
		}
	}

	return steps
}

func hasCircumstance(circumstances []string, want string) bool {
	for _, c := range circumstances {
		if c == want {
			return true
		}
	}
	return false
}
