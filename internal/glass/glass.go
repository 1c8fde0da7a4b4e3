// Package glass is the translation engine: it turns a raw clinician
// reflection into a scored, classified, narrated Translation.
package glass

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

// ErrEmptyText indicates there was no text to translate.
var ErrEmptyText = errors.New("text is required")

// DefaultLensName labels translations made without a specific lens.
const DefaultLensName = "default"

// Config holds translation engine configuration.
type Config struct {
	// Context selects the clinical calibration.
	Context gct.ClinicalContext
	// Km and Ki tune the activation optimizer. Zero selects defaults.
	Km float64
	Ki float64
	// HistoryLimit bounds the accumulation history. Zero means 500.
	HistoryLimit int
}

// Glass translates reflections through a calibrated lens.
type Glass struct {
	extractor *gct.Extractor
	optimizer *gct.Optimizer
	cal       gct.Calibration
	logger    *zap.Logger

	historyLimit int

	mu      sync.Mutex
	history []gct.Variables
}

// New creates a translation engine. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Glass {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Context == "" {
		cfg.Context = gct.ContextGeneralOncology
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = 500
	}

	cal := gct.CalibrationFor(cfg.Context)
	return &Glass{
		extractor:    gct.NewExtractor(cal),
		optimizer:    gct.NewOptimizer(cfg.Km, cfg.Ki),
		cal:          cal,
		logger:       logger,
		historyLimit: cfg.HistoryLimit,
	}
}

// TranslateOptions configures a single translation.
type TranslateOptions struct {
	// DaysSinceRest feeds the compassion reserve estimate.
	DaysSinceRest int
	// Track records the extracted variables in accumulation history.
	Track bool
}

// Translate scores and classifies a reflection.
func (g *Glass) Translate(ctx context.Context, text string, opts TranslateOptions) (*Translation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	start := time.Now()

	v := g.extractor.Extract(text)
	v.Q = g.optimizer.OptimizeQ(v.Q)
	v.CompassionReserve = g.optimizer.Reserve(v.Q, v.GriefLoad, opts.DaysSinceRest, g.cal.CompassionBaseline)

	if opts.Track {
		g.record(v)
	}

	state := assessState(v)

	tr := &Translation{
		Variables:           v,
		LensUsed:            DefaultLensName,
		State:               state,
		PatternSummary:      patternSummary(v, state),
		WisdomPathway:       wisdomPathway(v),
		SupportSuggestions:  supportSuggestions(v, state),
		Confidence:          confidence(v, text),
		AlternativeReadings: alternativeReadings(v),
		UncertaintyNotes:    uncertaintyNotes(v),
		Timestamp:           time.Now(),
	}

	observeTranslation(state, time.Since(start))

	g.logger.Debug("translated reflection",
		zap.String("state", string(state)),
		zap.Float64("q", v.Q),
		zap.Float64("grief_load", v.GriefLoad),
		zap.Float64("reserve", v.CompassionReserve),
		zap.Float64("confidence", tr.Confidence),
		zap.Int("text_words", len(strings.Fields(text))),
	)

	return tr, nil
}

// record appends variables to the accumulation history, bounded by
// the history limit.
func (g *Glass) record(v gct.Variables) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = append(g.history, v)
	if len(g.history) > g.historyLimit {
		g.history = g.history[len(g.history)-g.historyLimit:]
	}
}

// History returns a copy of the accumulation history.
func (g *Glass) History() []gct.Variables {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]gct.Variables, len(g.history))
	copy(out, g.history)
	return out
}

// Trend analyzes the direction of the last recorded translations.
// Returns nil until at least three translations have been tracked.
func (g *Glass) Trend() *Trend {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) < 3 {
		return nil
	}

	recent := g.history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	first := recent[0]
	last := recent[len(recent)-1]

	return &Trend{
		GriefDirection:   direction(first.GriefLoad, last.GriefLoad, "increasing", "stable_or_decreasing"),
		WisdomDirection:  direction(first.Rho, last.Rho, "increasing", "stable_or_decreasing"),
		ReserveDirection: direction(first.CompassionReserve, last.CompassionReserve, "increasing", "decreasing"),
		SampleSize:       len(recent),
		Note:             "Trends are patterns, not predictions. Use as reflection prompt, not diagnosis.",
	}
}

func direction(first, last float64, up, down string) string {
	if last > first {
		return up
	}
	return down
}

// assessState maps the variable vector to a compassion state.
// Checks run in severity order; the first match wins.
func assessState(v gct.Variables) CompassionState {
	switch {
	case v.GriefLoad > 0.7 && v.CompassionReserve < 0.2:
		return StateCrisis
	case v.Q > 0.6 && v.WisdomCompression < 0.3:
		return StateCompassionFatigue
	case v.GriefLoad > 0.5 && v.Rho < 0.3:
		return StateBurnoutPrecursor
	case v.Psi > 0.5 && v.Q < 0.5 && v.CompassionReserve > 0.4:
		return StateProtectiveDistance
	default:
		return StateFullPresence
	}
}

// confidence estimates translation confidence from text length,
// variable clarity, and frame ambiguity. Capped at 0.85: a marker
// count is never certain.
func confidence(v gct.Variables, text string) float64 {
	words := float64(len(strings.Fields(text)))

	lengthConfidence := words / 100
	if lengthConfidence > 0.4 {
		lengthConfidence = 0.4
	}

	clarity := (abs(v.Psi-0.5) + abs(v.Q-0.5) + abs(v.Rho-0.5) + abs(v.F-0.5)) / 2

	frameConfidence := (1 - v.Lambda) * 0.3

	c := lengthConfidence + clarity*0.3 + frameConfidence
	if c > 0.85 {
		return 0.85
	}
	if c < 0 {
		return 0
	}
	return c
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
