// Package tracker maintains the coherence time series: one point per
// analyzed reflection, with period summaries and a narrative timeline
// over the accumulated history.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNoData indicates no tracking points fall in the requested period.
	ErrNoData = errors.New("no data in specified period")

	// ErrInsufficientHistory indicates too few points for a timeline summary.
	ErrInsufficientHistory = errors.New("insufficient history for timeline summary")
)

// Minimum points needed before a timeline summary is meaningful.
const timelineMinPoints = 5

// Point is one observation in the coherence time series.
type Point struct {
	Timestamp time.Time `json:"timestamp"`

	Psi float64 `json:"psi"`
	Rho float64 `json:"rho"`
	Q   float64 `json:"q"`
	F   float64 `json:"f"`

	CompassionReserve float64 `json:"compassion_reserve"`
	GriefLoad         float64 `json:"cumulative_grief_load"`
	RecentLosses      int     `json:"recent_losses"`
}

// Averages holds per-dimension means over a period.
type Averages struct {
	Psi               float64 `json:"psi"`
	Rho               float64 `json:"rho"`
	Q                 float64 `json:"q"`
	F                 float64 `json:"f"`
	CompassionReserve float64 `json:"compassion_reserve"`
	GriefLoad         float64 `json:"grief_load"`
}

// PeriodSummary is summary statistics for a time period.
type PeriodSummary struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	DataPoints     int       `json:"data_points"`
	Averages       Averages  `json:"averages"`
	LossesRecorded int       `json:"losses_recorded"`
}

// Tracker accumulates tracking points.
type Tracker struct {
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	points []Point
}

// New creates a Tracker.
func New(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{logger: logger, now: time.Now}
}

// Record appends a point to the series and updates the exported
// gauges. A zero timestamp is filled with the current time.
func (t *Tracker) Record(p Point) {
	if p.Timestamp.IsZero() {
		p.Timestamp = t.now()
	}

	t.mu.Lock()
	t.points = append(t.points, p)
	t.mu.Unlock()

	observePoint(p)

	t.logger.Debug("recorded tracking point",
		zap.Time("timestamp", p.Timestamp),
		zap.Float64("reserve", p.CompassionReserve),
		zap.Float64("grief_load", p.GriefLoad),
		zap.Int("recent_losses", p.RecentLosses),
	)
}

// Points returns a copy of the full series.
func (t *Tracker) Points() []Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// RecentPoints returns points from the last N days, oldest first.
func (t *Tracker) RecentPoints(days int) []Point {
	cutoff := t.now().AddDate(0, 0, -days)

	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Point
	for _, p := range t.points {
		if p.Timestamp.After(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// Summary computes summary statistics for points between start and
// end inclusive.
func (t *Tracker) Summary(start, end time.Time) (*PeriodSummary, error) {
	t.mu.Lock()
	var points []Point
	for _, p := range t.points {
		if !p.Timestamp.Before(start) && !p.Timestamp.After(end) {
			points = append(points, p)
		}
	}
	t.mu.Unlock()

	if len(points) == 0 {
		return nil, ErrNoData
	}

	summary := &PeriodSummary{
		Start:      start,
		End:        end,
		DataPoints: len(points),
	}
	for _, p := range points {
		summary.Averages.Psi += p.Psi
		summary.Averages.Rho += p.Rho
		summary.Averages.Q += p.Q
		summary.Averages.F += p.F
		summary.Averages.CompassionReserve += p.CompassionReserve
		summary.Averages.GriefLoad += p.GriefLoad
		summary.LossesRecorded += p.RecentLosses
	}
	n := float64(len(points))
	summary.Averages.Psi /= n
	summary.Averages.Rho /= n
	summary.Averages.Q /= n
	summary.Averages.F /= n
	summary.Averages.CompassionReserve /= n
	summary.Averages.GriefLoad /= n

	return summary, nil
}

// TimelineSummary renders a narrative of the pattern over the last N
// days by comparing the earliest and latest thirds of the period.
func (t *Tracker) TimelineSummary(days int) (string, error) {
	recent := t.RecentPoints(days)
	if len(recent) < timelineMinPoints {
		return "", fmt.Errorf("%w: have %d points, need %d",
			ErrInsufficientHistory, len(recent), timelineMinPoints)
	}

	third := len(recent) / 3
	early := periodMeans(recent[:third])
	late := periodMeans(recent[2*third:])

	var b strings.Builder
	fmt.Fprintf(&b, "Over the past %d days:\n\n", days)
	fmt.Fprintf(&b, "- Compassion reserves have %s from ~%.0f%% to ~%.0f%%\n",
		change(early.reserve, late.reserve), early.reserve*100, late.reserve*100)
	fmt.Fprintf(&b, "- Grief load has %s from ~%.0f%% to ~%.0f%%\n",
		change(early.load, late.load), early.load*100, late.load*100)
	fmt.Fprintf(&b, "- Wisdom accumulation has %s from ~%.0f%% to ~%.0f%%\n\n",
		change(early.wisdom, late.wisdom), early.wisdom*100, late.wisdom*100)

	switch {
	case late.reserve < 0.3 && late.load > early.load:
		b.WriteString("Pattern suggests grief accumulation may be outpacing recovery. " +
			"Consider whether current load matches capacity.")
	case late.wisdom > early.wisdom && late.load < early.load:
		b.WriteString("Positive transformation pattern: grief converting to wisdom, " +
			"reserves rebuilding. Continue supportive practices.")
	default:
		b.WriteString("Mixed pattern. Some dimensions concerning, others stable or " +
			"improving. See detailed trend analysis for specifics.")
	}

	return b.String(), nil
}

// SupportSuggestions lists support ideas keyed off a point's levels.
func SupportSuggestions(p Point) []string {
	var suggestions []string

	if p.GriefLoad > 0.6 {
		suggestions = append(suggestions,
			"Consider what practices help restore compassion reserves",
			"Debrief support after difficult cases can help processing",
		)
	}
	if p.CompassionReserve < 0.25 {
		suggestions = append(suggestions,
			"Compassion reserves critically low. Permission to prioritize self-care is not weakness.")
	}
	if p.F < 0.2 {
		suggestions = append(suggestions,
			"Isolation compounds burden. Connection with others who understand this work may help.")
	}

	return suggestions
}

type means struct {
	reserve float64
	load    float64
	wisdom  float64
}

func periodMeans(points []Point) means {
	var m means
	for _, p := range points {
		m.reserve += p.CompassionReserve
		m.load += p.GriefLoad
		m.wisdom += p.Rho
	}
	n := float64(len(points))
	m.reserve /= n
	m.load /= n
	m.wisdom /= n
	return m
}

func change(early, late float64) string {
	if late > early {
		return "increased"
	}
	return "decreased"
}
