package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	tr := New(zap.NewNop())
	tr.now = func() time.Time { return now }
	return tr
}

func TestRecord_DefaultsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	tr.Record(Point{CompassionReserve: 0.5})

	points := tr.Points()
	require.Len(t, points, 1)
	assert.Equal(t, now, points[0].Timestamp)
}

func TestRecentPoints(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	tr.Record(Point{Timestamp: now.AddDate(0, 0, -10), Q: 0.1})
	tr.Record(Point{Timestamp: now.AddDate(0, 0, -3), Q: 0.2})
	tr.Record(Point{Timestamp: now.AddDate(0, 0, -1), Q: 0.3})

	recent := tr.RecentPoints(7)
	require.Len(t, recent, 2)
	assert.Equal(t, 0.2, recent[0].Q)
	assert.Equal(t, 0.3, recent[1].Q)
}

func TestSummary(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	tr.Record(Point{
		Timestamp:         now.AddDate(0, 0, -2),
		Psi:               0.4,
		Rho:               0.2,
		Q:                 0.6,
		F:                 0.3,
		CompassionReserve: 0.2,
		GriefLoad:         0.5,
		RecentLosses:      1,
	})
	tr.Record(Point{
		Timestamp:         now.AddDate(0, 0, -1),
		Psi:               0.6,
		Rho:               0.4,
		Q:                 0.4,
		F:                 0.5,
		CompassionReserve: 0.4,
		GriefLoad:         0.7,
		RecentLosses:      2,
	})
	// Outside the requested period.
	tr.Record(Point{Timestamp: now.AddDate(0, 0, -30), RecentLosses: 9})

	summary, err := tr.Summary(now.AddDate(0, 0, -7), now)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DataPoints)
	assert.Equal(t, 3, summary.LossesRecorded)
	assert.InDelta(t, 0.5, summary.Averages.Psi, 0.001)
	assert.InDelta(t, 0.3, summary.Averages.Rho, 0.001)
	assert.InDelta(t, 0.5, summary.Averages.Q, 0.001)
	assert.InDelta(t, 0.4, summary.Averages.F, 0.001)
	assert.InDelta(t, 0.3, summary.Averages.CompassionReserve, 0.001)
	assert.InDelta(t, 0.6, summary.Averages.GriefLoad, 0.001)
}

func TestSummary_NoData(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	_, err := tr.Summary(now.AddDate(0, 0, -7), now)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTimelineSummary_InsufficientHistory(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	for i := 0; i < 4; i++ {
		tr.Record(Point{Timestamp: now.AddDate(0, 0, -i-1)})
	}

	_, err := tr.TimelineSummary(30)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func recordSeries(tr *Tracker, now time.Time, reserve, load, wisdom []float64) {
	for i := range reserve {
		tr.Record(Point{
			Timestamp:         now.AddDate(0, 0, -(len(reserve) - i)),
			CompassionReserve: reserve[i],
			GriefLoad:         load[i],
			Rho:               wisdom[i],
		})
	}
}

func TestTimelineSummary_GriefAccumulation(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	recordSeries(tr, now,
		[]float64{0.6, 0.6, 0.4, 0.4, 0.2, 0.2},
		[]float64{0.2, 0.2, 0.4, 0.4, 0.6, 0.6},
		[]float64{0.2, 0.2, 0.3, 0.3, 0.4, 0.4},
	)

	summary, err := tr.TimelineSummary(30)
	require.NoError(t, err)

	assert.Contains(t, summary, "Over the past 30 days")
	assert.Contains(t, summary, "Compassion reserves have decreased from ~60% to ~20%")
	assert.Contains(t, summary, "Grief load has increased from ~20% to ~60%")
	assert.Contains(t, summary, "outpacing recovery")
}

func TestTimelineSummary_PositiveTransformation(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	recordSeries(tr, now,
		[]float64{0.3, 0.3, 0.4, 0.4, 0.6, 0.6},
		[]float64{0.6, 0.6, 0.4, 0.4, 0.2, 0.2},
		[]float64{0.2, 0.2, 0.3, 0.3, 0.5, 0.5},
	)

	summary, err := tr.TimelineSummary(30)
	require.NoError(t, err)

	assert.Contains(t, summary, "Wisdom accumulation has increased from ~20% to ~50%")
	assert.Contains(t, summary, "Positive transformation pattern")
}

func TestTimelineSummary_MixedPattern(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	recordSeries(tr, now,
		[]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		[]float64{0.2, 0.2, 0.3, 0.3, 0.4, 0.4},
		[]float64{0.4, 0.4, 0.3, 0.3, 0.2, 0.2},
	)

	summary, err := tr.TimelineSummary(30)
	require.NoError(t, err)

	assert.Contains(t, summary, "Mixed pattern")
}

func TestSupportSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  int
	}{
		{
			name:  "healthy",
			point: Point{CompassionReserve: 0.6, GriefLoad: 0.2, F: 0.5},
			want:  0,
		},
		{
			name:  "isolated only",
			point: Point{CompassionReserve: 0.6, GriefLoad: 0.2, F: 0.1},
			want:  1,
		},
		{
			name:  "depleted and isolated under heavy load",
			point: Point{CompassionReserve: 0.1, GriefLoad: 0.8, F: 0.1},
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SupportSuggestions(tt.point), tt.want)
		})
	}
}

func TestSaveLoadState(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	tr.Record(Point{CompassionReserve: 0.4, GriefLoad: 0.3, RecentLosses: 2})
	tr.Record(Point{CompassionReserve: 0.5, GriefLoad: 0.2})

	path := filepath.Join(t.TempDir(), "state", "tracker.json")
	require.NoError(t, tr.SaveState(path))

	loaded := newTestTracker(t, now)
	require.NoError(t, loaded.LoadState(path))

	points := loaded.Points()
	require.Len(t, points, 2)
	assert.Equal(t, 0.4, points[0].CompassionReserve)
	assert.Equal(t, 2, points[0].RecentLosses)
}

func TestLoadState_MissingFile(t *testing.T) {
	tr := New(nil)
	require.NoError(t, tr.LoadState(filepath.Join(t.TempDir(), "absent.json")))
	assert.Empty(t, tr.Points())
}
