package glass

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

func TestAssessState(t *testing.T) {
	tests := []struct {
		name string
		v    gct.Variables
		want CompassionState
	}{
		{
			name: "crisis when load high and reserve gone",
			v:    gct.Variables{GriefLoad: 0.8, CompassionReserve: 0.1},
			want: StateCrisis,
		},
		{
			name: "compassion fatigue when activation outruns compression",
			v:    gct.Variables{Q: 0.7, WisdomCompression: 0.2, CompassionReserve: 0.5},
			want: StateCompassionFatigue,
		},
		{
			name: "burnout precursor when load exceeds wisdom",
			v:    gct.Variables{GriefLoad: 0.6, Rho: 0.2, WisdomCompression: 0.5, CompassionReserve: 0.5},
			want: StateBurnoutPrecursor,
		},
		{
			name: "protective distance",
			v:    gct.Variables{Psi: 0.6, Q: 0.3, CompassionReserve: 0.6, WisdomCompression: 0.5},
			want: StateProtectiveDistance,
		},
		{
			name: "full presence by default",
			v:    gct.Variables{Psi: 0.4, Q: 0.55, CompassionReserve: 0.6, WisdomCompression: 0.5},
			want: StateFullPresence,
		},
		{
			name: "crisis outranks fatigue",
			v:    gct.Variables{GriefLoad: 0.9, CompassionReserve: 0.1, Q: 0.7, WisdomCompression: 0.1},
			want: StateCrisis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assessState(tt.v))
		})
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	g := New(Config{}, zap.NewNop())

	_, err := g.Translate(context.Background(), "", TranslateOptions{})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = g.Translate(context.Background(), "   ", TranslateOptions{})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTranslate_CancelledContext(t *testing.T) {
	g := New(Config{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Translate(ctx, "some reflection", TranslateOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslate_Basic(t *testing.T) {
	g := New(Config{Context: gct.ContextGeneralOncology}, zap.NewNop())

	tr, err := g.Translate(context.Background(),
		"We lost another patient this week. I keep thinking about her family and what her death taught me about being present.",
		TranslateOptions{})
	require.NoError(t, err)

	assert.Equal(t, DefaultLensName, tr.LensUsed)
	assert.NotEmpty(t, tr.State)
	assert.NotEmpty(t, tr.PatternSummary)
	assert.NotEmpty(t, tr.WisdomPathway)
	assert.NotEmpty(t, tr.UncertaintyNotes)
	assert.False(t, tr.Timestamp.IsZero())

	// Alternative readings always include the one-lens caveat.
	require.NotEmpty(t, tr.AlternativeReadings)
	assert.Contains(t, tr.AlternativeReadings[len(tr.AlternativeReadings)-1], "one lens")

	// Reserve is always at least the floor.
	assert.GreaterOrEqual(t, tr.Variables.CompassionReserve, 0.05)

	assert.GreaterOrEqual(t, tr.Confidence, 0.0)
	assert.LessOrEqual(t, tr.Confidence, 0.85)
}

func TestTranslate_TrackingAndTrend(t *testing.T) {
	g := New(Config{}, zap.NewNop())
	ctx := context.Background()

	// No trend until three tracked translations.
	assert.Nil(t, g.Trend())

	texts := []string{
		"A quiet week on the ward. The team supported each other well.",
		"We lost a patient. Another one gone. I am exhausted and empty after the death.",
		"Another death this week. I can't take how many more keep happening. Nothing left, numb, going through motions.",
	}
	for _, text := range texts {
		_, err := g.Translate(ctx, text, TranslateOptions{Track: true})
		require.NoError(t, err)
	}

	trend := g.Trend()
	require.NotNil(t, trend)
	assert.Equal(t, 3, trend.SampleSize)
	assert.Equal(t, "increasing", trend.GriefDirection)
	assert.Equal(t, "decreasing", trend.ReserveDirection)
	assert.NotEmpty(t, trend.Note)

	assert.Len(t, g.History(), 3)
}

func TestTranslate_UntrackedHistory(t *testing.T) {
	g := New(Config{}, zap.NewNop())

	_, err := g.Translate(context.Background(), "a short note", TranslateOptions{Track: false})
	require.NoError(t, err)
	assert.Empty(t, g.History())
}

func TestHistoryLimit(t *testing.T) {
	g := New(Config{HistoryLimit: 2}, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := g.Translate(ctx, "a reflection about the ward", TranslateOptions{Track: true})
		require.NoError(t, err)
	}

	assert.Len(t, g.History(), 2)
}

func TestConfidence(t *testing.T) {
	// Extreme variable values and no ambiguity give high confidence.
	v := gct.Variables{Psi: 1, Q: 1, Rho: 1, F: 1}
	long := strings.Repeat("word ", 200)
	assert.InDelta(t, 0.85, confidence(v, long), 0.001, "capped at 0.85")

	// Mid-range variables on a tiny sample give low confidence.
	v = gct.Variables{Psi: 0.5, Q: 0.5, Rho: 0.5, F: 0.5, Lambda: 1.0}
	got := confidence(v, "short text")
	assert.Less(t, got, 0.2)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestNarrative(t *testing.T) {
	g := New(Config{}, zap.NewNop())

	tr, err := g.Translate(context.Background(),
		"We lost another patient. Her death is heavy but the team carried it together and it taught me about presence.",
		TranslateOptions{})
	require.NoError(t, err)

	n := tr.Narrative()
	assert.Contains(t, n, "Reflection Translation")
	assert.Contains(t, n, "Compassion state: "+string(tr.State))
	assert.Contains(t, n, "Pattern dimensions:")
	assert.Contains(t, n, "Pattern summary:")
	assert.Contains(t, n, "Wisdom pathway:")
	assert.Contains(t, n, "Uncertainty notes:")
}

func TestWisdomPathway(t *testing.T) {
	tests := []struct {
		name string
		v    gct.Variables
		want string
	}{
		{
			name: "transformation underway",
			v:    gct.Variables{WisdomCompression: 0.7},
			want: "Transformation already occurring",
		},
		{
			name: "raw accumulation",
			v:    gct.Variables{GriefLoad: 0.6, Rho: 0.2, WisdomCompression: 0.4, F: 0.5},
			want: "accumulated faster than processing",
		},
		{
			name: "isolation",
			v:    gct.Variables{F: 0.1, WisdomCompression: 0.4},
			want: "Isolation",
		},
		{
			name: "normal processing",
			v:    gct.Variables{F: 0.5, WisdomCompression: 0.4},
			want: "normal grief processing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, wisdomPathway(tt.v), tt.want)
		})
	}
}

func TestSupportSuggestions(t *testing.T) {
	// Crisis adds its own suggestions plus the isolation one when f is low.
	v := gct.Variables{F: 0.1, Tau: 0.8}
	got := supportSuggestions(v, StateCrisis)
	assert.Len(t, got, 5)

	// Healthy states with connected, short-tenure patterns add nothing.
	v = gct.Variables{F: 0.5, Tau: 0.2}
	assert.Empty(t, supportSuggestions(v, StateFullPresence))
}
