package gct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor(Calibration{})

	v := e.Extract("")
	assert.Equal(t, Variables{}, v)

	v = e.Extract("   \n\t  ")
	assert.Equal(t, Variables{}, v)
}

func TestExtract_GriefMarkers(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	v := e.Extract("Another patient died today. We lost her and I don't know how many more I can take.")

	assert.Greater(t, v.Q, 0.0, "grief markers should drive emotional engagement")
	assert.Greater(t, v.GriefLoad, 0.0)
	assert.LessOrEqual(t, v.Q, 1.0)
	assert.LessOrEqual(t, v.GriefLoad, 1.0)
}

func TestExtract_SuppressionBoostsQ(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	base := e.Extract("We lost a patient in the night and she died before her family arrived from out of town, after the long code that the whole unit will be talking about for a while.")
	suppressed := e.Extract("We lost a patient in the night and she died before her family arrived from out of town, after the long code that the whole unit will be talking about for a while. I held it together.")

	assert.Greater(t, suppressed.Q, base.Q,
		"suppression phrasing should raise emotional intensity")
}

func TestExtract_IsolationHalvesF(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	connected := e.Extract("We debriefed as a team with the nurses and staff afterward.")
	isolated := e.Extract("We debriefed as a team with the nurses and staff afterward, but I went home alone.")

	require.Greater(t, connected.F, 0.0)
	assert.Less(t, isolated.F, connected.F)
}

func TestExtract_TemporalDepth(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	// Three distinct temporal markers saturate tau.
	v := e.Extract("For years, through all the months, it always comes back.")
	assert.InDelta(t, 1.0, v.Tau, 0.001)

	v = e.Extract("It happened once on the ward.")
	assert.Equal(t, 0.0, v.Tau)
}

func TestExtract_CompressionDefaultsWithoutGrief(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	// Wisdom with no grief markers: nothing to compress, ratio is neutral.
	v := e.Extract("That rotation taught me so much about purpose.")
	assert.InDelta(t, 0.5, v.WisdomCompression, 0.001)
}

func TestExtract_CompressionWithGriefAndWisdom(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	v := e.Extract("She died last week. What her death taught me about meaning and purpose, I am grateful for.")
	assert.Greater(t, v.WisdomCompression, 0.0)
	assert.LessOrEqual(t, v.WisdomCompression, 1.0)
}

func TestExtract_FrameAmbiguity(t *testing.T) {
	e := NewExtractor(CalibrationFor(ContextGeneralOncology))

	// Purely clinical register leaves a wide gap between frames.
	clinical := e.Extract("The patient presented late. Treatment per protocol. Outcome and prognosis were documented.")
	assert.Greater(t, clinical.Lambda, 0.0)
}

func TestExtract_PediatricCalibrationWeighsGrief(t *testing.T) {
	text := "We lost him yesterday and his death is still with me on rounds this morning, in the quiet of the charting room, and in the long drive home through the rain after sign out was finished."

	general := NewExtractor(CalibrationFor(ContextGeneralOncology)).Extract(text)
	pediatric := NewExtractor(CalibrationFor(ContextPediatricOncology)).Extract(text)

	assert.Greater(t, pediatric.Q, general.Q,
		"pediatric grief weight should scale engagement")
	assert.Less(t, pediatric.Rho, general.Rho+0.001,
		"pediatric wisdom acceleration is below 1.0")
}

func TestParseClinicalContext(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ClinicalContext
		wantErr bool
	}{
		{name: "exact", in: "palliative_care", want: ContextPalliativeCare},
		{name: "case insensitive", in: "ICU", want: ContextICU},
		{name: "whitespace", in: "  hospice ", want: ContextHospice},
		{name: "empty defaults to general", in: "", want: ContextGeneralOncology},
		{name: "unknown", in: "dermatology", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClinicalContext(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalibrationFor_Fallback(t *testing.T) {
	// Contexts without dedicated calibration fall back to general oncology.
	assert.Equal(t, CalibrationFor(ContextGeneralOncology), CalibrationFor(ContextEmergency))
	assert.NotEqual(t, CalibrationFor(ContextGeneralOncology), CalibrationFor(ContextPediatricOncology))
}
