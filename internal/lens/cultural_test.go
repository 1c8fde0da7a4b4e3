package lens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/cultural"
)

func newCulturalLens(t *testing.T) *CulturalLens {
	t.Helper()
	bridge, err := cultural.New(zap.NewNop())
	require.NoError(t, err)
	return NewCulturalLens(bridge)
}

func TestCulturalTranslate_DetectsAssumptions(t *testing.T) {
	l := newCulturalLens(t)

	tr := l.Translate("It's your decision; honestly, we need to decide quickly.", "")

	require.Len(t, tr.DetectedAssumptions, 3)
	assert.Contains(t, tr.DetectedAssumptions[0], "autonomous decision-making")
	assert.Contains(t, tr.DetectedAssumptions[1], "direct disclosure")
	assert.Contains(t, tr.DetectedAssumptions[2], "Time pressure")

	// One adaptation per assumption plus the relationship-building one.
	assert.Len(t, tr.Adaptations, 4)
	assert.Len(t, tr.Questions, 4)
	assert.NotEmpty(t, tr.HumilityReminder)
}

func TestCulturalTranslate_NoAssumptions(t *testing.T) {
	l := newCulturalLens(t)

	tr := l.Translate("We reviewed the plan with the team this morning.", "")
	require.Len(t, tr.DetectedAssumptions, 1)
	assert.Contains(t, tr.DetectedAssumptions[0], "No obvious cultural assumptions")
}

func TestCulturalTranslate_WithProfile(t *testing.T) {
	l := newCulturalLens(t)

	tr := l.Translate("It's your decision.", "hindu_indian")

	require.NotEmpty(t, tr.Considerations)
	assert.Equal(t, "Cultural context: Hindu (Indian)", tr.Considerations[0])
	assert.Contains(t, tr.Adaptations, "Consider inviting family members to discussions first")
	assert.Contains(t, tr.Adaptations,
		"Ask family about disclosure preferences before discussing prognosis directly with patient")
}

func TestCulturalView_Classification(t *testing.T) {
	l := newCulturalLens(t)

	report, err := l.View("It's your decision.", ViewOptions{Culture: "hindu_indian"})
	require.NoError(t, err)
	assert.Equal(t, "cultural", report.Lens)
	assert.Equal(t, "hindu_indian", report.Classification)
	require.Len(t, report.Sections, 5)

	report, err = l.View("It's your decision.", ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, "general", report.Classification)
}
