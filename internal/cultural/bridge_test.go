package cultural

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_LoadsBuiltinProfiles(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	keys := b.Keys()
	assert.Contains(t, keys, "hindu_indian")
	assert.Contains(t, keys, "south_asian_general")

	p, ok := b.Lookup("hindu_indian")
	require.True(t, ok)
	assert.Equal(t, "Hindu (Indian)", p.Tradition)
	assert.Equal(t, DecisionFamily, p.DecisionStyle)
	assert.Equal(t, DisclosureFamilyFirst, p.Disclosure)
	assert.Equal(t, BeliefReincarnation, p.DeathBeliefs)
	assert.NotEmpty(t, p.Rituals)
	assert.NotEmpty(t, p.Language["prognosis"])
}

func TestLookup_CaseInsensitive(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	_, ok := b.Lookup("HINDU_INDIAN")
	assert.True(t, ok)

	_, ok = b.Lookup("klingon")
	assert.False(t, ok)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	profile := `
tradition = "Test Tradition"
decision_style = "elder"
disclosure_preference = "graduated"
death_beliefs = "continuation"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_tradition.toml"), []byte(profile), 0o644))
	// Non-TOML files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	b, err := New(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, b.LoadDir(dir))

	p, ok := b.Lookup("test_tradition")
	require.True(t, ok)
	assert.Equal(t, "Test Tradition", p.Tradition)
	assert.Equal(t, DecisionElder, p.DecisionStyle)
}

func TestLoadDir_MissingDirIsOK(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, b.LoadDir(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestLoadDir_SkipsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"),
		[]byte(`tradition = "Broken"
decision_style = "telepathy"
disclosure_preference = "full"
death_beliefs = "unknown"`), 0o644))

	b, err := New(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, b.LoadDir(dir))

	_, ok := b.Lookup("broken")
	assert.False(t, ok)
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name: "valid",
			profile: Profile{
				Tradition:     "Valid",
				DecisionStyle: DecisionIndividual,
				Disclosure:    DisclosureFull,
				DeathBeliefs:  BeliefFinality,
			},
		},
		{
			name: "missing tradition",
			profile: Profile{
				DecisionStyle: DecisionIndividual,
				Disclosure:    DisclosureFull,
				DeathBeliefs:  BeliefFinality,
			},
			wantErr: true,
		},
		{
			name: "bad decision style",
			profile: Profile{
				Tradition:     "X",
				DecisionStyle: "vibes",
				Disclosure:    DisclosureFull,
				DeathBeliefs:  BeliefFinality,
			},
			wantErr: true,
		},
		{
			name: "bad disclosure",
			profile: Profile{
				Tradition:     "X",
				DecisionStyle: DecisionFamily,
				Disclosure:    "whisper",
				DeathBeliefs:  BeliefFinality,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProfile)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuidance_Prognosis(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	g := b.Guidance("hindu_indian", ContextPrognosis)
	require.NotNil(t, g)

	assert.Contains(t, g.Awareness[0], "family")
	assert.NotEmpty(t, g.SuggestedApproach)
	assert.Contains(t, g.SuggestedLanguage,
		"The illness is progressing beyond what medicine can reverse")
	assert.Len(t, g.Cautions, 3)
	assert.NotEmpty(t, g.FamilyQuestions)
	assert.NotEmpty(t, g.CriticalReminder)
}

func TestGuidance_ImminentDeath(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	g := b.Guidance("hindu_indian", ContextImminentDeath)
	require.NotNil(t, g)

	// Five rituals plus the timing note.
	assert.Len(t, g.RitualConsiderations, 6)
	assert.Contains(t, g.SuggestedLanguage,
		"The time may be coming for the soul's journey")
	assert.Contains(t, g.FamilyQuestions,
		"What are your wishes regarding pain medication?")
}

func TestGuidance_UnknownKeyFallsBackToGeneric(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	g := b.Guidance("atlantean", ContextPrognosis)
	require.NotNil(t, g)
	assert.Contains(t, g.Awareness[0], "cultural humility")
	assert.NotEmpty(t, g.Cautions)
	assert.NotEmpty(t, g.CriticalReminder)
}

func TestUniversalQuestionsAndReminders(t *testing.T) {
	b, err := New(zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, b.UniversalQuestions(), 7)
	assert.Len(t, b.HumilityReminders(), 7)
}
