package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/cultural"
	"github.com/fyrsmithlabs/reflectd/internal/glass"
	"github.com/fyrsmithlabs/reflectd/internal/lens"
	"github.com/fyrsmithlabs/reflectd/internal/tracker"
	"github.com/fyrsmithlabs/reflectd/internal/transform"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	bridge, err := cultural.New(zap.NewNop())
	require.NoError(t, err)

	registry := lens.NewRegistry(
		lens.CompassionLens{},
		lens.GriefLens{},
		lens.PresenceLens{},
		lens.NewCulturalLens(bridge),
	)

	s, err := NewServer(
		glass.New(glass.Config{}, nil),
		registry,
		bridge,
		transform.New(nil),
		tracker.New(nil),
		zap.NewNop(),
		&Config{Host: "localhost", Port: 9310, RateLimit: 100},
	)
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestNewServer(t *testing.T) {
	t.Run("creates server with valid config", func(t *testing.T) {
		s := newTestServer(t)
		assert.NotNil(t, s.echo)
	})

	t.Run("uses defaults when config is nil", func(t *testing.T) {
		bridge, err := cultural.New(zap.NewNop())
		require.NoError(t, err)

		s, err := NewServer(glass.New(glass.Config{}, nil), lens.NewRegistry(),
			bridge, transform.New(nil), tracker.New(nil), zap.NewNop(), nil)
		require.NoError(t, err)
		assert.Equal(t, "localhost", s.config.Host)
		assert.Equal(t, 9310, s.config.Port)
	})

	t.Run("returns error when logger is nil", func(t *testing.T) {
		bridge, err := cultural.New(zap.NewNop())
		require.NoError(t, err)

		_, err = NewServer(glass.New(glass.Config{}, nil), lens.NewRegistry(),
			bridge, transform.New(nil), tracker.New(nil), nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger is required")
	})

	t.Run("returns error when glass is nil", func(t *testing.T) {
		bridge, err := cultural.New(zap.NewNop())
		require.NoError(t, err)

		_, err = NewServer(nil, lens.NewRegistry(), bridge,
			transform.New(nil), tracker.New(nil), zap.NewNop(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "glass cannot be nil")
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleTranslate(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/translate", TranslateRequest{
		Text:      "Lost a patient today and I keep wondering what her family is feeling now.",
		Narrative: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		LensUsed  string `json:"lens_used"`
		State     string `json:"compassion_state"`
		Narrative string `json:"narrative"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp.LensUsed)
	assert.NotEmpty(t, resp.State)
	assert.Contains(t, resp.Narrative, "Reflection Translation")
}

func TestHandleTranslate_EmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/translate", TranslateRequest{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTrend(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/trend", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/translate", TranslateRequest{
			Text:  "Another loss this week, the grief stays with me after every death.",
			Track: true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/trend", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var trend glass.Trend
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trend))
	assert.Equal(t, 3, trend.SampleSize)
}

func TestHandleLens(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/lens/grief", LensRequest{
		Text: "She died last week and the loss still feels heavy in every shift.",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[lens.Report](t, rec)
	assert.Equal(t, "grief", report.Lens)
	assert.NotEmpty(t, report.Classification)
}

func TestHandleLens_Unknown(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/lens/tarot", LensRequest{Text: "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLens_EmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/lens/grief", LensRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLenses(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/lenses", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[LensesResponse](t, rec)
	assert.Equal(t, []string{"compassion", "cultural", "grief", "presence"}, resp.Lenses)
}

func TestHandleGuidance(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/guidance", GuidanceRequest{
		Culture: "hindu_indian",
		Context: cultural.ContextPrognosis,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var g cultural.Guidance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.NotEmpty(t, g.Awareness)
	assert.NotEmpty(t, g.CriticalReminder)
}

func TestHandleGuidance_RequiresContext(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/guidance", GuidanceRequest{Culture: "hindu_indian"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTrack(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/track", tracker.Point{
		Psi: 0.5, Rho: 0.3, Q: 0.4, F: 0.1,
		CompassionReserve: 0.2, GriefLoad: 0.7, RecentLosses: 1,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[TrackResponse](t, rec)
	assert.True(t, resp.Recorded)
	// Low reserve, low f, and heavy load each contribute suggestions.
	assert.Len(t, resp.Suggestions, 4)
}

func TestHandleTimeline(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/timeline", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i := 0; i < 6; i++ {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/track", tracker.Point{
			CompassionReserve: 0.5, GriefLoad: 0.3, Rho: 0.3,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/timeline?days=14", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TimelineResponse](t, rec)
	assert.Equal(t, 14, resp.Days)
	assert.Contains(t, resp.Summary, "Over the past 14 days")
}

func TestHandleTimeline_BadDays(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/timeline?days=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWisdomLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/wisdom/events", RegisterEventRequest{
		PatientType:       "adult",
		RelationshipDepth: 0.8,
		Circumstances:     []string{"sudden"},
		Intensity:         0.9,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[RegisterEventResponse](t, rec)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/wisdom/events/"+created.ID+"/pathway", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pathway := decode[PathwayResponse](t, rec)
	assert.Equal(t, transform.WisdomResilience, pathway.Pathway)
	assert.Len(t, pathway.Prompts, 3)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/wisdom/events/"+created.ID+"/reflect", ReflectRequest{
		Text:    "I found the strength to continue and to cope with what that shift asked of me.",
		Pathway: transform.WisdomResilience,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result transform.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.EventsProcessed)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/wisdom/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWisdomEvent_BadIntensity(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/wisdom/events", RegisterEventRequest{Intensity: 1.5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWisdomEvent_UnknownID(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/wisdom/events/nope/pathway", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
