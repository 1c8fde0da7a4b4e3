package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/glass"
	"github.com/fyrsmithlabs/reflectd/internal/lens"
	"github.com/fyrsmithlabs/reflectd/internal/tracker"
	"github.com/fyrsmithlabs/reflectd/internal/transform"
)

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// TranslateRequest is the request body for POST /api/v1/translate.
type TranslateRequest struct {
	Text          string `json:"text"`
	DaysSinceRest int    `json:"days_since_rest"`
	Track         bool   `json:"track"`
	Narrative     bool   `json:"narrative"`
}

// TranslateResponse is the response body for POST /api/v1/translate.
type TranslateResponse struct {
	*glass.Translation
	Narrative string `json:"narrative,omitempty"`
}

// handleTranslate translates a reflection through the default lens.
func (s *Server) handleTranslate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid translate request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tr, err := s.glass.Translate(c.Request().Context(), req.Text, glass.TranslateOptions{
		DaysSinceRest: req.DaysSinceRest,
		Track:         req.Track,
	})
	if err != nil {
		if errors.Is(err, glass.ErrEmptyText) {
			return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
		}
		s.logger.Error("translate failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "translation failed")
	}

	// Tracked translations also feed the long-term series.
	if req.Track {
		s.tracker.Record(tracker.Point{
			Psi:               tr.Variables.Psi,
			Rho:               tr.Variables.Rho,
			Q:                 tr.Variables.Q,
			F:                 tr.Variables.F,
			CompassionReserve: tr.Variables.CompassionReserve,
			GriefLoad:         tr.Variables.GriefLoad,
		})
	}

	resp := TranslateResponse{Translation: tr}
	if req.Narrative {
		resp.Narrative = tr.Narrative()
	}
	return c.JSON(http.StatusOK, resp)
}

// LensRequest is the request body for POST /api/v1/lens/:name.
type LensRequest struct {
	Text    string `json:"text"`
	Culture string `json:"culture,omitempty"`
}

// handleLens runs one named lens over a reflection.
func (s *Server) handleLens(c echo.Context) error {
	name := c.Param("name")

	l, err := s.lenses.Get(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	var req LensRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid lens request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	report, err := l.View(req.Text, lens.ViewOptions{Culture: req.Culture})
	if err != nil {
		s.logger.Error("lens view failed", zap.String("lens", name), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "lens view failed")
	}

	lens.ObserveView(name)
	return c.JSON(http.StatusOK, report)
}

// LensesResponse is the response body for GET /api/v1/lenses.
type LensesResponse struct {
	Lenses []string `json:"lenses"`
}

func (s *Server) handleLenses(c echo.Context) error {
	return c.JSON(http.StatusOK, LensesResponse{Lenses: s.lenses.Names()})
}

// GuidanceRequest is the request body for POST /api/v1/guidance.
type GuidanceRequest struct {
	Culture string `json:"culture"`
	Context string `json:"context"`
}

// handleGuidance returns culture-specific communication guidance.
func (s *Server) handleGuidance(c echo.Context) error {
	var req GuidanceRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid guidance request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Context == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "context field is required")
	}

	return c.JSON(http.StatusOK, s.bridge.Guidance(req.Culture, req.Context))
}

// handleTrend returns the direction of recently tracked translations.
func (s *Server) handleTrend(c echo.Context) error {
	trend := s.glass.Trend()
	if trend == nil {
		return echo.NewHTTPError(http.StatusNotFound,
			"not enough tracked translations for a trend (need 3)")
	}
	return c.JSON(http.StatusOK, trend)
}

// TrackResponse is the response body for POST /api/v1/track.
type TrackResponse struct {
	Recorded    bool     `json:"recorded"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// handleTrack records an externally supplied tracking point.
func (s *Server) handleTrack(c echo.Context) error {
	var p tracker.Point
	if err := c.Bind(&p); err != nil {
		s.logger.Warn("invalid track request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.tracker.Record(p)

	return c.JSON(http.StatusCreated, TrackResponse{
		Recorded:    true,
		Suggestions: tracker.SupportSuggestions(p),
	})
}

// TimelineResponse is the response body for GET /api/v1/timeline.
type TimelineResponse struct {
	Days    int    `json:"days"`
	Summary string `json:"summary"`
}

// handleTimeline renders the timeline narrative over the last N days.
func (s *Server) handleTimeline(c echo.Context) error {
	days := 30
	if v := c.QueryParam("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = parsed
	}

	summary, err := s.tracker.TimelineSummary(days)
	if err != nil {
		if errors.Is(err, tracker.ErrInsufficientHistory) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		s.logger.Error("timeline summary failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "timeline summary failed")
	}

	return c.JSON(http.StatusOK, TimelineResponse{Days: days, Summary: summary})
}

// RegisterEventRequest is the request body for POST /api/v1/wisdom/events.
type RegisterEventRequest struct {
	PatientType       string   `json:"patient_type"`
	RelationshipDepth float64  `json:"relationship_depth"`
	Circumstances     []string `json:"circumstances,omitempty"`
	Intensity         float64  `json:"initial_intensity"`
}

// RegisterEventResponse is the response body for POST /api/v1/wisdom/events.
type RegisterEventResponse struct {
	ID string `json:"id"`
}

func (s *Server) handleRegisterEvent(c echo.Context) error {
	var req RegisterEventRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid event request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Intensity < 0 || req.Intensity > 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "initial_intensity must be in [0,1]")
	}

	id := s.transformer.Register(transform.Event{
		PatientType:       req.PatientType,
		RelationshipDepth: req.RelationshipDepth,
		Circumstances:     req.Circumstances,
		Intensity:         req.Intensity,
	})

	return c.JSON(http.StatusCreated, RegisterEventResponse{ID: id})
}

// PathwayResponse is the response body for GET /api/v1/wisdom/events/:id/pathway.
type PathwayResponse struct {
	Pathway transform.WisdomType `json:"pathway"`
	Prompts []string             `json:"prompts"`
}

func (s *Server) handlePathway(c echo.Context) error {
	wt, prompts, err := s.transformer.SuggestPathway(c.Param("id"))
	if err != nil {
		if errors.Is(err, transform.ErrUnknownEvent) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		s.logger.Error("pathway suggestion failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "pathway suggestion failed")
	}
	return c.JSON(http.StatusOK, PathwayResponse{Pathway: wt, Prompts: prompts})
}

// ReflectRequest is the request body for POST /api/v1/wisdom/events/:id/reflect.
type ReflectRequest struct {
	Text    string               `json:"text"`
	Pathway transform.WisdomType `json:"pathway"`
}

func (s *Server) handleReflect(c echo.Context) error {
	var req ReflectRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid reflect request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	// Without an explicit pathway, follow the suggested one.
	if req.Pathway == "" {
		wt, _, err := s.transformer.SuggestPathway(c.Param("id"))
		if err != nil {
			if errors.Is(err, transform.ErrUnknownEvent) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			s.logger.Error("pathway suggestion failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "pathway suggestion failed")
		}
		req.Pathway = wt
	}

	result, err := s.transformer.ProcessReflection(c.Param("id"), req.Text, req.Pathway)
	if err != nil {
		if errors.Is(err, transform.ErrUnknownEvent) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		s.logger.Error("reflection processing failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "reflection processing failed")
	}
	return c.JSON(http.StatusOK, result)
}

// InventoryResponse is the response body for GET /api/v1/wisdom/inventory.
type InventoryResponse struct {
	Inventory map[transform.WisdomType][]transform.Fragment `json:"inventory"`
	Shareable []transform.Fragment                          `json:"shareable,omitempty"`
}

func (s *Server) handleInventory(c echo.Context) error {
	return c.JSON(http.StatusOK, InventoryResponse{
		Inventory: s.transformer.Inventory(),
		Shareable: s.transformer.Shareable(),
	})
}
