// Package httpapi provides the HTTP API for reflectd.
package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/reflectd/internal/cultural"
	"github.com/fyrsmithlabs/reflectd/internal/glass"
	"github.com/fyrsmithlabs/reflectd/internal/lens"
	"github.com/fyrsmithlabs/reflectd/internal/tracker"
	"github.com/fyrsmithlabs/reflectd/internal/transform"
)

// Server provides HTTP endpoints for reflectd.
type Server struct {
	echo        *echo.Echo
	glass       *glass.Glass
	lenses      *lens.Registry
	bridge      *cultural.Bridge
	transformer *transform.Transformer
	tracker     *tracker.Tracker
	logger      *zap.Logger
	config      *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// RateLimit is requests per second per client IP.
	RateLimit float64
}

// NewServer creates a new HTTP server.
func NewServer(g *glass.Glass, lenses *lens.Registry, bridge *cultural.Bridge,
	transformer *transform.Transformer, tr *tracker.Tracker,
	logger *zap.Logger, cfg *Config) (*Server, error) {

	if g == nil {
		return nil, fmt.Errorf("glass cannot be nil")
	}
	if lenses == nil {
		return nil, fmt.Errorf("lens registry cannot be nil")
	}
	if bridge == nil {
		return nil, fmt.Errorf("cultural bridge cannot be nil")
	}
	if transformer == nil {
		return nil, fmt.Errorf("transformer cannot be nil")
	}
	if tr == nil {
		return nil, fmt.Errorf("tracker cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:      "localhost",
			Port:      9310,
			RateLimit: 20,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit)),
	))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:        e,
		glass:       g,
		lenses:      lenses,
		bridge:      bridge,
		transformer: transformer,
		tracker:     tr,
		logger:      logger,
		config:      cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/translate", s.handleTranslate)
	v1.POST("/lens/:name", s.handleLens)
	v1.GET("/lenses", s.handleLenses)
	v1.POST("/guidance", s.handleGuidance)
	v1.GET("/trend", s.handleTrend)
	v1.POST("/track", s.handleTrack)
	v1.GET("/timeline", s.handleTimeline)

	wisdom := v1.Group("/wisdom")
	wisdom.POST("/events", s.handleRegisterEvent)
	wisdom.GET("/events/:id/pathway", s.handlePathway)
	wisdom.POST("/events/:id/reflect", s.handleReflect)
	wisdom.GET("/inventory", s.handleInventory)
}

// Handler returns the echo handler, for tests and embedding.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
