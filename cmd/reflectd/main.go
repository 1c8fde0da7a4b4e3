// Reflectd is a reflection translation daemon for clinicians in
// grief-heavy specialties.
//
// The daemon scores free-text reflections, runs them through
// interpretive lenses, offers culturally-informed communication
// guidance, and tracks compassion reserve over time, all behind an
// HTTP API.
//
// Usage:
//
//	# Start the daemon with defaults
//	reflectd
//
//	# Configure via file or environment
//	reflectd -config ~/.config/reflectd/config.yaml
//	SERVER_HTTP_PORT=9444 reflectd
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/config"
	"github.com/fyrsmithlabs/reflectd/internal/cultural"
	"github.com/fyrsmithlabs/reflectd/internal/gct"
	"github.com/fyrsmithlabs/reflectd/internal/glass"
	"github.com/fyrsmithlabs/reflectd/internal/httpapi"
	"github.com/fyrsmithlabs/reflectd/internal/lens"
	"github.com/fyrsmithlabs/reflectd/internal/logging"
	"github.com/fyrsmithlabs/reflectd/internal/tracker"
	"github.com/fyrsmithlabs/reflectd/internal/transform"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/reflectd/config.yaml)")
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  reflectd           Start the reflectd daemon\n")
			fmt.Fprintf(os.Stderr, "  reflectd version   Show version information\n")
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("reflectd\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run starts the reflectd server and blocks until context
// cancellation, then shuts down and persists state.
func run(ctx context.Context, configPath string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return err
	}

	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logging.Sync(logger)
	}()

	logger.Info("Starting reflectd",
		zap.Int("port", cfg.Server.Port),
		zap.String("context", cfg.Glass.Context),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout))

	bridge, err := cultural.New(logger)
	if err != nil {
		return fmt.Errorf("failed to load cultural profiles: %w", err)
	}

	// Extra profiles come from the configured directory, watched for
	// edits when the directory exists.
	var watcher *cultural.Watcher
	if info, err := os.Stat(cfg.Profiles.Dir); err == nil && info.IsDir() {
		if cfg.Profiles.Watch {
			watcher, err = cultural.NewWatcher(bridge, cfg.Profiles.Dir, logger)
			if err != nil {
				return err
			}
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()
		} else if err := bridge.LoadDir(cfg.Profiles.Dir); err != nil {
			return err
		}
	}
	logger.Info("Cultural profiles loaded", zap.Strings("profiles", bridge.Keys()))

	clinicalCtx, err := gct.ParseClinicalContext(cfg.Glass.Context)
	if err != nil {
		return err
	}
	g := glass.New(glass.Config{
		Context:      clinicalCtx,
		HistoryLimit: cfg.Glass.HistoryLimit,
	}, logger)

	transformer := transform.New(logger)
	if err := transformer.LoadState(cfg.TransformStatePath()); err != nil {
		return err
	}

	tr := tracker.New(logger)
	if err := tr.LoadState(cfg.TrackerStatePath()); err != nil {
		return err
	}

	registry := lens.NewRegistry(
		lens.CompassionLens{},
		lens.GriefLens{},
		lens.PresenceLens{},
		lens.NewCulturalLens(bridge),
	)

	srv, err := httpapi.NewServer(g, registry, bridge, transformer, tr, logger, &httpapi.Config{
		Host:      "localhost",
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
	})
	if err != nil {
		return err
	}

	srv.Handler().GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	logger.Info("Server configured",
		zap.String("health_endpoint", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)),
		zap.String("metrics_endpoint", "/metrics"),
		zap.Strings("lenses", registry.Names()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown failed", zap.Error(err))
	}

	// Persist accumulated state before exit.
	if err := transformer.SaveState(cfg.TransformStatePath()); err != nil {
		logger.Error("failed to save wisdom state", zap.Error(err))
	}
	if err := tr.SaveState(cfg.TrackerStatePath()); err != nil {
		logger.Error("failed to save tracker state", zap.Error(err))
	}

	return nil
}
