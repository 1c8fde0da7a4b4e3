package cultural

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize profile watcher")

// Watcher reloads a profile directory when its contents change, so
// profile edits take effect without a restart.
type Watcher struct {
	bridge  *Bridge
	dir     string
	watcher *fsnotify.Watcher
	stop    chan struct{}
	logger  *zap.Logger
}

// NewWatcher creates a watcher for the given profile directory.
func NewWatcher(bridge *Bridge, dir string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}
	return &Watcher{
		bridge:  bridge,
		dir:     dir,
		watcher: fsw,
		stop:    make(chan struct{}),
		logger:  logger,
	}, nil
}

// Start performs an initial load and begins watching in a background
// goroutine. Call Stop to clean up resources.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.bridge.LoadDir(w.dir); err != nil {
		return err
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching profile directory: %w", err)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and cleans up resources.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
		// Already stopped
	default:
		close(w.stop)
		_ = w.watcher.Close()
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Reload the whole directory rather than tracking
			// per-file state; profile sets are small.
			if err := w.bridge.LoadDir(w.dir); err != nil {
				w.logger.Warn("profile reload failed",
					zap.String("dir", w.dir),
					zap.Error(err),
				)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("profile watcher error", zap.Error(err))
		}
	}
}
