// Package logging builds the reflectd zap logger.
//
// The logger writes to stdout in JSON or console format, supports a
// trace level below debug, and length-redacts reflection text fields
// so raw reflections never appear in log output.
package logging

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/reflectd/internal/config"
)

// New creates a logger from config.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := LevelFromString(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		NewRedactingEncoder(encoder),
		zapcore.Lock(os.Stdout),
		level,
	)

	var opts []zap.Option
	if cfg.EnableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.EnableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(core, opts...).With(zap.String("service", "reflectd")), nil
}

// newEncoder creates a JSON or console encoder.
func newEncoder(format string) (zapcore.Encoder, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "console":
		return zapcore.NewConsoleEncoder(encoderCfg), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderCfg), nil
	default:
		return nil, fmt.Errorf("format must be 'json' or 'console', got %q", format)
	}
}

// Sync flushes the logger, ignoring the harmless errors Linux returns
// when syncing stdout.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}
