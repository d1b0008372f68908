// Package logging configures the zap logger shared by atomgeo packages.
package logging

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging threshold.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent Level = 0xFF
)

var defaultLogger atomic.Pointer[zap.Logger]

func init() {
	defaultLogger.Store(New(LevelWarn))
}

// New builds a JSON logger writing to stderr at the given level.
func New(level Level) *zap.Logger {
	if level == LevelSilent {
		return zap.NewNop()
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(toZapLevel(level)),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		// stderr sinks cannot fail to open
		panic(err)
	}
	return logger
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger and returns the previous one.
// A nil logger installs a no-op logger.
func SetDefault(l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return defaultLogger.Swap(l)
}

// ParseLevel maps a level name to a Level. The empty string means warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "", "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "silent", "off", "none":
		return LevelSilent, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
