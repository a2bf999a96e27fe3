package entigo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/entigo/core"
)

// Logger wraps slog.Logger with entigo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEntity adds entity fields to the logger.
func (l *Logger) WithEntity(e core.Entity) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", uint32(e.Index()), "generation", uint32(e.Generation())),
	}
}

// WithComponent adds a component type field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogRegister logs a component type registration.
func (l *Logger) LogRegister(component string, err error) {
	if err != nil {
		l.Error("register failed",
			"component", component,
			"error", err,
		)
	} else {
		l.Debug("component registered",
			"component", component,
		)
	}
}

// LogCreate logs an entity creation.
func (l *Logger) LogCreate(e core.Entity) {
	l.Debug("entity created",
		"index", uint32(e.Index()),
		"generation", uint32(e.Generation()),
	)
}

// LogDestroy logs an entity destruction.
func (l *Logger) LogDestroy(e core.Entity, destroyed bool) {
	if !destroyed {
		l.Warn("destroy skipped for stale entity",
			"index", uint32(e.Index()),
			"generation", uint32(e.Generation()),
		)
	} else {
		l.Debug("entity destroyed",
			"index", uint32(e.Index()),
			"generation", uint32(e.Generation()),
		)
	}
}

// LogClose logs a world teardown.
func (l *Logger) LogClose(stores int) {
	l.Info("world closed",
		"stores_drained", stores,
	)
}
