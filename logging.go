// Package-level configuration for structured logging around a channel
// shared state's fast-path hand-offs and buffer operations.
//
// This design allows external integration with logging frameworks (via
// the [LogifaceLogger] adapter onto github.com/joeycumines/logiface,
// which in turn backs onto zerolog/logrus/stumpy/etc.) while providing
// a low-overhead built-in implementation for basic usage. Logging is a
// cross-cutting, process-wide concern here - channels and selects don't
// carry their own logger, matching how the event-loop code this package
// is based on treats it.
package chanselect

import (
	"fmt"
	"sync"
	"time"

	"github.com/joeycumines/logiface"
)

var globalLogger struct {
	sync.RWMutex
	logger Logger
}

// SetLogger installs the process-wide [Logger] used by the select
// engine's diagnostic output. A nil logger restores the no-op default.
func SetLogger(logger Logger) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = logger
}

func getLogger() Logger {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	if globalLogger.logger != nil {
		return globalLogger.logger
	}
	return noOpLogger{}
}

// LogLevel is the severity of a [LogEntry].
type LogLevel int32

const (
	// LevelDebug covers routine fast-path transitions: a direct
	// hand-off to or from a parked waiter, a buffered send, a buffered
	// receive. Park, wake and unregister steps are not logged.
	LevelDebug LogLevel = iota

	// LevelWarn is the warning severity. No code path in this package
	// logs at this level.
	LevelWarn
)

// String returns the level's name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// LogEntry is one structured log record emitted by the select engine.
type LogEntry struct {
	Level     LogLevel
	Op        string // "send" or "receive"
	ChannelID uint64 // sharedState allocation id, see telemetry.go
	Message   string
	Fields    map[string]any
	Timestamp time.Time
}

// Logger is the structured logging interface the package depends on.
// Implement it directly, or wrap a third-party logger with
// [LogifaceLogger].
type Logger interface {
	Log(entry LogEntry)
	IsEnabled(level LogLevel) bool
}

type noOpLogger struct{}

func (noOpLogger) Log(LogEntry)            {}
func (noOpLogger) IsEnabled(LogLevel) bool { return false }

// logf emits a debug/warn entry, skipping field construction entirely
// when the level is disabled - logging must stay off the hot path.
func logf(level LogLevel, op string, channelID uint64, msg string, fields map[string]any) {
	l := getLogger()
	if !l.IsEnabled(level) {
		return
	}
	l.Log(LogEntry{
		Level:     level,
		Op:        op,
		ChannelID: channelID,
		Message:   msg,
		Fields:    fields,
		Timestamp: time.Now(),
	})
}

// LogifaceLogger adapts a github.com/joeycumines/logiface logger onto
// the [Logger] interface, so callers who already standardized on
// logiface (and one of its zerolog/logrus/stumpy/slog backends) can
// reuse it here instead of maintaining a second logging pipeline.
type LogifaceLogger struct {
	L *logiface.Logger[logiface.Event]
}

// IsEnabled reports whether level would produce output.
func (a LogifaceLogger) IsEnabled(level LogLevel) bool {
	if a.L == nil {
		return false
	}
	switch level {
	case LevelWarn:
		return a.L.Warning().Enabled()
	default:
		return a.L.Debug().Enabled()
	}
}

// Log forwards entry to the wrapped logiface logger.
func (a LogifaceLogger) Log(entry LogEntry) {
	if a.L == nil {
		return
	}
	var b *logiface.Builder[logiface.Event]
	switch entry.Level {
	case LevelWarn:
		b = a.L.Warning()
	default:
		b = a.L.Debug()
	}
	if !b.Enabled() {
		return
	}
	b = b.Str("op", entry.Op).Uint64("channel_id", entry.ChannelID)
	for k, v := range entry.Fields {
		b = b.Any(k, v)
	}
	b.Log(entry.Message)
}
