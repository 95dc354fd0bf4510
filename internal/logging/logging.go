// Package logging provides structured logging for the factorization engine.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jmgilman/go/errors"
)

// LogLevel represents different logging levels
type LogLevel int

// LogLevelDebug represents debug logging level
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lowercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger provides structured logging for the engine.
// A nil *Logger is valid and discards everything.
type Logger struct {
	impl loggerImpl
}

// loggerImpl defines the internal interface for logger implementations.
type loggerImpl interface {
	debug(msg string, args ...any)
	info(msg string, args ...any)
	warn(msg string, args ...any)
	error(msg string, args ...any)
	with(args ...any) loggerImpl
	slog() *slog.Logger
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.debug(msg, args...)
	}
}

// Info logs info-level messages
func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.info(msg, args...)
	}
}

// Warn logs warning-level messages
func (l *Logger) Warn(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.warn(msg, args...)
	}
}

// Error logs error-level messages
func (l *Logger) Error(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.error(msg, args...)
	}
}

// With returns a logger with additional context fields
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.impl == nil {
		return l
	}
	return &Logger{impl: l.impl.with(args...)}
}

// WithOperation returns a logger with operation context
func (l *Logger) WithOperation(operation Operation) *Logger {
	return l.With("operation", string(operation))
}

// Slog returns the underlying slog.Logger so it can be handed to APIs that
// accept the standard library type. A no-op Logger returns a logger that
// discards every record; a nil Logger returns nil.
func (l *Logger) Slog() *slog.Logger {
	if l == nil || l.impl == nil {
		return nil
	}
	return l.impl.slog()
}

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level LogLevel
	// JSON selects the JSON handler instead of the text handler
	JSON bool
	// EnableCallerInfo includes file and line number in logs
	EnableCallerInfo bool
	// Output is where records are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            LogLevelWarn,
		JSON:             false,
		EnableCallerInfo: false,
		Output:           os.Stderr,
	}
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(config LogConfig) *Logger {
	return New(newSlog(config))
}

func newSlog(config LogConfig) *slog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.EnableCallerInfo,
	}

	if config.JSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// New wraps an existing slog.Logger. A nil logger yields a no-op Logger.
func New(logger *slog.Logger) *Logger {
	if logger == nil {
		return NewNopLogger()
	}
	return &Logger{impl: &slogLogger{logger: logger}}
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{impl: nopLogger{}}
}

// slogLogger implements loggerImpl using slog.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) with(args ...any) loggerImpl {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) slog() *slog.Logger { return l.logger }

// nopLogger is a no-op logger implementation that discards all messages.
type nopLogger struct{}

func (nopLogger) debug(string, ...any)     {}
func (nopLogger) info(string, ...any)      {}
func (nopLogger) warn(string, ...any)      {}
func (nopLogger) error(string, ...any)     {}
func (n nopLogger) with(...any) loggerImpl { return n }
func (nopLogger) slog() *slog.Logger       { return slog.New(slog.DiscardHandler) }

// Operation represents the engine operations that are logged.
type Operation string

// Operation constants for engine operations
const (
	OpSieve     Operation = "sieve"
	OpFactorize Operation = "factorize"
)

// LogSieve logs a (re)sieve of the prime cache.
// The logger is expected to carry the OpSieve operation.
func LogSieve(logger *Logger, limit uint64, primes int, previous int, duration time.Duration) {
	logger.Debug("prime cache sieved",
		"limit", limit,
		"primes", primes,
		"previous_primes", previous,
		"duration", duration,
	)
}

// LogCacheHit logs a factorization served without re-sieving.
func LogCacheHit(logger *Logger, n uint64, largest uint64) {
	logger.Debug("prime cache hit",
		"n", n,
		"largest_prime", largest,
		"result", "hit")
}

// LogFactorization logs a completed factorization.
func LogFactorization(logger *Logger, n uint64, terms int, duration time.Duration) {
	logger.Debug("factorization completed",
		"n", n,
		"terms", terms,
		"duration", duration,
	)
}

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, errors.Newf(errors.CodeInvalidInput, "invalid log level: %s", level)
	}
}
