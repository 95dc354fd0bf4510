package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{input: "debug", expected: LogLevelDebug},
		{input: "INFO", expected: LogLevelInfo},
		{input: "", expected: LogLevelInfo},
		{input: "warning", expected: LogLevelWarn},
		{input: " warn ", expected: LogLevelWarn},
		{input: "error", expected: LogLevelError},
		{input: "verbose", expected: LogLevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "level(9)", LogLevel(9).String())
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, JSON: true, Output: &buf})

	LogSieve(logger.WithOperation(OpSieve), 100, 25, 0, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, `"msg":"prime cache sieved"`)
	assert.Contains(t, out, `"operation":"sieve"`)
	assert.Contains(t, out, `"primes":25`)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	child := logger.With("component", "engine")
	LogCacheHit(child, 50, 97)

	out := buf.String()
	assert.Contains(t, out, "component=engine")
	assert.Contains(t, out, "largest_prime=97")
	assert.Contains(t, out, "result=hit")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("ignored")
		logger.With("a", 1).Error("ignored")
		LogFactorization(logger, 10, 4, time.Second)
	})
}

func TestNilLogger(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() {
		logger.Info("ignored")
		assert.Nil(t, logger.With("a", 1))
	})
	assert.NotNil(t, New(nil))
}

func TestLogger_WithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf})

	LogFactorization(logger.WithOperation(OpFactorize), 10, 4, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "operation=factorize")
	assert.Contains(t, out, "terms=4")
}

func TestLogger_Slog(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelInfo, Output: &buf})

	logger.Slog().Info("through slog", "n", 5)
	assert.Contains(t, buf.String(), "through slog")

	nop := NewNopLogger().Slog()
	require.NotNil(t, nop)
	assert.False(t, nop.Enabled(t.Context(), slog.LevelError))

	var nilLogger *Logger
	assert.Nil(t, nilLogger.Slog())
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()

	assert.Equal(t, LogLevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
	assert.False(t, cfg.EnableCallerInfo)
	assert.NotNil(t, cfg.Output)
}

func TestNewLogger_CallerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelInfo, EnableCallerInfo: true, Output: &buf})

	logger.Error("with source")

	assert.Contains(t, buf.String(), "source=")
}
