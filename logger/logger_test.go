package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/render/logger"
)

var logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)

func newTestLogger(w *bytes.Buffer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}

func TestRenderLoggerLevels(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	t.Run("Writes-At-Level", func(t *testing.T) {
		b := new(bytes.Buffer)
		l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

		l.Debug("are you there?", nil)

		actual := b.String()
		require.Contains(t, actual, "[DEBUG]")
		require.Contains(t, actual, "are you there?")
		require.Contains(t, actual, "logger_test.go")
	})

	t.Run("Filters-Below-Level", func(t *testing.T) {
		b := new(bytes.Buffer)
		l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelError))

		l.Debug("quiet", nil)
		l.Info("quiet", nil)
		l.Warn("quiet", nil)

		require.Empty(t, b.String())

		l.Error("loud", nil)
		require.Contains(t, b.String(), "[ERROR]")
	})

	t.Run("Default-Level-Info", func(t *testing.T) {
		b := new(bytes.Buffer)
		l := logger.New(logger.WithLogger(newTestLogger(b)))

		require.Equal(t, logger.LogLevelInfo, l.LogLevel())

		l.Debug("quiet", nil)
		require.Empty(t, b.String())
	})
}

func TestRenderLoggerContext(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	l.Info("with context", &logger.LogContext{Data: map[string]any{"hello": "world"}})

	actual := b.String()
	require.Contains(t, actual, "with context")
	require.Contains(t, actual, "log_context:")
	require.Contains(t, actual, "hello")
	require.Regexp(t, logLevelRegexp, actual)
}

func TestRenderLoggerAddSkip(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	sl, ok := l.(logger.SkipLogger)
	require.True(t, ok)
	require.Equal(t, 0, sl.Skip())

	skipped := sl.AddSkip(3)
	require.Equal(t, 3, skipped.Skip())
	// the original is untouched
	require.Equal(t, 0, sl.Skip())
}
