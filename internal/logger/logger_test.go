package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize_EnablesLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	tests := []struct {
		level    string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Initialize(tt.level))
			assert.NotSame(t, originalLog, Log)

			core := Log.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			assert.False(t, core.Enabled(tt.disabled))
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("loud")
	assert.Error(t, err)
	assert.Same(t, originalLog, Log, "logger must not change on error")
}

func TestNewLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(zapcore.InfoLevel, zapcore.AddSync(&buf)).Sugar()

	log.Debugw("hidden", "phone", "5511999990000")
	log.Infow("transaction recorded", "phone", "5511999990000", "value", "20")
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "transaction recorded", entry["msg"])
	assert.Equal(t, "5511999990000", entry["phone"])
	assert.Contains(t, entry["caller"], "logger_test.go")

	ts, ok := entry["ts"].(string)
	require.True(t, ok, "ts must be an ISO8601 string")
	_, err := time.Parse("2006-01-02T15:04:05.000Z0700", ts)
	assert.NoError(t, err)
}

func TestNewLogger_StacktraceOnError(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(zapcore.InfoLevel, zapcore.AddSync(&buf)).Sugar()

	log.Warnw("slow gateway")
	log.Errorw("failed to send reply")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], `"stacktrace"`)
	assert.Contains(t, lines[1], `"stacktrace"`)
}

func TestSync_NopLogger(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
		Sync()
	})
}
