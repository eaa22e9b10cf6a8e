package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Info("report written", "path", "/tmp/crash.log")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "report written", record["msg"])
	assert.Equal(t, "/tmp/crash.log", record["path"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNew_SanitizesSecrets(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "text", Output: &buf})

	logger.Info("auth failed", "header", "Bearer abcdefghijklmnopqrstuvwxyz123456")

	out := buf.String()
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "abcdefghijklmnopqrstuvwxyz123456")
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	t.Parallel()
	logger := NewNop()
	logger.Error("goes nowhere")
}

func TestLogger_With(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf}).With("component", "catcher")

	logger.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "catcher", record["component"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}

func TestPrettyHandler_Output(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, slog.LevelDebug))

	logger.Info("crash handled", "path", "/tmp/x.log")

	out := buf.String()
	assert.Contains(t, out, "crash handled")
	assert.Contains(t, out, "path")
	assert.Contains(t, out, "/tmp/x.log")
	assert.True(t, strings.Contains(out, "INF"))
}
