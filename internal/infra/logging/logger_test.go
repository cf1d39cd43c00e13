package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_RunIDAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{RunID: "run-1", Level: slog.LevelWarn})

	logger.Info("hidden")
	logger.Warn("shown", "key", "DERBY-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "key=DERBY-1")
}

func TestNew_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{}).Info("hello")

	out := buf.String()
	idx := bytes.Index(buf.Bytes(), []byte("run_id="))
	require.GreaterOrEqual(t, idx, 0, out)
	id := out[idx+len("run_id=") : idx+len("run_id=")+36]
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil, Options{}).Error("discarded")
	})
}
