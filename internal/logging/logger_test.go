package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/aretw0/fundflow/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewJSON_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewJSON(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Warn("advisor failed", "error", "status 503", "provider", "huggingface")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "status 503", rec["err"])
	assert.NotContains(t, rec, "error")
	assert.Equal(t, "huggingface", rec["provider"])
}

func TestNewText_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewText(&buf, slog.LevelWarn)
	log.Info("skipped")
	assert.Empty(t, buf.String())

	log.Error("kept", "error", "boom")
	assert.Contains(t, buf.String(), "err=boom")
}
