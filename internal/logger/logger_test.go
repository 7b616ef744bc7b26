package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourbar/internal/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.Setup(logger.Config{Level: "info", JSON: true, Writer: &buf})
	require.NoError(t, err)
	assert.Same(t, l, logger.L())

	l.Debug("hidden")
	l.Info("solve.ok", "samples", 361)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one JSON line")
	assert.Equal(t, "solve.ok", rec["msg"])
	assert.EqualValues(t, 361, rec["samples"])
}

func TestSetup_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.Setup(logger.Config{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("solve.fault", "stage", "bounds")
	assert.Contains(t, buf.String(), "msg=solve.fault")
	assert.Contains(t, buf.String(), "stage=bounds")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetup_BadLevel(t *testing.T) {
	_, err := logger.Setup(logger.Config{Level: "chatty"})
	assert.Error(t, err)
}
