package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf).With("lead_id", 7)

	log.Debug("hidden")
	log.Info("message stored", "direction", "inbound")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "message stored", entry["msg"])
	assert.Equal(t, "salesagent", entry["service"])
	assert.Equal(t, float64(7), entry["lead_id"])
	assert.Equal(t, "inbound", entry["direction"])
}

func TestNewWithWriter_MasksPhones(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf).With("phone", "5511987654321")

	log.Debug("sent", "to", "5521912345678", "product", "occhiale")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "*********4321", entry["phone"])
	assert.Equal(t, "*********5678", entry["to"])
	assert.Equal(t, "occhiale", entry["product"])
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "", MaskPhone(""))
	assert.Equal(t, "***", MaskPhone("123"))
	assert.Equal(t, "****5678", MaskPhone("12345678"))
}
