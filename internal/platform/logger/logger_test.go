package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"vetclinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.Debug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, logger.Warn, logger.ParseLevel(" warning "))
	assert.Equal(t, logger.Info, logger.ParseLevel(""))
	assert.Equal(t, logger.Info, logger.ParseLevel("nope"))
}

func TestJSONLogger_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{
		Level:  logger.Info,
		Format: logger.FormatJSON,
		App:    "vetclinic",
		Output: &buf,
	})

	log.Debug("hidden", nil)
	log.With(map[string]any{"request_id": "abc"}).Error("query failed", map[string]any{
		"err": errors.New("boom"),
		"":    "dropped",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "query failed", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "vetclinic", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, entry, "")
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.ParseFormat("text"), Output: &buf})

	log.Info("server started", map[string]any{"addr": ":8080"})

	out := buf.String()
	assert.Contains(t, out, `msg="server started"`)
	assert.Contains(t, out, "addr=\":8080\"")
}
