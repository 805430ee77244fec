package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug("chord built", zap.String("voicing", "C4-F4-Bb4-Eb5"), zap.Int("size", 4))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "chord built", entry["msg"])
	assert.Equal(t, "C4-F4-Bb4-Eb5", entry["voicing"])
	assert.Equal(t, float64(4), entry["size"])
}

func TestAutoFormatFallsBackToJSONForNonTerminals(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "auto", Output: &buf})
	require.NoError(t, err)

	logger.Info("hello")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml", Output: &bytes.Buffer{}})
	assert.ErrorContains(t, err, "xml")
}
