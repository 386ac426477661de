package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("robot created")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "robot created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug("command executed")
	assert.Contains(t, buf.String(), "command executed")
	assert.Contains(t, buf.String(), "debug")
}

func TestNewWithWriter_Invalid(t *testing.T) {
	_, err := NewWithWriter(Config{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithWriter(Config{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
