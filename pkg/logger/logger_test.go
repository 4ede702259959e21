package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "debug")
	require.NoError(t, err)
	log.Info("booked %s at %s", "2025-06-10", "09:00")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Warn("slot %s unavailable", "10:00")

	assert.Contains(t, buf.String(), "slot 10:00 unavailable")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
