package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.InfoLevel
	logger := New(&buf, opts)

	logger.Debug("hidden")
	logger.Info("created", "id", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "id=5")
	assert.Contains(t, out, "tada")
}

func TestNewNoColor(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.NoColor = true
	New(&buf, opts).Error("boom")

	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
