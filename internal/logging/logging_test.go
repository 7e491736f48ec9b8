package logging_test

import (
	"bytes"
	"testing"

	"github.com/decred/slog"
	"github.com/stretchr/testify/assert"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lb, ok := logging.NewLogBackend(&buf, "warn")
	assert.True(t, ok)

	log := lb.Logger(logging.SubsystemGame)
	log.Infof("hidden")
	log.Warnf("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "GAME")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	lb, ok := logging.NewLogBackend(&buf, "chatty")
	assert.False(t, ok)

	log := lb.Logger(logging.SubsystemAPI)
	log.Debugf("hidden")
	log.Infof("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNilBackendIsDisabled(t *testing.T) {
	var lb *logging.LogBackend
	assert.Equal(t, slog.Disabled, lb.Logger(logging.SubsystemAPI))
	assert.Equal(t, slog.Disabled, logging.OrDisabled(nil))
}
