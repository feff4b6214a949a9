package log_test

import (
	"bytes"
	"testing"

	"github.com/mklimuk/metricline"
	"github.com/mklimuk/metricline/log"

	"github.com/stretchr/testify/assert"
)

var (
	_ metricline.Logger = &log.LeveledLogger{}
	_ metricline.Logger = log.SlogAdapter{}
)

func TestLeveledLogger_DebugToggle(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLeveledLogger(&buf)
	l.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
	l.SetDebug(true)
	l.Debugf("visible %d", 1)
	assert.Contains(t, buf.String(), "visible 1")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "debug", log.LevelDebug.String())
	assert.Equal(t, "info", log.LevelInfo.String())
	assert.Equal(t, "error", log.LevelError.String())
}
