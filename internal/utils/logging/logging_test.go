package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name  string
		level string
		debug bool
		want  logrus.Level
	}{
		{name: "default", level: "", want: logrus.InfoLevel},
		{name: "warn", level: "warn", want: logrus.WarnLevel},
		{name: "debug flag wins", level: "error", debug: true, want: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			require.NoError(t, Configure(logger, &bytes.Buffer{}, tt.level, tt.debug))
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Configure(logrus.New(), &bytes.Buffer{}, "chatty", false))
}

func TestConfigureWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	require.NoError(t, Configure(logger, &buf, "debug", false))

	logger.WithField("field", "machineName").Debug("fallback")

	assert.Contains(t, buf.String(), "field=machineName")
	assert.Contains(t, buf.String(), "fallback")
}
