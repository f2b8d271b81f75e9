package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Configure sets the level and text formatter of logger. debug forces the
// debug level regardless of level.
func Configure(logger *logrus.Logger, out io.Writer, level string, debug bool) error {
	lvl := logrus.InfoLevel

	if strings.TrimSpace(level) != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if debug {
		lvl = logrus.DebugLevel
	}

	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	return nil
}
