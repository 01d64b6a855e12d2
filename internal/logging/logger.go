package logging

import (
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetupLogger sets the level by name, falling back to info for anything
// logrus does not recognize.
func SetupLogger(level string) {
	Logger.SetLevel(ParseLevel(level))
}

func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithSession tags every entry of one run with its session id.
func WithSession(id string) *logrus.Entry {
	return Logger.WithField("session", id)
}
