// Package logger configures the structured JSON logger used across the
// service.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger.
type Logger struct {
	*logrus.Logger
}

// New creates a logger at the given level. Unknown levels fall back to info.
func New(level string) *Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetOutput(os.Stdout)

	return &Logger{log}
}

// WithRequestID returns an entry tagged with the request id, or the bare
// logger entry when the id is empty.
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(l.Logger)
	}
	return l.Logger.WithField("request_id", requestID)
}
