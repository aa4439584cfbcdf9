// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init and writes to stderr
// at info level until then.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL (default "info") and LOG_FORMAT ("json"
// or text). Call it once from main.
func Init() {
	Log = New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// New builds a logger with the given level and format. Unknown levels fall
// back to info.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	l.SetOutput(out)
	return l
}

// SetLevel overrides the level of Log when name parses.
func SetLevel(name string) bool {
	parsed, err := logrus.ParseLevel(name)
	if err != nil {
		return false
	}
	Log.SetLevel(parsed)
	return true
}
