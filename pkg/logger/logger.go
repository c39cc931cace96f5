package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger configured with the given level and format.
// Unknown levels fall back to info.
func New(level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

// Default returns a logger with info level and text output.
func Default() *logrus.Logger {
	return New("info", "text")
}
