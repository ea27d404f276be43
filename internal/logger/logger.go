// Package logger configures the shared logrus logger: leveled, timestamped,
// writing to stdout and an append-only log file.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds a logger at the given level. When logFile is non-empty its
// parent directory is created and output is mirrored there; failure to open
// the file degrades to stdout-only logging rather than aborting startup.
func New(level, logFile string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if logFile == "" {
		return log
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		log.WithError(err).Warn("could not create log directory, logging to stdout only")
		return log
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("could not open log file, logging to stdout only")
		return log
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	return log
}
