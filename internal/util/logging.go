// Package util provides common utilities including logging helpers,
// file system paths and small generic helpers.
package util

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostic logger. With an empty path entries go to
// fallback; otherwise they are appended to the file at path, which the
// returned close func releases.
func NewLogger(path string, fallback io.Writer, debug bool) (*log.Logger, func() error, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: path != ""})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	if path == "" {
		if fallback == nil {
			fallback = os.Stderr
		}
		logger.SetOutput(fallback)
		return logger, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(logger log.FieldLogger, context string, err error) {
	if err != nil && logger != nil {
		logger.WithError(err).Error(context)
	}
}
