package config

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a logger tagged with component (e.g. "APP",
// "SESSION-MANAGER") writing text records to w at the named level.
func NewLogger(component string, w io.Writer, level string) (*log.Entry, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	return logger.WithField("component", component), nil
}

// OpenLogOutput returns the destination for log records: the file at path,
// opened for appending, or stderr when path is empty.
func OpenLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
