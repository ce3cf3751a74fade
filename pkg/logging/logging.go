// Package logging builds the application logger.
//
// A terminal UI owns stdout, so log entries go to a file under the user cache
// directory. When logging is disabled the logger discards everything.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileName is the log file created inside the log directory
const FileName = "ableditor.log"

type options struct {
	level  logrus.Level
	output io.Writer
}

// Option configures the logger
type Option func(*options)

// WithLevel sets the minimum level written
func WithLevel(level logrus.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput writes to w instead of the log file
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New returns a logger writing text entries to the configured output, or a
// discarding logger when enabled is false
func New(enabled bool, opts ...Option) *logrus.Logger {
	o := options{level: logrus.InfoLevel, output: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logrus.New()
	logger.SetLevel(o.level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if enabled {
		logger.SetOutput(o.output)
	} else {
		logger.SetOutput(io.Discard)
	}
	return logger
}

// Setup opens (appending) the log file at path and returns a logger writing to
// it. The returned closer must be closed on exit. When enabled is false no
// file is created.
func Setup(fs afero.Fs, enabled bool, path string, opts ...Option) (*logrus.Logger, io.Closer, error) {
	if !enabled {
		return New(false, opts...), nopCloser{}, nil
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	opts = append([]Option{WithOutput(f)}, opts...)
	return New(true, opts...), f, nil
}

// DefaultPath returns <user cache dir>/ableditor/ableditor.log
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return filepath.Join(dir, "ableditor", FileName), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
