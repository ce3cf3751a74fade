//go:build !gui

package gui

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/models"
)

// Options configures the desktop editor
type Options struct {
	Fs       afero.Fs
	Path     string
	Settings *models.Settings
	Log      logrus.FieldLogger
	Watcher  *files.Watcher
}

// IsAvailable reports whether this build includes the desktop frontend
func IsAvailable() bool {
	return false
}

// Run is a stub for builds without the desktop frontend
func Run(Options) error {
	return ErrUnavailable
}
