package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ableditor/ableditor/internal/cli"
	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/gui"
	"github.com/ableditor/ableditor/pkg/logging"
	"github.com/ableditor/ableditor/pkg/models"
	"github.com/ableditor/ableditor/pkg/tui"
)

// errShown marks a failure the user already saw in a dialog
var errShown = errors.New("editor stopped after an error")

func runEditor(arg string) error {
	fs := afero.NewOsFs()

	settings, settingsErr := loadSettings(fs)

	log, closer := setupLogging(fs, settings.Log && !noLog)
	defer closer.Close()

	if settingsErr != nil && !errors.Is(settingsErr, os.ErrNotExist) {
		log.WithError(settingsErr).Warn("using default settings")
	}

	if useGUI && !gui.IsAvailable() {
		return gui.ErrUnavailable
	}

	path := ""
	if arg != "" {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fatal(log, fmt.Errorf("invalid path %s: %w", arg, err))
		}
		if err := files.ValidateStartupFile(fs, abs); err != nil {
			return fatal(log, err)
		}
		path = abs
	}

	watcher, err := files.NewWatcher(log)
	if err != nil {
		log.WithError(err).Warn("external changes will not be detected")
	} else if err := watcher.Start(); err != nil {
		log.WithError(err).Warn("external changes will not be detected")
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	log.WithFields(logrus.Fields{"path": path, "gui": useGUI, "version": version}).Info("starting editor")

	if useGUI {
		if err := gui.Run(gui.Options{
			Fs:       fs,
			Path:     path,
			Settings: settings,
			Log:      log,
			Watcher:  watcher,
		}); err != nil {
			log.WithError(err).Error("editor stopped")
			return err
		}
		return nil
	}

	return runTerminal(fs, path, settings, log, watcher)
}

func runTerminal(fs afero.Fs, path string, settings *models.Settings, log logrus.FieldLogger, watcher *files.Watcher) error {
	recentPath, err := files.DefaultRecentPath()
	if err != nil {
		log.WithError(err).Warn("recent files will not be remembered")
		recentPath = ""
	}
	recent := tui.NewRecentFilesTracker()
	if recentPath != "" {
		if recent, err = tui.LoadRecentFilesTracker(fs, recentPath); err != nil {
			log.WithError(err).Warn("failed to read recent files")
		}
	}

	app, err := tui.NewApp(tui.Options{
		Fs:         fs,
		Path:       path,
		Settings:   settings,
		Log:        log,
		Recent:     recent,
		RecentPath: recentPath,
		Watcher:    watcher,
	})
	if err != nil {
		return fatal(log, err)
	}

	if err := tui.Run(app); err != nil {
		// A fatal error was already shown in the editor
		if app.Err() != nil {
			log.WithError(err).Error("editor stopped")
			return errShown
		}
		return err
	}
	return nil
}

func loadSettings(fs afero.Fs) (*models.Settings, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = files.DefaultSettingsPath(); err != nil {
			return models.DefaultSettings(), err
		}
	}
	return files.LoadSettings(fs, path)
}

// setupLogging falls back to a discarding logger when the log file cannot be
// opened
func setupLogging(fs afero.Fs, enabled bool) (*logrus.Logger, io.Closer) {
	if enabled {
		log, closer, err := openLog(fs)
		if err == nil {
			return log, closer
		}
		cli.PrintWarning("logging disabled: %v", err)
	}
	log, closer, _ := logging.Setup(fs, false, "")
	return log, closer
}

func openLog(fs afero.Fs) (*logrus.Logger, io.Closer, error) {
	path, err := logging.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	return logging.Setup(fs, true, path)
}

// fatal shows err in a blocking dialog before the process exits
func fatal(log logrus.FieldLogger, err error) error {
	log.WithError(err).Error("startup failed")
	if showErr := tui.ShowFatal(err); showErr != nil {
		return err
	}
	return errShown
}
