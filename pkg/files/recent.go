package files

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ableditor/ableditor/pkg/models"
)

// ReadRecentFiles loads the recent files list. A missing file is an empty list.
func ReadRecentFiles(fs afero.Fs, path string) (*models.RecentFiles, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.RecentFiles{}, nil
		}
		return nil, fmt.Errorf("failed to read recent files %s: %w", path, err)
	}

	var recent models.RecentFiles
	if err := yaml.Unmarshal(content, &recent); err != nil {
		return nil, fmt.Errorf("failed to parse recent files YAML %s: %w", path, err)
	}

	return &recent, nil
}

// WriteRecentFiles replaces the recent files list on disk
func WriteRecentFiles(fs afero.Fs, path string, recent *models.RecentFiles) error {
	if err := EnsureDir(fs, path); err != nil {
		return err
	}

	content, err := yaml.Marshal(recent)
	if err != nil {
		return fmt.Errorf("failed to marshal recent files to YAML: %w", err)
	}

	if err := afero.WriteFile(fs, path, content, 0644); err != nil {
		return fmt.Errorf("failed to write recent files %s: %w", path, err)
	}

	return nil
}
