package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/models"
)

// RecentFilesTracker tracks recently opened and saved files for quick access
type RecentFilesTracker struct {
	RecentFiles []models.RecentFile
	MaxFiles    int
	LastUpdated time.Time
}

// NewRecentFilesTracker creates a new recent files tracker
func NewRecentFilesTracker() *RecentFilesTracker {
	return &RecentFilesTracker{
		RecentFiles: make([]models.RecentFile, 0, 5),
		MaxFiles:    5,
	}
}

// LoadRecentFilesTracker reads the persisted list at path
func LoadRecentFilesTracker(fs afero.Fs, path string) (*RecentFilesTracker, error) {
	rft := NewRecentFilesTracker()
	recent, err := files.ReadRecentFiles(fs, path)
	if err != nil {
		return rft, err
	}
	rft.RecentFiles = append(rft.RecentFiles, recent.Files...)
	if len(rft.RecentFiles) > rft.MaxFiles {
		rft.RecentFiles = rft.RecentFiles[:rft.MaxFiles]
	}
	return rft, nil
}

// Save persists the list to path
func (rft *RecentFilesTracker) Save(fs afero.Fs, path string) error {
	return files.WriteRecentFiles(fs, path, &models.RecentFiles{Files: rft.RecentFiles})
}

// AddFile moves path to the front of the list
func (rft *RecentFilesTracker) AddFile(path string) {
	cleanPath := filepath.Clean(path)
	baseName := filepath.Base(cleanPath)
	now := time.Now()

	for i, rf := range rft.RecentFiles {
		if rf.Path == cleanPath {
			rft.RecentFiles[i].LastUsed = now
			rft.RecentFiles[i].AccessCount++

			if i > 0 {
				file := rft.RecentFiles[i]
				copy(rft.RecentFiles[1:i+1], rft.RecentFiles[0:i])
				rft.RecentFiles[0] = file
			}

			rft.LastUpdated = now
			return
		}
	}

	newFile := models.RecentFile{
		Path:        cleanPath,
		Name:        baseName,
		LastUsed:    now,
		AccessCount: 1,
	}

	rft.RecentFiles = append([]models.RecentFile{newFile}, rft.RecentFiles...)

	if len(rft.RecentFiles) > rft.MaxFiles {
		rft.RecentFiles = rft.RecentFiles[:rft.MaxFiles]
	}

	rft.LastUpdated = now
}

// GetRecentFiles returns the list of recent files
func (rft *RecentFilesTracker) GetRecentFiles() []models.RecentFile {
	return rft.RecentFiles
}

// HasRecentFiles checks if there are any recent files
func (rft *RecentFilesTracker) HasRecentFiles() bool {
	return len(rft.RecentFiles) > 0
}

// GetFileByNumber returns a file by its display number (1-indexed)
func (rft *RecentFilesTracker) GetFileByNumber(num int) (models.RecentFile, bool) {
	if num < 1 || num > len(rft.RecentFiles) {
		return models.RecentFile{}, false
	}
	return rft.RecentFiles[num-1], true
}

// RemoveFile removes a specific file from the recent list
func (rft *RecentFilesTracker) RemoveFile(path string) {
	cleanPath := filepath.Clean(path)

	for i, rf := range rft.RecentFiles {
		if rf.Path == cleanPath {
			rft.RecentFiles = append(rft.RecentFiles[:i], rft.RecentFiles[i+1:]...)
			rft.LastUpdated = time.Now()
			return
		}
	}
}

// FormatRecentFilesList formats the recent files as numbered lines
func (rft *RecentFilesTracker) FormatRecentFilesList() []string {
	if !rft.HasRecentFiles() {
		return nil
	}

	formatted := make([]string, 0, len(rft.RecentFiles))
	for i, rf := range rft.RecentFiles {
		formatted = append(formatted, fmt.Sprintf("%d. %s", i+1, formatRecentFile(rf)))
	}

	return formatted
}

// formatRecentFile shows the directory when it is short enough
func formatRecentFile(rf models.RecentFile) string {
	display := rf.Name
	dir := filepath.Dir(rf.Path)
	if dir != "." && len(dir) < 30 {
		display = filepath.Join(dir, rf.Name)
	}
	return display
}
