package tui

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentFilesTracker_AddFile(t *testing.T) {
	rft := NewRecentFilesTracker()

	rft.AddFile("/tmp/a.txt")
	rft.AddFile("/tmp/b.txt")
	rft.AddFile("/tmp/a.txt")

	require.Len(t, rft.RecentFiles, 2)
	assert.Equal(t, "/tmp/a.txt", rft.RecentFiles[0].Path)
	assert.Equal(t, 2, rft.RecentFiles[0].AccessCount)
	assert.Equal(t, "/tmp/b.txt", rft.RecentFiles[1].Path)
}

func TestRecentFilesTracker_MaxFiles(t *testing.T) {
	rft := NewRecentFilesTracker()
	for _, p := range []string{"/1", "/2", "/3", "/4", "/5", "/6"} {
		rft.AddFile(p)
	}

	require.Len(t, rft.RecentFiles, 5)
	assert.Equal(t, "/6", rft.RecentFiles[0].Path)
	assert.Equal(t, "/2", rft.RecentFiles[4].Path)
}

func TestRecentFilesTracker_GetFileByNumber(t *testing.T) {
	rft := NewRecentFilesTracker()
	rft.AddFile("/tmp/a.txt")

	file, ok := rft.GetFileByNumber(1)
	assert.True(t, ok)
	assert.Equal(t, "a.txt", file.Name)

	_, ok = rft.GetFileByNumber(0)
	assert.False(t, ok)
	_, ok = rft.GetFileByNumber(2)
	assert.False(t, ok)
}

func TestRecentFilesTracker_RemoveFile(t *testing.T) {
	rft := NewRecentFilesTracker()
	rft.AddFile("/tmp/a.txt")
	rft.AddFile("/tmp/b.txt")

	rft.RemoveFile("/tmp/a.txt")
	require.Len(t, rft.RecentFiles, 1)
	assert.Equal(t, "/tmp/b.txt", rft.RecentFiles[0].Path)
}

func TestRecentFilesTracker_FormatRecentFilesList(t *testing.T) {
	rft := NewRecentFilesTracker()
	assert.Nil(t, rft.FormatRecentFilesList())

	rft.AddFile("/tmp/a.txt")
	rft.AddFile("/a/very/long/directory/name/that/goes/on/b.txt")

	assert.Equal(t, []string{"1. b.txt", "2. /tmp/a.txt"}, rft.FormatRecentFilesList())
}

func TestRecentFilesTracker_Persistence(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/config/ableditor/recent.yaml"

	rft := NewRecentFilesTracker()
	rft.AddFile("/tmp/a.txt")
	rft.AddFile("/tmp/b.txt")
	require.NoError(t, rft.Save(fs, path))

	loaded, err := LoadRecentFilesTracker(fs, path)
	require.NoError(t, err)
	require.Len(t, loaded.RecentFiles, 2)
	assert.Equal(t, "/tmp/b.txt", loaded.RecentFiles[0].Path)
	assert.Equal(t, "/tmp/a.txt", loaded.RecentFiles[1].Path)
}
