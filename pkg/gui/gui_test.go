//go:build gui

package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ableditor/ableditor/pkg/document"
	"github.com/ableditor/ableditor/pkg/files"
)

func newTestEditor(t *testing.T, fs afero.Fs, path string) *Editor {
	t.Helper()
	e, err := NewEditor(test.NewApp(), Options{Fs: fs, Path: path})
	require.NoError(t, err)
	return e
}

func TestNewEditor_LoadsStartupFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/a.txt", []byte("hello"), 0644))

	e := newTestEditor(t, fs, "/docs/a.txt")

	assert.Equal(t, "hello", e.entry.Text)
	assert.Equal(t, "/docs/a.txt", e.State().Path)
	assert.False(t, e.State().Unsaved)
	assert.Equal(t, "AblEditor - a.txt", e.window.Title())
}

func TestEditor_TypingMarksUnsaved(t *testing.T) {
	e := newTestEditor(t, afero.NewMemMapFs(), "")

	test.Type(e.entry, "hi")

	assert.Equal(t, "hi", e.Text())
	assert.True(t, e.State().Unsaved)
	assert.Equal(t, "AblEditor *", e.window.Title())
}

func TestEditor_SaveToExistingTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/a.txt", []byte("old"), 0644))
	e := newTestEditor(t, fs, "/docs/a.txt")

	e.entry.SetText("new")
	e.dispatch(document.CommandSave)

	data, err := afero.ReadFile(fs, "/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.False(t, e.State().Unsaved)
}

func TestEditor_Drop(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/b.txt", []byte("dropped"), 0644))
	e := newTestEditor(t, fs, "")

	e.drop("file:///docs/b.txt")

	assert.Equal(t, "dropped", e.entry.Text)
	assert.Equal(t, "/docs/b.txt", e.State().Path)
	assert.False(t, e.State().Unsaved)
}

func TestEditor_DropOfMissingFileIsSwallowed(t *testing.T) {
	e := newTestEditor(t, afero.NewMemMapFs(), "")

	e.drop("file:///docs/missing.txt")

	assert.Empty(t, e.entry.Text)
	assert.Empty(t, e.State().Path)
}

func TestEditor_NewOnEmptyBuffer(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/a.txt", []byte(""), 0644))
	e := newTestEditor(t, fs, "/docs/a.txt")

	e.dispatch(document.CommandNew)

	assert.Empty(t, e.entry.Text)
	assert.Equal(t, "/docs/a.txt", e.State().Path)
	assert.False(t, e.controller.Busy())
}

func TestEditor_EditKeepsLineEndings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/a.txt", []byte("a\r\nb\r\n"), 0644))
	e := newTestEditor(t, fs, "/docs/a.txt")

	assert.Equal(t, "a\nb\n", e.entry.Text)
	e.entry.SetText("a\nb\nc")
	e.dispatch(document.CommandSave)

	data, err := afero.ReadFile(fs, "/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\nc", string(data))
}

func TestEditor_FollowChanges(t *testing.T) {
	e := newTestEditor(t, afero.NewMemMapFs(), "")

	changes := make(chan files.Change, 2)
	changes <- files.Change{Path: "/docs/a.txt", Kind: files.ChangeModified}
	changes <- files.Change{Path: "/docs/a.txt", Kind: files.ChangeRemoved}
	close(changes)
	e.followChanges(changes)

	got, err := e.status.Get()
	require.NoError(t, err)
	assert.Equal(t, "a.txt was removed on disk", got)
}
