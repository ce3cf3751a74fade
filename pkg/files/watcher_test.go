package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Classify(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    fsnotify.Event
		ownWrite bool
		want     ChangeKind
		wantOK   bool
	}{
		{name: "foreign write", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Write}, want: ChangeModified, wantOK: true},
		{name: "re-created", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Create}, want: ChangeModified, wantOK: true},
		{name: "removed", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Remove}, want: ChangeRemoved, wantOK: true},
		{name: "renamed away", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Rename}, want: ChangeRemoved, wantOK: true},
		{name: "own write", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Write}, ownWrite: true},
		{name: "removal during own write", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Remove}, ownWrite: true, want: ChangeRemoved, wantOK: true},
		{name: "chmod", event: fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Chmod}},
		{name: "sibling file", event: fsnotify.Event{Name: "/docs/b.txt", Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWatcher(nil, nil)
			w.now = func() time.Time { return now }
			w.target = "/docs/a.txt"
			if tt.ownWrite {
				w.NoteOwnWrite()
			}

			change, ok := w.classify(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, change.Kind)
				assert.Equal(t, "/docs/a.txt", change.Path)
				assert.Equal(t, now, change.Timestamp)
			}
		})
	}
}

func TestWatcher_OwnWriteExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	w := newWatcher(nil, nil)
	w.now = func() time.Time { return now }
	w.target = "/docs/a.txt"

	w.NoteOwnWrite()
	now = now.Add(2 * ownWriteGrace)

	_, ok := w.classify(fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Write})
	assert.True(t, ok)
}

func TestWatcher_NoTarget(t *testing.T) {
	w := newWatcher(nil, nil)
	_, ok := w.classify(fsnotify.Event{Name: "/docs/a.txt", Op: fsnotify.Write})
	assert.False(t, ok)
}

func TestWatcher_DetectsForeignRemoval(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello"), 0644))

	w, err := NewWatcher(nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch(target))
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.Remove(target))

	select {
	case change := <-w.Changes():
		assert.Equal(t, target, change.Path)
		assert.Equal(t, ChangeRemoved, change.Kind)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for removal event")
	}
}

func TestWatcher_WatchMissingDirectory(t *testing.T) {
	w, err := NewWatcher(nil)
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "missing", "a.txt"))
	assert.Error(t, err)
}
