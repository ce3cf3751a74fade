package files

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// ownWriteGrace is how long write events on the target are attributed to the
// editor's own save
const ownWriteGrace = time.Second

// ChangeKind tells how the watched file changed on disk
type ChangeKind int

const (
	ChangeModified ChangeKind = iota
	ChangeRemoved
)

func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "modified"
}

// Change is a foreign modification of the watched file
type Change struct {
	Path      string
	Kind      ChangeKind
	Timestamp time.Time
}

// Watcher reports changes made by other programs to the document's save
// target. fsnotify watches the parent directory so removal and re-creation of
// the file are both seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan Change
	stopChan  chan struct{}
	log       logrus.FieldLogger
	now       func() time.Time

	mutex         sync.Mutex
	target        string
	dir           string
	ownWriteUntil time.Time
	running       bool
}

// NewWatcher creates a stopped watcher with no target
func NewWatcher(log logrus.FieldLogger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return newWatcher(fsWatcher, log), nil
}

func newWatcher(fsWatcher *fsnotify.Watcher, log logrus.FieldLogger) *Watcher {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		log:       log,
		now:       time.Now,
	}
}

// Changes delivers foreign changes of the target. It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Watch switches the target to path. An empty path stops watching anything.
func (w *Watcher) Watch(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	var target, dir string
	if path != "" {
		target = filepath.Clean(path)
		dir = filepath.Dir(target)
	}

	if dir != w.dir {
		if w.dir != "" {
			// The directory may already be gone
			_ = w.fsWatcher.Remove(w.dir)
		}
		if dir != "" {
			if err := w.fsWatcher.Add(dir); err != nil {
				w.target, w.dir = "", ""
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
		}
	}

	w.target, w.dir = target, dir
	w.log.WithField("path", target).Debug("watching save target")
	return nil
}

// NoteOwnWrite marks the next writes to the target as the editor's own
func (w *Watcher) NoteOwnWrite() {
	w.mutex.Lock()
	w.ownWriteUntil = w.now().Add(ownWriteGrace)
	w.mutex.Unlock()
}

// Start runs the event loop in a goroutine
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true

	go w.loop()
	return nil
}

// Stop ends the event loop and closes the Changes channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		close(w.stopChan)
		w.running = false
	}
	if err := w.fsWatcher.Close(); err != nil {
		w.log.WithError(err).Error("failed to close fsnotify watcher")
	}
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			change, ok := w.classify(event)
			if !ok {
				continue
			}
			w.log.WithFields(logrus.Fields{
				"path": change.Path,
				"kind": change.Kind.String(),
			}).Info("save target changed on disk")

			select {
			case w.changes <- change:
			default:
				w.log.WithField("path", change.Path).Warn("change channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// classify decides whether an fsnotify event is a foreign change of the target
func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.target == "" || filepath.Clean(event.Name) != w.target {
		return Change{}, false
	}

	now := w.now()
	switch {
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return Change{Path: w.target, Kind: ChangeRemoved, Timestamp: now}, true
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		if now.Before(w.ownWriteUntil) {
			return Change{}, false
		}
		return Change{Path: w.target, Kind: ChangeModified, Timestamp: now}, true
	}
	return Change{}, false
}
