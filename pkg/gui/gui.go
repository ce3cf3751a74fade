//go:build gui

package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ableditor/ableditor/pkg/buffer"
	"github.com/ableditor/ableditor/pkg/dnd"
	"github.com/ableditor/ableditor/pkg/document"
	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/models"
)

// AppName is shown in the window title
const AppName = "AblEditor"

// Options configures the desktop editor
type Options struct {
	Fs       afero.Fs
	Path     string // file to load at startup, already validated
	Settings *models.Settings
	Log      logrus.FieldLogger
	Watcher  *files.Watcher
}

// Editor is the desktop window of the editor. It owns the text widget and runs
// the effects the document controller asks for.
type Editor struct {
	fyneApp    fyne.App
	window     fyne.Window
	entry      *widget.Entry
	statusBar  *widget.Label
	status     binding.String
	shown      string // entry text the buffer was last synced with
	fs         afero.Fs
	log        logrus.FieldLogger
	buffer     *buffer.Buffer
	controller *document.Controller
	drops      dnd.Session
	watcher    *files.Watcher
	syncing    bool
	fatal      error
}

// IsAvailable reports whether this build includes the desktop frontend
func IsAvailable() bool {
	return true
}

// Run opens the editor window and blocks until it closes. It returns the
// fatal error that ended the session, if any.
func Run(opts Options) error {
	e, err := NewEditor(app.NewWithID("io.github.ableditor"), opts)
	if err != nil {
		return err
	}
	e.window.ShowAndRun()
	return e.fatal
}

// NewEditor loads the startup file (if any) and builds the window on fyneApp
func NewEditor(fyneApp fyne.App, opts Options) (*Editor, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Log == nil {
		log := logrus.New()
		log.SetLevel(logrus.PanicLevel)
		opts.Log = log
	}

	buf := buffer.New(opts.Fs)
	if opts.Path != "" {
		if err := buf.Load(opts.Path); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", opts.Path, err)
		}
	}

	e := &Editor{
		fyneApp:    fyneApp,
		fs:         opts.Fs,
		log:        opts.Log,
		buffer:     buf,
		controller: document.NewController(opts.Path, opts.Log),
		watcher:    opts.Watcher,
	}

	e.window = fyneApp.NewWindow(AppName)
	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapOff
	e.entry.TextStyle = fyne.TextStyle{Monospace: true}
	e.entry.OnChanged = func(string) { e.syncBufferFromEntry() }
	e.status = binding.NewString()
	e.statusBar = widget.NewLabelWithData(e.status)

	e.window.SetMainMenu(e.mainMenu())
	e.window.SetContent(container.NewBorder(nil, e.statusBar, nil, nil, e.entry))
	e.window.Resize(fyne.NewSize(800, 600))
	e.window.SetCloseIntercept(func() {
		if !e.controller.Busy() {
			e.dispatch(document.CommandQuit)
		}
	})
	e.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		e.drop(uris[0].String())
	})
	e.registerShortcuts()

	e.syncEntryFromBuffer()
	if opts.Path != "" {
		e.watch(opts.Path)
	}
	if e.watcher != nil {
		go e.followChanges(e.watcher.Changes())
	}
	e.updateTitle()
	e.window.Canvas().Focus(e.entry)

	return e, nil
}

// BufferEmpty implements document.Env
func (e *Editor) BufferEmpty() bool {
	return e.buffer.Empty()
}

// Exists implements document.Env
func (e *Editor) Exists(path string) bool {
	return files.Exists(e.fs, path)
}

// State exposes the document state
func (e *Editor) State() document.State {
	return e.controller.State()
}

// Text returns the buffer content
func (e *Editor) Text() string {
	return e.buffer.Text()
}

func (e *Editor) mainMenu() *fyne.MainMenu {
	item := func(label string, cmd document.Command, shortcut fyne.Shortcut) *fyne.MenuItem {
		mi := fyne.NewMenuItem(label, func() { e.dispatch(cmd) })
		mi.Shortcut = shortcut
		return mi
	}

	quit := item("Quit", document.CommandQuit, shortcutFor(fyne.KeyQ))
	quit.IsQuit = true

	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			item("New", document.CommandNew, shortcutFor(fyne.KeyN)),
			item("Open", document.CommandOpen, shortcutFor(fyne.KeyO)),
			item("Save", document.CommandSave, shortcutFor(fyne.KeyS)),
			item("Save as", document.CommandSaveAs, shortcutFor(fyne.KeyW)),
			fyne.NewMenuItemSeparator(),
			quit,
		),
		fyne.NewMenu("Edit",
			item("Cut", document.CommandCut, shortcutFor(fyne.KeyX)),
			item("Copy", document.CommandCopy, shortcutFor(fyne.KeyC)),
			item("Paste", document.CommandPaste, shortcutFor(fyne.KeyV)),
		),
	)
}

func shortcutFor(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
}

// registerShortcuts binds the File menu shortcuts on the canvas. The entry
// handles cut, copy and paste itself while focused.
func (e *Editor) registerShortcuts() {
	bindings := map[fyne.KeyName]document.Command{
		fyne.KeyN: document.CommandNew,
		fyne.KeyO: document.CommandOpen,
		fyne.KeyS: document.CommandSave,
		fyne.KeyW: document.CommandSaveAs,
		fyne.KeyQ: document.CommandQuit,
	}
	for key, cmd := range bindings {
		e.window.Canvas().AddShortcut(shortcutFor(key), func(fyne.Shortcut) {
			e.dispatch(cmd)
		})
	}
}

// dispatch feeds ev to the controller and runs the resulting effects. Loads
// and writes complete synchronously; dialog replies arrive from callbacks.
func (e *Editor) dispatch(ev document.Event) {
	queue := []document.Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		for _, effect := range e.controller.Handle(next, e) {
			if reply := e.apply(effect); reply != nil {
				queue = append(queue, reply)
			}
		}
	}
	e.updateTitle()
}

func (e *Editor) apply(effect document.Effect) document.Event {
	switch eff := effect.(type) {
	case document.Confirm:
		d := dialog.NewConfirm(AppName, eff.Message, func(yes bool) {
			e.dispatch(document.Confirmed{Yes: yes})
		}, e.window)
		d.SetConfirmText(eff.YesLabel)
		d.SetDismissText(eff.NoLabel)
		if eff.Prompt == document.PromptDiscardChanges {
			d.SetConfirmImportance(widget.DangerImportance)
		}
		d.Show()

	case document.PickOpen:
		e.showOpen()

	case document.PickSave:
		e.showSave(eff.Suggested)

	case document.Alert:
		message := eff.Message
		if eff.Err != nil {
			message = fmt.Sprintf("%s\n\n%v", message, eff.Err)
		}
		d := dialog.NewInformation(AppName, message, e.window)
		d.SetOnClosed(func() { e.dispatch(document.Acknowledged{}) })
		d.Show()

	case document.LoadFile:
		return e.load(eff.Path)

	case document.WriteFile:
		return e.write(eff.Path)

	case document.ClearBuffer:
		e.buffer.Clear()
		e.syncEntryFromBuffer()
		e.setStatus("New file")

	case document.ClipboardOp:
		e.clipboardOp(eff.Op)

	case document.Terminate:
		e.log.Info("editor terminated")
		e.close()

	case document.Fatal:
		e.log.WithError(eff.Err).Error("fatal error")
		e.fatal = eff.Err
		d := dialog.NewError(eff.Err, e.window)
		d.SetOnClosed(e.close)
		d.Show()

	default:
		e.log.WithField("effect", fmt.Sprintf("%T", effect)).Warn("unhandled effect")
	}
	return nil
}

func (e *Editor) showOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			e.log.WithError(err).Warn("open dialog failed")
		}
		if err != nil || reader == nil {
			e.dispatch(document.PathChosen{})
			return
		}
		path := reader.URI().Path()
		reader.Close()
		e.dispatch(document.PathChosen{Path: path})
	}, e.window)

	if path := e.controller.State().Path; path != "" {
		e.setLocation(d, filepath.Dir(path))
	}
	d.Show()
}

func (e *Editor) showSave(suggested string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			e.log.WithError(err).Warn("save dialog failed")
		}
		if err != nil || writer == nil {
			e.dispatch(document.PathChosen{})
			return
		}
		path := writer.URI().Path()
		writer.Close()
		e.dispatch(document.PathChosen{Path: path})
	}, e.window)

	if suggested != "" {
		d.SetFileName(filepath.Base(suggested))
		e.setLocation(d, filepath.Dir(suggested))
	}
	d.Show()
}

func (e *Editor) setLocation(d *dialog.FileDialog, dir string) {
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func (e *Editor) load(path string) document.Event {
	if err := e.buffer.Load(path); err != nil {
		e.log.WithError(err).WithField("path", path).Error("failed to load file")
		return document.Loaded{Path: path, Err: err}
	}

	e.syncEntryFromBuffer()
	e.watch(path)
	e.setStatus(fmt.Sprintf("Opened: %s", filepath.Base(path)))
	e.log.WithField("path", path).Info("file opened")
	return document.Loaded{Path: path}
}

func (e *Editor) write(path string) document.Event {
	if e.watcher != nil {
		e.watcher.NoteOwnWrite()
	}

	if err := e.buffer.Save(path); err != nil {
		e.log.WithError(err).WithField("path", path).Error("failed to save file")
		return document.Written{Path: path, Err: err}
	}

	e.watch(path)
	e.setStatus(fmt.Sprintf("Saved: %s", filepath.Base(path)))
	e.log.WithField("path", path).Info("file saved")
	return document.Written{Path: path}
}

func (e *Editor) clipboardOp(op document.Command) {
	clip := e.window.Clipboard()
	switch op {
	case document.CommandCut:
		e.entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: clip})
	case document.CommandCopy:
		e.entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: clip})
	case document.CommandPaste:
		e.paste(clip.Content())
	}
}

// drop runs a completed drag-and-drop gesture for payload
func (e *Editor) drop(payload string) {
	e.drops.Dispatch(dnd.Enter)
	e.drops.Dispatch(dnd.Release)
	e.paste(payload)
}

// paste asks the drop session what a paste means and acts on it
func (e *Editor) paste(payload string) {
	outcome := e.drops.Paste(payload, func(path string) bool {
		return files.IsRegularFile(e.fs, path)
	})

	switch outcome.Action {
	case dnd.Load:
		e.log.WithField("path", outcome.Path).Info("file dropped")
		e.dispatch(document.Dropped{Path: outcome.Path})
	case dnd.Swallow:
		e.log.WithField("payload", payload).Debug("ignored drop of a missing file")
	default:
		e.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: e.window.Clipboard()})
	}
}

func (e *Editor) syncBufferFromEntry() {
	if e.syncing || e.entry.Text == e.shown {
		return
	}
	e.buffer.Edit(e.shown, e.entry.Text)
	e.shown = e.entry.Text
	e.dispatch(document.CommandChanged)
}

func (e *Editor) syncEntryFromBuffer() {
	e.syncing = true
	e.entry.SetText(e.buffer.Display())
	e.shown = e.entry.Text
	e.syncing = false
}

func (e *Editor) watch(path string) {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Watch(path); err != nil {
		e.log.WithError(err).Warn("external changes will not be detected")
	}
}

// followChanges reports watcher changes in the status bar. It runs on its own
// goroutine and only touches the status binding; the watcher already limits
// changes to the current target.
func (e *Editor) followChanges(changes <-chan files.Change) {
	for change := range changes {
		name := filepath.Base(change.Path)
		if change.Kind == files.ChangeRemoved {
			e.setStatus(fmt.Sprintf("%s was removed on disk", name))
		} else {
			e.setStatus(fmt.Sprintf("%s was changed by another program", name))
		}
	}
}

func (e *Editor) setStatus(text string) {
	if err := e.status.Set(text); err != nil {
		e.log.WithError(err).Debug("status update dropped")
	}
}

func (e *Editor) updateTitle() {
	state := e.controller.State()
	title := AppName
	if state.HasTarget() {
		title = fmt.Sprintf("%s - %s", AppName, filepath.Base(state.Path))
	}
	if state.Unsaved {
		title += " *"
	}
	e.window.SetTitle(title)
}

func (e *Editor) close() {
	e.window.SetCloseIntercept(nil)
	e.window.Close()
	e.fyneApp.Quit()
}
