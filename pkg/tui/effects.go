package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ableditor/ableditor/pkg/document"
)

// dialogWidth is the width of confirmation and alert dialogs
const dialogWidth = 56

// dispatch feeds ev to the controller and runs the resulting effects. Effects
// that complete synchronously (loads, writes) feed their result back before
// dispatch returns; dialog replies arrive later through key handling.
func (a *App) dispatch(ev document.Event) tea.Cmd {
	var cmds []tea.Cmd
	queue := []document.Event{ev}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		for _, effect := range a.controller.Handle(next, a) {
			reply, cmd := a.apply(effect)
			if reply != nil {
				queue = append(queue, reply)
			}
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}

func (a *App) apply(effect document.Effect) (document.Event, tea.Cmd) {
	switch e := effect.(type) {
	case document.Confirm:
		a.confirm.ShowDialog(AppName, e.Message, e.YesLabel, e.NoLabel,
			e.Prompt == document.PromptDiscardChanges, dialogWidth,
			func() tea.Cmd { return a.dispatch(document.Confirmed{Yes: true}) },
			func() tea.Cmd { return a.dispatch(document.Confirmed{Yes: false}) },
		)
		return nil, nil

	case document.PickOpen:
		dir := ""
		if path := a.controller.State().Path; path != "" {
			dir = filepath.Dir(path)
		}
		return nil, a.open.Show(dir)

	case document.PickSave:
		return nil, a.save.Show(e.Suggested)

	case document.Alert:
		detail := ""
		if e.Err != nil {
			detail = e.Err.Error()
		}
		a.confirm.ShowAlert(AppName, e.Message, detail, dialogWidth,
			func() tea.Cmd { return a.dispatch(document.Acknowledged{}) },
		)
		return nil, nil

	case document.LoadFile:
		return a.load(e.Path)

	case document.WriteFile:
		return a.write(e.Path)

	case document.ClearBuffer:
		a.buffer.Clear()
		a.syncEditorFromBuffer()
		return nil, a.status.ShowInfo("New file")

	case document.ClipboardOp:
		return nil, a.clipboardOp(e.Op)

	case document.Terminate:
		a.log.Info("editor terminated")
		a.terminating = true
		a.persistRecent()
		return nil, tea.Quit

	case document.Fatal:
		a.log.WithError(e.Err).Error("fatal error")
		a.fatal = e.Err
		a.persistRecent()
		// The session ends once the error has been acknowledged
		a.open.Hide()
		a.save.Hide()
		a.confirm.ShowAlert(AppName, "An error occurred", e.Err.Error(), dialogWidth,
			func() tea.Cmd {
				a.terminating = true
				return tea.Quit
			},
		)
		return nil, nil
	}

	a.log.WithField("effect", fmt.Sprintf("%T", effect)).Warn("unhandled effect")
	return nil, nil
}

func (a *App) load(path string) (document.Event, tea.Cmd) {
	err := a.buffer.Load(path)
	if err != nil {
		a.log.WithError(err).WithField("path", path).Error("failed to load file")
		return document.Loaded{Path: path, Err: err}, nil
	}

	a.syncEditorFromBuffer()
	a.lastSaved = time.Time{}
	a.stats.LastSaved = a.lastSaved
	a.recent.AddFile(path)
	a.persistRecent()
	a.watch(path)
	a.log.WithField("path", path).Info("file opened")

	return document.Loaded{Path: path}, a.status.ShowSuccess(fmt.Sprintf("Opened: %s", filepath.Base(path)))
}

func (a *App) write(path string) (document.Event, tea.Cmd) {
	// The write may land on the watched target or become it
	if a.watcher != nil {
		a.watcher.NoteOwnWrite()
	}

	if err := a.buffer.Save(path); err != nil {
		a.log.WithError(err).WithField("path", path).Error("failed to save file")
		return document.Written{Path: path, Err: err}, nil
	}

	a.lastSaved = time.Now()
	a.stats.LastSaved = a.lastSaved
	a.recent.AddFile(path)
	a.persistRecent()
	a.watch(path)
	a.log.WithField("path", path).Info("file saved")

	return document.Written{Path: path}, a.status.ShowSuccess(fmt.Sprintf("Saved: %s", filepath.Base(path)))
}

// watch points the external change watcher at the new save target
func (a *App) watch(path string) {
	a.status.ClearPersistentMessage()
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.log.WithError(err).Warn("external changes will not be detected")
	}
}

func (a *App) persistRecent() {
	if a.recentPath == "" {
		return
	}
	if err := a.recent.Save(a.fs, a.recentPath); err != nil {
		a.log.WithError(err).Warn("failed to save recent files")
	}
}
