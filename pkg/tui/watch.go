package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ableditor/ableditor/pkg/files"
)

// externalChangeMsg carries a watcher notification into the event loop
type externalChangeMsg files.Change

// closeRequestMsg replaces the QuitMsg of a window close or SIGTERM so the
// editor can ask about unsaved work first
type closeRequestMsg struct{}

// waitForChange blocks on the watcher channel. It is re-armed after every
// delivered change.
func waitForChange(changes <-chan files.Change) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return externalChangeMsg(change)
	}
}
