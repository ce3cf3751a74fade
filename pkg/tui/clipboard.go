package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ableditor/ableditor/pkg/document"
)

// Clipboard is the system clipboard
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// clipboardOp runs Cut, Copy or Paste on the editor. The textarea has no
// selection, so Cut and Copy act on the line under the cursor.
func (a *App) clipboardOp(op document.Command) tea.Cmd {
	switch op {
	case document.CommandCopy:
		if err := a.clipboard.WriteAll(a.currentLine() + "\n"); err != nil {
			a.log.WithError(err).Warn("clipboard write failed")
			return a.status.ShowError("Clipboard unavailable")
		}
		return a.status.ShowInfo("Copied line")

	case document.CommandCut:
		if err := a.clipboard.WriteAll(a.currentLine() + "\n"); err != nil {
			a.log.WithError(err).Warn("clipboard write failed")
			return a.status.ShowError("Clipboard unavailable")
		}
		a.removeCurrentLine()
		return tea.Batch(a.syncBufferFromEditor(), a.status.ShowInfo("Cut line"))

	case document.CommandPaste:
		text, err := a.clipboard.ReadAll()
		if err != nil {
			a.log.WithError(err).Warn("clipboard read failed")
			return a.status.ShowError("Clipboard unavailable")
		}
		if text == "" {
			return a.status.ShowWarning("Nothing to paste")
		}
		return a.resolvePaste(text)
	}
	return nil
}

func (a *App) currentLine() string {
	lines := strings.Split(a.editor.Value(), "\n")
	row := a.editor.Line()
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

func (a *App) removeCurrentLine() {
	lines := strings.Split(a.editor.Value(), "\n")
	row := a.editor.Line()
	if row < 0 || row >= len(lines) {
		return
	}

	lines = append(lines[:row], lines[row+1:]...)
	if len(lines) == 0 {
		lines = []string{""}
	}
	a.editor.SetValue(strings.Join(lines, "\n"))

	// SetValue leaves the cursor at the end; walk back to the removed row
	target := min(row, len(lines)-1)
	for i := 0; a.editor.Line() > target && i < 1<<20; i++ {
		a.editor.CursorUp()
	}
	a.editor.CursorStart()
}
