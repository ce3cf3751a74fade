package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialogResult is returned by dialogs once the user is done. An empty path
// means the dialog was cancelled.
type dialogResult struct {
	done bool
	path string
}

// OpenDialog picks an existing file, either by browsing or by the number of a
// recent file
type OpenDialog struct {
	active bool
	picker filepicker.Model
	recent *RecentFilesTracker
	width  int
	height int
}

// NewOpenDialog creates an inactive open dialog
func NewOpenDialog(recent *RecentFilesTracker) *OpenDialog {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{}

	return &OpenDialog{
		picker: fp,
		recent: recent,
	}
}

// Show activates the dialog browsing dir and returns the command that reads it
func (d *OpenDialog) Show(dir string) tea.Cmd {
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	d.active = true
	d.picker.CurrentDirectory = dir
	d.picker.AutoHeight = false
	d.picker.Height = d.pickerHeight()

	return d.picker.Init()
}

// Hide deactivates the dialog
func (d *OpenDialog) Hide() {
	d.active = false
}

// Active reports whether the dialog is shown
func (d *OpenDialog) Active() bool {
	return d.active
}

// SetSize sets the area the dialog may use
func (d *OpenDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.picker.Height = d.pickerHeight()
}

func (d *OpenDialog) pickerHeight() int {
	reserved := 8 // header, recent list padding, help
	if d.recent != nil {
		reserved += len(d.recent.GetRecentFiles())
	}
	h := d.height - reserved
	if h < 5 {
		h = 5
	}
	return h
}

// Update feeds a message to the picker. Non-key messages must be routed here
// too: the picker reads directories asynchronously.
func (d *OpenDialog) Update(msg tea.Msg) (dialogResult, tea.Cmd) {
	if !d.active {
		return dialogResult{}, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+q":
			d.active = false
			return dialogResult{done: true}, nil

		case "1", "2", "3", "4", "5":
			num := int(keyMsg.String()[0] - '0')
			if d.recent != nil {
				if file, ok := d.recent.GetFileByNumber(num); ok {
					d.active = false
					return dialogResult{done: true, path: file.Path}, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if didSelect, selected := d.picker.DidSelectFile(msg); didSelect {
		d.active = false
		return dialogResult{done: true, path: selected}, nil
	}

	return dialogResult{}, cmd
}

// View renders the dialog
func (d *OpenDialog) View() string {
	var content strings.Builder

	heading := "OPEN FILE"
	colonLen := d.width - len(heading) - 8
	if colonLen < 3 {
		colonLen = 3
	}
	content.WriteString(GetActiveHeaderStyle(true).Render(heading) + " " +
		GetActiveColonStyle(true).Render(strings.Repeat(":", colonLen)))
	content.WriteString("\n")
	content.WriteString(DescriptionStyle.Render(d.picker.CurrentDirectory))
	content.WriteString("\n\n")

	if d.recent != nil && d.recent.HasRecentFiles() {
		content.WriteString(HeaderStyle.Render("Recent files"))
		content.WriteString("\n")
		for _, line := range d.recent.FormatRecentFilesList() {
			content.WriteString(NormalStyle.Render("  " + line))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(d.picker.View())

	help := DescriptionStyle.Render("enter open • ←/→ directories • 1-5 recent • esc cancel")

	box := ActiveBorderStyle.
		Width(max(d.width-4, 20)).
		Padding(0, 1).
		Render(content.String())

	return lipgloss.JoinVertical(lipgloss.Left, box, " "+help)
}
