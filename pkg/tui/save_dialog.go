package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SaveDialog asks for the path to save to and confirms overwriting an
// existing file
type SaveDialog struct {
	active  bool
	input   textinput.Model
	confirm *ConfirmationModel
	exists  func(path string) bool
	isDir   func(path string) bool
	err     string
	result  dialogResult
	width   int
}

// NewSaveDialog creates an inactive save dialog. exists and isDir query the
// file system the document is saved to.
func NewSaveDialog(exists, isDir func(path string) bool) *SaveDialog {
	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.Prompt = "› "
	ti.CharLimit = 0

	return &SaveDialog{
		input:   ti,
		confirm: NewConfirmation(),
		exists:  exists,
		isDir:   isDir,
	}
}

// Show activates the dialog. suggested prefills the input; without it the
// input starts in the working directory.
func (d *SaveDialog) Show(suggested string) tea.Cmd {
	d.active = true
	d.err = ""
	d.result = dialogResult{}
	d.confirm.Hide()

	value := suggested
	if value == "" {
		if wd, err := os.Getwd(); err == nil {
			value = wd + string(filepath.Separator)
		}
	}
	d.input.SetValue(value)
	d.input.CursorEnd()

	return d.input.Focus()
}

// Hide deactivates the dialog
func (d *SaveDialog) Hide() {
	d.active = false
	d.input.Blur()
}

// Active reports whether the dialog is shown
func (d *SaveDialog) Active() bool {
	return d.active
}

// SetSize sets the width the dialog may use
func (d *SaveDialog) SetSize(width int) {
	d.width = width
	d.input.Width = max(width-12, 20)
}

// Update handles input while the dialog is shown
func (d *SaveDialog) Update(msg tea.Msg) (dialogResult, tea.Cmd) {
	if !d.active {
		return dialogResult{}, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	if d.confirm.Active() {
		if isKey {
			d.confirm.Update(keyMsg)
		}
		return d.finish(nil)
	}

	if isKey {
		switch keyMsg.String() {
		case "esc", "ctrl+q":
			d.result = dialogResult{done: true}
			return d.finish(nil)

		case "enter":
			d.submit()
			return d.finish(nil)
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if isKey {
		d.err = ""
	}
	return dialogResult{}, cmd
}

func (d *SaveDialog) submit() {
	path := resolvePath(d.input.Value())
	switch {
	case path == "":
		d.err = "Please enter a file name"
	case d.isDir != nil && d.isDir(path):
		d.err = fmt.Sprintf("%s is a directory", path)
	case d.exists != nil && d.exists(path):
		d.confirm.ShowInline(
			fmt.Sprintf("%s already exists. Replace it?", filepath.Base(path)),
			true,
			func() tea.Cmd {
				d.result = dialogResult{done: true, path: path}
				return nil
			},
			func() tea.Cmd {
				return nil
			},
		)
	default:
		d.result = dialogResult{done: true, path: path}
	}
}

func (d *SaveDialog) finish(cmd tea.Cmd) (dialogResult, tea.Cmd) {
	if d.result.done {
		d.Hide()
	}
	return d.result, cmd
}

// View renders the dialog
func (d *SaveDialog) View() string {
	var content strings.Builder

	heading := "SAVE AS"
	colonLen := d.width - len(heading) - 8
	if colonLen < 3 {
		colonLen = 3
	}
	content.WriteString(GetActiveHeaderStyle(true).Render(heading) + " " +
		GetActiveColonStyle(true).Render(strings.Repeat(":", colonLen)))
	content.WriteString("\n\n")
	content.WriteString(InputStyle.Render(d.input.View()))
	content.WriteString("\n")

	switch {
	case d.confirm.Active():
		content.WriteString("\n")
		content.WriteString(WarningStyle.Render(d.confirm.View()))
	case d.err != "":
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render(d.err))
	}

	help := DescriptionStyle.Render("enter save • esc cancel")

	box := ActiveBorderStyle.
		Width(max(d.width-4, 20)).
		Padding(0, 1).
		Render(content.String())

	return lipgloss.JoinVertical(lipgloss.Left, box, " "+help)
}

// resolvePath expands "~/" and makes the path absolute
func resolvePath(input string) string {
	p := strings.TrimSpace(input)
	if p == "" || strings.HasSuffix(p, string(filepath.Separator)) {
		return ""
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
