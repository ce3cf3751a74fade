package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ableditor/ableditor/pkg/document"
)

// menuItem binds one menu entry to the command it issues
type menuItem struct {
	binding key.Binding
	command document.Command
	danger  bool
}

// menu is one top-level entry of the menu bar
type menu struct {
	title string
	items []menuItem
}

// KeyMap holds the editor shortcuts
type KeyMap struct {
	New    key.Binding
	Open   key.Binding
	Save   key.Binding
	SaveAs key.Binding
	Quit   key.Binding
	Cut    key.Binding
	Copy   key.Binding
	Paste  key.Binding
}

// DefaultKeyMap returns the File and Edit menu shortcuts
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^N", "New")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "Open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "Save")),
		SaveAs: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("^W", "Save as")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "Quit")),
		Cut:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "Cut")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "Copy")),
		Paste:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^V", "Paste")),
	}
}

func (k KeyMap) menus() []menu {
	return []menu{
		{
			title: "File",
			items: []menuItem{
				{binding: k.New, command: document.CommandNew},
				{binding: k.Open, command: document.CommandOpen},
				{binding: k.Save, command: document.CommandSave},
				{binding: k.SaveAs, command: document.CommandSaveAs},
				{binding: k.Quit, command: document.CommandQuit, danger: true},
			},
		},
		{
			title: "Edit",
			items: []menuItem{
				{binding: k.Cut, command: document.CommandCut},
				{binding: k.Copy, command: document.CommandCopy},
				{binding: k.Paste, command: document.CommandPaste},
			},
		},
	}
}

// CommandFor maps a key press to the menu command it triggers
func (k KeyMap) CommandFor(msg tea.KeyMsg) (document.Command, bool) {
	for _, m := range k.menus() {
		for _, item := range m.items {
			if key.Matches(msg, item.binding) {
				return item.command, true
			}
		}
	}
	return document.CommandChanged, false
}

// renderMenuBar renders "File  New ^N  Open ^O ... │ Edit  Cut ^X ..."
func renderMenuBar(k KeyMap, width int) string {
	var sections []string
	for _, m := range k.menus() {
		parts := []string{MenuHeaderStyle.Render(m.title)}
		for _, item := range m.items {
			help := item.binding.Help()
			style := MenuItemStyle
			if item.danger {
				style = MenuDangerStyle
			}
			parts = append(parts, style.Render(help.Desc)+" "+MenuKeyStyle.Render(help.Key))
		}
		sections = append(sections, strings.Join(parts, "  "))
	}

	bar := strings.Join(sections, DescriptionStyle.Render(" │ "))
	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(1).
		Render(bar)
}
