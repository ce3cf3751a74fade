package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run starts the editor and blocks until it exits. It returns the fatal error
// that ended the session, if any.
func Run(app *App, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithFilter(interceptQuit),
	}, opts...)

	final, err := tea.NewProgram(app, options...).Run()
	if err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	if a, ok := final.(*App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}

// interceptQuit turns quit requests the editor did not issue itself into a
// Quit command
func interceptQuit(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.QuitMsg); !ok {
		return msg
	}
	if a, ok := model.(*App); ok && !a.Terminated() {
		return closeRequestMsg{}
	}
	return msg
}

// fatalModel shows one blocking error dialog
type fatalModel struct {
	dialog *ConfirmationModel
	width  int
	height int
}

func (m *fatalModel) Init() tea.Cmd {
	return nil
}

func (m *fatalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.dialog.Update(msg)
	}
	return m, nil
}

func (m *fatalModel) View() string {
	if !m.dialog.Active() {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
}

// ShowFatal displays err in a blocking dialog until it is acknowledged
func ShowFatal(err error, opts ...tea.ProgramOption) error {
	m := &fatalModel{dialog: NewConfirmation()}
	m.dialog.ShowAlert(AppName, "An error occurred", err.Error(), dialogWidth, func() tea.Cmd {
		return tea.Quit
	})

	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, runErr := tea.NewProgram(m, options...).Run(); runErr != nil {
		return fmt.Errorf("failed to show error: %w", runErr)
	}
	return nil
}
