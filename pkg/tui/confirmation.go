package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                          // Full dialog with border and centered layout
	ConfirmTypeAlert                           // Dialog with a single acknowledgement
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Details     []string         // Optional detail lines
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	YesLabel    string           // Custom label for Yes (default: "Yes")
	NoLabel     string           // Custom label for No (default: "No")
	Width       int              // Width for dialog type
}

// ConfirmationModel handles confirmation prompts and alerts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
		if m.config.Type == ConfirmTypeAlert {
			m.config.YesLabel = "OK"
		}
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Config returns the configuration of the current prompt
func (m *ConfirmationModel) Config() ConfirmationConfig {
	return m.config
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	if m.config.Type == ConfirmTypeAlert {
		switch msg.String() {
		case "enter", "esc", " ", "y", "Y", "o", "O":
			m.active = false
			if m.onConfirm != nil {
				return m.onConfirm()
			}
		}
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	switch m.config.Type {
	case ConfirmTypeDialog, ConfirmTypeAlert:
		return m.renderDialog()
	default:
		return m.renderInline()
	}
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

// renderInline renders a simple inline confirmation message
func (m *ConfirmationModel) renderInline() string {
	options := formatConfirmOptions(m.config)
	message := fmt.Sprintf("%s %s", m.config.Message, options)

	if m.viewWidth > 0 {
		messageWidth := lipgloss.Width(message)
		if messageWidth < m.viewWidth {
			centeredStyle := lipgloss.NewStyle().
				Width(m.viewWidth).
				Align(lipgloss.Center)
			return centeredStyle.Render(message)
		}
	}

	return message
}

// renderDialog renders a full dialog with border
func (m *ConfirmationModel) renderDialog() string {
	borderColor := ColorActive
	if m.config.Type == ConfirmTypeAlert {
		borderColor = ColorWarning
	}
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 6 // Border and padding
	center := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center)

	var mainContent strings.Builder

	if m.config.Title != "" {
		mainContent.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		mainContent.WriteString("\n\n")
	}

	if m.config.Message != "" {
		mainContent.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		mainContent.WriteString("\n")
	}

	if m.config.Warning != "" {
		mainContent.WriteString("\n")
		warning := wordwrap.String(m.config.Warning, contentWidth)
		mainContent.WriteString(center.Render(WarningStyle.Render(warning)))
		mainContent.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		mainContent.WriteString("\n")
		for _, detail := range m.config.Details {
			mainContent.WriteString(DescriptionStyle.Render("  • " + detail))
			mainContent.WriteString("\n")
		}
	}

	mainContent.WriteString("\n")
	mainContent.WriteString(center.Render(formatConfirmOptions(m.config)))

	return borderStyle.
		Width(width).
		Render(mainContent.String())
}

// formatConfirmOptions renders the key hints. Destructive prompts show the
// affirmative answer in red.
func formatConfirmOptions(config ConfirmationConfig) string {
	yesStyle := SuccessStyle.Bold(true)
	noStyle := ErrorStyle.Bold(true)
	if config.Destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}

	if config.Type == ConfirmTypeAlert {
		return NormalStyle.Bold(true).Render(fmt.Sprintf("[enter] %s", config.YesLabel))
	}

	return fmt.Sprintf("%s  %s",
		yesStyle.Render(fmt.Sprintf("[y] %s", config.YesLabel)),
		noStyle.Render(fmt.Sprintf("[n] %s", config.NoLabel)))
}

// ShowInline shows a one-line confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// ShowDialog shows a bordered yes/no dialog with custom labels
func (m *ConfirmationModel) ShowDialog(title, message, yesLabel, noLabel string, destructive bool, width int, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       title,
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeDialog,
		YesLabel:    yesLabel,
		NoLabel:     noLabel,
		Width:       width,
	}, onConfirm, onCancel)
}

// ShowAlert shows a message that only needs to be acknowledged
func (m *ConfirmationModel) ShowAlert(title, message, detail string, width int, onAcknowledge func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:   title,
		Message: message,
		Warning: detail,
		Type:    ConfirmTypeAlert,
		Width:   width,
	}, onAcknowledge, nil)
}
