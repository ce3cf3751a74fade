package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusFeedback represents a temporary status message
type StatusFeedback struct {
	Message   string
	Icon      string
	ShowUntil time.Time
	Type      StatusType
}

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeError
	StatusTypeInfo
)

var statusIcons = map[StatusType]string{
	StatusTypeSuccess: "✓",
	StatusTypeWarning: "⚠",
	StatusTypeError:   "×",
	StatusTypeInfo:    "ℹ",
}

// StatusManager manages temporary status messages and one persistent warning
type StatusManager struct {
	CurrentStatus     *StatusFeedback
	DefaultDuration   time.Duration
	PersistentMessage string
	PersistentType    StatusType
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 3 * time.Second,
	}
}

// ShowFeedback displays a status message with an icon
func (sm *StatusManager) ShowFeedback(message string, statusType StatusType) tea.Cmd {
	sm.CurrentStatus = &StatusFeedback{
		Message:   message,
		Icon:      statusIcons[statusType],
		ShowUntil: time.Now().Add(sm.DefaultDuration),
		Type:      statusType,
	}

	// Redraw once the message has expired
	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback(message, StatusTypeSuccess)
}

func (sm *StatusManager) ShowWarning(message string) tea.Cmd {
	return sm.ShowFeedback(message, StatusTypeWarning)
}

func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback(message, StatusTypeError)
}

func (sm *StatusManager) ShowInfo(message string) tea.Cmd {
	return sm.ShowFeedback(message, StatusTypeInfo)
}

// SetPersistentMessage sets a message that persists until cleared
func (sm *StatusManager) SetPersistentMessage(message string, statusType StatusType) {
	sm.PersistentMessage = message
	sm.PersistentType = statusType
}

// ClearPersistentMessage clears the persistent message
func (sm *StatusManager) ClearPersistentMessage() {
	sm.PersistentMessage = ""
}

// Clear removes the current status
func (sm *StatusManager) Clear() {
	sm.CurrentStatus = nil
}

// IsActive checks if a temporary status is currently showing
func (sm *StatusManager) IsActive() bool {
	if sm.CurrentStatus == nil {
		return false
	}

	if time.Now().After(sm.CurrentStatus.ShowUntil) {
		sm.CurrentStatus = nil
		return false
	}

	return true
}

// GetStatus returns the message to show and its type. A temporary status
// wins over the persistent one.
func (sm *StatusManager) GetStatus() (string, StatusType, bool) {
	if sm.IsActive() {
		return fmt.Sprintf("%s %s", sm.CurrentStatus.Icon, sm.CurrentStatus.Message), sm.CurrentStatus.Type, true
	}

	if sm.PersistentMessage != "" {
		return fmt.Sprintf("%s %s", statusIcons[sm.PersistentType], sm.PersistentMessage), sm.PersistentType, true
	}

	return "", StatusTypeInfo, false
}

// ClearStatusMsg is sent when a temporary status expires
type ClearStatusMsg struct{}
