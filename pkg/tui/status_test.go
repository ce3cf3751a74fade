package tui

import (
	"testing"
	"time"
)

func TestStatusManager_ShowFeedback(t *testing.T) {
	sm := NewStatusManager()

	cmd := sm.ShowFeedback("Test message", StatusTypeSuccess)
	if cmd == nil {
		t.Error("ShowFeedback should return a command")
	}

	if sm.CurrentStatus == nil {
		t.Fatal("CurrentStatus should not be nil after ShowFeedback")
	}

	if sm.CurrentStatus.Message != "Test message" {
		t.Errorf("Expected message 'Test message', got '%s'", sm.CurrentStatus.Message)
	}

	if sm.CurrentStatus.Icon != "✓" {
		t.Errorf("Expected icon '✓', got '%s'", sm.CurrentStatus.Icon)
	}
}

func TestStatusManager_IsActive(t *testing.T) {
	sm := NewStatusManager()

	if sm.IsActive() {
		t.Error("StatusManager should not be active initially")
	}

	sm.ShowError("boom")
	if !sm.IsActive() {
		t.Error("StatusManager should be active after ShowError")
	}

	// Simulate expiration
	sm.CurrentStatus.ShowUntil = time.Now().Add(-1 * time.Second)
	if sm.IsActive() {
		t.Error("StatusManager should not be active after expiration")
	}
}

func TestStatusManager_GetStatus(t *testing.T) {
	sm := NewStatusManager()

	if _, _, ok := sm.GetStatus(); ok {
		t.Error("Expected no status initially")
	}

	sm.SetPersistentMessage("a.txt was removed on disk", StatusTypeWarning)
	msg, typ, ok := sm.GetStatus()
	if !ok || msg != "⚠ a.txt was removed on disk" || typ != StatusTypeWarning {
		t.Errorf("Unexpected persistent status %q (%v, %v)", msg, typ, ok)
	}

	sm.ShowSuccess("Saved: a.txt")
	msg, typ, _ = sm.GetStatus()
	if msg != "✓ Saved: a.txt" || typ != StatusTypeSuccess {
		t.Errorf("Temporary status should win, got %q", msg)
	}

	sm.Clear()
	sm.ClearPersistentMessage()
	if _, _, ok := sm.GetStatus(); ok {
		t.Error("Expected no status after clearing")
	}
}
