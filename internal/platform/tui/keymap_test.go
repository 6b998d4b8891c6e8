package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"enter", core.ActionPlay},
		{" ", core.ActionPlay},
		{"l", core.ActionLeaderboard},
		{"1", core.ActionSelectEasy},
		{"2", core.ActionSelectMedium},
		{"3", core.ActionSelectHard},
		{"esc", core.ActionBack},
		{"b", core.ActionBack},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.expected)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tc.key)
		}
	}
}

func TestKeyMapperQuitKeys(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "ctrl+c"} {
		if _, isQuit := km.MapKey(keyMsg(k)); !isQuit {
			t.Errorf("MapKey(%q) should flag quit", k)
		}
	}

	// Escape is not a hard quit; the state machine owns that decision
	if _, isQuit := km.MapKey(keyMsg("esc")); isQuit {
		t.Error("Escape must map to an action, not a hard quit")
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame(time.Now())

	if km.MapKeyToFrame(keyMsg("enter"), &frame) {
		t.Fatal("Enter is not a quit key")
	}
	if !frame.Has(core.ActionPlay) {
		t.Error("Enter should set ActionPlay on the frame")
	}
}
