package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"quit q", runeKey('q'), core.ActionQuit, true},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"audio", runeKey('a'), core.ActionToggleAudio, false},
		{"back b", runeKey('b'), core.ActionBack, false},
		{"back esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"volume up", runeKey('+'), core.ActionVolumeUp, false},
		{"volume up unshifted", runeKey('='), core.ActionVolumeUp, false},
		{"volume down", runeKey('-'), core.ActionVolumeDown, false},
		{"enter is not a game key", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
		{"arrows are not game keys", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSlots(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, r := range "1590" {
		km.MapKeyToFrame(runeKey(r), &frame)
	}

	want := []int{1, 5, 9}
	if len(frame.Slots) != len(want) {
		t.Fatalf("slots = %v, want %v", frame.Slots, want)
	}
	for i := range want {
		if frame.Slots[i] != want[i] {
			t.Errorf("slot %d = %d, want %d", i, frame.Slots[i], want[i])
		}
	}
	if !frame.Has(core.ActionPop) {
		t.Error("slot keys should mark a pop")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should register")
	}
	release := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouseToFrame(release, &frame) {
		t.Error("release should be ignored")
	}
	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(right, &frame) {
		t.Error("right button should be ignored")
	}

	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 12, Y: 7}) {
		t.Errorf("clicks = %v", frame.Clicks)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('j'), MenuActionDown},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColor(0, 0, "ab", core.ColorPink)
	scr.DrawText(3, 1, "cd")

	out := RenderScreen(scr)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q: %q", want, out)
		}
	}
}
