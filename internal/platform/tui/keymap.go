package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

type gameBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper turns Bubble Tea key and mouse messages into game input and
// menu actions.
type KeyMapper struct {
	quit key.Binding
	game []gameBinding
	menu map[MenuAction]key.Binding
}

// NewKeyMapper returns the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(keys ...string) key.Binding { return key.NewBinding(key.WithKeys(keys...)) }

	return &KeyMapper{
		quit: bind("ctrl+c", "q"),
		game: []gameBinding{
			{bind("b", "esc"), core.ActionBack},
			{bind("p"), core.ActionPause},
			{bind("r"), core.ActionRestart},
			{bind("a"), core.ActionToggleAudio},
			{bind("+", "="), core.ActionVolumeUp},
			{bind("-"), core.ActionVolumeDown},
		},
		menu: map[MenuAction]key.Binding{
			MenuActionUp:         bind("w", "up", "k"),
			MenuActionDown:       bind("s", "down", "j"),
			MenuActionSelect:     bind("enter", " "),
			MenuActionBack:       bind("b", "esc"),
			MenuActionScoreboard: bind("tab"),
		},
	}
}

// MapKey returns the game action for msg, and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, gb := range km.game {
		if key.Matches(msg, gb.binding) {
			return gb.action, false
		}
	}
	return core.ActionNone, false
}

// slotKey returns the balloon slot (1-9) for a digit key.
func slotKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// MapKeyToFrame records msg in frame. It reports whether msg asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if n, ok := slotKey(msg); ok {
		frame.Slot(n)
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left press as a click at its cell. Other mouse
// events are ignored and return false.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.Click(msg.X, msg.Y)
	return true
}

// MenuAction is a menu command.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction returns the menu command bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for action, b := range km.menu {
		if key.Matches(msg, b) {
			return action
		}
	}
	return MenuActionNone
}
