package core

import "time"

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone Action = iota
	ActionPop         // click or slot key
	ActionBack        // leave to the menu
	ActionRestart
	ActionQuit
	ActionPause
	ActionToggleAudio
	ActionVolumeUp
	ActionVolumeDown
)

var actionNames = [...]string{
	"None", "Pop", "Back", "Restart", "Quit", "Pause", "ToggleAudio", "VolumeUp", "VolumeDown",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Point is a cell position.
type Point struct {
	X, Y int
}

// InputFrame is everything the player did between two frames.
type InputFrame struct {
	actions uint16

	// Clicks are pointer presses in cells, oldest first.
	Clicks []Point

	// Slots are digit keys 1-9 naming a balloon by position.
	Slots []int

	// Elapsed is wall time since the previous frame. Zero means one nominal
	// tick.
	Elapsed time.Duration
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	f.actions |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.actions&(1<<a) != 0
}

// Click records a press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
	f.Set(ActionPop)
}

// Slot records digit key n.
func (f *InputFrame) Slot(n int) {
	f.Slots = append(f.Slots, n)
	f.Set(ActionPop)
}

// Clear empties the frame, keeping slice capacity.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Clicks = f.Clicks[:0]
	f.Slots = f.Slots[:0]
	f.Elapsed = 0
}
