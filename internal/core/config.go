package core

import "time"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the nominal duration of one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Won      bool // GameOver reached by winning rather than losing
	Pops     int  // Targets hit so far, for run statistics
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventPop EventKind = iota + 1 // A target was popped
	EventWin                      // The game transitioned to its won state
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPop:
		return "pop"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event reports a side-effect-worthy occurrence to the platform (sounds,
// logging). Games emit events; they never perform side effects themselves.
type Event struct {
	Kind  EventKind
	Label string
	Delta int // Applied score change for EventPop
	Score int // Score after the event
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}
