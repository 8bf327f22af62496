package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

// TickMsg advances the game one frame. It holds the wall time the tick fired;
// the model steps by the gap since the previous one.
type TickMsg time.Time

// tickCmd schedules the next frame for rate frames per second.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(core.RuntimeConfig{TickRate: rate}.FrameDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
