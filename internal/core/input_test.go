package core

import (
	"testing"
	"time"
)

func TestInputFrameClickSetsPop(t *testing.T) {
	f := NewInputFrame()
	f.Click(3, 4)

	if !f.Has(ActionPop) {
		t.Error("Click should set ActionPop")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{3 4}]", f.Clicks)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Click(1, 1)
	f.Slot(2)
	f.Set(ActionPause)
	f.Elapsed = 16 * time.Millisecond

	f.Clear()

	if f.Has(ActionPause) || f.Has(ActionPop) {
		t.Error("Clear should remove all actions")
	}
	if len(f.Clicks) != 0 || len(f.Slots) != 0 {
		t.Error("Clear should drop clicks and slots")
	}
	if f.Elapsed != 0 {
		t.Errorf("Clear should reset Elapsed, got %v", f.Elapsed)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionPop, "Pop"},
		{ActionToggleAudio, "ToggleAudio"},
		{ActionVolumeDown, "VolumeDown"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) || f.Has(ActionBack) {
		t.Error("zero frame should accept actions")
	}
}

func TestRuntimeConfigFrameDuration(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if cfg.FrameDuration() != 20*time.Millisecond {
		t.Errorf("FrameDuration() = %v, expected 20ms", cfg.FrameDuration())
	}

	cfg.TickRate = 0
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() with zero rate = %v, expected 1/60s", cfg.FrameDuration())
	}
}
