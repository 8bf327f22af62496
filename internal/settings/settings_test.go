package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata points gdata at a throwaway home directory.
func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	gm, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return gm
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.AudioEnabled {
		t.Error("audio should start off")
	}
	if s.MusicVolume != 0.35 || s.SoundVolume != 0.8 {
		t.Errorf("volumes = %v/%v, want 0.35/0.8", s.MusicVolume, s.SoundVolume)
	}
}

func TestMemoryOnlyManager(t *testing.T) {
	m := NewManager(nil, nil)
	if m.Persistent() {
		t.Error("nil gdata manager should not be persistent")
	}

	m.SetAudioEnabled(true)
	if err := m.Save(); err != nil {
		t.Errorf("Save without gdata should not fail: %v", err)
	}
	if !m.Get().AudioEnabled {
		t.Error("in-memory change lost")
	}

	if err := m.Load(); err != nil {
		t.Errorf("Load without gdata should not fail: %v", err)
	}
	if m.Get() != Default() {
		t.Error("Load without gdata should reset to defaults")
	}
}

func TestSaveAndReload(t *testing.T) {
	gm := openTestGdata(t, "credit_balloons_test_save")

	m := NewManager(gm, nil)
	if m.Get() != Default() {
		t.Errorf("fresh manager = %+v, want defaults", m.Get())
	}

	m.SetAudioEnabled(true)
	m.SetMusicVolume(0.6)
	m.SetSoundVolume(0.25)
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewManager(gm, nil)
	got := reloaded.Get()
	want := Settings{AudioEnabled: true, MusicVolume: 0.6, SoundVolume: 0.25}
	if got != want {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	gm := openTestGdata(t, "credit_balloons_test_broken")
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("audioEnabled: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	m := NewManager(gm, nil)
	if m.Get() != Default() {
		t.Errorf("broken file should load defaults, got %+v", m.Get())
	}
	if err := m.Load(); err == nil {
		t.Error("Load should report the unmarshal error")
	}
}

func TestVolumeClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
	}
	m := NewManager(nil, nil)
	for _, tt := range tests {
		m.SetMusicVolume(tt.in)
		m.SetSoundVolume(tt.in)
		if got := m.Get(); got.MusicVolume != tt.want || got.SoundVolume != tt.want {
			t.Errorf("volume(%v) = %v/%v, want %v", tt.in, got.MusicVolume, got.SoundVolume, tt.want)
		}
	}
}
