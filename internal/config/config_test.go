package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BalloonsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("balloons"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultBalloonsConfig()
	if fromYAML.Gameplay != want.Gameplay {
		t.Errorf("gameplay mismatch:\n yaml=%+v\n code=%+v", fromYAML.Gameplay, want.Gameplay)
	}
	if fromYAML.Terminal != want.Terminal {
		t.Errorf("terminal geometry mismatch:\n yaml=%+v\n code=%+v", fromYAML.Terminal, want.Terminal)
	}
	if fromYAML.Window != want.Window {
		t.Errorf("window geometry mismatch:\n yaml=%+v\n code=%+v", fromYAML.Window, want.Window)
	}
	if len(fromYAML.Palette) != len(want.Palette) {
		t.Errorf("palette has %d colors, expected %d", len(fromYAML.Palette), len(want.Palette))
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded defaults fail validation: %v", err)
	}
}

func TestDefaultGameplayConstants(t *testing.T) {
	g := DefaultBalloonsConfig().Gameplay

	if g.MaxBalloons != 8 {
		t.Errorf("MaxBalloons = %d, expected 8", g.MaxBalloons)
	}
	if g.SpawnInterval != 0.88 {
		t.Errorf("SpawnInterval = %v, expected 0.88", g.SpawnInterval)
	}
	if g.WinScore != 850 {
		t.Errorf("WinScore = %d, expected 850", g.WinScore)
	}
	if g.MaxFrameDelta != 0.05 {
		t.Errorf("MaxFrameDelta = %v, expected 0.05", g.MaxFrameDelta)
	}
}

func TestLoadBalloonsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  max_balloons: 3\n  spawn_interval: 0.5\n  max_frame_delta: 0.05\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBalloons(path)
	if err != nil {
		t.Fatalf("LoadBalloons() failed: %v", err)
	}
	if cfg.Gameplay.MaxBalloons != 3 {
		t.Errorf("MaxBalloons = %d, expected 3", cfg.Gameplay.MaxBalloons)
	}
	// Untouched sections keep their defaults
	if cfg.Window.MinWidth != 170 {
		t.Errorf("Window.MinWidth = %v, expected default 170", cfg.Window.MinWidth)
	}
	if len(cfg.Palette) != 7 {
		t.Errorf("Palette should default to 7 colors, got %d", len(cfg.Palette))
	}
}

func TestLoadBalloonsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBalloons(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBalloons(bad); err == nil {
		t.Error("unparsable explicit config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  max_balloons: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBalloons(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid config error = %v, expected ErrInvalid", err)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BalloonsConfig)
	}{
		{"inverted width range", func(c *BalloonsConfig) { c.Terminal.MaxWidth = c.Terminal.MinWidth - 1 }},
		{"zero speed", func(c *BalloonsConfig) { c.Window.MinSpeed = 0 }},
		{"inverted spawn offsets", func(c *BalloonsConfig) { c.Window.SpawnOffsetMax = c.Window.SpawnOffsetMin - 1 }},
		{"no placement attempts", func(c *BalloonsConfig) { c.Terminal.PlacementAttempts = 0 }},
		{"empty event label", func(c *BalloonsConfig) { c.Events = []EventConfig{{Label: "", Delta: 5}} }},
		{"zero spawn interval", func(c *BalloonsConfig) { c.Gameplay.SpawnInterval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBalloonsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyBalloonsPreset(t *testing.T) {
	cfg := DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, "")
	if cfg.Difficulty.Enabled {
		t.Error("empty preset should leave progression disabled")
	}

	ApplyBalloonsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Gameplay.MaxBalloons != 10 {
		t.Errorf("hard preset MaxBalloons = %d, expected 10", cfg.Gameplay.MaxBalloons)
	}

	ApplyBalloonsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	// Fixed ignores the level left behind by earlier presets.
	d := NewDifficulty(cfg.Difficulty)
	if got := d.Level(5000, 100000); got != 0 {
		t.Errorf("fixed preset Level = %v, expected 0", got)
	}
	if got := d.Speed(60, 5000, 100000); got != 60 {
		t.Errorf("fixed preset Speed = %v, expected base 60", got)
	}
	if got := d.SpawnInterval(1.2, 5000, 100000); got != 1.2 {
		t.Errorf("fixed preset SpawnInterval = %v, expected base 1.2", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalid) {
			t.Errorf("ParsePreset(%q) error should wrap ErrInvalid", tt.in)
		}
	}
}

func TestApplyEasyPresetShrinksCrowd(t *testing.T) {
	cfg := DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, DifficultyEasy)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0 || cfg.Gameplay.MaxBalloons != 6 {
		t.Errorf("easy preset: %+v, max balloons %d", cfg.Difficulty, cfg.Gameplay.MaxBalloons)
	}

	cfg = DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, DifficultyNormal)
	if cfg.Gameplay.MaxBalloons != DefaultBalloonsConfig().Gameplay.MaxBalloons {
		t.Error("normal preset should keep the configured crowd")
	}
}
