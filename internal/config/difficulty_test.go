package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyDisabledIsNeutral(t *testing.T) {
	d := NewDifficulty(DefaultBalloonsConfig().Difficulty)

	if d.Active() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(2.0, 800, 5000); got != 2.0 {
		t.Errorf("Speed() with progression off = %v, expected base 2.0", got)
	}
	if got := d.SpawnInterval(0.88, 800, 5000); got != 0.88 {
		t.Errorf("SpawnInterval() with progression off = %v, expected base 0.88", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name   string
		cfg    DifficultyConfig
		score  int
		frames int
		want   float64
	}{
		{"score start", scoreCurve(0), 0, 0, 0},
		{"score half", scoreCurve(0), 50, 0, 0.5},
		{"score max", scoreCurve(0), 100, 0, 1},
		{"score clamped", scoreCurve(0), 400, 0, 1},
		{"negative score", scoreCurve(0), -300, 0, 0},
		{"time halfway from 0.5", DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.5,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		}, 0, 5, 0.75},
		{"fixed", DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  ProgressionConfig{Type: "none"},
		}, 900, 900, 0.3},
		{"initial level clamped", DifficultyConfig{
			Enabled:      true,
			InitialLevel: 4,
			Progression:  ProgressionConfig{Type: "none"},
		}, 0, 0, 1},
		{"disabled", DifficultyConfig{InitialLevel: 0.8}, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDifficulty(tt.cfg).Level(tt.score, tt.frames); !almostEqual(got, tt.want) {
				t.Errorf("Level(%d, %d) = %v, want %v", tt.score, tt.frames, got, tt.want)
			}
		})
	}
}

func scoreCurve(initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficulty(scoreCurve(0))

	if got := d.Speed(2.0, 100, 0); !almostEqual(got, 4.0) {
		t.Errorf("Speed at max = %v, expected 4.0", got)
	}
	if got := d.SpawnInterval(1.0, 100, 0); !almostEqual(got, 0.5) {
		t.Errorf("SpawnInterval at max = %v, expected 0.5", got)
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{IntervalReduction: 0.95},
	})

	if got := d.SpawnInterval(1.0, 0, 0); !almostEqual(got, minIntervalFraction) {
		t.Errorf("SpawnInterval should floor at %v, got %v", minIntervalFraction, got)
	}
}
