// Package config provides YAML-based game configuration loading and
// difficulty management for the balloon arcade.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned (wrapped) when a loaded config fails validation.
var ErrInvalid = errors.New("invalid config")

// BalloonsConfig contains all configuration for Credit Balloons.
type BalloonsConfig struct {
	Gameplay   BalloonsGameplay `yaml:"gameplay"`
	Terminal   BalloonGeometry  `yaml:"terminal"` // Units are screen cells
	Window     BalloonGeometry  `yaml:"window"`   // Units are pixels
	Events     []EventConfig    `yaml:"events"`   // Empty means the built-in catalog
	Palette    []PaletteColor   `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BalloonsGameplay holds the unit-independent rules.
type BalloonsGameplay struct {
	MaxBalloons     int     `yaml:"max_balloons"`
	SpawnInterval   float64 `yaml:"spawn_interval"` // Seconds between spawns
	WinScore        int     `yaml:"win_score"`      // 0 disables winning (endless)
	InitialBalloons int     `yaml:"initial_balloons"`
	MaxFrameDelta   float64 `yaml:"max_frame_delta"` // Seconds; longer frames are clamped
	FeedbackSeconds float64 `yaml:"feedback_seconds"`
}

// BalloonGeometry sizes and moves balloons in one unit system.
type BalloonGeometry struct {
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	WidthPerChar float64 `yaml:"width_per_char"` // Width grows with label length
	HeightRatio  float64 `yaml:"height_ratio"`   // height = width * ratio

	MinSpeed float64 `yaml:"min_speed"` // Upward units per second
	MaxSpeed float64 `yaml:"max_speed"`
	MaxDrift float64 `yaml:"max_drift"` // Horizontal units per second, either way

	SpawnOffsetMin float64 `yaml:"spawn_offset_min"` // Distance below the field bottom
	SpawnOffsetMax float64 `yaml:"spawn_offset_max"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	CullMargin     float64 `yaml:"cull_margin"` // Distance above the top before removal

	PlacementAttempts int     `yaml:"placement_attempts"`
	CloseX            float64 `yaml:"close_x"` // Fraction of combined widths
	CloseY            float64 `yaml:"close_y"` // Fraction of combined heights
}

// EventConfig is a credit event in a custom deck.
type EventConfig struct {
	Label string `yaml:"label"`
	Delta int    `yaml:"delta"`
}

// PaletteColor is a named balloon color.
type PaletteColor struct {
	Name   string `yaml:"name"`
	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to rise speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from the spawn interval at max difficulty
}

// Validate checks that the config can drive a session.
func (c BalloonsConfig) Validate() error {
	g := c.Gameplay
	if g.MaxBalloons <= 0 {
		return fmt.Errorf("%w: max_balloons must be positive, got %d", ErrInvalid, g.MaxBalloons)
	}
	if g.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn_interval must be positive, got %v", ErrInvalid, g.SpawnInterval)
	}
	if g.MaxFrameDelta <= 0 {
		return fmt.Errorf("%w: max_frame_delta must be positive, got %v", ErrInvalid, g.MaxFrameDelta)
	}
	if g.InitialBalloons < 0 {
		return fmt.Errorf("%w: initial_balloons cannot be negative", ErrInvalid)
	}
	if err := c.Terminal.validate("terminal"); err != nil {
		return err
	}
	if err := c.Window.validate("window"); err != nil {
		return err
	}
	for i, e := range c.Events {
		if e.Label == "" {
			return fmt.Errorf("%w: events[%d] has an empty label", ErrInvalid, i)
		}
	}
	return nil
}

func (g BalloonGeometry) validate(profile string) error {
	switch {
	case g.MinWidth <= 0 || g.MaxWidth < g.MinWidth:
		return fmt.Errorf("%w: %s width range [%v, %v]", ErrInvalid, profile, g.MinWidth, g.MaxWidth)
	case g.HeightRatio <= 0:
		return fmt.Errorf("%w: %s height_ratio must be positive", ErrInvalid, profile)
	case g.MinSpeed <= 0 || g.MaxSpeed < g.MinSpeed:
		return fmt.Errorf("%w: %s speed range [%v, %v]", ErrInvalid, profile, g.MinSpeed, g.MaxSpeed)
	case g.MaxDrift < 0:
		return fmt.Errorf("%w: %s max_drift cannot be negative", ErrInvalid, profile)
	case g.SpawnOffsetMax < g.SpawnOffsetMin:
		return fmt.Errorf("%w: %s spawn offset range [%v, %v]", ErrInvalid, profile, g.SpawnOffsetMin, g.SpawnOffsetMax)
	case g.PlacementAttempts <= 0:
		return fmt.Errorf("%w: %s placement_attempts must be positive", ErrInvalid, profile)
	}
	return nil
}

// DifficultyPreset names a starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // progression off
)

type presetRule struct {
	level       float64
	maxBalloons int // 0 keeps the configured crowd
	fixed       bool
}

var presets = map[DifficultyPreset]presetRule{
	DifficultyEasy:   {level: 0.0, maxBalloons: 6},
	DifficultyNormal: {level: 0.3},
	DifficultyHard:   {level: 0.7, maxBalloons: 10},
	DifficultyFixed:  {fixed: true},
}

// ParsePreset checks a preset name. The empty string is valid and means no
// preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return "", nil
	}
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, name)
	}
	return p, nil
}
