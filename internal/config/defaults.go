package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

// DefaultBalloonsConfig returns the default Credit Balloons configuration.
// It mirrors defaults/balloons.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBalloonsConfig() BalloonsConfig {
	return BalloonsConfig{
		Gameplay: BalloonsGameplay{
			MaxBalloons:     8,
			SpawnInterval:   0.88,
			WinScore:        850,
			InitialBalloons: 4,
			MaxFrameDelta:   0.05,
			FeedbackSeconds: 0.62,
		},
		Terminal: BalloonGeometry{
			MinWidth:          14,
			MaxWidth:          24,
			WidthPerChar:      0.45,
			HeightRatio:       0.34,
			MinSpeed:          1.5,
			MaxSpeed:          3.3,
			MaxDrift:          1.2,
			SpawnOffsetMin:    1,
			SpawnOffsetMax:    6,
			EdgeMargin:        1,
			CullMargin:        2,
			PlacementAttempts: 32,
			CloseX:            0.58,
			CloseY:            0.48,
		},
		Window: BalloonGeometry{
			MinWidth:          170,
			MaxWidth:          280,
			WidthPerChar:      4.45,
			HeightRatio:       1.22,
			MinSpeed:          40,
			MaxSpeed:          88,
			MaxDrift:          16,
			SpawnOffsetMin:    42,
			SpawnOffsetMax:    300,
			EdgeMargin:        8,
			CullMargin:        160,
			PlacementAttempts: 32,
			CloseX:            0.58,
			CloseY:            0.48,
		},
		Palette: DefaultPalette(),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 850,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultPalette returns the seven pastel balloon colors.
func DefaultPalette() []PaletteColor {
	return []PaletteColor{
		{Name: "mint", Fill: "#d4f6e8", Stroke: "#b2e5d3"},
		{Name: "sky", Fill: "#d7efff", Stroke: "#b7dff8"},
		{Name: "peach", Fill: "#ffe4cf", Stroke: "#f4cfae"},
		{Name: "lemon", Fill: "#fff7c9", Stroke: "#f0e5a1"},
		{Name: "rose", Fill: "#ffe0ea", Stroke: "#f1bed2"},
		{Name: "aqua", Fill: "#d8f7f4", Stroke: "#b8e7e3"},
		{Name: "lavender", Fill: "#ece5ff", Stroke: "#d5c9f8"},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "balloons", "balloons_endless":
		return defaultBalloonsYAML
	default:
		return nil
	}
}
