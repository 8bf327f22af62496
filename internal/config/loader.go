package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "balloons.yaml"

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// LoadBalloons returns the game rules. An explicit customPath must load
// cleanly. Without one the first readable, valid file from searchPaths wins,
// then the embedded defaults.
func LoadBalloons(customPath string) (BalloonsConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}
	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}
	if cfg, err := decode(defaultBalloonsYAML); err == nil {
		return cfg, nil
	}
	return DefaultBalloonsConfig(), nil
}

func loadFile(path string) (BalloonsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBalloonsConfig(), fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode layers YAML over the built-in defaults, so a partial file only
// changes the keys it names.
func decode(data []byte) (BalloonsConfig, error) {
	cfg := DefaultBalloonsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}
	return cfg, cfg.Validate()
}

// ApplyBalloonsPreset rewrites the difficulty section for preset. The empty
// preset changes nothing.
func ApplyBalloonsPreset(cfg *BalloonsConfig, preset DifficultyPreset) {
	rule, ok := presets[preset]
	if !ok {
		return
	}
	if rule.fixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = rule.level
	if rule.maxBalloons > 0 {
		cfg.Gameplay.MaxBalloons = rule.maxBalloons
	}
}
