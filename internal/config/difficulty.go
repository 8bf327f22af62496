package config

import "math"

// minIntervalFraction is the shortest spawn interval, as a share of the base.
const minIntervalFraction = 0.4

// Difficulty turns progress through a run into a level in [0, 1] and scales
// rise speed and spawn pacing by it.
type Difficulty struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficulty builds a curve from cfg.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	return &Difficulty{cfg: cfg, base: clampF(cfg.InitialLevel, 0, 1)}
}

// Active reports whether the level ever moves away from zero.
func (d *Difficulty) Active() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far the run is toward MaxAt, or false when the curve does
// not track score or frames.
func (d *Difficulty) progress(score, frames int) (float64, bool) {
	var at int
	switch d.cfg.Progression.Type {
	case "score":
		at = score
	case "time":
		at = frames
	default:
		return 0, false
	}
	return clampF(float64(at)/math.Max(float64(d.cfg.Progression.MaxAt), 1), 0, 1), true
}

// Level is the base level raised toward 1 by progress. It is always 0 when
// the curve is disabled.
func (d *Difficulty) Level(score, frames int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	p, ok := d.progress(score, frames)
	if !ok {
		return d.base
	}
	return d.base + p*(1-d.base)
}

// Speed scales a rise speed.
func (d *Difficulty) Speed(base float64, score, frames int) float64 {
	return base * (1 + d.Level(score, frames)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens a spawn interval, never below minIntervalFraction
// of base.
func (d *Difficulty) SpawnInterval(base float64, score, frames int) float64 {
	cut := base * (1 - d.Level(score, frames)*d.cfg.Scaling.IntervalReduction)
	return math.Max(cut, base*minIntervalFraction)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
