// Package assets resolves optional media files through ordered candidate
// lists. A missing or unreadable candidate moves resolution to the next one;
// when all fail the caller falls back to generated visuals or silence.
package assets

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned (wrapped) when every candidate of a chain failed.
var ErrExhausted = errors.New("all candidates failed")

// Chain walks a candidate list one failure at a time.
type Chain struct {
	name       string
	candidates []string
	index      int
}

// NewChain creates a chain positioned at its first candidate.
func NewChain(name string, candidates ...string) *Chain {
	return &Chain{
		name:       name,
		candidates: append([]string(nil), candidates...),
	}
}

// Name returns the asset name used in logs and errors.
func (c *Chain) Name() string {
	return c.name
}

// Current returns the candidate to try next.
func (c *Chain) Current() (string, bool) {
	if c.Exhausted() {
		return "", false
	}
	return c.candidates[c.index], true
}

// Advance moves past a failed candidate. Returns false once nothing is left.
func (c *Chain) Advance() bool {
	if c.index < len(c.candidates) {
		c.index++
	}
	return !c.Exhausted()
}

// Exhausted reports whether every candidate has failed.
func (c *Chain) Exhausted() bool {
	return c.index >= len(c.candidates)
}

// Reset rewinds the chain to its first candidate.
func (c *Chain) Reset() {
	c.index = 0
}

// Resolve tries load on each remaining candidate in order and returns the
// first success along with the path that produced it. The chain stays on the
// successful candidate, so a later failure of the same asset can Advance and
// resolve again.
func Resolve[T any](c *Chain, load func(path string) (T, error)) (T, string, error) {
	var zero T
	var lastErr error
	for {
		path, ok := c.Current()
		if !ok {
			break
		}
		v, err := load(path)
		if err == nil {
			return v, path, nil
		}
		lastErr = err
		c.Advance()
	}
	if lastErr == nil {
		return zero, "", fmt.Errorf("assets: %s: %w", c.name, ErrExhausted)
	}
	return zero, "", fmt.Errorf("assets: %s: %w: %w", c.name, ErrExhausted, lastErr)
}

// BackgroundCandidates lists background image locations in priority order.
func BackgroundCandidates() []string {
	return []string{
		"assets/backgrounds/game-background.jpg",
		"assets/backgrounds/game-background.jpeg",
		"assets/backgrounds/game-background.png",
		"game-background.jpg",
		"game-background.jpeg",
		"game-background.png",
	}
}

// MusicCandidates lists background music locations in priority order.
func MusicCandidates() []string {
	return []string{
		"assets/audio/music/theme.mp3",
		"assets/audio/music/theme.wav",
		"assets/audio/theme.mp3",
		"audio/music/theme.mp3",
		"audio/theme.mp3",
		"theme.mp3",
		"theme.wav",
	}
}

// PopCandidates lists pop sound locations in priority order.
func PopCandidates() []string {
	return []string{
		"assets/audio/sfx/pop.wav",
		"assets/audio/pop.wav",
		"audio/sfx/pop.wav",
		"audio/pop.wav",
		"pop.wav",
	}
}

// BalloonCandidates lists artwork locations for one palette color.
func BalloonCandidates(color string) []string {
	return []string{
		"assets/balloons/" + color + ".png",
		"balloons/" + color + ".png",
		color + ".png",
	}
}
