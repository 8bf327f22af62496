// Package registry is the catalogue of playable modes. Each mode adds itself
// from an init func; frontends and the CLI look modes up by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

// ErrUnknownGame is wrapped by Create when no mode has the requested id.
var ErrUnknownGame = errors.New("unknown game")

// Game is a mode as seen by a frontend. A Game only simulates; input
// translation, the frame clock and output belong to whoever hosts it.
type Game interface {
	ID() string
	Title() string

	// Reset begins a fresh run on a screen of cfg's size.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame. in.Elapsed is wall time since the last call.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into dst, which the caller has cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizable games adapt to a new screen size mid-run.
type Resizable interface {
	Resize(w, h int)
}

// Describer games provide a one-line summary for menus and listings.
type Describer interface {
	Blurb() string
}

// GameInfo is the catalogue entry for a mode.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory returns a new, unstarted game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode under id. Registering an id twice panics.
func Register(id string, f Factory) {
	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Blurb = d.Blurb()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the catalogue entry for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Exists reports whether a mode is registered under id.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
