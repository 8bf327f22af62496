package balloons

import "math"

// spawn creates one balloon below the playfield and adds it to the active set.
// Callers enforce the concurrent limit.
func (s *Session) spawn() Balloon {
	g := s.geom
	ev := s.deck.Take()
	w, h := balloonSize(ev.Label, g)
	x, y := s.findSpawnPosition(w, h)

	speed := s.randBetween(g.MinSpeed, g.MaxSpeed)
	speed = s.difficulty.Speed(speed, s.score, s.frames)

	b := Balloon{
		ID:     s.nextID,
		Event:  ev,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Speed:  speed,
		Drift:  s.randBetween(-g.MaxDrift, g.MaxDrift),
		Color:  s.randomColor(),
	}
	s.nextID++
	s.active = append(s.active, b)
	return b
}

// findSpawnPosition picks a spawn point below the visible area, retrying a
// bounded number of times to avoid crowding existing balloons. When every
// attempt is too close the last candidate is used anyway.
func (s *Session) findSpawnPosition(w, h float64) (x, y float64) {
	g := s.geom
	maxX := math.Max(g.EdgeMargin, s.field.W-w-g.EdgeMargin)

	for i := 0; i < g.PlacementAttempts; i++ {
		x = s.randBetween(g.EdgeMargin, maxX)
		y = s.field.H + s.randBetween(g.SpawnOffsetMin, g.SpawnOffsetMax)
		if !s.tooClose(x, y, w, h) {
			return x, y
		}
	}
	return x, y
}

// tooClose reports whether a candidate box crowds any active balloon.
func (s *Session) tooClose(x, y, w, h float64) bool {
	g := s.geom
	for _, b := range s.active {
		closeX := math.Abs(x-b.X) < (w+b.Width)*g.CloseX
		closeY := math.Abs(y-b.Y) < (h+b.Height)*g.CloseY
		if closeX && closeY {
			return true
		}
	}
	return false
}

// spawnDue runs the spawn clock for one frame. Time keeps accumulating while
// the field is full, so slots freed later are refilled in a burst.
func (s *Session) spawnDue(dt float64) int {
	s.spawnClock += dt
	interval := s.difficulty.SpawnInterval(s.cfg.Gameplay.SpawnInterval, s.score, s.frames)

	spawned := 0
	for s.spawnClock >= interval && len(s.active) < s.cfg.Gameplay.MaxBalloons {
		s.spawnClock -= interval
		s.spawn()
		spawned++
	}
	return spawned
}

func (s *Session) randBetween(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *Session) randomColor() string {
	if len(s.cfg.Palette) == 0 {
		return ""
	}
	return s.cfg.Palette[s.rng.Intn(len(s.cfg.Palette))].Name
}
