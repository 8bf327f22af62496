package balloons

import "math"

// advance moves every balloon by dt seconds, bouncing off the side walls and
// culling balloons that have risen past the cull margin. Iterates backwards
// so removal does not skip entries. Returns the number culled.
func (s *Session) advance(dt float64) int {
	culled := 0
	for i := len(s.active) - 1; i >= 0; i-- {
		b := &s.active[i]
		b.Y -= b.Speed * dt
		b.X += b.Drift * dt

		if b.X <= 0 || b.X+b.Width >= s.field.W {
			b.Drift = -b.Drift
			b.X = clampX(b.X, b.Width, s.field.W)
		}

		if b.Y+b.Height < -s.geom.CullMargin {
			s.removeAt(i)
			culled++
		}
	}
	return culled
}

// clampX keeps a box of width w inside [0, fieldW]. A box wider than the
// field is pinned to the left edge.
func clampX(x, w, fieldW float64) float64 {
	return math.Max(0, math.Min(fieldW-w, x))
}

func (s *Session) removeAt(i int) Balloon {
	b := s.active[i]
	s.active = append(s.active[:i], s.active[i+1:]...)
	return b
}
