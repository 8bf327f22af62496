package balloons

import (
	"math/rand"

	"github.com/vovakirdan/credit-balloons/internal/config"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a new session.
type Options struct {
	Config     config.BalloonsConfig
	Geometry   config.BalloonGeometry // Zero value selects Config.Terminal
	Field      Playfield
	Seed       int64
	Difficulty *config.Difficulty // Nil builds one from Config.Difficulty
}

// TickResult summarizes one simulation frame.
type TickResult struct {
	Spawned int
	Culled  int
}

// PopResult describes an applied pop.
type PopResult struct {
	Balloon Balloon
	Applied int // Score change after clamping at zero
	Score   int
	Won     bool // True only on the pop that crossed the win score
}

// Session is one run of the game. It is not safe for concurrent use; the
// platform drives it from a single loop.
type Session struct {
	cfg        config.BalloonsConfig
	geom       config.BalloonGeometry
	field      Playfield
	rng        *rand.Rand
	deck       *Deck
	difficulty *config.Difficulty

	active     []Balloon
	score      int
	spawnClock float64
	phase      Phase
	nextID     int
	pops       int
	elapsed    float64
	frames     int
}

// NewSession creates a session and performs the initial spawn.
func NewSession(opts Options) *Session {
	geom := opts.Geometry
	if geom.MaxWidth == 0 {
		geom = opts.Config.Terminal
	}
	diff := opts.Difficulty
	if diff == nil {
		diff = config.NewDifficulty(opts.Config.Difficulty)
	}
	s := &Session{
		cfg:        opts.Config,
		geom:       geom,
		field:      opts.Field,
		difficulty: diff,
	}
	s.Reset(opts.Seed)
	return s
}

// Reset starts a fresh run: score zero, empty field, a freshly shuffled
// deck, then the initial balloons.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.deck = NewDeck(catalogFromConfig(s.cfg.Events), s.rng)
	s.deck.Refill()
	s.active = s.active[:0]
	s.score = 0
	s.spawnClock = 0
	s.phase = PhasePlaying
	s.nextID = 1
	s.pops = 0
	s.elapsed = 0
	s.frames = 0

	n := s.cfg.Gameplay.InitialBalloons
	if max := s.cfg.Gameplay.MaxBalloons; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		s.spawn()
	}
}

// Tick advances the simulation by dt seconds. Negative frames are ignored and
// long frames are clamped. Nothing moves once the run is won.
func (s *Session) Tick(dt float64) TickResult {
	if s.phase != PhasePlaying || dt <= 0 {
		return TickResult{}
	}
	if dt > s.cfg.Gameplay.MaxFrameDelta {
		dt = s.cfg.Gameplay.MaxFrameDelta
	}
	s.elapsed += dt
	s.frames++

	var res TickResult
	res.Spawned = s.spawnDue(dt)
	res.Culled = s.advance(dt)
	return res
}

// Pop removes the balloon with the given id and applies its event. The score
// never drops below zero. Returns false if the balloon is gone or the run is
// over.
func (s *Session) Pop(id int) (PopResult, bool) {
	if s.phase != PhasePlaying {
		return PopResult{}, false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return PopResult{}, false
	}

	b := s.removeAt(idx)
	next := s.score + b.Event.Delta
	if next < 0 {
		next = 0
	}
	res := PopResult{
		Balloon: b,
		Applied: next - s.score,
		Score:   next,
	}
	s.score = next
	s.pops++

	if win := s.cfg.Gameplay.WinScore; win > 0 && s.score >= win {
		s.phase = PhaseWon
		s.active = s.active[:0]
		res.Won = true
	}
	return res, true
}

// BalloonAt returns the topmost balloon containing the point. Later balloons
// are drawn over earlier ones, so the search runs backwards.
func (s *Session) BalloonAt(x, y float64) (Balloon, bool) {
	for i := len(s.active) - 1; i >= 0; i-- {
		if s.active[i].Bounds().Contains(x, y) {
			return s.active[i], true
		}
	}
	return Balloon{}, false
}

// Resize changes the playfield and pulls balloons back inside the side walls.
func (s *Session) Resize(field Playfield) {
	s.field = field
	for i := range s.active {
		b := &s.active[i]
		b.X = clampX(b.X, b.Width, field.W)
	}
}

func (s *Session) indexOf(id int) int {
	for i, b := range s.active {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Score returns the current credit score.
func (s *Session) Score() int { return s.score }

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Won reports whether the win score has been reached.
func (s *Session) Won() bool { return s.phase == PhaseWon }

// Active returns a copy of the balloons in draw order.
func (s *Session) Active() []Balloon {
	return append([]Balloon(nil), s.active...)
}

// Pops returns the number of balloons popped this run.
func (s *Session) Pops() int { return s.pops }

// Elapsed returns simulated seconds since the last reset.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Field returns the current playfield.
func (s *Session) Field() Playfield { return s.field }

// Deck exposes the event deck for inspection.
func (s *Session) Deck() *Deck { return s.deck }

// Config returns the rules the session runs with.
func (s *Session) Config() config.BalloonsConfig { return s.cfg }
