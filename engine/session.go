package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/puzzle"
	"github.com/lixenwraith/hanoi/render"
	"github.com/lixenwraith/hanoi/status"
)

// Sounder receives move feedback; audio.SoundManager satisfies it
type Sounder interface {
	PlayLift()
	PlayLand()
	PlaySolved()
}

// Options configures a Session; zero fields fall back to defaults
type Options struct {
	Geometry      puzzle.Geometry
	Motion        string // constants.MotionTick or constants.MotionDelta
	FrameInterval time.Duration
	Clock         TimeProvider
	Sound         Sounder
	Logger        *slog.Logger
	Metrics       *status.Registry
}

// Session drives one puzzle: a step per user action and a motion quantum per frame
// It rebuilds the whole puzzle whenever the requested disc count changes
type Session struct {
	geom          puzzle.Geometry
	motion        string
	frameInterval time.Duration

	clock   *PausableClock
	sound   Sounder
	log     *slog.Logger
	metrics *status.Registry

	puzzle    *puzzle.Puzzle
	lastMove  puzzle.Move
	lastFrame time.Time
	announced bool

	fpsStart  time.Time
	fpsFrames int

	// Cached metric pointers
	mDiscs  *atomic.Int64
	mStep   *atomic.Int64
	mTotal  *atomic.Int64
	mFrames *atomic.Int64
	mSolved *atomic.Bool
	mPaused *atomic.Bool
	mPhase  *status.AtomicString
	mMotion *status.AtomicString
	mFPS    *status.AtomicFloat
}

// NewSession builds a session with an initial puzzle of discs discs
func NewSession(discs int, opts Options) (*Session, error) {
	if opts.Geometry == (puzzle.Geometry{}) {
		opts.Geometry = puzzle.DefaultGeometry()
	}
	switch opts.Motion {
	case "":
		opts.Motion = constants.MotionTick
	case constants.MotionTick, constants.MotionDelta:
	default:
		return nil, fmt.Errorf("unknown motion mode %q", opts.Motion)
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Sound == nil {
		opts.Sound = silence{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}

	s := &Session{
		geom:          opts.Geometry,
		motion:        opts.Motion,
		frameInterval: opts.FrameInterval,
		clock:         NewPausableClock(opts.Clock),
		sound:         opts.Sound,
		log:           opts.Logger,
		metrics:       opts.Metrics,
	}

	m := s.metrics
	s.mDiscs = m.Ints.Get(status.KeyDiscs)
	s.mStep = m.Ints.Get(status.KeyStep)
	s.mTotal = m.Ints.Get(status.KeyTotal)
	s.mFrames = m.Ints.Get(status.KeyFrames)
	s.mSolved = m.Bools.Get(status.KeySolved)
	s.mPaused = m.Bools.Get(status.KeyPaused)
	s.mPhase = m.Strings.Get(status.KeyPhase)
	s.mMotion = m.Strings.Get(status.KeyMotion)
	s.mFPS = m.Floats.Get(status.KeyFPS)
	s.mMotion.Store(s.motion)

	if err := s.rebuild(discs); err != nil {
		return nil, err
	}
	s.lastFrame = s.clock.Now()
	s.fpsStart = s.clock.RealTime()
	return s, nil
}

// Puzzle returns the current puzzle; replaced wholesale on rebuild
func (s *Session) Puzzle() *puzzle.Puzzle { return s.puzzle }

// Metrics returns the registry the session publishes to
func (s *Session) Metrics() *status.Registry { return s.metrics }

// LastMove returns the most recent move, zero before the first step
func (s *Session) LastMove() puzzle.Move { return s.lastMove }

// Motion returns the active motion mode
func (s *Session) Motion() string { return s.motion }

// rebuild discards the current puzzle graph and starts a fresh one
func (s *Session) rebuild(discs int) error {
	p, err := puzzle.New(discs, s.geom)
	if err != nil {
		return fmt.Errorf("rebuild puzzle: %w", err)
	}
	s.puzzle = p
	s.lastMove = puzzle.Move{}
	s.announced = false

	s.log.Info("puzzle initialised", "discs", discs, "total_moves", p.TotalMoves())
	s.publish()
	return nil
}

// Sync rebuilds the puzzle if discs differs from the current disc count
// Called once per frame with the selector value
func (s *Session) Sync(discs int) error {
	if discs == s.puzzle.DiscCount() {
		return nil
	}
	return s.rebuild(discs)
}

// Reset restarts the current puzzle from step zero
func (s *Session) Reset() error {
	return s.rebuild(s.puzzle.DiscCount())
}

// Advance performs one solution step
// A disc still in flight lands first; returns false once solved
func (s *Session) Advance() (puzzle.Move, bool) {
	if s.puzzle.Settle() {
		s.landed()
	}

	m, ok := s.puzzle.Step()
	if !ok {
		s.log.Debug("step ignored, puzzle solved", "step", s.puzzle.StepIndex())
		s.publish()
		return m, false
	}

	s.lastMove = m
	s.sound.PlayLift()
	s.log.Info("move",
		"step", m.Step,
		"roles", m.First.String()+"/"+m.Second.String(),
		"from", m.From.String(),
		"to", m.To.String(),
		"disc", m.Rank,
	)
	s.publish()
	return m, true
}

// Settle lands any disc in flight immediately
func (s *Session) Settle() {
	if s.puzzle.Settle() {
		s.landed()
		s.publish()
	}
}

// Pause freezes disc motion; steps are still accepted while paused
func (s *Session) Pause() {
	s.clock.Pause()
	s.mPaused.Store(true)
	s.log.Debug("paused", "step", s.puzzle.StepIndex())
}

// Resume continues disc motion from where it froze
func (s *Session) Resume() {
	s.clock.Resume()
	s.mPaused.Store(false)
	s.log.Debug("resumed", "paused_total", s.clock.TotalPauseDuration())
}

// TogglePause flips between Pause and Resume and returns the new state
func (s *Session) TogglePause() bool {
	if s.clock.IsPaused() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// Paused reports whether motion is frozen
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Frame advances motion by one quantum and draws the puzzle
// Tick motion moves discs by the configured speed per frame; delta motion scales
// the speed by elapsed clock time relative to the frame interval
func (s *Session) Frame(surface render.Surface) {
	now := s.clock.Now()
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now
	dt = min(max(dt, 0), constants.MaxFrameDelta)

	landed := false
	switch {
	case s.clock.IsPaused():
		s.puzzle.Draw(surface)
	case s.motion == constants.MotionDelta:
		if dt > 0 {
			landed = s.puzzle.Advance(s.geom.Speed * float64(dt) / float64(s.frameInterval))
		}
		s.puzzle.Draw(surface)
	default:
		landed = s.puzzle.Render(surface)
	}

	if landed {
		s.landed()
	}
	s.countFrame()
	s.publish()
}

// landed emits feedback for a disc coming to rest and announces the solve once
func (s *Session) landed() {
	s.sound.PlayLand()
	s.log.Debug("disc landed", "step", s.lastMove.Step, "disc", s.lastMove.Rank, "peg", s.lastMove.To.String())

	if s.puzzle.Solved() && !s.puzzle.Animating() && !s.announced {
		s.announced = true
		s.sound.PlaySolved()
		s.log.Info("puzzle solved", "discs", s.puzzle.DiscCount(), "moves", s.puzzle.TotalMoves())
	}
}

func (s *Session) countFrame() {
	s.mFrames.Add(1)
	s.fpsFrames++

	wall := s.clock.RealTime()
	if elapsed := wall.Sub(s.fpsStart); elapsed >= time.Second {
		s.mFPS.Set(float64(s.fpsFrames) / elapsed.Seconds())
		s.fpsFrames = 0
		s.fpsStart = wall
	}
}

func (s *Session) publish() {
	p := s.puzzle
	s.mDiscs.Store(int64(p.DiscCount()))
	s.mStep.Store(int64(p.StepIndex()))
	s.mTotal.Store(int64(p.TotalMoves()))
	s.mSolved.Store(p.Solved() && !p.Animating())
	s.mPaused.Store(s.clock.IsPaused())

	if d, ok := p.InFlight(); ok {
		s.mPhase.Store(d.Phase().String())
	} else {
		s.mPhase.Store(puzzle.PhaseIdle.String())
	}
}

type silence struct{}

func (silence) PlayLift() {}
func (silence) PlayLand() {}
func (silence) PlaySolved() {}
