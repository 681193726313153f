package breakout

import (
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/levels"
)

// Session states
const (
	StateServe    = "serve"    // Ball parked, waiting for a serve key
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Ball left the field
	StateCleared  = "cleared"  // Every brick destroyed
)

// Minimum terminal size for a readable field.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Options configure a session. Zero values fall back to defaults.
type Options struct {
	Level  levels.Level
	Config config.BreakoutConfig
	Keys   config.Keybindings
}

// Game runs one breakout session on top of a World: serving, scoring and
// detecting the end of a run.
type Game struct {
	opts Options

	world *World

	state           string
	score           int
	bricksTotal     int
	bricksDestroyed int
	collisions      int
	tickCount       int

	runtime        core.RuntimeConfig
	screenTooSmall bool
}

// New creates a session. Call Reset before stepping.
func New(opts Options) *Game {
	if opts.Config == (config.BreakoutConfig{}) {
		opts.Config = config.DefaultBreakoutConfig()
	}
	if len(opts.Keys.MoveLeft) == 0 && len(opts.Keys.MoveRight) == 0 && len(opts.Keys.Serve) == 0 {
		opts.Keys = config.DefaultKeybindings()
	}
	if opts.Level.ID == "" {
		if l, err := levels.Get(levels.DefaultLevel); err == nil {
			opts.Level = l
		}
	}
	return &Game{opts: opts}
}

// ID returns the level being played, used as the score table key.
func (g *Game) ID() string {
	return g.opts.Level.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.opts.Level.Title == "" {
		return "Breakout"
	}
	return "Breakout: " + g.opts.Level.Title
}

// Keys returns the bindings in use.
func (g *Game) Keys() config.Keybindings {
	return g.opts.Keys
}

// World exposes the simulation for renderers and tests.
func (g *Game) World() *World {
	return g.world
}

// Reset builds a fresh field and parks the ball.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.world = NewWorld(DefaultParams(g.opts.Config.Physics.PaddleSpeed))
	Setup(g.world, g.opts.Level, g.opts.Config.Physics)

	g.state = StateServe
	g.score = 0
	g.bricksTotal = g.world.BrickCount()
	g.bricksDestroyed = 0
	g.collisions = 0
	g.tickCount = 0
}

// Resize adapts rendering to a new terminal size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.CollisionEvents().Clear()

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.finished() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.finished() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.TickSeconds()

	if g.state == StateServe {
		// The paddle may be positioned before serving; the ball waits.
		if pt, ok := g.world.Paddle(); ok {
			p := g.world.Params()
			MovePaddle(pt, PaddleDirection(in, g.opts.Keys), p.PaddleSpeed, dt, p.PaddleLeftBound, p.PaddleRightBound)
		}
		if in.AnyPressed(g.opts.Keys.Serve) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	report := g.world.Tick(in, g.opts.Keys, dt)
	g.collisions += len(report.Contacts)
	g.bricksDestroyed += report.BricksDestroyed
	g.score += report.BricksDestroyed * g.opts.Config.Gameplay.BrickPoints

	switch {
	case g.world.BrickCount() == 0 && g.bricksTotal > 0:
		g.state = StateCleared
	case g.ballLost():
		g.state = StateGameOver
	}

	return core.StepResult{State: g.State(), Collisions: g.world.CollisionEvents().Len()}
}

func (g *Game) finished() bool {
	return g.state == StateGameOver || g.state == StateCleared
}

func (g *Game) ballLost() bool {
	circle, ok := g.world.BallCircle()
	if !ok {
		return true
	}
	return circle.Center.Y+circle.Radius < FieldBottom-g.opts.Config.Gameplay.BallLostMargin
}

// CollisionEvents returns the events of the last tick.
func (g *Game) CollisionEvents() *Events[CollisionEvent] {
	return g.world.CollisionEvents()
}

// Phase returns the session state name.
func (g *Game) Phase() string {
	return g.state
}

// Stats returns run counters for persistence.
func (g *Game) Stats() RunStats {
	return RunStats{
		LevelID:         g.opts.Level.ID,
		Score:           g.score,
		BricksDestroyed: g.bricksDestroyed,
		BricksTotal:     g.bricksTotal,
		Collisions:      g.collisions,
		Ticks:           g.tickCount,
		Cleared:         g.state == StateCleared,
	}
}

// RunStats summarizes a run.
type RunStats struct {
	LevelID         string
	Score           int
	BricksDestroyed int
	BricksTotal     int
	Collisions      int
	Ticks           int
	Cleared         bool
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished(),
		Cleared:  g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}
