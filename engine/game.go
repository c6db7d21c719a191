package engine

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/systems"
)

// Game is the single owned simulation instance
// Only the scheduler goroutine (or a test) may call its methods
type Game struct {
	cfg    config.Config
	unit   int
	logger *slog.Logger
	log    *slog.Logger // logger tagged with the current run

	runID uuid.UUID
	clock *PausableClock

	Snake *components.Snake
	Mice  components.MouseSet
	Field grid.Field
	State GameState

	spawner   *systems.SpawnSystem
	expansion *systems.ExpansionSystem

	// Host-supplied max available field size, non-positive means unbounded
	maxWidth  int
	maxHeight int

	cadenceDirty bool
	finalPause   time.Duration // pause total frozen at game over
}

// Option configures a Game
type Option func(*gameOptions)

type gameOptions struct {
	rng       *rand.Rand
	logger    *slog.Logger
	time      TimeProvider
	maxWidth  int
	maxHeight int
}

// WithRand sets the spawn RNG
func WithRand(rng *rand.Rand) Option {
	return func(o *gameOptions) { o.rng = rng }
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *gameOptions) { o.logger = logger }
}

// WithTimeProvider sets the source of run time
func WithTimeProvider(tp TimeProvider) Option {
	return func(o *gameOptions) { o.time = tp }
}

// WithViewport sets the initial max available field size
func WithViewport(maxWidth, maxHeight int) Option {
	return func(o *gameOptions) {
		o.maxWidth = maxWidth
		o.maxHeight = maxHeight
	}
}

// NewGame creates a game in the Idle phase with a fresh run
func NewGame(cfg config.Config, opts ...Option) *Game {
	o := gameOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.time == nil {
		o.time = NewMonotonicTimeProvider()
	}

	g := &Game{
		cfg:       cfg,
		unit:      cfg.Gameplay.GridUnit,
		logger:    o.logger,
		clock:     NewPausableClock(o.time),
		spawner:   systems.NewSpawnSystem(cfg.Gameplay, o.rng, o.logger),
		expansion: systems.NewExpansionSystem(cfg.Gameplay, cfg.Display),
		maxWidth:  o.maxWidth,
		maxHeight: o.maxHeight,
	}
	g.Reset()
	return g
}

// Reset reinitializes every entity and counter and returns to Idle
// The field returns to its initial size, clamped to the viewport and centered
func (g *Game) Reset() {
	gp := g.cfg.Gameplay

	g.runID = uuid.New()
	g.log = g.logger.With("run", g.runID.String())

	g.Field = grid.NewField(gp.FieldWidth, gp.FieldHeight, g.unit)
	g.Field.Clamp(g.maxWidth, g.maxHeight)
	g.Field.Center(g.cfg.Display.HUDWidth)

	g.Snake = components.NewSnake(grid.Cell{X: 0, Y: g.Field.Height - g.unit}, grid.Right(g.unit))
	g.Mice.Clear()
	g.State = newGameState(gp)
	g.cadenceDirty = false
	g.finalPause = 0
	g.clock.Reset()

	g.spawner.Reset()
	g.topUp()

	g.log.Debug("game reset", "width", g.Field.Width, "height", g.Field.Height)
}

// SetAvoidPredictedPath toggles spawn avoidance of the snake's next head cells
func (g *Game) SetAvoidPredictedPath(on bool) {
	g.spawner.SetAvoidPredicted(on)
}

// RunID identifies the current run
func (g *Game) RunID() string {
	return g.runID.String()
}

// Phase returns the mode controller state
func (g *Game) Phase() Phase {
	return g.State.Phase
}

// Elapsed returns run time excluding pauses
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed()
}

// PausedFor returns time spent paused in the current run
// The wait after game over is not a pause
func (g *Game) PausedFor() time.Duration {
	if g.State.Phase == PhaseGameOver {
		return g.finalPause
	}
	return g.clock.GetTotalPauseDuration()
}

// UniqueCells counts distinct cells under the snake, stacked growth segments count once
func (g *Game) UniqueCells() int {
	cells := mapset.New[grid.Cell]()
	for _, c := range g.Snake.Body {
		cells.Put(c)
	}
	return cells.Size()
}

// Snapshot copies the state a renderer needs
func (g *Game) Snapshot() Snapshot {
	body := make([]grid.Cell, len(g.Snake.Body))
	copy(body, g.Snake.Body)

	return Snapshot{
		RunID:        g.runID.String(),
		Phase:        g.State.Phase,
		Field:        g.Field,
		Snake:        body,
		Mice:         g.Mice.All(),
		Score:        g.State.Score.Points,
		Length:       g.Snake.Len(),
		MinLife:      g.Mice.MinLife(g.State.BaseLife),
		BaseLife:     g.State.BaseLife,
		MouseTarget:  g.State.MouseTarget,
		MouseCap:     g.State.MouseCap,
		Boosted:      g.State.Boosted,
		BoostPercent: g.BoostPercent(),
		TickInterval: g.TickInterval(),
		Elapsed:      g.clock.Elapsed(),
		PausedFor:    g.PausedFor(),
	}
}

// Result summarizes the run for the game-over message
func (g *Game) Result() Result {
	return Result{
		RunID:     g.runID.String(),
		Score:     g.State.Score.Points,
		Length:    g.Snake.Len(),
		Elapsed:   g.clock.Elapsed(),
		PausedFor: g.PausedFor(),
	}
}

// topUp spawns mice up to the target, returns how many were added
func (g *Game) topUp() int {
	return g.spawner.Fill(g.Field, g.Snake, &g.Mice, &g.State.Score, g.State.BaseLife, g.State.MouseTarget)
}
