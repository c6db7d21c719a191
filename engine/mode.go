package engine

import (
	"math"
	"time"
)

// Input queues a direction, starting the run from Idle
// Ignored while Paused or after GameOver, reversals are dropped
func (g *Game) Input(h Heading) bool {
	switch g.State.Phase {
	case PhaseIdle:
		g.start()
	case PhaseRunning:
	default:
		return false
	}
	return g.Snake.Enqueue(h.Direction(g.unit))
}

func (g *Game) start() {
	if !g.State.transition(PhaseRunning) {
		return
	}
	if g.Mice.Len() == 0 {
		g.topUp()
	}
	g.clock.Resume()
	g.log.Info("game started")
}

// TogglePause flips Running and Paused, returns false if the run has not started or is over
func (g *Game) TogglePause() bool {
	switch g.State.Phase {
	case PhaseRunning:
		g.State.transition(PhasePaused)
		g.clock.Pause()
	case PhasePaused:
		g.State.transition(PhaseRunning)
		g.clock.Resume()
	default:
		return false
	}
	g.log.Debug("pause toggled", "phase", g.State.Phase.String())
	return true
}

// SetBoost turns boost on or off, returns true if the state changed
// Activation requires a started run, deactivation is always accepted
func (g *Game) SetBoost(on bool) bool {
	if on == g.State.Boosted {
		return false
	}
	if on && !g.State.Started() {
		return false
	}
	g.State.Boosted = on
	g.cadenceDirty = true
	return true
}

// Resize records the host's max available field size and shrinks the field to fit
// The field never grows in response, a snake left outside dies on its next tick
// Returns true if the field shrank
func (g *Game) Resize(maxWidth, maxHeight int) bool {
	g.maxWidth = maxWidth
	g.maxHeight = maxHeight
	if !g.clampToViewport() {
		return false
	}
	// Nothing has happened yet, rebuild so the snake starts inside the clamped field
	if g.State.Phase == PhaseIdle {
		g.Reset()
		return true
	}
	if g.State.Phase != PhaseGameOver {
		g.topUp()
	}
	g.log.Debug("field clamped to viewport", "width", g.Field.Width, "height", g.Field.Height)
	return true
}

// TickInterval returns the current tick cadence
// Boosted cadence is base / (1 + target * factor)
func (g *Game) TickInterval() time.Duration {
	base := g.cfg.Gameplay.TickInterval
	if !g.State.Boosted {
		return base
	}
	return time.Duration(float64(base) / (1 + float64(g.State.MouseTarget)*g.cfg.Gameplay.BoostFactor))
}

// AgingInterval returns the mouse aging cadence
func (g *Game) AgingInterval() time.Duration {
	return g.cfg.Gameplay.AgingInterval
}

// BoostPercent is the speed gain over base cadence, 0 when not boosted
func (g *Game) BoostPercent() int {
	if !g.State.Boosted {
		return 0
	}
	return int(math.Round(float64(g.State.MouseTarget) * g.cfg.Gameplay.BoostFactor * 100))
}

// TakeCadenceChange reports and clears a pending cadence recomputation request
func (g *Game) TakeCadenceChange() bool {
	dirty := g.cadenceDirty
	g.cadenceDirty = false
	return dirty
}
