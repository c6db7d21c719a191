package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const commandBuffer = 64

// ClockScheduler drives a Game with two cadences on one goroutine
// The tick cadence runs Update and draws, the aging cadence ages mice
// Host commands are serialized with both, so the game has a single writer
type ClockScheduler struct {
	game   *Game
	host   Host
	logger *slog.Logger

	commands chan Command

	// nil while Idle or GameOver, a nil ticker never fires
	tick  *time.Ticker
	aging *time.Ticker

	tickInterval time.Duration
	tickCount    atomic.Uint64
	running      atomic.Bool
}

// NewClockScheduler creates a scheduler for game reporting to host
func NewClockScheduler(game *Game, host Host, logger *slog.Logger) *ClockScheduler {
	return &ClockScheduler{
		game:         game,
		host:         host,
		logger:       logger,
		commands:     make(chan Command, commandBuffer),
		tickInterval: game.TickInterval(),
	}
}

// Submit queues a host command, blocking until accepted or ctx is done
func (cs *ClockScheduler) Submit(ctx context.Context, cmd Command) error {
	select {
	case cs.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TickCount returns processed ticks across all runs
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run processes commands and timers until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return nil
	}
	defer cs.running.Store(false)
	defer cs.stopTimers()

	if cs.game.Phase() == PhaseRunning || cs.game.Phase() == PhasePaused {
		cs.startTimers()
	}
	cs.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-cs.commands:
			cs.handle(cmd)
		case <-tickerC(cs.tick):
			cs.onTick()
		case <-tickerC(cs.aging):
			cs.onAging()
		}
	}
}

func (cs *ClockScheduler) handle(cmd Command) {
	switch cmd.Kind {
	case CmdDirection:
		wasIdle := cs.game.Phase() == PhaseIdle
		cs.game.Input(cmd.Heading)
		if wasIdle && cs.game.Phase() == PhaseRunning {
			cs.startTimers()
			cs.draw()
		}

	case CmdPauseToggle:
		if cs.game.TogglePause() {
			cs.draw()
		}

	case CmdBoostOn, CmdBoostOff:
		if cs.game.SetBoost(cmd.Kind == CmdBoostOn) {
			cs.applyCadence()
			cs.draw()
		}

	case CmdResize:
		cs.game.Resize(cmd.Width, cmd.Height)
		cs.draw()

	case CmdAcknowledge:
		if cs.game.Phase() == PhaseGameOver {
			cs.reset()
		}

	case CmdRedraw:
		cs.draw()
	}
}

// onTick runs one simulation step, pause is checked here rather than by stopping the timer
func (cs *ClockScheduler) onTick() {
	switch cs.game.Phase() {
	case PhasePaused:
		cs.draw()
		return
	case PhaseRunning:
	default:
		return
	}

	res := cs.game.Update()
	cs.tickCount.Add(1)

	if res.Ate {
		cs.host.SoundCue()
	}
	if res.GameOver {
		cs.stopTimers()
		cs.draw()
		cs.host.GameOver(cs.game.Result())
		return
	}

	cs.draw()
	cs.applyCadence()
}

func (cs *ClockScheduler) onAging() {
	if cs.game.Phase() != PhaseRunning {
		return
	}
	res := cs.game.AgeMice()
	if res.Expired > 0 || res.Spawned > 0 {
		cs.draw()
	}
	cs.applyCadence()
}

// applyCadence reschedules the tick timer if the game requested a new interval
// Called after the in-flight tick has completed
func (cs *ClockScheduler) applyCadence() {
	if !cs.game.TakeCadenceChange() {
		return
	}
	interval := cs.game.TickInterval()
	if interval == cs.tickInterval {
		return
	}
	cs.tickInterval = interval
	if cs.tick != nil {
		cs.tick.Reset(interval)
	}
	cs.logger.Debug("tick cadence changed", "interval", interval)
}

func (cs *ClockScheduler) startTimers() {
	cs.stopTimers()
	cs.game.TakeCadenceChange()
	cs.tickInterval = cs.game.TickInterval()
	cs.tick = time.NewTicker(cs.tickInterval)
	cs.aging = time.NewTicker(cs.game.AgingInterval())
}

// stopTimers stops and clears both cadences
func (cs *ClockScheduler) stopTimers() {
	if cs.tick != nil {
		cs.tick.Stop()
		cs.tick = nil
	}
	if cs.aging != nil {
		cs.aging.Stop()
		cs.aging = nil
	}
}

// reset stops both cadences before the game is reinitialized so no stale tick reaches the fresh state
func (cs *ClockScheduler) reset() {
	cs.stopTimers()
	cs.game.Reset()
	cs.tickInterval = cs.game.TickInterval()
	cs.logger.Info("game reset", "run", cs.game.RunID())
	cs.draw()
}

func (cs *ClockScheduler) draw() {
	cs.host.Draw(cs.game.Snapshot())
}

func tickerC(t *time.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
