package engine

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
)

// Phase is the mode controller state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning},
	PhaseGameOver: {PhaseIdle},
}

// CanTransition reports whether from -> to is a legal phase change
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// GameState holds the counters and mode of a run
type GameState struct {
	Phase   Phase
	Score   components.Score
	Boosted bool

	MouseTarget int // desired live mice
	MouseCap    int // bound on MouseTarget growth from golden mice
	BaseLife    int // life assigned to new and refreshed mice
}

func newGameState(cfg config.Gameplay) GameState {
	return GameState{
		Phase:       PhaseIdle,
		Score:       components.NewScore(),
		MouseTarget: cfg.MouseTarget,
		MouseCap:    cfg.MaxMice,
		BaseLife:    cfg.MouseLife,
	}
}

// transition applies to if it is legal from the current phase
func (gs *GameState) transition(to Phase) bool {
	if !CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	return true
}

// Started reports whether the run has left Idle
func (gs *GameState) Started() bool {
	return gs.Phase == PhaseRunning || gs.Phase == PhasePaused
}
