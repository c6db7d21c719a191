package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseIdle, PhaseRunning, true},
		{PhaseIdle, PhasePaused, false},
		{PhaseRunning, PhasePaused, true},
		{PhasePaused, PhaseRunning, true},
		{PhaseRunning, PhaseGameOver, true},
		{PhasePaused, PhaseGameOver, false},
		{PhaseGameOver, PhaseRunning, false},
		{PhaseGameOver, PhaseIdle, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestGameState_Started(t *testing.T) {
	gs := GameState{Phase: PhaseIdle}
	assert.False(t, gs.Started())

	assert.True(t, gs.transition(PhaseRunning))
	assert.True(t, gs.Started())

	assert.False(t, gs.transition(PhaseIdle), "running cannot return to idle directly")
	assert.True(t, gs.transition(PhasePaused))
	assert.True(t, gs.Started())
}
