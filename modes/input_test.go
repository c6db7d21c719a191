package modes

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/engine"
)

// commandLog records emitted commands
type commandLog struct {
	mu   sync.Mutex
	cmds []engine.Command
}

func (c *commandLog) emit(cmd engine.Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cmds = append(c.cmds, cmd)
}

func (c *commandLog) kinds() []engine.CommandKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]engine.CommandKind, len(c.cmds))
	for i, cmd := range c.cmds {
		out[i] = cmd.Kind
	}
	return out
}

func (c *commandLog) last() engine.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cmds[len(c.cmds)-1]
}

func fixedMaxField(w, h int) (int, int) {
	return w * 10, h * 10
}

func newTestHandler(hold time.Duration) (*InputHandler, *commandLog) {
	log := &commandLog{}
	return NewInputHandler(log.emit, fixedMaxField, hold), log
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEvent_Steering(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Heading
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.HeadingUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.HeadingDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.HeadingLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.HeadingRight},
		{"k", runeKey('k'), engine.HeadingUp},
		{"j", runeKey('j'), engine.HeadingDown},
		{"h", runeKey('h'), engine.HeadingLeft},
		{"l", runeKey('l'), engine.HeadingRight},
		{"w", runeKey('w'), engine.HeadingUp},
		{"s", runeKey('s'), engine.HeadingDown},
		{"a", runeKey('a'), engine.HeadingLeft},
		{"d", runeKey('d'), engine.HeadingRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, log := newTestHandler(time.Second)
			assert.True(t, h.HandleEvent(tt.ev))
			assert.Equal(t, engine.DirectionCommand(tt.want), log.last())
		})
	}
}

func TestHandleEvent_Pause(t *testing.T) {
	h, log := newTestHandler(time.Second)
	h.HandleEvent(runeKey(' '))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	assert.Equal(t, []engine.CommandKind{engine.CmdPauseToggle, engine.CmdPauseToggle}, log.kinds())
}

func TestHandleEvent_Quit(t *testing.T) {
	h, log := newTestHandler(time.Second)
	assert.False(t, h.HandleEvent(runeKey('q')))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))

	h.SetGameOver(true)
	assert.False(t, h.HandleEvent(runeKey('q')), "quit wins over acknowledge")
	assert.Empty(t, log.kinds())
}

func TestHandleEvent_UnboundKeyIgnored(t *testing.T) {
	h, log := newTestHandler(time.Second)
	assert.True(t, h.HandleEvent(runeKey('z')))
	assert.Empty(t, log.kinds())
}

func TestHandleEvent_Resize(t *testing.T) {
	h, log := newTestHandler(time.Second)
	assert.True(t, h.HandleEvent(tcell.NewEventResize(80, 24)))
	assert.Equal(t, engine.ResizeCommand(800, 240), log.last())
}

func TestHandleEvent_GameOverAcknowledge(t *testing.T) {
	h, log := newTestHandler(time.Second)
	h.SetGameOver(true)

	assert.True(t, h.HandleEvent(runeKey('z')))
	assert.Equal(t, []engine.CommandKind{engine.CmdAcknowledge}, log.kinds())

	// Back to normal mapping after one acknowledge
	h.HandleEvent(runeKey('k'))
	assert.Equal(t, engine.DirectionCommand(engine.HeadingUp), log.last())
}

func TestBoostHold(t *testing.T) {
	h, log := newTestHandler(50 * time.Millisecond)
	defer h.Stop()

	h.HandleEvent(runeKey('b'))
	assert.Equal(t, []engine.CommandKind{engine.CmdBoostOn}, log.kinds())

	// Repeats re-request boost and never release it while they keep coming
	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		h.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	}
	assert.NotContains(t, log.kinds(), engine.CmdBoostOff)
	assert.Len(t, log.kinds(), 5)

	require.Eventually(t, func() bool {
		k := log.kinds()
		return len(k) == 6 && k[5] == engine.CmdBoostOff
	}, time.Second, 5*time.Millisecond)
}

func TestBoostHeldAcrossRunStart(t *testing.T) {
	h, log := newTestHandler(time.Hour)
	defer h.Stop()

	// The first request arrives while idle, the game refuses it
	h.HandleEvent(runeKey('b'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	h.HandleEvent(runeKey('b'))

	assert.Equal(t, []engine.CommandKind{
		engine.CmdBoostOn,
		engine.CmdDirection,
		engine.CmdBoostOn,
	}, log.kinds(), "a repeat after the run starts asks again")
}

func TestBoostReleasedOnStop(t *testing.T) {
	h, log := newTestHandler(time.Hour)
	h.HandleEvent(runeKey('b'))
	h.Stop()
	h.Stop()
	assert.Equal(t, []engine.CommandKind{engine.CmdBoostOn, engine.CmdBoostOff}, log.kinds())
}

func TestLookup(t *testing.T) {
	assert.Equal(t, ActionBoost, Lookup(runeKey('b')).Action)
	assert.Equal(t, ActionRedraw, Lookup(tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl)).Action)
	assert.Equal(t, ActionNone, Lookup(runeKey('x')).Action)
}
