package modes

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// InputHandler turns tcell events into engine commands
// Terminals report key repeats but no release, so a held boost key is tracked
// by re-arming a timer on every repeat and releasing when it expires
type InputHandler struct {
	emit     func(engine.Command)
	maxField func(screenW, screenH int) (int, int)

	holdTimeout time.Duration
	mu          sync.Mutex
	boostTimer  *time.Timer
	boostGen    uint64 // invalidates expiries that raced a repeat
	boosting    bool

	gameOver atomic.Bool
}

// NewInputHandler creates a handler sending commands through emit
// maxField converts a terminal size into the max field size for resize commands
func NewInputHandler(emit func(engine.Command), maxField func(screenW, screenH int) (int, int), holdTimeout time.Duration) *InputHandler {
	return &InputHandler{
		emit:        emit,
		maxField:    maxField,
		holdTimeout: holdTimeout,
	}
}

// SetGameOver switches key handling to acknowledge mode
func (h *InputHandler) SetGameOver(over bool) {
	h.gameOver.Store(over)
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		maxW, maxH := h.maxField(w, ht)
		h.emit(engine.ResizeCommand(maxW, maxH))
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	b := Lookup(ev)
	if b.Action == ActionQuit {
		return false
	}

	// Any other key acknowledges the end of a run
	if h.gameOver.CompareAndSwap(true, false) {
		h.releaseBoost()
		h.emit(engine.Command{Kind: engine.CmdAcknowledge})
		return true
	}

	switch b.Action {
	case ActionSteer:
		h.emit(engine.DirectionCommand(b.Heading))
	case ActionPause:
		h.emit(engine.Command{Kind: engine.CmdPauseToggle})
	case ActionBoost:
		h.holdBoost()
	case ActionRedraw:
		h.emit(engine.Command{Kind: engine.CmdRedraw})
	}
	return true
}

// holdBoost requests boost on every press and repeat, then extends the hold
// The game drops duplicates, and a request refused before the run starts is retried by the next repeat
func (h *InputHandler) holdBoost() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.boostTimer != nil {
		h.boostTimer.Stop()
	}
	h.boosting = true
	h.emit(engine.Command{Kind: engine.CmdBoostOn})
	h.boostGen++
	gen := h.boostGen
	h.boostTimer = time.AfterFunc(h.holdTimeout, func() { h.expireBoost(gen) })
}

func (h *InputHandler) expireBoost(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen == h.boostGen {
		h.release()
	}
}

// releaseBoost deactivates a held boost, no-op if none is held
func (h *InputHandler) releaseBoost() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.release()
}

func (h *InputHandler) release() {
	h.boostGen++
	if h.boostTimer != nil {
		h.boostTimer.Stop()
		h.boostTimer = nil
	}
	if h.boosting {
		h.boosting = false
		h.emit(engine.Command{Kind: engine.CmdBoostOff})
	}
}

// Stop releases any held boost and its timer
func (h *InputHandler) Stop() {
	h.releaseBoost()
}
