package main

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/modes"
	"github.com/lixenwraith/vi-snake/render"
)

// terminalHost adapts the tcell renderer, the speaker and the input handler to engine.Host
type terminalHost struct {
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	input    *modes.InputHandler
	logger   *slog.Logger
}

func (h *terminalHost) Draw(s engine.Snapshot) {
	h.renderer.Draw(s)
}

func (h *terminalHost) SoundCue() {
	h.sound.PlayEat()
}

// GameOver keeps the final frame on screen until any key acknowledges it
func (h *terminalHost) GameOver(r engine.Result) {
	if h.input != nil {
		h.input.SetGameOver(true)
	}
	h.logger.Info("run finished",
		"run", r.RunID,
		"score", r.Score,
		"length", r.Length,
		"elapsed", r.Elapsed.Round(time.Millisecond),
		"paused", r.PausedFor.Round(time.Millisecond),
	)
}
