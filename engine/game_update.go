package engine

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/grid"
)

// UpdateResult reports what a tick did
type UpdateResult struct {
	Moved    bool
	Ate      bool
	Golden   bool
	Points   int
	Spawned  int
	GameOver bool
	Expanded bool
}

// Update advances the simulation by one tick
// No-op unless Running
func (g *Game) Update() UpdateResult {
	var res UpdateResult
	if g.State.Phase != PhaseRunning {
		return res
	}

	g.Snake.Steer()
	head := g.Snake.Head().Add(g.Snake.Direction)

	// Terminal collision leaves every entity untouched
	if !grid.InBounds(head, g.Field) || g.Snake.HitsBody(head) {
		g.gameOver(head)
		res.GameOver = true
		return res
	}

	if m, ok := g.Mice.At(head); ok && g.eat(m) {
		res.Ate = true
		res.Golden = m.Golden
		res.Points = m.Points
	} else {
		g.Snake.DropTail()
	}

	g.Snake.Push(head)
	res.Moved = true

	// Top up after the head moves so a fresh mouse never lands under it
	if res.Ate {
		res.Spawned = g.topUp()
		if g.State.Boosted {
			g.cadenceDirty = true
		}
	}

	res.Expanded = g.checkExpansion()
	g.State.MouseCap = max(g.State.MouseCap, g.expansion.MouseCap(g.Snake.Len()))
	return res
}

// eat consumes m and applies scoring, growth and golden bonuses
// Returns false if m was already removed
func (g *Game) eat(m components.Mouse) bool {
	if !g.Mice.Remove(m.ID) {
		return false
	}

	st := &g.State
	st.Score.Points += m.Points
	// Head push already grows by one
	g.Snake.Grow(m.Points - 1)
	st.Score.NextPoints++

	if m.Golden {
		st.MouseTarget = min(st.MouseTarget+1, st.MouseCap)
		st.BaseLife++
	} else {
		st.Score.EatenSinceGolden++
	}
	g.Mice.ResetLife(st.BaseLife)

	g.log.Debug("mouse eaten",
		"points", m.Points,
		"golden", m.Golden,
		"score", st.Score.Points,
		"length", g.Snake.Len()+1,
		"target", st.MouseTarget,
	)
	return true
}

// checkExpansion grows the field once when occupancy reaches the score threshold
// Returns true only if the field grew, an edge at the viewport max still rotates
func (g *Game) checkExpansion() bool {
	unique := g.UniqueCells()
	if !g.expansion.ShouldExpand(unique, g.Field, g.State.Score.Points) {
		return false
	}

	edge := g.Field.Edge
	grew := g.expansion.Expand(&g.Field, g.Snake, &g.Mice, g.maxWidth, g.maxHeight)
	g.clampToViewport()

	if !grew {
		g.log.Debug("field at viewport max", "edge", edge.String(), "occupied", unique)
		return false
	}
	g.log.Info("field expansion",
		"edge", edge.String(),
		"width", g.Field.Width,
		"height", g.Field.Height,
		"occupied", unique,
	)
	return true
}

// clampToViewport shrinks the field to the host maximum and drops mice left outside
func (g *Game) clampToViewport() bool {
	if !g.Field.Clamp(g.maxWidth, g.maxHeight) {
		return false
	}
	g.Field.ClampOffset(g.cfg.Display.HUDWidth)
	if removed := g.Mice.RemoveOutside(g.Field); removed > 0 {
		g.log.Debug("mice outside clamped field removed", "count", removed)
	}
	return true
}

func (g *Game) gameOver(head grid.Cell) {
	if !g.State.transition(PhaseGameOver) {
		return
	}
	g.finalPause = g.clock.GetTotalPauseDuration()
	g.clock.Pause()
	g.log.Info("game over",
		"score", g.State.Score.Points,
		"length", g.Snake.Len(),
		"elapsed", g.clock.Elapsed(),
		"paused", g.finalPause,
		"head", head,
		"width", g.Field.Width,
		"height", g.Field.Height,
	)
}
