package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/grid"
)

// ExpansionSystem grows the field as the snake fills it and sizes the mouse cap
type ExpansionSystem struct {
	thresholds config.Thresholds
	hudWidth   int
	maxMice    int
	capStep    int
}

// NewExpansionSystem creates the controller from gameplay and display tunables
func NewExpansionSystem(cfg config.Gameplay, display config.Display) *ExpansionSystem {
	return &ExpansionSystem{
		thresholds: cfg.Thresholds,
		hudWidth:   display.HUDWidth,
		maxMice:    cfg.MaxMice,
		capStep:    cfg.MouseCapLengthStep,
	}
}

// Threshold returns the occupancy ratio that triggers growth at score
func (e *ExpansionSystem) Threshold(score int) float64 {
	switch {
	case score >= e.thresholds.HighScore:
		return e.thresholds.High
	case score >= e.thresholds.MidScore:
		return e.thresholds.Mid
	default:
		return e.thresholds.Low
	}
}

// ShouldExpand reports whether unique occupied cells reach the threshold share of the field
func (e *ExpansionSystem) ShouldExpand(unique int, field grid.Field, score int) bool {
	return float64(unique) >= float64(field.Cells())*e.Threshold(score)
}

// Expand grows the field one unit along its current edge and rotates the edge clockwise
// Growth on top or left shifts snake and mice so they keep their place against the other edges
// An axis already at its max stays put, the edge still rotates. Non-positive max means unbounded
// Returns true if the field grew
func (e *ExpansionSystem) Expand(field *grid.Field, snake *components.Snake, mice *components.MouseSet, maxW, maxH int) bool {
	unit := field.Unit
	grew := false

	switch field.Edge {
	case grid.EdgeTop, grid.EdgeBottom:
		if fits(field.Height+unit, maxH, unit) {
			field.Height += unit
			grew = true
			if field.Edge == grid.EdgeTop {
				snake.Shift(0, unit)
				mice.Shift(0, unit)
			}
		}
	case grid.EdgeRight, grid.EdgeLeft:
		if fits(field.Width+unit, maxW, unit) {
			field.Width += unit
			grew = true
			if field.Edge == grid.EdgeLeft {
				snake.Shift(unit, 0)
				mice.Shift(unit, 0)
				field.OffsetX -= unit
			}
		}
	}

	field.ClampOffset(e.hudWidth)
	field.Edge = field.Edge.Next()
	return grew
}

// MouseCap returns the cap on the mouse target for a snake of length
func (e *ExpansionSystem) MouseCap(length int) int {
	return e.maxMice + length/e.capStep
}

func fits(size, limit, unit int) bool {
	return limit <= 0 || size <= grid.FloorToUnit(limit, unit)
}
