package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/grid"
)

func newTestExpansion() *ExpansionSystem {
	cfg := config.Default()
	return NewExpansionSystem(cfg.Gameplay, cfg.Display)
}

func TestThreshold(t *testing.T) {
	e := newTestExpansion()
	assert.InDelta(t, 0.25, e.Threshold(0), 1e-9)
	assert.InDelta(t, 0.25, e.Threshold(499), 1e-9)
	assert.InDelta(t, 0.5, e.Threshold(500), 1e-9)
	assert.InDelta(t, 0.5, e.Threshold(999), 1e-9)
	assert.InDelta(t, 0.75, e.Threshold(1000), 1e-9)
}

func TestShouldExpand(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(80, 80, unit) // 64 cells

	assert.False(t, e.ShouldExpand(15, field, 0))
	assert.True(t, e.ShouldExpand(16, field, 0))
	assert.False(t, e.ShouldExpand(31, field, 600))
	assert.True(t, e.ShouldExpand(32, field, 600))
	assert.True(t, e.ShouldExpand(48, field, 1200))
}

func TestExpand_Top(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(80, 80, unit)
	snake := components.NewSnake(grid.Cell{X: 0, Y: 70}, grid.Right(unit))
	var mice components.MouseSet
	mice.Add(components.Mouse{ID: 1, Pos: grid.Cell{X: 30, Y: 0}})

	assert.True(t, e.Expand(&field, snake, &mice, 0, 0))
	assert.Equal(t, 90, field.Height)
	assert.Equal(t, 80, field.Width)
	assert.Equal(t, grid.EdgeRight, field.Edge)
	assert.Equal(t, grid.Cell{X: 0, Y: 80}, snake.Head())
	assert.True(t, mice.Occupied(grid.Cell{X: 30, Y: 10}))
}

func TestExpand_RightAndBottomKeepPositions(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(80, 80, unit)
	field.Edge = grid.EdgeRight
	snake := components.NewSnake(grid.Cell{X: 10, Y: 10}, grid.Right(unit))
	var mice components.MouseSet

	e.Expand(&field, snake, &mice, 0, 0)
	assert.Equal(t, 90, field.Width)
	assert.Equal(t, grid.EdgeBottom, field.Edge)

	e.Expand(&field, snake, &mice, 0, 0)
	assert.Equal(t, 90, field.Height)
	assert.Equal(t, grid.EdgeLeft, field.Edge)
	assert.Equal(t, grid.Cell{X: 10, Y: 10}, snake.Head())
}

func TestExpand_LeftShiftsAndMovesOffset(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(80, 80, unit)
	field.Edge = grid.EdgeLeft
	field.Center(320)
	before := field.OffsetX
	snake := components.NewSnake(grid.Cell{X: 10, Y: 10}, grid.Right(unit))
	var mice components.MouseSet
	mice.Add(components.Mouse{ID: 1, Pos: grid.Cell{X: 0, Y: 0}})

	e.Expand(&field, snake, &mice, 0, 0)
	assert.Equal(t, 90, field.Width)
	assert.Equal(t, before-unit, field.OffsetX)
	assert.Equal(t, grid.EdgeTop, field.Edge)
	assert.Equal(t, grid.Cell{X: 20, Y: 10}, snake.Head())
	assert.True(t, mice.Occupied(grid.Cell{X: 10, Y: 0}))
}

func TestExpand_LeftOffsetClampedAtCanvasEdge(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(320, 80, unit)
	field.Edge = grid.EdgeLeft
	snake := components.NewSnake(grid.Cell{X: 10, Y: 10}, grid.Right(unit))
	var mice components.MouseSet

	e.Expand(&field, snake, &mice, 0, 0)
	assert.Equal(t, 0, field.OffsetX)
}

func TestExpand_ClampedAxisStillRotates(t *testing.T) {
	e := newTestExpansion()
	field := grid.NewField(80, 80, unit)
	snake := components.NewSnake(grid.Cell{X: 0, Y: 70}, grid.Right(unit))
	var mice components.MouseSet

	assert.False(t, e.Expand(&field, snake, &mice, 200, 85))
	assert.Equal(t, 80, field.Height)
	assert.Equal(t, grid.Cell{X: 0, Y: 70}, snake.Head(), "no shift without growth")
	assert.Equal(t, grid.EdgeRight, field.Edge)

	assert.True(t, e.Expand(&field, snake, &mice, 200, 85))
	assert.Equal(t, 90, field.Width)
}

func TestMouseCap(t *testing.T) {
	e := newTestExpansion()
	assert.Equal(t, 10, e.MouseCap(1))
	assert.Equal(t, 10, e.MouseCap(99))
	assert.Equal(t, 11, e.MouseCap(100))
	assert.Equal(t, 13, e.MouseCap(350))
}
