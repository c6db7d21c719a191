package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
)

// Glyphs
const (
	runeSnake = '█'
	runeBody  = '▓'
)

// lifeRunes are bar heights from empty to full
var lifeRunes = []rune(" ▁▂▃▄▅▆▇█")

// TerminalRenderer draws game snapshots on a tcell screen
// One grid cell is cellColumns terminal columns wide and one row tall
type TerminalRenderer struct {
	screen      tcell.Screen
	unit        int
	cellColumns int
	hudWidth    int
}

// NewTerminalRenderer creates a renderer for fields measured in unit
func NewTerminalRenderer(screen tcell.Screen, display config.Display, unit int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		unit:        unit,
		cellColumns: display.CellColumns,
		hudWidth:    display.HUDWidth,
	}
}

// MaxField converts a terminal size into the largest field that fits, in field units
func (r *TerminalRenderer) MaxField(screenW, screenH int) (int, int) {
	cols := (screenW - 2*constants.BorderCells) / r.cellColumns
	rows := screenH - constants.HUDRows - 2*constants.BorderCells
	return max(cols, 1) * r.unit, max(rows, 1) * r.unit
}

// Draw renders the full frame for s
func (r *TerminalRenderer) Draw(s engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawHUD(s, defaultStyle)
	r.drawBorder(s.Field, defaultStyle)
	r.drawMice(s, defaultStyle)
	r.drawSnake(s, defaultStyle)

	switch s.Phase {
	case engine.PhaseIdle:
		r.drawOverlay(s.Field, RgbOverlayText, constants.StartHintText)
	case engine.PhasePaused:
		r.drawOverlay(s.Field, RgbOverlayText, constants.PausedText, constants.ResumeHintText)
	case engine.PhaseGameOver:
		r.drawOverlay(s.Field, RgbGameOver,
			constants.GameOverText,
			fmt.Sprintf("Score: %d  Length: %d", s.Score, s.Length),
			constants.AcknowledgeText,
		)
	}

	r.screen.Show()
}

// canvasColumns is the terminal width of the HUD and field area, borders included
func (r *TerminalRenderer) canvasColumns(f grid.Field) int {
	return f.CanvasWidth(r.hudWidth)/r.unit*r.cellColumns + 2*constants.BorderCells
}

// fieldOrigin is the terminal position of the field's top-left cell
func (r *TerminalRenderer) fieldOrigin(f grid.Field) (int, int) {
	return constants.BorderCells + f.OffsetX/r.unit*r.cellColumns, constants.HUDRows + constants.BorderCells
}

// CellPosition maps a grid cell to its first terminal column and row
func (r *TerminalRenderer) CellPosition(f grid.Field, c grid.Cell) (int, int) {
	x0, y0 := r.fieldOrigin(f)
	return x0 + c.X/r.unit*r.cellColumns, y0 + c.Y/r.unit
}

// drawHUD writes length, minimum life, mouse counter, boost and score across the top row
func (r *TerminalRenderer) drawHUD(s engine.Snapshot, defaultStyle tcell.Style) {
	width := r.canvasColumns(s.Field)
	style := defaultStyle.Foreground(RgbHUDText)

	items := []string{
		fmt.Sprintf("Length: %d", s.Length),
		fmt.Sprintf("Time: %ds", s.MinLife),
		fmt.Sprintf("Mice: %d/%d", s.MouseTarget, s.MouseCap),
		fmt.Sprintf("Score: %d", s.Score),
	}
	if s.Boosted {
		items = append(items, fmt.Sprintf("Boost: +%d%%", s.BoostPercent))
	}

	// Items are centered on equal slots, like the field-wide status line
	slot := width / len(items)
	for i, text := range items {
		itemStyle := style
		if i == len(items)-1 && s.Boosted {
			itemStyle = defaultStyle.Foreground(RgbHUDBoost)
		}
		x := i*slot + (slot-len([]rune(text)))/2
		r.drawText(max(x, i*slot), 0, text, itemStyle)
	}
}

func (r *TerminalRenderer) drawBorder(f grid.Field, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	x0, y0 := r.fieldOrigin(f)
	x1 := x0 + f.Columns()*r.cellColumns
	y1 := y0 + f.Rows()

	for x := x0; x < x1; x++ {
		r.screen.SetContent(x, y0-1, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y < y1; y++ {
		r.screen.SetContent(x0-1, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0-1, y0-1, '┌', nil, style)
	r.screen.SetContent(x1, y0-1, '┐', nil, style)
	r.screen.SetContent(x0-1, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

func (r *TerminalRenderer) drawSnake(s engine.Snapshot, defaultStyle tcell.Style) {
	// Tail first so the head is drawn last when stacked segments overlap it
	for i := len(s.Snake) - 1; i >= 0; i-- {
		ch, color := runeBody, RgbSnakeBody
		if i == 0 {
			ch, color = runeSnake, RgbSnakeHead
		}
		r.fillCell(s.Field, s.Snake[i], ch, defaultStyle.Foreground(color))
	}
}

func (r *TerminalRenderer) drawMice(s engine.Snapshot, defaultStyle tcell.Style) {
	for _, m := range s.Mice {
		x, y := r.CellPosition(s.Field, m.Pos)
		style := MouseStyle(m, defaultStyle)
		r.screen.SetContent(x, y, PointsRune(m.Points), nil, style)

		// Life bar fills the remaining columns of the cell
		bar := defaultStyle.Foreground(LifeColor(m.Life, s.BaseLife))
		for dx := 1; dx < r.cellColumns; dx++ {
			r.screen.SetContent(x+dx, y, LifeRune(m.Life, s.BaseLife), nil, bar)
		}
	}
}

// MouseStyle is the point-digit style of m, gold for golden mice
func MouseStyle(m components.Mouse, defaultStyle tcell.Style) tcell.Style {
	bg := RgbMouse
	if m.Golden {
		bg = RgbMouseGold
	}
	return defaultStyle.Background(bg).Foreground(RgbMousePts).Bold(m.Golden)
}

// PointsRune is the single glyph for a point value, values above 9 show as '+'
func PointsRune(points int) rune {
	if points >= 0 && points <= 9 {
		return rune('0' + points)
	}
	return '+'
}

// LifeRune is the bar glyph for life out of full
func LifeRune(life, full int) rune {
	if full <= 0 || life <= 0 {
		return lifeRunes[0]
	}
	idx := (life*(len(lifeRunes)-1) + full - 1) / full
	return lifeRunes[min(idx, len(lifeRunes)-1)]
}

func (r *TerminalRenderer) fillCell(f grid.Field, c grid.Cell, ch rune, style tcell.Style) {
	x, y := r.CellPosition(f, c)
	for dx := 0; dx < r.cellColumns; dx++ {
		r.screen.SetContent(x+dx, y, ch, nil, style)
	}
}

// drawOverlay centers lines over the middle of the field
func (r *TerminalRenderer) drawOverlay(f grid.Field, fg tcell.Color, lines ...string) {
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(fg)
	x0, y0 := r.fieldOrigin(f)
	width := f.Columns() * r.cellColumns
	top := y0 + (f.Rows()-len(lines))/2

	for i, line := range lines {
		x := x0 + (width-len([]rune(line)))/2
		r.drawText(max(x, 0), max(top+i, y0), line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
