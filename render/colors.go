package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180)
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255)
	RgbHUDBoost   = tcell.NewRGBColor(255, 192, 203) // Pink while boosted

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50)
	RgbSnakeBody = tcell.NewRGBColor(0, 130, 0)

	RgbMouse     = tcell.NewRGBColor(200, 200, 200)
	RgbMouseGold = tcell.NewRGBColor(255, 215, 0)
	RgbMousePts  = tcell.NewRGBColor(0, 0, 0)

	RgbLifeFull = tcell.NewRGBColor(0, 200, 0)
	RgbLifeLow  = tcell.NewRGBColor(255, 0, 0)

	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayBg   = tcell.NewRGBColor(0, 0, 0)
	RgbGameOver    = tcell.NewRGBColor(255, 80, 80)
)

// LifeColor blends from RgbLifeLow to RgbLifeFull by the remaining share of life
func LifeColor(life, full int) tcell.Color {
	if full <= 0 {
		return RgbLifeFull
	}
	ratio := float64(life) / float64(full)
	ratio = max(0, min(1, ratio))

	lr, lg, lb := RgbLifeLow.RGB()
	fr, fg, fb := RgbLifeFull.RGB()
	lerp := func(a, b int32) int32 {
		return a + int32(float64(b-a)*ratio)
	}
	return tcell.NewRGBColor(lerp(lr, fr), lerp(lg, fg), lerp(lb, fb))
}
