package grid

// Edge is the field boundary that grows on the next expansion
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Next rotates clockwise: top, right, bottom, left, top
func (e Edge) Next() Edge {
	return (e + 1) % 4
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// Field is the playfield rectangle anchored at the origin
// OffsetX is the horizontal position of the field inside the canvas, in field units
type Field struct {
	Width   int
	Height  int
	Unit    int
	Edge    Edge
	OffsetX int
}

// NewField creates a field of the given size with expansion starting at the top
func NewField(width, height, unit int) Field {
	return Field{Width: width, Height: height, Unit: unit, Edge: EdgeTop}
}

// Columns returns the width in cells
func (f Field) Columns() int {
	return f.Width / f.Unit
}

// Rows returns the height in cells
func (f Field) Rows() int {
	return f.Height / f.Unit
}

// Cells returns the total cell count
func (f Field) Cells() int {
	return f.Columns() * f.Rows()
}

// InBounds reports whether c lies inside f
func InBounds(c Cell, f Field) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Clamp shrinks the field to maxW, maxH (floored to the unit, at least one cell)
// Non-positive limits are treated as unbounded. Returns true if any axis shrank
func (f *Field) Clamp(maxW, maxH int) bool {
	clamped := false
	if maxW > 0 {
		limit := max(FloorToUnit(maxW, f.Unit), f.Unit)
		if f.Width > limit {
			f.Width = limit
			clamped = true
		}
	}
	if maxH > 0 {
		limit := max(FloorToUnit(maxH, f.Unit), f.Unit)
		if f.Height > limit {
			f.Height = limit
			clamped = true
		}
	}
	return clamped
}

// CanvasWidth is the drawing width: the field or the HUD, whichever is wider
func (f Field) CanvasWidth(hudWidth int) int {
	return max(f.Width, hudWidth)
}

// Center places the field horizontally in the middle of the canvas
func (f *Field) Center(hudWidth int) {
	f.OffsetX = max(0, (f.CanvasWidth(hudWidth)-f.Width)/2)
}

// ClampOffset keeps the field inside the canvas
func (f *Field) ClampOffset(hudWidth int) {
	canvas := f.CanvasWidth(hudWidth)
	if f.OffsetX < 0 {
		f.OffsetX = 0
	} else if f.OffsetX+f.Width > canvas {
		f.OffsetX = max(0, canvas-f.Width)
	}
}

// Each calls fn for every cell in row-major order
func (f Field) Each(fn func(Cell)) {
	for y := 0; y < f.Height; y += f.Unit {
		for x := 0; x < f.Width; x += f.Unit {
			fn(Cell{X: x, Y: y})
		}
	}
}
