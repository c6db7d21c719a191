// Package grid holds the fixed-step coordinate system of the playfield
package grid

// Cell is a grid position in field units, both coordinates are multiples of the unit
type Cell struct {
	X, Y int
}

// Add returns the cell one step along d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Shift returns the cell moved by dx, dy
func (c Cell) Shift(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is a unit step along one axis
type Direction struct {
	DX, DY int
}

// Up is one step of unit toward row zero
func Up(unit int) Direction { return Direction{DX: 0, DY: -unit} }

// Down is one step of unit away from row zero
func Down(unit int) Direction { return Direction{DX: 0, DY: unit} }

// Left is one step of unit toward column zero
func Left(unit int) Direction { return Direction{DX: -unit, DY: 0} }

// Right is one step of unit away from column zero
func Right(unit int) Direction { return Direction{DX: unit, DY: 0} }

// Inverse returns the opposite direction
func (d Direction) Inverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsInverse reports whether o is the exact reverse of d
func (d Direction) IsInverse(o Direction) bool {
	return o == d.Inverse()
}

// OccupiedBySnake reports whether c is any cell of body
func OccupiedBySnake(c Cell, body []Cell) bool {
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}

// FloorToUnit rounds v down to a multiple of unit, never below zero
func FloorToUnit(v, unit int) int {
	if v <= 0 {
		return 0
	}
	return (v / unit) * unit
}
