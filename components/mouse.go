package components

import "github.com/lixenwraith/vi-snake/grid"

// Mouse is a collectible with a decaying lifespan
// ID is unique within a run so stale removals are no-ops
type Mouse struct {
	ID     uint64
	Pos    grid.Cell
	Life   int // aging ticks remaining
	Points int
	Golden bool
}

// MouseSet holds live mice, at most one per cell
type MouseSet struct {
	mice []Mouse
}

// Len returns the number of live mice
func (s *MouseSet) Len() int {
	return len(s.mice)
}

// All returns a copy of the live mice
func (s *MouseSet) All() []Mouse {
	out := make([]Mouse, len(s.mice))
	copy(out, s.mice)
	return out
}

// Add inserts m, rejecting a mouse on an occupied cell
func (s *MouseSet) Add(m Mouse) bool {
	if s.Occupied(m.Pos) {
		return false
	}
	s.mice = append(s.mice, m)
	return true
}

// At returns the mouse on c
func (s *MouseSet) At(c grid.Cell) (Mouse, bool) {
	for _, m := range s.mice {
		if m.Pos == c {
			return m, true
		}
	}
	return Mouse{}, false
}

// Occupied reports whether any mouse sits on c
func (s *MouseSet) Occupied(c grid.Cell) bool {
	_, ok := s.At(c)
	return ok
}

// Remove deletes the mouse with id, returns false if it is already gone
func (s *MouseSet) Remove(id uint64) bool {
	for i, m := range s.mice {
		if m.ID == id {
			s.mice = append(s.mice[:i], s.mice[i+1:]...)
			return true
		}
	}
	return false
}

// Age decrements every life by one and removes mice that reach zero
// Returns the expired mice
func (s *MouseSet) Age() []Mouse {
	var expired []Mouse
	kept := s.mice[:0]
	for _, m := range s.mice {
		m.Life--
		if m.Life <= 0 {
			expired = append(expired, m)
			continue
		}
		kept = append(kept, m)
	}
	s.mice = kept
	return expired
}

// ResetLife sets every live mouse's life to life
func (s *MouseSet) ResetLife(life int) {
	for i := range s.mice {
		s.mice[i].Life = life
	}
}

// MinLife returns the shortest remaining life, or fallback when empty
func (s *MouseSet) MinLife(fallback int) int {
	if len(s.mice) == 0 {
		return fallback
	}
	lowest := s.mice[0].Life
	for _, m := range s.mice[1:] {
		lowest = min(lowest, m.Life)
	}
	return lowest
}

// Shift moves every mouse by dx, dy
func (s *MouseSet) Shift(dx, dy int) {
	for i := range s.mice {
		s.mice[i].Pos = s.mice[i].Pos.Shift(dx, dy)
	}
}

// RemoveOutside drops mice that are not inside f, returns how many were removed
func (s *MouseSet) RemoveOutside(f grid.Field) int {
	kept := s.mice[:0]
	for _, m := range s.mice {
		if grid.InBounds(m.Pos, f) {
			kept = append(kept, m)
		}
	}
	removed := len(s.mice) - len(kept)
	s.mice = kept
	return removed
}

// Clear removes all mice
func (s *MouseSet) Clear() {
	s.mice = nil
}
