package components

import "github.com/lixenwraith/vi-snake/grid"

// Snake is the player body, head at index 0
// Growth appends duplicates of the tail cell that unfold as the snake moves
type Snake struct {
	Body      []grid.Cell
	Direction grid.Direction
	Queue     DirectionQueue
}

// NewSnake creates a single-segment snake at start heading in dir
func NewSnake(start grid.Cell, dir grid.Direction) *Snake {
	return &Snake{
		Body:      []grid.Cell{start},
		Direction: dir,
	}
}

// Head returns the first body cell
func (s *Snake) Head() grid.Cell {
	return s.Body[0]
}

// Tail returns the last body cell
func (s *Snake) Tail() grid.Cell {
	return s.Body[len(s.Body)-1]
}

// Len returns the segment count including stacked growth duplicates
func (s *Snake) Len() int {
	return len(s.Body)
}

// HitsBody reports whether c collides with any segment except the head
func (s *Snake) HitsBody(c grid.Cell) bool {
	return grid.OccupiedBySnake(c, s.Body[1:])
}

// Push adds a new head
func (s *Snake) Push(head grid.Cell) {
	s.Body = append(s.Body, grid.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
}

// DropTail removes the last segment, a single-segment snake is left intact
func (s *Snake) DropTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow appends n duplicates of the current tail
func (s *Snake) Grow(n int) {
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
}

// Shift moves every segment by dx, dy
func (s *Snake) Shift(dx, dy int) {
	for i := range s.Body {
		s.Body[i] = s.Body[i].Shift(dx, dy)
	}
}

// Steer consumes one queued direction and applies it unless it reverses the current one
// Returns true if the direction changed
func (s *Snake) Steer() bool {
	next, ok := s.Queue.Pop()
	if !ok || s.Direction.IsInverse(next) {
		return false
	}
	changed := next != s.Direction
	s.Direction = next
	return changed
}

// Enqueue validates d against the last queued (or current) direction and queues it
// Reversals are dropped silently, returns whether d was queued
func (s *Snake) Enqueue(d grid.Direction) bool {
	base := s.Direction
	if last, ok := s.Queue.Last(); ok {
		base = last
	}
	if base.IsInverse(d) {
		return false
	}
	s.Queue.Push(d)
	return true
}

// DirectionQueue is a FIFO of pending direction changes
type DirectionQueue struct {
	items []grid.Direction
}

// Push appends d
func (q *DirectionQueue) Push(d grid.Direction) {
	q.items = append(q.items, d)
}

// Pop removes and returns the oldest entry
func (q *DirectionQueue) Pop() (grid.Direction, bool) {
	if len(q.items) == 0 {
		return grid.Direction{}, false
	}
	d := q.items[0]
	q.items = q.items[1:]
	return d, true
}

// Peek returns the entry at index i without removing it
func (q *DirectionQueue) Peek(i int) (grid.Direction, bool) {
	if i < 0 || i >= len(q.items) {
		return grid.Direction{}, false
	}
	return q.items[i], true
}

// Last returns the newest entry
func (q *DirectionQueue) Last() (grid.Direction, bool) {
	return q.Peek(len(q.items) - 1)
}

func (q *DirectionQueue) Len() int {
	return len(q.items)
}

// Clear drops all pending entries
func (q *DirectionQueue) Clear() {
	q.items = nil
}
