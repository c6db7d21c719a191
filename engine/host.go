package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/grid"
)

// Host receives the signals the core emits
// All calls come from the scheduler goroutine
type Host interface {
	// Draw renders a snapshot, emitted after every tick, resume, expiry and input that changes the view
	Draw(Snapshot)
	// SoundCue plays the eat cue
	SoundCue()
	// GameOver shows the end-of-run message, the core resets after an Acknowledge command
	GameOver(Result)
}

// Snapshot is an immutable view of a game for rendering
type Snapshot struct {
	RunID        string
	Phase        Phase
	Field        grid.Field
	Snake        []grid.Cell
	Mice         []components.Mouse
	Score        int
	Length       int
	MinLife      int
	BaseLife     int
	MouseTarget  int
	MouseCap     int
	Boosted      bool
	BoostPercent int
	TickInterval time.Duration
	Elapsed      time.Duration
	PausedFor    time.Duration
}

// Paused reports whether the paused overlay applies
func (s Snapshot) Paused() bool {
	return s.Phase == PhasePaused
}

// Result is the end-of-run summary
type Result struct {
	RunID     string
	Score     int
	Length    int
	Elapsed   time.Duration
	PausedFor time.Duration
}

// Heading is an abstract input direction, scaled to the grid unit by the game
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingRight
	HeadingDown
	HeadingLeft
)

// Direction returns the heading as a step of unit
func (h Heading) Direction(unit int) grid.Direction {
	switch h {
	case HeadingUp:
		return grid.Up(unit)
	case HeadingDown:
		return grid.Down(unit)
	case HeadingLeft:
		return grid.Left(unit)
	default:
		return grid.Right(unit)
	}
}

// CommandKind enumerates host inputs
type CommandKind uint8

const (
	CmdDirection CommandKind = iota
	CmdPauseToggle
	CmdBoostOn
	CmdBoostOff
	CmdResize
	CmdAcknowledge
	CmdRedraw
)

// Command is a host input queued for the scheduler goroutine
type Command struct {
	Kind    CommandKind
	Heading Heading
	Width   int // CmdResize, max available field width in field units
	Height  int // CmdResize, max available field height in field units
}

// DirectionCommand builds a direction input
func DirectionCommand(h Heading) Command {
	return Command{Kind: CmdDirection, Heading: h}
}

// ResizeCommand builds a viewport change
func ResizeCommand(maxWidth, maxHeight int) Command {
	return Command{Kind: CmdResize, Width: maxWidth, Height: maxHeight}
}
