package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Action is what a key does outside of game over
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionPause
	ActionBoost
	ActionRedraw
	ActionQuit
)

// Binding maps one key to an action
type Binding struct {
	Action  Action
	Heading engine.Heading
}

// keyBindings covers special keys
var keyBindings = map[tcell.Key]Binding{
	tcell.KeyUp:    {ActionSteer, engine.HeadingUp},
	tcell.KeyDown:  {ActionSteer, engine.HeadingDown},
	tcell.KeyLeft:  {ActionSteer, engine.HeadingLeft},
	tcell.KeyRight: {ActionSteer, engine.HeadingRight},
	tcell.KeyEnd:   {Action: ActionPause},
	tcell.KeyTab:   {Action: ActionBoost},
	tcell.KeyCtrlL: {Action: ActionRedraw},
	tcell.KeyCtrlC: {Action: ActionQuit},
	tcell.KeyCtrlQ: {Action: ActionQuit},
}

// runeBindings covers printable keys, vi and WASD steering alongside the arrows
var runeBindings = map[rune]Binding{
	'k': {ActionSteer, engine.HeadingUp},
	'j': {ActionSteer, engine.HeadingDown},
	'h': {ActionSteer, engine.HeadingLeft},
	'l': {ActionSteer, engine.HeadingRight},
	'w': {ActionSteer, engine.HeadingUp},
	's': {ActionSteer, engine.HeadingDown},
	'a': {ActionSteer, engine.HeadingLeft},
	'd': {ActionSteer, engine.HeadingRight},
	' ': {Action: ActionPause},
	'b': {Action: ActionBoost},
	'q': {Action: ActionQuit},
}

// Lookup resolves a key event to its binding
func Lookup(ev *tcell.EventKey) Binding {
	if ev.Key() == tcell.KeyRune {
		return runeBindings[ev.Rune()]
	}
	return keyBindings[ev.Key()]
}
