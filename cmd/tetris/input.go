package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCommand
	ActionPause
	ActionRestart
	ActionExit
)

type Action struct {
	Kind    ActionKind
	Command tetris.Command
}

type binding struct {
	keys    []ebiten.Key
	command tetris.Command
	// repeat keeps firing while the key is held
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, command: tetris.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, command: tetris.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, command: tetris.SoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, command: tetris.RotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ}, command: tetris.RotateCCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: tetris.HardDrop},
	{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyE}, command: tetris.Hold},
	{keys: []ebiten.Key{ebiten.KeyQ}, command: tetris.Quit},
}

// Input decodes the keyboard into at most one action per tick.
type Input struct {
	RepeatDelay int // ticks before a held key starts repeating
	RepeatRate  int // ticks between repeats
}

func (in *Input) repeatDelay() int {
	if in.RepeatDelay > 0 {
		return in.RepeatDelay
	}
	return 10
}

func (in *Input) repeatRate() int {
	if in.RepeatRate > 0 {
		return in.RepeatRate
	}
	return 3
}

// Poll returns the action for this tick. When captured is true the keyboard
// belongs to the debug overlay and only Escape is honored.
func (in *Input) Poll(captured bool) Action {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return Action{Kind: ActionExit}
	}
	if captured {
		return Action{}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return Action{Kind: ActionPause}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return Action{Kind: ActionRestart}
	}

	for _, b := range bindings {
		for _, key := range b.keys {
			if in.fired(key, b.repeat) {
				return Action{Kind: ActionCommand, Command: b.command}
			}
		}
	}

	return Action{}
}

func (in *Input) fired(key ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	if !repeat {
		return false
	}

	d := inpututil.KeyPressDuration(key)
	delay := in.repeatDelay()
	return d > delay && (d-delay)%in.repeatRate() == 0
}
