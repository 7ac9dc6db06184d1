package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
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

func command(cmd tetris.Command) Action {
	return Action{Kind: ActionCommand, Command: cmd}
}

// decodeKey maps a terminal key event to an action. tcell has already
// folded arrow-key escape sequences into named keys.
func decodeKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return command(tetris.MoveLeft)
	case tcell.KeyRight:
		return command(tetris.MoveRight)
	case tcell.KeyDown:
		return command(tetris.SoftDrop)
	case tcell.KeyUp:
		return command(tetris.RotateCW)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionExit}
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return Action{}
}

func decodeRune(r rune) Action {
	switch unicode.ToLower(r) {
	case 'a':
		return command(tetris.MoveLeft)
	case 'd':
		return command(tetris.MoveRight)
	case 's':
		return command(tetris.SoftDrop)
	case 'w', 'x':
		return command(tetris.RotateCW)
	case 'z':
		return command(tetris.RotateCCW)
	case ' ':
		return command(tetris.HardDrop)
	case 'e', 'c':
		return command(tetris.Hold)
	case 'q':
		return command(tetris.Quit)
	case 'p':
		return Action{Kind: ActionPause}
	case 'r':
		return Action{Kind: ActionRestart}
	}
	return Action{}
}
