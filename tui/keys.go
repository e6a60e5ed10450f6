package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snek-term/game"
)

// Command is one player input per tick.
type Command uint8

const (
	CmdKeep Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdQuit:
		return "quit"
	default:
		return "keep"
	}
}

// CommandForKey maps a key press to a command. Arrows, wasd and hjkl
// steer; esc, q and ctrl+c quit; anything else keeps the heading.
func CommandForKey(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "up", "w", "k":
		return CmdUp
	case "down", "s", "j":
		return CmdDown
	case "left", "a", "h":
		return CmdLeft
	case "right", "d", "l":
		return CmdRight
	case "esc", "q", "ctrl+c":
		return CmdQuit
	default:
		return CmdKeep
	}
}

// direction converts a steering command for game.Step. CmdQuit never
// reaches the game.
func (c Command) direction() game.Direction {
	switch c {
	case CmdUp:
		return game.Up
	case CmdDown:
		return game.Down
	case CmdLeft:
		return game.Left
	case CmdRight:
		return game.Right
	default:
		return game.Keep
	}
}
