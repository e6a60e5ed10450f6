// Package tui drives a game.Game from a bubbletea program: it collects key
// presses, steps the game on a fixed tick and draws each frame.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snek-term/game"
)

// DefaultTick is the delay between simulation steps.
const DefaultTick = 500 * time.Millisecond

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// stepNow asks for a tick without waiting, used for the first step after
// the start key.
func stepNow() tea.Msg {
	return tickMsg(time.Now())
}

// Model is the bubbletea model for one game.
type Model struct {
	game *game.Game
	tick time.Duration
	log  *slog.Logger

	started bool
	pending Command
	ticks   int
	quit    bool
	done    bool
	err     error
}

// NewModel wraps g. A zero tick uses DefaultTick and a nil logger discards.
func NewModel(g *game.Game, tick time.Duration, log *slog.Logger) Model {
	if tick <= 0 {
		tick = DefaultTick
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{game: g, tick: tick, log: log}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := CommandForKey(msg)
		if cmd == CmdQuit {
			m.quit = true
			m.done = true
			m.log.Info("quit requested", "ticks", m.ticks, "score", m.game.Score())
			return m, tea.Quit
		}
		// Only the latest key before a tick counts.
		m.pending = cmd
		if !m.started {
			m.started = true
			m.log.Info("game started", "width", m.game.Width(), "height", m.game.Height(), "first", cmd.String())
			return m, stepNow
		}
		return m, nil
	case tickMsg:
		if !m.started || m.done {
			return m, nil
		}
		return m.advance()
	case tea.WindowSizeMsg:
		m.log.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	before := m.game.Score()
	err := m.game.Step(m.pending.direction())
	m.ticks++

	switch {
	case errors.Is(err, game.ErrBoardFull):
		m.done = true
		m.log.Info("board full", "ticks", m.ticks, "score", m.game.Score())
		return m, tea.Quit
	case err != nil:
		m.done = true
		m.err = fmt.Errorf("tick %d: %w", m.ticks, err)
		m.log.Error("step failed", "err", m.err)
		return m, tea.Quit
	}

	if s := m.game.Score(); s > before {
		h := m.game.Head()
		m.log.Info("apple eaten", "score", s, "col", h.Col, "row", h.Row, "length", len(m.game.Snake()))
	}
	if !m.game.Alive() {
		m.done = true
		m.log.Info("game over", "ticks", m.ticks, "score", m.game.Score())
		return m, tea.Quit
	}
	return m, tickCmd(m.tick)
}

func (m Model) View() string {
	if !m.started {
		return startPrompt()
	}
	if m.done {
		return ""
	}
	return m.game.Render().Lines()
}

// Score is the current score.
func (m Model) Score() uint32 { return m.game.Score() }

// Quit reports whether the player left before the game ended.
func (m Model) Quit() bool { return m.quit }

// Err is the contract violation that stopped the game, if any.
func (m Model) Err() error { return m.err }

// Ticks is the number of steps taken.
func (m Model) Ticks() int { return m.ticks }

// Result summarizes a finished program run.
type Result struct {
	Score uint32
	Ticks int
	Quit  bool
}

// Run plays g on the terminal until the snake dies, the player quits or
// ctx is cancelled.
func Run(ctx context.Context, g *game.Game, tick time.Duration, log *slog.Logger, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(g, tick, log), opts...)

	final, err := p.Run()
	if err != nil {
		return Result{Score: g.Score()}, fmt.Errorf("run terminal program: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{Score: g.Score()}, fmt.Errorf("unexpected model type %T", final)
	}
	res := Result{Score: m.Score(), Ticks: m.Ticks(), Quit: m.Quit()}
	return res, m.Err()
}
