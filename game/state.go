// Package game implements the terminal snake simulation.
//
// A Game owns the board, the snake, the apples and the score. It is advanced
// one tick at a time with Step and drawn with Render. Nothing in here knows
// about terminals, keys or timers; callers feed directions in and take frames
// out, and must not share a Game between goroutines without their own
// synchronization.
package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DefaultAppleCount is the number of apples kept on the board.
const DefaultAppleCount = 5

var (
	ErrInvalidBoard      = errors.New("game: board dimensions out of range")
	ErrInvalidAppleCount = errors.New("game: negative apple count")
	ErrBoardTooSmall     = errors.New("game: not enough free cells for snake and apples")
	ErrGameOver          = errors.New("game: step on a finished game")
	ErrInvalidDirection  = errors.New("game: invalid direction")
	ErrBoardFull         = errors.New("game: no free cell left for an apple")
)

// Point is an interior board coordinate. (0,0) is the top-left cell inside
// the border. Coordinates are unsigned: stepping off the top or left edge
// wraps to math.MaxUint16, which the bounds check then rejects.
type Point struct {
	Col uint16
	Row uint16
}

// Direction is a movement command for one tick.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	// Keep retains the snake's current heading.
	Keep
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Keep:
		return "keep"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

type snake struct {
	body      []Point
	direction Direction
}

// Game is the complete simulation state.
type Game struct {
	width  uint16
	height uint16
	snake  snake
	apples []Point
	score  uint32
	alive  bool
	rng    *rand.Rand
}

type config struct {
	rng    *rand.Rand
	apples int
}

// Option configures New.
type Option func(*config)

// WithRand sets the randomness source used for apple placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithApples overrides DefaultAppleCount.
func WithApples(n int) Option {
	return func(c *config) { c.apples = n }
}

// New creates a game on a width x height interior with a single-segment
// snake at the center heading right and the apples placed at random.
//
// Apple placement has no retry cap, so New rejects boards where the snake
// and apples would not leave at least one free cell.
func New(width, height int, opts ...Option) (*Game, error) {
	cfg := config{apples: DefaultAppleCount}
	for _, o := range opts {
		o(&cfg)
	}

	if width <= 0 || height <= 0 || width > math.MaxUint16 || height > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, width, height)
	}
	if cfg.apples < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAppleCount, cfg.apples)
	}
	if cfg.apples+1 >= width*height {
		return nil, fmt.Errorf("%w: %d apples on %dx%d", ErrBoardTooSmall, cfg.apples, width, height)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		width:  uint16(width),
		height: uint16(height),
		snake: snake{
			body:      []Point{{Col: uint16(width / 2), Row: uint16(height / 2)}},
			direction: Right,
		},
		alive: true,
		rng:   cfg.rng,
	}
	g.generateApples(cfg.apples)
	return g, nil
}

func (g *Game) Width() int  { return int(g.width) }
func (g *Game) Height() int { return int(g.height) }

// Score is the number of apples eaten so far.
func (g *Game) Score() uint32 { return g.score }

// Alive reports whether the game is still running.
func (g *Game) Alive() bool { return g.alive }

// Direction is the snake's current heading.
func (g *Game) Direction() Direction { return g.snake.direction }

// Head returns the snake's head position.
func (g *Game) Head() Point { return g.snake.body[0] }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Point {
	out := make([]Point, len(g.snake.body))
	copy(out, g.snake.body)
	return out
}

// Apples returns a copy of the apple positions.
func (g *Game) Apples() []Point {
	out := make([]Point, len(g.apples))
	copy(out, g.apples)
	return out
}

func contains(ps []Point, p Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
