// rules.go implements one tick of movement, growth and collision.

package game

import "fmt"

// next returns p moved one cell in d. The arithmetic is uint16 on purpose:
// p.Col-1 at column 0 and p.Row-1 at row 0 wrap to math.MaxUint16. Board
// dimensions never exceed math.MaxUint16, so a wrapped coordinate always
// fails inBounds.
func next(p Point, d Direction) Point {
	switch d {
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Left:
		p.Col--
	case Right:
		p.Col++
	}
	return p
}

func (g *Game) inBounds(p Point) bool {
	return p.Col < g.width && p.Row < g.height
}

// Step advances the game by one tick.
//
// Keep holds the current heading; any other direction is taken as is,
// including the reverse of the current one, which runs the head into the
// neck. Running into a wall or into the body ends the game and is reported
// through Alive, not as an error. A tick that leaves the board changes
// nothing but the alive flag.
//
// Step returns ErrGameOver on a finished game and ErrInvalidDirection for
// an unknown direction; the state is untouched in both cases. ErrBoardFull
// means the snake ate an apple and there was nowhere left to put it; the
// game is over.
func (g *Game) Step(d Direction) error {
	if !g.alive {
		return ErrGameOver
	}
	if d > Keep {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, d)
	}
	if d != Keep {
		g.snake.direction = d
	}

	body := g.snake.body
	head := next(body[0], g.snake.direction)
	if !g.inBounds(head) {
		g.alive = false
		return nil
	}

	// Follow the leader: each segment takes the place of the one ahead of
	// it. vacated ends up as the cell the tail just left.
	vacated := body[0]
	body[0] = head
	for i := 1; i < len(body); i++ {
		vacated, body[i] = body[i], vacated
	}

	if i := g.appleAt(head); i >= 0 {
		g.score++
		g.snake.body = append(g.snake.body, vacated)
		if !g.moveApple(i) {
			g.alive = false
			return ErrBoardFull
		}
	}

	if contains(g.snake.body[1:], head) {
		g.alive = false
	}
	return nil
}

func (g *Game) appleAt(p Point) int {
	for i, a := range g.apples {
		if a == p {
			return i
		}
	}
	return -1
}
