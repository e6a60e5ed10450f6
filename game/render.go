// render.go draws the board into a character frame.

package game

import "strings"

// Glyphs used in a Frame.
const (
	GlyphWall  byte = 'X'
	GlyphBlank byte = ' '
	GlyphApple byte = 'O'
	GlyphSnake byte = 'S'
)

// Frame is a bordered character grid of (Width()+2) x (Height()+2) cells
// stored row-major.
type Frame struct {
	cols  int
	rows  int
	cells []byte
}

// Cols is the frame width including both border columns.
func (f Frame) Cols() int { return f.cols }

// Rows is the frame height including both border rows.
func (f Frame) Rows() int { return f.rows }

// At returns the glyph at frame coordinates, where (0,0) is the top-left
// border corner.
func (f Frame) At(col, row int) byte {
	return f.cells[row*f.cols+col]
}

// String returns the cells row-major with no separators. Written to a
// terminal exactly Cols() wide it wraps into the board.
func (f Frame) String() string {
	return string(f.cells)
}

// Lines returns the rows joined by newlines.
func (f Frame) Lines() string {
	var sb strings.Builder
	sb.Grow(len(f.cells) + f.rows)
	for r := 0; r < f.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(f.cells[r*f.cols : (r+1)*f.cols])
	}
	return sb.String()
}

// Render draws the current state. It does not modify the game.
func (g *Game) Render() Frame {
	cols, rows := int(g.width)+2, int(g.height)+2
	f := Frame{cols: cols, rows: rows, cells: make([]byte, cols*rows)}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				f.cells[r*cols+c] = GlyphWall
			} else {
				f.cells[r*cols+c] = GlyphBlank
			}
		}
	}

	// Interior (col,row) sits at (col+1,row+1) inside the border. The snake
	// is drawn last so it covers anything beneath it.
	put := func(p Point, glyph byte) {
		f.cells[(int(p.Row)+1)*cols+int(p.Col)+1] = glyph
	}
	for _, a := range g.apples {
		put(a, GlyphApple)
	}
	for _, s := range g.snake.body {
		put(s, GlyphSnake)
	}
	return f
}
