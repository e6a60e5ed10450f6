// food.go implements apple placement.

package game

// randomPoint draws a uniformly random interior cell.
func (g *Game) randomPoint() Point {
	return Point{
		Col: uint16(g.rng.Intn(int(g.width))),
		Row: uint16(g.rng.Intn(int(g.height))),
	}
}

// generateApples places n apples by rejection sampling. Candidates are
// rejected if they land on an apple already placed or on the snake.
// New guarantees a free cell exists for every draw.
func (g *Game) generateApples(n int) {
	g.apples = make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p := g.randomPoint()
		for contains(g.apples, p) || contains(g.snake.body, p) {
			p = g.randomPoint()
		}
		g.apples = append(g.apples, p)
	}
}

// moveApple relocates apples[i] to a random cell off the snake and off
// every other apple. It returns false, leaving the apple where it is, when
// no such cell exists; sampling would never terminate in that case.
func (g *Game) moveApple(i int) bool {
	others := len(g.apples) - 1
	if int(g.width)*int(g.height)-len(g.snake.body)-others <= 0 {
		return false
	}

	p := g.randomPoint()
	for contains(g.snake.body, p) || contains(g.apples, p) {
		p = g.randomPoint()
	}
	g.apples[i] = p
	return true
}
