package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// newTestGame builds a game with an explicit snake and apple layout.
func newTestGame(width, height uint16, body []Point, dir Direction, apples []Point) *Game {
	return &Game{
		width:  width,
		height: height,
		snake:  snake{body: append([]Point(nil), body...), direction: dir},
		apples: append([]Point(nil), apples...),
		alive:  true,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func logStep(t *testing.T, label string, before string, d Direction, g *Game) {
	t.Helper()
	t.Logf("%s\n  BEFORE (dir=%s):\n%s\n  AFTER:\n%s", label, d, before, g.Render().Lines())
}

func assertBody(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("body len=%d want=%d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestNew_StartsCentered(t *testing.T) {
	g, err := New(5, 5, WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertBody(t, g.Snake(), []Point{{Col: 2, Row: 2}})
	if g.Direction() != Right {
		t.Fatalf("direction=%v want=right", g.Direction())
	}
	if g.Score() != 0 || !g.Alive() {
		t.Fatalf("score=%d alive=%v want 0/true", g.Score(), g.Alive())
	}
	if len(g.Apples()) != DefaultAppleCount {
		t.Fatalf("apples=%d want=%d", len(g.Apples()), DefaultAppleCount)
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		opts   []Option
		target error
	}{
		{"zero width", 0, 5, nil, ErrInvalidBoard},
		{"negative height", 5, -1, nil, ErrInvalidBoard},
		{"too wide", math.MaxUint16 + 1, 5, nil, ErrInvalidBoard},
		{"negative apples", 5, 5, []Option{WithApples(-1)}, ErrInvalidAppleCount},
		{"no free cell", 3, 3, []Option{WithApples(8)}, ErrBoardTooSmall},
		{"single cell", 1, 1, []Option{WithApples(0)}, ErrBoardTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.w, tc.h, tc.opts...)
			if !errors.Is(err, tc.target) {
				t.Fatalf("err=%v want %v", err, tc.target)
			}
			if g != nil {
				t.Fatalf("expected nil game on error")
			}
		})
	}
}

func TestStep_MoveWithoutApple(t *testing.T) {
	g := newTestGame(5, 5, []Point{{2, 2}}, Right, []Point{{0, 0}})
	before := g.Render().Lines()

	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	logStep(t, "move without apple", before, Keep, g)

	assertBody(t, g.Snake(), []Point{{3, 2}})
	if !g.Alive() {
		t.Fatalf("snake died on a free move")
	}
	if g.Score() != 0 {
		t.Fatalf("score=%d want=0", g.Score())
	}
}

func TestStep_EatAppleGrowsIntoVacatedSlot(t *testing.T) {
	g := newTestGame(5, 5, []Point{{3, 2}, {2, 2}}, Right, []Point{{4, 2}})
	before := g.Render().Lines()

	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	logStep(t, "eat apple", before, Keep, g)

	body := g.Snake()
	assertBody(t, body, []Point{{4, 2}, {3, 2}, {2, 2}})
	if g.Score() != 1 {
		t.Fatalf("score=%d want=1", g.Score())
	}
	apples := g.Apples()
	if len(apples) != 1 {
		t.Fatalf("apples=%d want=1", len(apples))
	}
	if contains(body, apples[0]) {
		t.Fatalf("apple relocated onto snake at %v", apples[0])
	}
	if !g.Alive() {
		t.Fatalf("snake died after eating")
	}
}

func TestStep_GrowsFromLongerBody(t *testing.T) {
	g := newTestGame(7, 7, []Point{{3, 3}, {3, 4}, {3, 5}}, Up, []Point{{3, 2}})

	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertBody(t, g.Snake(), []Point{{3, 2}, {3, 3}, {3, 4}, {3, 5}})
}

func TestStep_LeavingBoardDies(t *testing.T) {
	cases := []struct {
		name string
		body []Point
		dir  Direction
	}{
		{"left underflow", []Point{{0, 2}, {1, 2}}, Left},
		{"up underflow", []Point{{2, 0}, {2, 1}}, Up},
		{"right wall", []Point{{4, 2}, {3, 2}}, Right},
		{"down wall", []Point{{2, 4}, {2, 3}}, Down},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(5, 5, tc.body, tc.dir, []Point{{0, 4}})

			if err := g.Step(Keep); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if g.Alive() {
				t.Fatalf("snake survived leaving the board")
			}
			assertBody(t, g.Snake(), tc.body)
			if g.Score() != 0 {
				t.Fatalf("score=%d want=0", g.Score())
			}
		})
	}
}

func TestNext_WrapsAtZero(t *testing.T) {
	if p := next(Point{0, 3}, Left); p.Col != math.MaxUint16 || p.Row != 3 {
		t.Fatalf("left from col 0: %v", p)
	}
	if p := next(Point{3, 0}, Up); p.Row != math.MaxUint16 || p.Col != 3 {
		t.Fatalf("up from row 0: %v", p)
	}

	// The wrapped value must stay out of bounds on the widest board.
	g := newTestGame(math.MaxUint16, math.MaxUint16, []Point{{0, 0}}, Left, nil)
	if g.inBounds(next(Point{0, 0}, Left)) {
		t.Fatalf("wrapped column reported in bounds")
	}
}

func TestStep_SelfCollisionDies(t *testing.T) {
	g := newTestGame(5, 5, []Point{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}, Down, nil)
	before := g.Render().Lines()

	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	logStep(t, "self collision", before, Keep, g)

	if g.Alive() {
		t.Fatalf("snake survived biting itself")
	}
}

func TestStep_FollowingTailIsSafe(t *testing.T) {
	g := newTestGame(5, 5, []Point{{1, 1}, {2, 1}, {2, 2}, {1, 2}}, Down, nil)

	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !g.Alive() {
		t.Fatalf("moving into the cell the tail vacated killed the snake")
	}
	assertBody(t, g.Snake(), []Point{{1, 2}, {1, 1}, {2, 1}, {2, 2}})
}

func TestStep_ReverseIntoNeck(t *testing.T) {
	// Reversal is not filtered. With three segments the head lands on the
	// shifted neck.
	g := newTestGame(7, 7, []Point{{3, 3}, {2, 3}, {1, 3}}, Right, nil)
	if err := g.Step(Left); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if g.Alive() {
		t.Fatalf("reversing into the neck should be fatal")
	}

	// With two segments the head and tail simply swap.
	g = newTestGame(7, 7, []Point{{3, 3}, {2, 3}}, Right, nil)
	if err := g.Step(Left); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !g.Alive() {
		t.Fatalf("two-segment reversal should survive")
	}
	assertBody(t, g.Snake(), []Point{{2, 3}, {3, 3}})
	if g.Direction() != Left {
		t.Fatalf("direction=%v want=left", g.Direction())
	}
}

func TestStep_KeepAndTurn(t *testing.T) {
	g := newTestGame(9, 9, []Point{{4, 4}}, Right, nil)

	steps := []struct {
		in   Direction
		want Point
		dir  Direction
	}{
		{Keep, Point{5, 4}, Right},
		{Down, Point{5, 5}, Down},
		{Keep, Point{5, 6}, Down},
		{Left, Point{4, 6}, Left},
		{Up, Point{4, 5}, Up},
	}
	for i, s := range steps {
		if err := g.Step(s.in); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if g.Head() != s.want || g.Direction() != s.dir {
			t.Fatalf("step %d: head=%v dir=%v want %v/%v", i, g.Head(), g.Direction(), s.want, s.dir)
		}
	}
}

func TestStep_ContractViolations(t *testing.T) {
	g := newTestGame(5, 5, []Point{{2, 2}}, Right, nil)
	if err := g.Step(Direction(42)); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("err=%v want ErrInvalidDirection", err)
	}
	assertBody(t, g.Snake(), []Point{{2, 2}})

	g = newTestGame(5, 5, []Point{{4, 2}}, Right, nil)
	if err := g.Step(Keep); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := g.Step(Keep); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err=%v want ErrGameOver", err)
	}
}

func TestStep_BoardFull(t *testing.T) {
	g := newTestGame(2, 1, []Point{{0, 0}}, Right, []Point{{1, 0}})

	err := g.Step(Keep)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err=%v want ErrBoardFull", err)
	}
	if g.Alive() {
		t.Fatalf("game should end when the board is full")
	}
	if g.Score() != 1 {
		t.Fatalf("score=%d want=1", g.Score())
	}
}

// TestStep_RandomPlayInvariants plays many random games and checks the
// growth, score and apple invariants after every tick.
func TestStep_RandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dirs := []Direction{Up, Down, Left, Right, Keep, Keep, Keep}

	for game := 0; game < 200; game++ {
		g, err := New(8, 6, WithRand(rng))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		eaten := uint32(0)

		for tick := 0; g.Alive() && tick < 500; tick++ {
			prevLen := len(g.Snake())
			prevScore := g.Score()
			d := dirs[rng.Intn(len(dirs))]

			heading := g.Direction()
			if d != Keep {
				heading = d
			}
			target := next(g.Head(), heading)
			onApple := contains(g.Apples(), target)

			if err := g.Step(d); err != nil {
				t.Fatalf("game %d tick %d: %v", game, tick, err)
			}
			if onApple {
				eaten++
			}

			gotLen := len(g.Snake())
			switch {
			case onApple && gotLen != prevLen+1:
				t.Fatalf("game %d tick %d: ate apple but len %d -> %d", game, tick, prevLen, gotLen)
			case !onApple && gotLen != prevLen:
				t.Fatalf("game %d tick %d: len changed %d -> %d without apple", game, tick, prevLen, gotLen)
			}
			if g.Score() < prevScore || g.Score() != eaten {
				t.Fatalf("game %d tick %d: score=%d eaten=%d prev=%d", game, tick, g.Score(), eaten, prevScore)
			}
			checkAppleInvariant(t, g)
		}
	}
}

func checkAppleInvariant(t *testing.T, g *Game) {
	t.Helper()
	apples := g.Apples()
	body := g.Snake()
	for i, a := range apples {
		if !g.inBounds(a) {
			t.Fatalf("apple %v out of bounds", a)
		}
		if contains(apples[i+1:], a) {
			t.Fatalf("duplicate apple at %v", a)
		}
		if contains(body, a) {
			t.Fatalf("apple %v under the snake %v", a, body)
		}
	}
}
