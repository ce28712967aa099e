package model

import (
	"errors"
	"testing"
)

func mustWorld(t *testing.T, width, height int) *World {
	t.Helper()
	w, err := NewWorld(width, height)
	if err != nil {
		t.Fatalf("NewWorld(%d, %d): %v", width, height, err)
	}
	return w
}

func aliveSet(t *testing.T, g *Grid) map[[2]int]bool {
	t.Helper()
	alive := map[[2]int]bool{}
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			if c, _ := g.Get(x, y); c == Alive {
				alive[[2]int{x, y}] = true
			}
		}
	}
	return alive
}

func expectAlive(t *testing.T, g *Grid, want map[[2]int]bool) {
	t.Helper()
	got := aliveSet(t, g)
	for p := range want {
		if !got[p] {
			t.Fatalf("cell (%d,%d) dead, expected alive", p[0], p[1])
		}
	}
	for p := range got {
		if !want[p] {
			t.Fatalf("cell (%d,%d) alive, expected dead", p[0], p[1])
		}
	}
}

func TestWorldConstruction(t *testing.T) {
	w := mustWorld(t, 6, 4)
	if w.GetWidth() != 6 || w.GetHeight() != 4 || w.TotalCells() != 24 {
		t.Fatalf("world is %dx%d", w.GetWidth(), w.GetHeight())
	}
	if w.AliveCells() != 0 || w.DeadCells() != 24 {
		t.Fatalf("fresh world alive=%d dead=%d", w.AliveCells(), w.DeadCells())
	}

	empty := NewEmptyWorld()
	if empty.TotalCells() != 0 {
		t.Fatalf("empty world has %d cells", empty.TotalCells())
	}

	square, err := NewSquareWorld(3)
	if err != nil || square.GetWidth() != 3 || square.GetHeight() != 3 {
		t.Fatalf("NewSquareWorld(3) = %dx%d, %v", square.GetWidth(), square.GetHeight(), err)
	}

	if _, err = NewWorld(-1, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("NewWorld(-1, 1) err = %v, want ErrInvalidDimensions", err)
	}
}

func TestWorldFromGridCopies(t *testing.T) {
	seed := mustGrid(t, 3, 3)
	_ = seed.Set(1, 1, Alive)

	w := NewWorldFromGrid(seed)
	if w.AliveCells() != 1 {
		t.Fatalf("world alive = %d, want 1", w.AliveCells())
	}

	// The world must not alias the caller's grid.
	_ = seed.Set(0, 0, Alive)
	if w.AliveCells() != 1 {
		t.Fatalf("mutating the seed grid changed the world")
	}
}

func TestStepAllDeadStaysDead(t *testing.T) {
	for _, toroidal := range []bool{false, true} {
		w := mustWorld(t, 5, 5)
		w.Step(toroidal)
		if w.AliveCells() != 0 {
			t.Fatalf("dead world spawned %d cells (toroidal=%v)", w.AliveCells(), toroidal)
		}
	}
}

func TestStepBlockIsStillLife(t *testing.T) {
	seed := mustGrid(t, 4, 4)
	_ = seed.Set(1, 1, Alive)
	_ = seed.Set(2, 1, Alive)
	_ = seed.Set(1, 2, Alive)
	_ = seed.Set(2, 2, Alive)

	w := NewWorldFromGrid(seed)
	for i := 0; i < 3; i++ {
		w.Step(false)
		if !w.State().Equal(seed) {
			t.Fatalf("block changed after step %d", i+1)
		}
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	seed := mustGrid(t, 5, 5)
	_ = seed.Set(2, 1, Alive)
	_ = seed.Set(2, 2, Alive)
	_ = seed.Set(2, 3, Alive)

	w := NewWorldFromGrid(seed)

	w.Step(false)
	expectAlive(t, w.State(), map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	w.Step(false)
	expectAlive(t, w.State(), map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestStepToroidalWrapX(t *testing.T) {
	// A vertical blinker hugging the left edge. With wrap its horizontal
	// phase reaches across to the right edge.
	seed := mustGrid(t, 5, 5)
	_ = seed.Set(0, 1, Alive)
	_ = seed.Set(0, 2, Alive)
	_ = seed.Set(0, 3, Alive)

	w := NewWorldFromGrid(seed)
	w.Step(true)
	expectAlive(t, w.State(), map[[2]int]bool{{4, 2}: true, {0, 2}: true, {1, 2}: true})

	w.Step(true)
	if !w.State().Equal(seed) {
		t.Fatalf("toroidal blinker did not return to its vertical phase")
	}
}

func TestStepToroidalWrapY(t *testing.T) {
	seed := mustGrid(t, 5, 5)
	_ = seed.Set(1, 0, Alive)
	_ = seed.Set(2, 0, Alive)
	_ = seed.Set(3, 0, Alive)

	w := NewWorldFromGrid(seed)
	w.Step(true)
	expectAlive(t, w.State(), map[[2]int]bool{{2, 4}: true, {2, 0}: true, {2, 1}: true})
}

func TestStepToroidalSmallTorus(t *testing.T) {
	// On a 3x3 torus a full column is adjacent to every dead cell three
	// times over, so one step fills the board and the next clears it.
	seed := mustGrid(t, 3, 3)
	_ = seed.Set(0, 0, Alive)
	_ = seed.Set(0, 1, Alive)
	_ = seed.Set(0, 2, Alive)

	w := NewWorldFromGrid(seed)
	w.Step(true)
	if w.AliveCells() != 9 {
		t.Fatalf("alive = %d after one step, want 9", w.AliveCells())
	}
	w.Step(true)
	if w.AliveCells() != 0 {
		t.Fatalf("alive = %d after two steps, want 0", w.AliveCells())
	}
}

func TestStepNonToroidalEdgesAreDead(t *testing.T) {
	// The same edge-hugging blinker without wrap: the off-board neighbours
	// count as dead, so the horizontal phase is clipped.
	seed := mustGrid(t, 5, 5)
	_ = seed.Set(0, 1, Alive)
	_ = seed.Set(0, 2, Alive)
	_ = seed.Set(0, 3, Alive)

	w := NewWorldFromGrid(seed)
	w.Step(false)
	expectAlive(t, w.State(), map[[2]int]bool{{0, 2}: true, {1, 2}: true})
}

func TestAdvance(t *testing.T) {
	seed := mustGrid(t, 5, 5)
	_ = seed.Set(2, 1, Alive)
	_ = seed.Set(2, 2, Alive)
	_ = seed.Set(2, 3, Alive)

	w := NewWorldFromGrid(seed)
	w.Advance(2, false)
	if !w.State().Equal(seed) {
		t.Fatalf("blinker not back in phase after Advance(2)")
	}

	w.Advance(-5, false)
	if !w.State().Equal(seed) {
		t.Fatalf("negative Advance changed the world")
	}

	w.Advance(0, false)
	if !w.State().Equal(seed) {
		t.Fatalf("Advance(0) changed the world")
	}
}

func TestWorldResize(t *testing.T) {
	seed := mustGrid(t, 4, 4)
	_ = seed.Set(0, 0, Alive)
	_ = seed.Set(3, 3, Alive)

	w := NewWorldFromGrid(seed)
	if err := w.Resize(2, 2); err != nil {
		t.Fatalf("Resize(2, 2): %v", err)
	}
	if w.AliveCells() != 1 {
		t.Fatalf("alive = %d after shrink, want 1", w.AliveCells())
	}

	if err := w.ResizeSquare(6); err != nil {
		t.Fatalf("ResizeSquare(6): %v", err)
	}
	if w.GetWidth() != 6 || w.GetHeight() != 6 {
		t.Fatalf("world is %dx%d, want 6x6", w.GetWidth(), w.GetHeight())
	}
	if c, _ := w.State().Get(0, 0); c != Alive {
		t.Fatalf("(0,0) lost across resizes")
	}

	if err := w.Resize(-2, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Resize(-2, 2) err = %v, want ErrInvalidDimensions", err)
	}

	// The back buffer must have followed the shape changes.
	w.Step(false)
	if w.GetWidth() != 6 || w.GetHeight() != 6 {
		t.Fatalf("step after resize broke the shape: %dx%d", w.GetWidth(), w.GetHeight())
	}
}

func Benchmark_WorldStep(b *testing.B) {
	seed, _ := NewGrid(200, 200)
	for i := 0; i < 200*200; i += 7 {
		_ = seed.Set(i%200, i/200, Alive)
	}
	w := NewWorldFromGrid(seed)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Step(false)
	}
}
