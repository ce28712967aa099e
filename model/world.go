package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"golife/rules"
)

// World evolves a grid under Conway's rule. It holds two equally sized grids
// for the current and next state; each step writes the new generation into
// the next buffer from the current one only, then swaps their roles, so a
// step is observed atomically.
type World struct {
	current *Grid
	next    *Grid
}

// NewEmptyWorld creates a 0x0 world.
func NewEmptyWorld() *World {
	w, _ := NewWorld(0, 0)
	return w
}

// NewSquareWorld creates an n x n world of dead cells.
func NewSquareWorld(n int) (*World, error) {
	return NewWorld(n, n)
}

// NewWorld creates a width x height world of dead cells.
func NewWorld(width, height int) (*World, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return NewWorldFromGrid(grid), nil
}

// NewWorldFromGrid creates a world whose initial state is a deep copy of
// grid; the caller keeps ownership of the original.
func NewWorldFromGrid(grid *Grid) *World {
	next, _ := NewGrid(grid.GetWidth(), grid.GetHeight())
	return &World{
		current: grid.Clone(),
		next:    next,
	}
}

// GetWidth returns the width of the world.
func (w *World) GetWidth() int {
	return w.current.GetWidth()
}

// GetHeight returns the height of the world.
func (w *World) GetHeight() int {
	return w.current.GetHeight()
}

// TotalCells returns the number of cells in the world.
func (w *World) TotalCells() int {
	return w.current.TotalCells()
}

// AliveCells counts the living cells in the current generation.
func (w *World) AliveCells() int {
	return w.current.AliveCells()
}

// DeadCells counts the dead cells in the current generation.
func (w *World) DeadCells() int {
	return w.current.DeadCells()
}

// State returns the current generation. The returned grid is the world's own
// buffer and must not be mutated; Clone it for an independent copy.
func (w *World) State() *Grid {
	return w.current
}

// ResizeSquare resizes the world to n x n.
func (w *World) ResizeSquare(n int) error {
	return w.Resize(n, n)
}

// Resize changes the shape of both buffers. The current generation keeps its
// origin-aligned overlap as Grid.Resize does; the next buffer is reset dead.
func (w *World) Resize(newWidth, newHeight int) error {
	if err := w.current.Resize(newWidth, newHeight); err != nil {
		return err
	}
	if err := w.next.Resize(newWidth, newHeight); err != nil {
		return err
	}
	w.next.Clear()
	return nil
}

// countNeighbours counts the living cells among the eight positions around
// (x, y). Outside the non-toroidal grid everything counts as dead; on a torus
// coordinates wrap with a positive modulus.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	var (
		g      = w.current
		width  = g.GetWidth()
		height = g.GetHeight()
		count  = 0
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx%width + width) % width
				ny = (ny%height + height) % height
			} else if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if g.cells[g.index(nx, ny)] == Alive {
				count++
			}
		}
	}
	return count
}

// Step computes one generation into the back buffer and swaps the buffers.
// When toroidal is true the grid edges wrap, so the topology is a torus.
func (w *World) Step(toroidal bool) {
	var (
		g             = w.current
		height        = g.GetHeight()
		width         = g.GetWidth()
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (height + numWorkers - 1) / numWorkers
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		// Each worker reads only the current buffer and writes a
		// disjoint row band of the next one.
		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < width; x++ {
					alive := g.cells[g.index(x, y)] == Alive
					if rules.ApplyConwayRules(w.countNeighbours(x, y, toroidal), alive) {
						w.next.cells[w.next.index(x, y)] = Alive
					} else {
						w.next.cells[w.next.index(x, y)] = Dead
					}
				}
			}
			return nil
		})
	}

	_ = eg.Wait() // workers never return an error

	w.current, w.next = w.next, w.current
}

// Advance applies Step the given number of times. A negative count is
// treated as zero.
func (w *World) Advance(steps int, toroidal bool) {
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
