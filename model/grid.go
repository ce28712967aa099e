package model

import "github.com/pkg/errors"

// Grid represents a dense rectangular board of cells stored in row-major
// order, so the cell at (x, y) lives at offset x + width*y.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewEmptyGrid creates a 0x0 grid.
func NewEmptyGrid() *Grid {
	g, _ := NewGrid(0, 0)
	return g
}

// NewSquareGrid creates an n x n grid of dead cells.
func NewSquareGrid(n int) (*Grid, error) {
	return NewGrid(n, n)
}

// NewGrid creates a width x height grid of dead cells.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// GetWidth returns the width of the grid.
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid.
func (g *Grid) GetHeight() int {
	return g.height
}

// TotalCells returns the number of cells in the grid.
func (g *Grid) TotalCells() int {
	return g.width * g.height
}

// AliveCells counts the living cells in the grid.
func (g *Grid) AliveCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// DeadCells counts the dead cells in the grid.
func (g *Grid) DeadCells() int {
	return g.TotalCells() - g.AliveCells()
}

// index returns the 1d offset of the 2d coordinate.
func (g *Grid) index(x, y int) int {
	return x + g.width*y
}

// validCoordinate reports whether (x, y) lies inside the grid.
func (g *Grid) validCoordinate(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the value of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.validCoordinate(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at (x, y) with value.
func (g *Grid) Set(x, y int, value Cell) error {
	if !g.validCoordinate(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = value
	return nil
}

// At returns a pointer to the cell at (x, y) for repeated reads or writes
// without recomputing the offset. The pointer is invalidated by Resize.
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.validCoordinate(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[At] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	return &g.cells[g.index(x, y)], nil
}

// ResizeSquare resizes the grid to n x n, preserving the overlapping region.
func (g *Grid) ResizeSquare(n int) error {
	return g.Resize(n, n)
}

// Resize changes the grid shape to newWidth x newHeight. Cells inside the
// origin-aligned overlap keep their values; new cells are dead; cells outside
// the overlap are discarded.
func (g *Grid) Resize(newWidth, newHeight int) error {
	if newWidth < 0 || newHeight < 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Resize] %dx%d", newWidth, newHeight)
	}
	newCells := make([]Cell, newWidth*newHeight)
	for y := 0; y < min(g.height, newHeight); y++ {
		for x := 0; x < min(g.width, newWidth); x++ {
			newCells[x+newWidth*y] = g.cells[g.index(x, y)]
		}
	}
	g.width = newWidth
	g.height = newHeight
	g.cells = newCells
	return nil
}

// Clear kills every cell without changing the grid shape.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Crop extracts the sub-grid spanning [x0, x1) by [y0, y1).
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x1 > g.width || y1 > g.height || x1 < x0 || y1 < y0 {
		return nil, errors.Wrapf(ErrInvalidCrop,
			"[Crop] [%d,%d)x[%d,%d) in %dx%d", x0, x1, y0, y1, g.width, g.height)
	}
	cropped, _ := NewGrid(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cropped.cells[cropped.index(x-x0, y-y0)] = g.cells[g.index(x, y)]
		}
	}
	return cropped, nil
}

// Merge overlays other onto the grid with its top-left corner at (x0, y0).
// The whole of other must fit inside the receiver. When aliveOnly is true
// only living cells are copied, so the merge can add life but never remove it.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return errors.Wrapf(ErrInvalidMerge,
			"[Merge] %dx%d at (%d,%d) in %dx%d", other.width, other.height, x0, y0, g.width, g.height)
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			value := other.cells[other.index(x, y)]
			if aliveOnly && value != Alive {
				continue
			}
			g.cells[g.index(x0+x, y0+y)] = value
		}
	}
	return nil
}

// Rotate returns a copy of the grid rotated clockwise by rotation*90 degrees.
// Any integer is accepted and reduced modulo 4 first, so the cost does not
// depend on its magnitude.
func (g *Grid) Rotate(rotation int) *Grid {
	r := (rotation%4 + 4) % 4

	var rotated *Grid
	if r%2 == 0 {
		rotated, _ = NewGrid(g.width, g.height)
	} else {
		rotated, _ = NewGrid(g.height, g.width)
	}

	for y := 0; y < rotated.height; y++ {
		for x := 0; x < rotated.width; x++ {
			var srcX, srcY int
			switch r {
			case 0:
				srcX, srcY = x, y
			case 1:
				srcX, srcY = y, g.height-1-x
			case 2:
				srcX, srcY = g.width-1-x, g.height-1-y
			case 3:
				srcX, srcY = g.width-1-y, x
			}
			rotated.cells[rotated.index(x, y)] = g.cells[g.index(srcX, srcY)]
		}
	}
	return rotated
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone, _ := NewGrid(g.width, g.height)
	copy(clone.cells, g.cells)
	return clone
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
