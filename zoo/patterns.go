// Package zoo constructs grids containing canonical Game of Life creatures
// and persists grids in the ascii (.gol) and binary (.bgol) file formats.
package zoo

import "golife/model"

// seed builds a grid of the pattern's bounding box with the listed
// coordinates alive.
func seed(width, height int, alive [][2]int) *model.Grid {
	grid, _ := model.NewGrid(width, height)
	for _, p := range alive {
		_ = grid.Set(p[0], p[1], model.Alive)
	}
	return grid
}

// Glider returns a 3x3 grid containing the canonical Conway glider.
//
//	 #
//	  #
//	###
func Glider() *model.Grid {
	return seed(3, 3, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// RPentomino returns a 3x3 grid containing the r-pentomino.
//
//	 ##
//	##
//	 #
func RPentomino() *model.Grid {
	return seed(3, 3, [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
}

// LightWeightSpaceship returns a 5x4 grid containing the lightweight
// spaceship.
//
//	 #  #
//	#
//	#   #
//	####
func LightWeightSpaceship() *model.Grid {
	return seed(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}
