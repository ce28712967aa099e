// Package rules holds the B3/S23 transition for Conway's Game of Life.
package rules

// ApplyConwayRules returns whether a cell is alive in the next generation,
// given its live-neighbour count and current state: a live cell survives with
// 2 or 3 neighbours, a dead cell is born with exactly 3.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
