package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"golife/model"
	"golife/utils"
	"golife/zoo"
)

var patterns = map[string]func() *model.Grid{
	"glider":      zoo.Glider,
	"r-pentomino": zoo.RPentomino,
	"lwss":        zoo.LightWeightSpaceship,
}

// patternNames lists the seed patterns selectable with --pattern.
func patternNames() []string {
	names := make([]string, 0, len(patterns)+1)
	for name := range patterns {
		names = append(names, name)
	}
	return append(names, "random")
}

// seedGrid builds the initial grid: a file given by --load wins, otherwise
// the named zoo pattern is centered on a dead board of the configured size,
// or the board is randomized.
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.LoadPath != "" {
		return loadGrid(config.LoadPath)
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	if config.Pattern == "random" {
		randomize(grid, config.RandomDensity)
		return grid, nil
	}

	pattern, ok := patterns[config.Pattern]
	if !ok {
		return nil, errors.Errorf("[seedGrid] unknown pattern %q", config.Pattern)
	}
	creature := pattern()
	x0 := (grid.GetWidth() - creature.GetWidth()) / 2
	y0 := (grid.GetHeight() - creature.GetHeight()) / 2
	if err = grid.Merge(creature, x0, y0, false); err != nil {
		return nil, errors.Wrapf(err, "[seedGrid] pattern %q does not fit a %dx%d board",
			config.Pattern, config.Width, config.Height)
	}
	return grid, nil
}

// randomize fills the grid with living cells at the given density.
func randomize(grid *model.Grid, density float64) {
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			if rand.Float64() < density {
				_ = grid.Set(x, y, model.Alive)
			}
		}
	}
}

// loadGrid reads a grid from disk, choosing the codec by file extension.
func loadGrid(path string) (*model.Grid, error) {
	if filepath.Ext(path) == ".bgol" {
		return zoo.LoadBinary(path)
	}
	return zoo.LoadASCII(path)
}

// saveGrid writes a grid to disk, choosing the codec by file extension.
func saveGrid(path string, grid *model.Grid) error {
	if filepath.Ext(path) == ".bgol" {
		return zoo.SaveBinary(path, grid)
	}
	return zoo.SaveASCII(path, grid)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Board: %dx%d | Toroidal: %v | Initial living cells: %d\n",
		world.GetWidth(), world.GetHeight(), config.Toroidal, world.AliveCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, world *model.World, stats *utils.Stats, color bool) {
	population := world.AliveCells()
	density := 0.0
	if world.TotalCells() > 0 {
		density = float64(population) / float64(world.TotalCells()) * 100
	}

	popText := fmt.Sprintf("%d", population)
	if color {
		if population > 0 {
			popText = aurora.Green(popText).String()
		} else {
			popText = aurora.Red(popText).String()
		}
	}

	fmt.Printf("Gen: %d | Living: %s | Density: %.1f%%\n", generation, popText, density)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
