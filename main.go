package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"golife/model"
	"golife/utils"
)

func main() {
	config := initConfig()

	grid, err := seedGrid(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed the board: %v\n", err)
		os.Exit(1)
	}
	world := model.NewWorldFromGrid(grid)

	renderer := &model.TerminalRenderer{Color: config.Color}
	stats := utils.NewStats()

	if !config.Quiet {
		displayGameInfo(config, world)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		lastFrameTime = time.Now()
		interrupted   = false
	)

	for generation < config.Steps && !interrupted {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			interrupted = true
			continue
		default:
		}

		world.Step(config.Toroidal)
		generation++

		frameStart := time.Now()
		stats.Update(generation, world.AliveCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if !config.Quiet {
			renderer.Clear()
			displayGameStatus(generation, world, stats, config.Color)
			renderer.Display(world.State())
			time.Sleep(config.FrameRate)
		}
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds, %d cells alive\n",
		generation, time.Since(stats.StartTime).Seconds(), world.AliveCells())

	if config.SavePath != "" {
		if err = saveGrid(config.SavePath, world.State()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save the board: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved final state to %s\n", config.SavePath)
	}
}

// initConfig loads config.json when present and lets command line flags
// override it.
func initConfig() utils.Config {
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&config.Width, "x", "width", "Width of the simulation board")
	flaggy.Int(&config.Height, "y", "height", "Height of the simulation board")
	flaggy.Int(&config.Steps, "s", "steps", "Number of generations to simulate")
	flaggy.Duration(&config.FrameRate, "i", "interval", "Interval between rendered generations, for example 150ms")
	flaggy.Bool(&config.Toroidal, "t", "toroidal", "Wrap the board edges into a torus")
	flaggy.String(&config.Pattern, "p", "pattern", "Seed pattern ["+strings.Join(patternNames(), "|")+"]")
	flaggy.String(&config.LoadPath, "", "load", "Load the initial board from a .gol or .bgol file")
	flaggy.String(&config.SavePath, "", "save", "Save the final board to a .gol or .bgol file")
	flaggy.Bool(&config.Quiet, "q", "quiet", "Skip rendering and run the generations flat out")
	flaggy.Parse()

	return config
}
