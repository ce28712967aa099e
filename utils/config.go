package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Steps         int           `json:"steps"`
	FrameRate     time.Duration `json:"frame_rate"`
	Toroidal      bool          `json:"toroidal"`
	Pattern       string        `json:"pattern"`
	RandomDensity float64       `json:"random_density"`
	LoadPath      string        `json:"load_path"`
	SavePath      string        `json:"save_path"`
	Quiet         bool          `json:"quiet"`
	Color         bool          `json:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         40,
		Height:        20,
		Steps:         100,
		FrameRate:     150 * time.Millisecond,
		Toroidal:      false,
		Pattern:       "glider",
		RandomDensity: 0.15,
		Quiet:         false,
		Color:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
