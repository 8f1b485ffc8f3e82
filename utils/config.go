package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation.
//
// Valid ranges: Width and Height must be positive, FillRate must lie within
// [0, 1] and FrameInterval must be non-negative. Violations are reported by
// grid construction rather than clamped here.
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FillRate       float64       `json:"fill_rate"`
	FrameInterval  time.Duration `json:"frame_interval"`
	Seed           int64         `json:"seed"`
	MaxGenerations int           `json:"max_generations"`
	Scale          int           `json:"scale"`
	Windowed       bool          `json:"windowed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          160,
		Height:         120,
		FillRate:       0.1,
		FrameInterval:  150 * time.Millisecond,
		Seed:           0, // <= 0 selects a time-based seed
		MaxGenerations: 0, // 0 runs until cancelled
		Scale:          4,
		Windowed:       false,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (positive)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (positive)")
	fs.Float64Var(&c.FillRate, "fill", c.FillRate, "initial alive probability in [0,1]")
	fs.DurationVar(&c.FrameInterval, "interval", c.FrameInterval, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; <= 0 uses the current time")
	fs.IntVar(&c.MaxGenerations, "max-gen", c.MaxGenerations, "stop after this many generations; 0 runs forever")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the windowed renderer")
	fs.BoolVar(&c.Windowed, "window", c.Windowed, "render to a window instead of the terminal")
}

// LoadConfig loads configuration from a JSON file on top of the defaults
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
