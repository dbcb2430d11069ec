// Package config holds the scenario and window settings of the demo.
//
// Settings start out at Default, can be overwritten by a TOML file using Load,
// and finally by SHAPEMATCH_* environment variables using ApplyEnv.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/oliverbestmann/shapematch"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Grid       Grid       `toml:"grid"`
	Simulation Simulation `toml:"simulation"`
	Window     Window     `toml:"window"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Profile enables profiling, either "cpu" or "mem". Empty disables profiling.
	Profile string `toml:"profile"`
}

type Grid struct {
	Nx    int     `toml:"nx"`
	Ny    int     `toml:"ny"`
	Scale float32 `toml:"scale"`
}

type Simulation struct {
	Dt           float32 `toml:"dt"`
	PinMass      float32 `toml:"pin_mass"`
	PinThreshold float32 `toml:"pin_threshold"`

	Amplitude        float64 `toml:"amplitude"`
	AngularFrequency float64 `toml:"angular_frequency"`

	// Merge is the merge policy, either "last-writer" or "average".
	Merge         string `toml:"merge"`
	FixReflection bool   `toml:"fix_reflection"`

	// TimeScale scales the progression of the boundary drive time.
	TimeScale float64 `toml:"time_scale"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// ViewHeight is half the height of the visible world area.
	ViewHeight float32 `toml:"view_height"`
}

// Default returns the settings of the reference scenario.
func Default() Config {
	return Config{
		Grid: Grid{
			Nx:    3,
			Ny:    10,
			Scale: 0.1,
		},
		Simulation: Simulation{
			Dt:               0.03,
			PinMass:          shapematch.DefaultPinMass,
			PinThreshold:     shapematch.DefaultPinThreshold,
			Amplitude:        shapematch.DefaultDrive.Amplitude,
			AngularFrequency: shapematch.DefaultDrive.AngularFrequency,
			Merge:            shapematch.MergeLastWriter.String(),
			TimeScale:        1,
		},
		Window: Window{
			Title:      "Shape Matching Deformation",
			Width:      800,
			Height:     600,
			ViewHeight: 1,
		},
		LogLevel: "info",
	}
}

// Load reads the TOML file at path on top of the default settings.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(buf, &config); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return config, nil
}

// Validate checks all settings and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Grid.Nx >= 1 && c.Grid.Ny >= 1, "grid must have at least one quad, got %dx%d", c.Grid.Nx, c.Grid.Ny)
	check(c.Grid.Scale > 0, "grid scale must be positive, got %v", c.Grid.Scale)

	check(c.Simulation.Dt > 0, "dt must be positive, got %v", c.Simulation.Dt)
	check(c.Simulation.PinMass >= 1, "pin mass must be at least 1, got %v", c.Simulation.PinMass)
	check(c.Simulation.PinThreshold >= 1 && c.Simulation.PinThreshold < c.Simulation.PinMass,
		"pin threshold must be between 1 and the pin mass, got %v", c.Simulation.PinThreshold)
	check(c.Simulation.TimeScale >= 0, "time scale must not be negative, got %v", c.Simulation.TimeScale)

	if _, err := shapematch.ParseMergePolicy(c.Simulation.Merge); err != nil {
		errs = append(errs, err)
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.ViewHeight > 0, "view height must be positive, got %v", c.Window.ViewHeight)

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	check(c.Profile == "" || c.Profile == "cpu" || c.Profile == "mem", "unknown profile mode %q", c.Profile)

	return errors.Join(errs...)
}

// Params returns the simulation parameters described by the config.
func (c Config) Params() (shapematch.Params, error) {
	merge, err := shapematch.ParseMergePolicy(c.Simulation.Merge)
	if err != nil {
		return shapematch.Params{}, err
	}

	params := shapematch.Params{
		Drive: shapematch.SinusoidalDrive{
			Amplitude:        c.Simulation.Amplitude,
			AngularFrequency: c.Simulation.AngularFrequency,
		},
		PinThreshold:  c.Simulation.PinThreshold,
		Merge:         merge,
		FixReflection: c.Simulation.FixReflection,
	}

	return params, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
