package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "SHAPEMATCH_"

type envSetter func(c *Config, value string) error

var envSetters = map[string]envSetter{
	"NX":                intSetter(func(c *Config) *int { return &c.Grid.Nx }),
	"NY":                intSetter(func(c *Config) *int { return &c.Grid.Ny }),
	"SCALE":             float32Setter(func(c *Config) *float32 { return &c.Grid.Scale }),
	"DT":                float32Setter(func(c *Config) *float32 { return &c.Simulation.Dt }),
	"PIN_MASS":          float32Setter(func(c *Config) *float32 { return &c.Simulation.PinMass }),
	"PIN_THRESHOLD":     float32Setter(func(c *Config) *float32 { return &c.Simulation.PinThreshold }),
	"AMPLITUDE":         float64Setter(func(c *Config) *float64 { return &c.Simulation.Amplitude }),
	"ANGULAR_FREQUENCY": float64Setter(func(c *Config) *float64 { return &c.Simulation.AngularFrequency }),
	"MERGE":             stringSetter(func(c *Config) *string { return &c.Simulation.Merge }),
	"FIX_REFLECTION":    boolSetter(func(c *Config) *bool { return &c.Simulation.FixReflection }),
	"TIME_SCALE":        float64Setter(func(c *Config) *float64 { return &c.Simulation.TimeScale }),
	"TITLE":             stringSetter(func(c *Config) *string { return &c.Window.Title }),
	"WIDTH":             intSetter(func(c *Config) *int { return &c.Window.Width }),
	"HEIGHT":            intSetter(func(c *Config) *int { return &c.Window.Height }),
	"VIEW_HEIGHT":       float32Setter(func(c *Config) *float32 { return &c.Window.ViewHeight }),
	"LOG_LEVEL":         stringSetter(func(c *Config) *string { return &c.LogLevel }),
	"PROFILE":           stringSetter(func(c *Config) *string { return &c.Profile }),
}

// ApplyEnv overwrites settings from SHAPEMATCH_* environment variables.
//
// If dotenv is not empty, the variables of that file are loaded into the
// environment first. Variables already set in the environment take precedence.
// A missing dotenv file is not an error.
func (c *Config) ApplyEnv(dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !isNotExist(err) {
			return fmt.Errorf("load %q: %w", dotenv, err)
		}
	}

	var errs []error
	for name, set := range envSetters {
		value, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}

		if err := set(c, value); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
		}
	}

	return errors.Join(errs...)
}

func stringSetter(field func(c *Config) *string) envSetter {
	return func(c *Config, value string) error {
		*field(c) = value
		return nil
	}
}

func intSetter(field func(c *Config) *int) envSetter {
	return func(c *Config, value string) error {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return err
		}

		*field(c) = parsed
		return nil
	}
}

func float32Setter(field func(c *Config) *float32) envSetter {
	return func(c *Config, value string) error {
		parsed, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}

		*field(c) = float32(parsed)
		return nil
	}
}

func float64Setter(field func(c *Config) *float64) envSetter {
	return func(c *Config, value string) error {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}

		*field(c) = parsed
		return nil
	}
}

func boolSetter(field func(c *Config) *bool) envSetter {
	return func(c *Config, value string) error {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}

		*field(c) = parsed
		return nil
	}
}
