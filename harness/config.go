package harness

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects what is measured per iteration.
type Mode int

const (
	// ModeTime records wall-clock time only.
	ModeTime Mode = iota
	// ModeResources also records process CPU and heap usage.
	ModeResources
)

func (m Mode) String() string {
	switch m {
	case ModeTime:
		return "time"
	case ModeResources:
		return "resources"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config is the fixed benchmark protocol. Build it once with DefaultConfig
// and pass it by value.
type Config struct {
	Mode             Mode
	Sizes            []int
	Iterations       int
	PauseEvery       int
	PauseDuration    time.Duration
	WarmupIterations int
	WarmupPause      time.Duration
	MatrixDir        string
	OutputPath       string
	Language         string
}

// DefaultConfig returns the benchmark protocol for the given mode.
func DefaultConfig(mode Mode) Config {
	out := "results/go_results.csv"
	if mode == ModeResources {
		out = "results/go_profile_results.csv"
	}

	return Config{
		Mode:             mode,
		Sizes:            []int{10, 100, 1000, 10000},
		Iterations:       100,
		PauseEvery:       20,
		PauseDuration:    10 * time.Second,
		WarmupIterations: 5,
		WarmupPause:      2 * time.Second,
		MatrixDir:        "matrices",
		OutputPath:       out,
		Language:         "Go",
	}
}

// Validate reports the first protocol constant that cannot be run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no matrix sizes configured")
	}

	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid matrix size %d", n)
		}
	}

	switch {
	case c.Iterations <= 0:
		return fmt.Errorf("iterations must be > 0, got %d", c.Iterations)
	case c.PauseEvery <= 0:
		return fmt.Errorf("pause interval must be > 0, got %d", c.PauseEvery)
	case c.PauseDuration < 0 || c.WarmupPause < 0:
		return errors.New("pause durations must not be negative")
	case c.WarmupIterations < 0:
		return fmt.Errorf(
			"warm-up iterations must not be negative, got %d",
			c.WarmupIterations,
		)
	case c.OutputPath == "":
		return errors.New("output path is empty")
	}

	return nil
}
