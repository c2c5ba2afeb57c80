// Package workload generates the deterministic input matrices the
// benchmark loads: one A_<n>.bin and B_<n>.bin pair per size, filled with
// seeded uniform integers.
package workload

import (
	"errors"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"os"

	"github.com/samber/lo"
	"github.com/weiihann/matbench/harness"
	"github.com/weiihann/matbench/matrix"
)

// Config controls matrix generation.
type Config struct {
	Dir      string
	Sizes    []int
	Seed     int64
	MaxValue int32
}

// DefaultConfig returns the generator settings used for published runs:
// values in [0, 10) with seed 1.
func DefaultConfig() Config {
	return Config{
		Dir:      "matrices",
		Sizes:    harness.DefaultConfig(harness.ModeTime).Sizes,
		Seed:     1,
		MaxValue: 10,
	}
}

// Summary describes what Generate wrote.
type Summary struct {
	FilesWritten int
	BytesWritten int64
}

// Generator produces deterministic matrices from a Config.
type Generator struct {
	cfg    Config
	rng    *mrand.Rand
	logger *slog.Logger
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		rng:    mrand.New(mrand.NewSource(cfg.Seed)),
		logger: logger,
	}
}

// Generate writes an A/B pair for every distinct configured size, in
// order. Duplicate sizes are generated once.
func (g *Generator) Generate() (Summary, error) {
	var summary Summary

	if g.cfg.MaxValue <= 0 {
		return summary, errors.New("max value must be > 0")
	}

	if err := os.MkdirAll(g.cfg.Dir, 0o755); err != nil {
		return summary, fmt.Errorf("create matrix dir: %w", err)
	}

	for _, n := range lo.Uniq(g.cfg.Sizes) {
		g.logger.Info("generating matrices", slog.Int("size", n))

		pathA, pathB := harness.MatrixPaths(g.cfg.Dir, n)

		for _, path := range []string{pathA, pathB} {
			m, err := g.randomMatrix(n)
			if err != nil {
				return summary, err
			}

			if err := matrix.Write(path, m); err != nil {
				return summary, err
			}

			summary.FilesWritten++
			summary.BytesWritten += int64(n) * int64(n) * 4
		}

		g.logger.Info("matrices saved",
			slog.String("a", pathA),
			slog.String("b", pathB),
		)
	}

	return summary, nil
}

func (g *Generator) randomMatrix(n int) (*matrix.Matrix, error) {
	m, err := matrix.New(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, g.rng.Int31n(g.cfg.MaxValue))
		}
	}

	return m, nil
}
