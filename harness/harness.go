package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/weiihann/matbench/matrix"
	"github.com/weiihann/matbench/sampler"
	"github.com/weiihann/matbench/stats"
)

// Pauser blocks for d or until ctx is done.
type Pauser func(ctx context.Context, d time.Duration) error

// Sleep is the default Pauser.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("pause interrupted: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}

// Runner executes the benchmark protocol described by a Config.
type Runner struct {
	Config  Config
	Sampler sampler.Sampler
	Pause   Pauser
	Logger  *slog.Logger

	warnedCPU bool
}

// NewRunner creates a Runner. smp is only consulted in ModeResources and
// may be nil otherwise.
func NewRunner(cfg Config, smp sampler.Sampler, logger *slog.Logger) *Runner {
	return &Runner{
		Config:  cfg,
		Sampler: smp,
		Pause:   Sleep,
		Logger:  logger.With(slog.String("mode", cfg.Mode.String())),
	}
}

// series collects one sample per iteration for each measured metric.
type series struct {
	time   []float64
	cpu    []float64
	memory []float64
}

// Run warms up on the largest size, then measures every configured size in
// order. Any load or pause error aborts the run and no results are
// returned.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	cfg := r.Config

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Mode == ModeResources && r.Sampler == nil {
		r.Sampler = sampler.Unsupported{}
	}

	if err := r.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}

	results := make([]Result, 0, len(cfg.Sizes))

	for _, size := range cfg.Sizes {
		res, err := r.runSize(ctx, size)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}

		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) warmUp(ctx context.Context) error {
	cfg := r.Config
	size := lo.Max(cfg.Sizes)

	a, b, _, _, err := r.loadPair(ctx, size)
	if err != nil {
		return err
	}

	r.Logger.InfoContext(ctx, "warm-up started",
		slog.Int("size", size),
		slog.Int("iterations", cfg.WarmupIterations),
	)

	for i := 1; i <= cfg.WarmupIterations; i++ {
		if _, _, err := matrix.Product(a, b); err != nil {
			return err
		}

		r.Logger.InfoContext(ctx, "warm-up iteration completed",
			slog.Int("iteration", i),
		)

		if err := r.Pause(ctx, cfg.WarmupPause); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runSize(ctx context.Context, size int) (Result, error) {
	cfg := r.Config

	r.Logger.InfoContext(ctx, "processing size",
		slog.Int("size", size),
	)

	a, b, pathA, pathB, err := r.loadPair(ctx, size)
	if err != nil {
		return Result{}, err
	}

	r.Logger.InfoContext(ctx, "multiplying",
		slog.Int("size", size),
		slog.Int("iterations", cfg.Iterations),
		slog.Int("pause_every", cfg.PauseEvery),
		slog.Duration("pause", cfg.PauseDuration),
	)

	s := series{time: make([]float64, 0, cfg.Iterations)}
	if cfg.Mode == ModeResources {
		s.cpu = make([]float64, 0, cfg.Iterations)
		s.memory = make([]float64, 0, cfg.Iterations)
	}

	for i := 1; i <= cfg.Iterations; i++ {
		_, elapsed, err := matrix.Product(a, b)
		if err != nil {
			return Result{}, err
		}

		s.time = append(s.time, elapsed.Seconds())

		if cfg.Mode == ModeResources {
			r.sample(ctx, &s)
		}

		if i%cfg.PauseEvery == 0 && i != cfg.Iterations {
			r.Logger.InfoContext(ctx, "pausing to cool off the CPU",
				slog.Duration("pause", cfg.PauseDuration),
				slog.Int("iteration", i),
			)

			if err := r.Pause(ctx, cfg.PauseDuration); err != nil {
				return Result{}, err
			}
		}
	}

	res, err := r.aggregate(size, pathA, pathB, s)
	if err != nil {
		return Result{}, err
	}

	attrs := []any{
		slog.Int("size", size),
		slog.String("mean", fmt.Sprintf("%.6f", res.Time.Mean)),
		slog.String("median", fmt.Sprintf("%.6f", res.Time.Median)),
		slog.String("std", fmt.Sprintf("%.6f", res.Time.StdDev)),
	}
	if cfg.Mode == ModeResources {
		attrs = append(attrs,
			slog.String("mean_cpu", fmt.Sprintf("%.2f", res.CPU.Mean)),
			slog.String("mean_mem_mb", fmt.Sprintf("%.2f", res.Memory.Mean)),
		)
	}

	r.Logger.InfoContext(ctx, "size stats", attrs...)

	return res, nil
}

func (r *Runner) sample(ctx context.Context, s *series) {
	smp := r.Sampler.Sample()

	if !smp.CPUSupported && !r.warnedCPU {
		r.warnedCPU = true
		r.Logger.WarnContext(ctx,
			"process CPU utilization unavailable, recording 0",
		)
	}

	s.cpu = append(s.cpu, smp.CPUPercent)
	s.memory = append(s.memory, smp.HeapMB)
}

func (r *Runner) aggregate(
	size int,
	pathA, pathB string,
	s series,
) (Result, error) {
	res := Result{
		Size:     size,
		MatrixA:  pathA,
		MatrixB:  pathB,
		Language: r.Config.Language,
	}

	var err error

	if res.Time, err = stats.Summarize(s.time); err != nil {
		return Result{}, fmt.Errorf("time stats: %w", err)
	}

	if r.Config.Mode != ModeResources {
		return res, nil
	}

	if res.CPU, err = stats.Summarize(s.cpu); err != nil {
		return Result{}, fmt.Errorf("cpu stats: %w", err)
	}

	if res.Memory, err = stats.Summarize(s.memory); err != nil {
		return Result{}, fmt.Errorf("memory stats: %w", err)
	}

	return res, nil
}

func (r *Runner) loadPair(
	ctx context.Context,
	size int,
) (*matrix.Matrix, *matrix.Matrix, string, string, error) {
	pathA, pathB := MatrixPaths(r.Config.MatrixDir, size)

	a, err := r.load(ctx, pathA, size)
	if err != nil {
		return nil, nil, "", "", err
	}

	b, err := r.load(ctx, pathB, size)
	if err != nil {
		return nil, nil, "", "", err
	}

	return a, b, pathA, pathB, nil
}

func (r *Runner) load(
	ctx context.Context,
	path string,
	size int,
) (*matrix.Matrix, error) {
	m, err := matrix.Load(path, size)
	if err != nil {
		return nil, err
	}

	r.Logger.InfoContext(ctx, "matrix loaded",
		slog.String("path", path),
		slog.Int("size", size),
	)

	return m, nil
}
