// Package main provides the CLI entry point for matbench, a naive matrix
// multiplication benchmark.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/matbench/harness"
	"github.com/weiihann/matbench/report"
	"github.com/weiihann/matbench/sampler"
	"github.com/weiihann/matbench/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	root := newRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("matbench failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "matbench",
		Short: "Naive matrix multiplication benchmark",
		Long: `Matbench times the textbook triple-loop multiplication of square
int32 matrices across fixed sizes and writes mean, median and standard
deviation per size to a CSV file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBenchCmd(logger, harness.ModeTime),
		newBenchCmd(logger, harness.ModeResources),
		newGenerateCmd(logger),
	)

	return root
}

func newBenchCmd(logger *slog.Logger, mode harness.Mode) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark wall-clock time per size",
		Long: `Warm up on the largest matrix, then multiply each configured size
repeatedly with periodic cooldown pauses and record the elapsed time.`,
		Args: cobra.NoArgs,
	}

	if mode == harness.ModeResources {
		cmd.Use = "profile"
		cmd.Short = "Benchmark time, process CPU and heap usage per size"
		cmd.Long = `Like run, but also samples process CPU utilization and Go heap
usage right after every multiplication.`
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		var smp sampler.Sampler
		if mode == harness.ModeResources {
			var err error
			if smp, err = sampler.New(); err != nil {
				logger.Warn("process sampling unavailable",
					slog.String("error", err.Error()),
				)
			}
		}

		return runBenchmark(
			cmd.Context(), logger, cmd.OutOrStdout(),
			harness.DefaultConfig(mode), smp, harness.Sleep,
		)
	}

	return cmd
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg harness.Config,
	smp sampler.Sampler,
	pause harness.Pauser,
) error {
	logger.InfoContext(ctx, "starting benchmark",
		slog.String("mode", cfg.Mode.String()),
		slog.Any("sizes", cfg.Sizes),
		slog.Int("iterations", cfg.Iterations),
		slog.String("matrix_dir", cfg.MatrixDir),
	)

	runner := harness.NewRunner(cfg, smp, logger)
	runner.Pause = pause

	results, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	if err := report.WriteCSV(cfg.OutputPath, cfg.Mode, results); err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	logger.InfoContext(ctx, "results saved",
		slog.String("path", cfg.OutputPath),
		slog.Int("rows", len(results)),
	)

	manifestPath := report.ManifestPath(cfg.OutputPath)
	manifest := report.NewManifest(cfg, report.DetectEnv(), time.Now())

	if err := report.WriteManifest(manifestPath, manifest); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}

	if err := report.Generate(out, cfg.Mode, results); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

func newGenerateCmd(logger *slog.Logger) *cobra.Command {
	cfg := workload.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the input matrices",
		Long: `Write deterministic A_<n>.bin and B_<n>.bin files of little-endian
int32 values for each size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := workload.NewGenerator(cfg, logger).Generate()
			if err != nil {
				return fmt.Errorf("generate matrices: %w", err)
			}

			logger.InfoContext(cmd.Context(), "matrices generated",
				slog.String("dir", cfg.Dir),
				slog.Int("files", summary.FilesWritten),
				slog.Int64("bytes", summary.BytesWritten),
			)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Dir, "dir", cfg.Dir,
		"Directory to write matrices into")
	flags.IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes,
		"Matrix sizes to generate")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed,
		"Random seed")
	flags.Int32Var(&cfg.MaxValue, "max-value", cfg.MaxValue,
		"Exclusive upper bound of generated values")

	return cmd
}
