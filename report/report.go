// Package report writes benchmark results: the persisted CSV, a markdown
// summary table for the operator, and a YAML run manifest.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/weiihann/matbench/harness"
)

// Generate writes a markdown summary table for the given results.
func Generate(w io.Writer, mode harness.Mode, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := findFastest(results)

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	if mode == harness.ModeResources {
		fmt.Fprintln(w, "| Size | Mean | Median | Std Dev "+
			"| Mean CPU | Mean Mem | Relative |")
		fmt.Fprintln(w, "|------|------|--------|---------"+
			"|----------|----------|----------|")
	} else {
		fmt.Fprintln(w, "| Size | Mean | Median | Std Dev | Relative |")
		fmt.Fprintln(w, "|------|------|--------|---------|----------|")
	}

	for _, r := range results {
		relative := 1.0
		if fastest > 0 && r.Time.Mean > 0 {
			relative = r.Time.Mean / fastest
		}

		size := fmt.Sprintf("%dx%d", r.Size, r.Size)

		if mode == harness.ModeResources {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %.2f%% | %s | %.2fx |\n",
				size,
				formatSeconds(r.Time.Mean),
				formatSeconds(r.Time.Median),
				formatSeconds(r.Time.StdDev),
				r.CPU.Mean,
				formatMB(r.Memory.Mean),
				relative,
			)

			continue
		}

		fmt.Fprintf(w, "| %s | %s | %s | %s | %.2fx |\n",
			size,
			formatSeconds(r.Time.Mean),
			formatSeconds(r.Time.Median),
			formatSeconds(r.Time.StdDev),
			relative,
		)
	}

	return nil
}

func findFastest(results []harness.Result) float64 {
	fastest := math.MaxFloat64
	for _, r := range results {
		if r.Time.Mean > 0 && r.Time.Mean < fastest {
			fastest = r.Time.Mean
		}
	}

	if fastest == math.MaxFloat64 {
		return 0
	}

	return fastest
}

func formatSeconds(s float64) string {
	switch {
	case s < 1e-3:
		return fmt.Sprintf("%.1fµs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2fms", s*1e3)
	default:
		return fmt.Sprintf("%.2fs", s)
	}
}

func formatMB(mb float64) string {
	if mb == 0 {
		return "-"
	}

	formatted := fmt.Sprintf("%.1f", mb)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " MB"
}
