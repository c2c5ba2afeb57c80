package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
	"github.com/weiihann/matbench/harness"
	"github.com/weiihann/matbench/stats"
)

var (
	timeHeader = []string{
		"Size", "Matrix A File", "Matrix B File",
		"Mean Time (s)", "Median Time (s)", "Std Dev (s)",
	}
	resourceHeader = []string{
		"Mean CPU (%)", "Median CPU (%)", "Std Dev CPU (%)",
		"Mean Memory (MB)", "Median Memory (MB)", "Std Dev Memory (MB)",
	}
)

// Header returns the CSV column names for mode.
func Header(mode harness.Mode) []string {
	cols := append([]string{}, timeHeader...)
	if mode == harness.ModeResources {
		cols = append(cols, resourceHeader...)
	}

	return append(cols, "Language")
}

// WriteCSV writes results to path, creating the parent directory if needed
// and replacing any existing file.
func WriteCSV(path string, mode harness.Mode, results []harness.Result) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results dir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	if err := writeCSV(f, mode, results); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func writeCSV(w io.Writer, mode harness.Mode, results []harness.Result) error {
	cw := csv.NewWriter(w)

	rows := lo.Map(results, func(r harness.Result, _ int) []string {
		return row(mode, r)
	})

	if err := cw.Write(Header(mode)); err != nil {
		return err
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}

func row(mode harness.Mode, r harness.Result) []string {
	cols := []string{strconv.Itoa(r.Size), r.MatrixA, r.MatrixB}
	cols = append(cols, summaryCols(r.Time)...)

	if mode == harness.ModeResources {
		cols = append(cols, summaryCols(r.CPU)...)
		cols = append(cols, summaryCols(r.Memory)...)
	}

	return append(cols, r.Language)
}

func summaryCols(s stats.Summary) []string {
	return []string{formatFloat(s.Mean), formatFloat(s.Median), formatFloat(s.StdDev)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
