// Package harness drives the matrix multiplication benchmark: warm-up,
// per-size measurement loops with cooldown pauses, and aggregation into
// one Result per matrix size.
package harness

import "github.com/weiihann/matbench/stats"

// Result holds the aggregated measurements for one matrix size.
type Result struct {
	Size     int
	MatrixA  string
	MatrixB  string
	Time     stats.Summary
	CPU      stats.Summary
	Memory   stats.Summary
	Language string
}
