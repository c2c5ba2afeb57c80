package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/weiihann/matbench/harness"
	"github.com/weiihann/matbench/stats"
)

func TestGenerateTimeMode(t *testing.T) {
	results := []harness.Result{
		{Size: 10, Time: stats.Summary{Mean: 0.002, Median: 0.002, StdDev: 0.0001}},
		{Size: 100, Time: stats.Summary{Mean: 0.004, Median: 0.004, StdDev: 0.0002}},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, harness.ModeTime, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "10x10") {
		t.Error("expected 10x10 row in output")
	}
	if !strings.Contains(output, "100x100") {
		t.Error("expected 100x100 row in output")
	}
	if !strings.Contains(output, "2.00x") {
		t.Error("expected 2.00x for the size twice as slow")
	}
	if strings.Contains(output, "Mean CPU") {
		t.Error("time mode must not print CPU columns")
	}
}

func TestGenerateResourceMode(t *testing.T) {
	results := []harness.Result{
		{
			Size:   10,
			Time:   stats.Summary{Mean: 1.5, Median: 1.5},
			CPU:    stats.Summary{Mean: 97.25},
			Memory: stats.Summary{Mean: 12.5},
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, harness.ModeResources, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Mean CPU") {
		t.Error("expected CPU column header")
	}
	if !strings.Contains(output, "97.25%") {
		t.Error("expected formatted CPU mean")
	}
	if !strings.Contains(output, "12.5 MB") {
		t.Error("expected formatted memory mean")
	}
	if !strings.Contains(output, "1.50s") {
		t.Error("expected formatted time mean")
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, harness.ModeTime, nil)
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestFormatMB(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "-"},
		{3, "3 MB"},
		{12.5, "12.5 MB"},
		{1024, "1024 MB"},
	}

	for _, tt := range tests {
		got := formatMB(tt.input)
		if got != tt.want {
			t.Errorf("formatMB(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0µs"},
		{0.000002, "2.0µs"},
		{0.25, "250.00ms"},
		{1, "1.00s"},
		{1.5, "1.50s"},
		{60, "60.00s"},
	}

	for _, tt := range tests {
		got := formatSeconds(tt.input)
		if got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
