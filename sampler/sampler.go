// Package sampler takes point-in-time readings of the benchmark process's
// CPU utilization and Go heap usage.
//
// Readings are instantaneous: they are taken right after a multiply returns
// and are not integrated over the multiply itself. CPU utilization covers
// the interval since the previous reading.
package sampler

import (
	"runtime"
)

const bytesPerMB = 1024 * 1024

// Sample is one reading.
type Sample struct {
	// CPUPercent is process CPU utilization in percent of one core,
	// clamped to [0, 100]. Zero when CPUSupported is false.
	CPUPercent   float64
	CPUSupported bool

	// HeapMB is heap obtained from the OS minus its idle part, in MB.
	HeapMB float64
}

// Sampler produces resource readings for the current process.
type Sampler interface {
	Sample() Sample
}

// Unsupported reports heap usage only, for hosts that do not expose
// process CPU times.
type Unsupported struct{}

// Sample implements Sampler.
func (Unsupported) Sample() Sample {
	return Sample{HeapMB: HeapMB()}
}

// HeapMB returns the current Go heap usage in megabytes.
func HeapMB() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return float64(ms.HeapSys-ms.HeapIdle) / bytesPerMB
}
