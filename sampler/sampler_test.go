package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsupportedReportsHeapOnly(t *testing.T) {
	s := Unsupported{}.Sample()

	require.False(t, s.CPUSupported)
	require.Zero(t, s.CPUPercent)
	require.Greater(t, s.HeapMB, 0.0)
}

func TestProcessSampleInRange(t *testing.T) {
	smp, err := New()
	if err != nil {
		t.Skipf("process sampling unavailable: %v", err)
	}

	// Burn a little CPU so the interval is non-empty.
	var x uint64
	for i := 0; i < 5_000_000; i++ {
		x += uint64(i) ^ x
	}
	_ = x

	for i := 0; i < 3; i++ {
		s := smp.Sample()
		require.GreaterOrEqual(t, s.CPUPercent, 0.0)
		require.LessOrEqual(t, s.CPUPercent, 100.0)
		require.Greater(t, s.HeapMB, 0.0)
	}
}
