package sampler

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/process"
)

// Process samples the running process through gopsutil.
type Process struct {
	proc *process.Process
}

// NewProcess returns a sampler for the current process. The CPU counter is
// primed so the first Sample covers the time since construction.
func NewProcess() (*Process, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", os.Getpid(), err)
	}

	if _, err := proc.Percent(0); err != nil {
		return nil, fmt.Errorf("read process cpu times: %w", err)
	}

	return &Process{proc: proc}, nil
}

// Sample implements Sampler. A failed CPU read yields CPUSupported=false
// for that reading rather than an error.
func (p *Process) Sample() Sample {
	s := Sample{HeapMB: HeapMB()}

	pct, err := p.proc.Percent(0)
	if err != nil {
		return s
	}

	s.CPUPercent = lo.Clamp(pct, 0, 100)
	s.CPUSupported = true

	return s
}

// New returns the process sampler when the host supports it, and
// Unsupported otherwise. The returned error explains the fallback and is
// informational.
func New() (Sampler, error) {
	p, err := NewProcess()
	if err != nil {
		return Unsupported{}, err
	}

	return p, nil
}
