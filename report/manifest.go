package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/weiihann/matbench/harness"
	"gopkg.in/yaml.v3"
)

const manifestVersion = "1"

// Env describes the host a run was taken on.
type Env struct {
	GoVersion     string `yaml:"go_version"`
	OS            string `yaml:"os"`
	Arch          string `yaml:"arch"`
	CPUModel      string `yaml:"cpu_model"`
	CPUNumLogical int    `yaml:"cpu_num_logical"`
}

// Protocol mirrors the benchmark constants used for a run.
type Protocol struct {
	Sizes              []int   `yaml:"sizes"`
	Iterations         int     `yaml:"iterations"`
	PauseEvery         int     `yaml:"pause_every"`
	PauseSeconds       float64 `yaml:"pause_seconds"`
	WarmupIterations   int     `yaml:"warmup_iterations"`
	WarmupPauseSeconds float64 `yaml:"warmup_pause_seconds"`
	MatrixDir          string  `yaml:"matrix_dir"`
}

// Manifest is written next to the results CSV.
type Manifest struct {
	Version          string   `yaml:"version"`
	TimestampRFC3339 string   `yaml:"timestamp_rfc3339"`
	Label            string   `yaml:"label"`
	Mode             string   `yaml:"mode"`
	Results          string   `yaml:"results"`
	Env              Env      `yaml:"env"`
	Protocol         Protocol `yaml:"protocol"`
}

// NewManifest describes a run of cfg finished at now on env.
func NewManifest(cfg harness.Config, env Env, now time.Time) Manifest {
	return Manifest{
		Version:          manifestVersion,
		TimestampRFC3339: now.Format(time.RFC3339),
		Label:            cfg.Language,
		Mode:             cfg.Mode.String(),
		Results:          cfg.OutputPath,
		Env:              env,
		Protocol: Protocol{
			Sizes:              append([]int(nil), cfg.Sizes...),
			Iterations:         cfg.Iterations,
			PauseEvery:         cfg.PauseEvery,
			PauseSeconds:       cfg.PauseDuration.Seconds(),
			WarmupIterations:   cfg.WarmupIterations,
			WarmupPauseSeconds: cfg.WarmupPause.Seconds(),
			MatrixDir:          cfg.MatrixDir,
		},
	}
}

// DetectEnv reads the host description. The CPU model falls back to a
// generic name when it cannot be read.
func DetectEnv() Env {
	env := Env{
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUModel:      runtime.GOARCH + " CPU",
		CPUNumLogical: runtime.NumCPU(),
	}

	infos, err := cpu.Info()
	if err == nil && len(infos) > 0 {
		if model := strings.TrimSpace(infos[0].ModelName); model != "" {
			env.CPUModel = model
		}
	}

	return env
}

// ManifestPath returns the manifest location for a results file.
func ManifestPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".manifest.yaml"
}

// WriteManifest encodes m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest dir %s: %w", dir, err)
		}
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}
