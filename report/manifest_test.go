package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/weiihann/matbench/harness"
	"gopkg.in/yaml.v3"
)

func TestManifestPath(t *testing.T) {
	require.Equal(t, "results/go_results.manifest.yaml", ManifestPath("results/go_results.csv"))
	require.Equal(t, "out.manifest.yaml", ManifestPath("out"))
}

func TestWriteManifest(t *testing.T) {
	cfg := harness.DefaultConfig(harness.ModeResources)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env := Env{
		GoVersion:     "go1.24.0",
		OS:            "linux",
		Arch:          "amd64",
		CPUModel:      "Test CPU",
		CPUNumLogical: 8,
	}

	path := filepath.Join(t.TempDir(), "results", "run.manifest.yaml")
	require.NoError(t, WriteManifest(path, NewManifest(cfg, env, now)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, yaml.Unmarshal(b, &got))
	require.Equal(t, "2026-03-01T12:00:00Z", got.TimestampRFC3339)
	require.Equal(t, "resources", got.Mode)
	require.Equal(t, cfg.OutputPath, got.Results)
	require.Equal(t, "Test CPU", got.Env.CPUModel)
	require.Equal(t, cfg.Sizes, got.Protocol.Sizes)
	require.Equal(t, 10.0, got.Protocol.PauseSeconds)
	require.Equal(t, 2.0, got.Protocol.WarmupPauseSeconds)
}

func TestDetectEnv(t *testing.T) {
	env := DetectEnv()

	require.NotEmpty(t, env.GoVersion)
	require.NotEmpty(t, env.CPUModel)
	require.Positive(t, env.CPUNumLogical)
}
