package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, cfg.System.A)
	assert.Equal(t, []float64{0, 0, 0}, cfg.System.B)
	assert.Equal(t, []float64{0, 0, 0}, cfg.System.X0)
	assert.Equal(t, []string{"X", "Y", "Z"}, cfg.System.Labels)
	assert.Equal(t, config.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, config.DefaultTolerance, cfg.Solver.Tolerance)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.N())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "run.yaml", `
system:
  a:
    - [4, 1, 1]
    - [1, 3, 1]
    - [1, 1, 5]
  b: [6, 5, 7]
solver:
  max_iterations: 100
  tolerance: 1.0e-8
output:
  format: json
  chart: true
`)
	cfg, err := config.Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 5}}, cfg.System.A)
	assert.Equal(t, []float64{6, 5, 7}, cfg.System.B)
	assert.Equal(t, []float64{0, 0, 0}, cfg.System.X0)
	assert.Equal(t, 100, cfg.Solver.MaxIterations)
	assert.Equal(t, 1e-8, cfg.Solver.Tolerance)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Chart)
}

func TestLoad_TOMLFileWithFourUnknowns(t *testing.T) {
	path := writeFile(t, "run.toml", `
[system]
a = [[10, 1, 1, 1], [1, 10, 1, 1], [1, 1, 10, 1], [1, 1, 1, 10]]
b = [13, 13, 13, 13]
`)
	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.N())
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, cfg.System.Labels)
	assert.Len(t, cfg.System.X0, 4)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LINSOLVE_SOLVER_TOLERANCE", "0.001")
	t.Setenv("LINSOLVE_SYSTEM_A", "2,1;1,2")
	t.Setenv("LINSOLVE_SYSTEM_B", "3,3")
	t.Setenv("LINSOLVE_SYSTEM_LABELS", "p,q")

	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg.Solver.Tolerance)
	assert.Equal(t, [][]float64{{2, 1}, {1, 2}}, cfg.System.A)
	assert.Equal(t, []float64{3, 3}, cfg.System.B)
	assert.Equal(t, []string{"p", "q"}, cfg.System.Labels)
}

func TestLoad_EnvVectors(t *testing.T) {
	t.Setenv("LINSOLVE_SYSTEM_B", "6, 5, 7")
	t.Setenv("LINSOLVE_SYSTEM_X0", "1,2,3")

	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 5, 7}, cfg.System.B)
	assert.Equal(t, []float64{1, 2, 3}, cfg.System.X0)
}

func TestLoad_EnvVectorMalformed(t *testing.T) {
	t.Setenv("LINSOLVE_SYSTEM_X0", "1,two,3")

	_, err := config.Load(nil, "")
	assert.ErrorContains(t, err, "malformed number list")
}

func TestLoad_ExplicitOverrideBeatsFile(t *testing.T) {
	path := writeFile(t, "run.yaml", "solver:\n  max_iterations: 7\n")
	v := config.NewViper()
	v.Set("solver.max_iterations", 42)

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Solver.MaxIterations)
}

func TestLoad_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name, yaml, want string
	}{
		{"zero tolerance", "solver:\n  tolerance: 0\n", "Tolerance"},
		{"zero iterations", "solver:\n  max_iterations: 0\n", "MaxIterations"},
		{"bad format", "output:\n  format: xml\n", "Format"},
		{"bad log level", "log:\n  level: loud\n", "Level"},
		{"non-square", "system:\n  a: [[1, 2], [3, 4], [5, 6]]\n", "square"},
		{"B length", "system:\n  b: [1, 2]\n", "B"},
		{"labels length", "system:\n  labels: [u, v]\n", "Labels"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(nil, writeFile(t, "bad.yaml", tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
