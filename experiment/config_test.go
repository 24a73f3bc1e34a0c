package experiment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/experiment"
	"github.com/katalvlaran/gridmdp/mdp"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := experiment.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, experiment.ReferenceGrid, cfg.Grid)
	assert.Equal(t, []float64{0.6, 0.1, 0.9}, cfg.Gammas)
	assert.Equal(t, dp.DefaultTheta, cfg.Theta)
	assert.Equal(t, dp.DefaultMaxIters, cfg.MaxIters)
	assert.Equal(t, 0.7, cfg.Intended)
}

func TestDecodeConfig_Empty(t *testing.T) {
	cfg, err := experiment.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, experiment.Default(), cfg)
}

func TestDecodeConfig_Overrides(t *testing.T) {
	cfg, err := experiment.DecodeConfig(strings.NewReader(`
grid: ["S G"]
gammas: [1.0]
modes: [policy]
noises: [stochastic]
intended: 0.85
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"S G"}, cfg.Grid)
	assert.Equal(t, []float64{1.0}, cfg.Gammas)
	assert.Equal(t, []string{"policy"}, cfg.Modes)
	assert.Equal(t, 0.85, cfg.Intended)
	assert.Equal(t, dp.DefaultTheta, cfg.Theta, "absent keys keep defaults")
}

func TestLoadConfig_GridFileIsRelative(t *testing.T) {
	cfg, err := experiment.LoadConfig(filepath.Join("testdata", "sweep.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Grid)
	assert.Equal(t, filepath.Join("testdata", "corridor.txt"), cfg.GridFile)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, 2, cfg.Workers)

	g, err := cfg.LoadGrid()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumStates())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join("testdata", "unknown_key.yaml"))
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)

	_, err = experiment.LoadConfig(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*experiment.Config)
	}{
		{"no grid", func(c *experiment.Config) { c.Grid = nil }},
		{"grid and file", func(c *experiment.Config) { c.GridFile = "grid.txt" }},
		{"no gammas", func(c *experiment.Config) { c.Gammas = nil }},
		{"gamma zero", func(c *experiment.Config) { c.Gammas = []float64{0} }},
		{"gamma above one", func(c *experiment.Config) { c.Gammas = []float64{1.5} }},
		{"no modes", func(c *experiment.Config) { c.Modes = nil }},
		{"bad mode", func(c *experiment.Config) { c.Modes = []string{"auto"} }},
		{"no noises", func(c *experiment.Config) { c.Noises = nil }},
		{"bad noise", func(c *experiment.Config) { c.Noises = []string{"windy"} }},
		{"bad intended", func(c *experiment.Config) { c.Intended = 1.5 }},
		{"theta zero", func(c *experiment.Config) { c.Theta = 0 }},
		{"max iters zero", func(c *experiment.Config) { c.MaxIters = 0 }},
		{"trials zero", func(c *experiment.Config) { c.Trials = 0 }},
		{"workers zero", func(c *experiment.Config) { c.Workers = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
		})
	}
}

func TestBuildModel(t *testing.T) {
	cfg := experiment.Default()
	m, err := cfg.BuildModel(mdp.KindStochastic)
	require.NoError(t, err)
	assert.Equal(t, 20, m.NumStates())
	assert.Len(t, m.Outcomes(0, mdp.Right), 4)

	cfg.Grid = []string{"S S G"}
	_, err = cfg.BuildModel(mdp.KindDeterministic)
	assert.Error(t, err)

	cfg.FirstStart = true
	_, err = cfg.BuildModel(mdp.KindDeterministic)
	assert.NoError(t, err)
}
