package experiment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// ReferenceGrid is the 5×5 grid used when a config names no grid.
var ReferenceGrid = []string{
	"S _ _ X _",
	"_ X _ _ _",
	"_ _ X _ _",
	"X _ _ _ G",
	"_ _ X _ _",
}

// Config describes one experiment sweep.
type Config struct {
	// Grid holds inline rows; GridFile names a grid text file instead.
	// Relative GridFile paths are resolved against the config file.
	Grid       []string  `yaml:"grid,omitempty"`
	GridFile   string    `yaml:"grid_file,omitempty"`
	FirstStart bool      `yaml:"first_start,omitempty"`
	Gammas     []float64 `yaml:"gammas"`
	Modes      []string  `yaml:"modes"`
	Noises     []string  `yaml:"noises"`
	Theta      float64   `yaml:"theta"`
	MaxIters   int       `yaml:"max_iters"`
	// Intended is the stochastic probability of the intended action.
	Intended float64 `yaml:"intended"`
	Trials   int     `yaml:"trials"`
	Workers  int     `yaml:"workers"`
}

// Default returns the reference sweep: the 5×5 grid, γ ∈ {0.6, 0.1, 0.9},
// both modes and both noise strategies, one trial.
func Default() Config {
	return Config{
		Grid:     append([]string(nil), ReferenceGrid...),
		Gammas:   []float64{0.6, 0.1, 0.9},
		Modes:    []string{dp.ModeValue.String(), dp.ModePolicy.String()},
		Noises:   []string{mdp.KindDeterministic.String(), mdp.KindStochastic.String()},
		Theta:    dp.DefaultTheta,
		MaxIters: dp.DefaultMaxIters,
		Intended: 0.7,
		Trials:   1,
		Workers:  1,
	}
}

// LoadConfig reads a YAML config from path. Keys that are absent keep their
// Default values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.GridFile != "" && !filepath.IsAbs(cfg.GridFile) {
		cfg.GridFile = filepath.Join(filepath.Dir(path), cfg.GridFile)
	}
	return cfg, nil
}

// DecodeConfig reads a YAML config from r on top of Default and validates it.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// A grid file replaces the default inline grid.
	if cfg.GridFile != "" && sameRows(cfg.Grid, ReferenceGrid) {
		cfg.Grid = nil
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case len(c.Grid) == 0 && c.GridFile == "":
		return fmt.Errorf("%w: grid or grid_file is required", ErrInvalidConfig)
	case len(c.Grid) > 0 && c.GridFile != "":
		return fmt.Errorf("%w: grid and grid_file are mutually exclusive", ErrInvalidConfig)
	case len(c.Gammas) == 0:
		return fmt.Errorf("%w: gammas is empty", ErrInvalidConfig)
	case len(c.Modes) == 0:
		return fmt.Errorf("%w: modes is empty", ErrInvalidConfig)
	case len(c.Noises) == 0:
		return fmt.Errorf("%w: noises is empty", ErrInvalidConfig)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	for _, g := range c.Gammas {
		if _, err := c.solverOptions(g); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := c.modes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	kinds, err := c.noiseKinds()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, k := range kinds {
		if _, err := mdp.NoiseFor(k, c.Intended); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// LoadGrid parses the inline rows or reads GridFile.
func (c Config) LoadGrid() (*gridworld.Grid, error) {
	var opts []gridworld.Option
	if c.FirstStart {
		opts = append(opts, gridworld.WithFirstStart())
	}
	if c.GridFile != "" {
		return gridworld.ReadFile(c.GridFile, opts...)
	}
	return gridworld.Parse(c.Grid, opts...)
}

// BuildModel loads the grid and builds the transition model for kind.
func (c Config) BuildModel(kind mdp.NoiseKind) (*mdp.Model, error) {
	g, err := c.LoadGrid()
	if err != nil {
		return nil, err
	}
	noise, err := mdp.NoiseFor(kind, c.Intended)
	if err != nil {
		return nil, err
	}
	return mdp.Build(g, noise)
}

// solverOptions returns the validated solver options for one gamma.
func (c Config) solverOptions(gamma float64) ([]dp.Option, error) {
	opts := []dp.Option{dp.WithGamma(gamma), dp.WithTheta(c.Theta), dp.WithMaxIters(c.MaxIters)}
	if err := dp.CheckOptions(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

func (c Config) modes() ([]dp.Mode, error) {
	out := make([]dp.Mode, 0, len(c.Modes))
	for _, s := range c.Modes {
		m, err := dp.ParseMode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c Config) noiseKinds() ([]mdp.NoiseKind, error) {
	out := make([]mdp.NoiseKind, 0, len(c.Noises))
	for _, s := range c.Noises {
		k, err := mdp.ParseNoiseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func sameRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
