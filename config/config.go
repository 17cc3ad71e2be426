// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavekrylov/refresh"
)

// Packet kinds.
const (
	PacketGaussian  = "gaussian"
	PacketSeparable = "separable"
)

// Eigensolver names.
const (
	SolverGonum  = "gonum"
	SolverJacobi = "jacobi"
)

// Config is a complete simulation description.
type Config struct {
	Grid      GridConfig     `yaml:"grid"`
	Mass      float64        `yaml:"mass"`
	Potential string         `yaml:"potential"`
	Packet    PacketConfig   `yaml:"packet"`
	Krylov    KrylovConfig   `yaml:"krylov"`
	TimeStep  float64        `yaml:"time_step"`
	Refresh   refresh.Policy `yaml:"refresh"`
	Eigen     EigenConfig    `yaml:"eigen"`
	Workers   int            `yaml:"workers"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// GridConfig sizes the lattice; ny == 1 selects the 1D operator.
type GridConfig struct {
	Nx int `yaml:"nx"`
	Ny int `yaml:"ny"`
}

// PacketConfig describes the initial state.
//
// For kind "gaussian" the packet is a single Gaussian centred at (x0, y0)
// with momentum (px, py). For kind "separable" on a 2D grid it is the
// product of two 1D Gaussians, one per particle: (x0, px) for the first
// and (y0, py) for the second.
type PacketConfig struct {
	Kind  string  `yaml:"kind"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	Px    float64 `yaml:"px"`
	Py    float64 `yaml:"py"`
	Sigma float64 `yaml:"sigma"`
}

// KrylovConfig tunes the Lanczos reduction.
type KrylovConfig struct {
	Dimension    int     `yaml:"dimension"`
	BreakdownTol float64 `yaml:"breakdown_tol"`
	Strict       bool    `yaml:"strict"`
	Solver       string  `yaml:"solver"`
}

// EigenConfig tunes the restarted eigenstate search.
type EigenConfig struct {
	Target     int     `yaml:"target"`
	Count      int     `yaml:"count"`
	Iterations int     `yaml:"iterations"`
	Tolerance  float64 `yaml:"tolerance"`
	Seed       int64   `yaml:"seed"`
}

// LoggingConfig selects the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the 1D animation defaults.
func Default() *Config {
	return &Config{
		Grid:      GridConfig{Nx: 512, Ny: 1},
		Mass:      1,
		Potential: "free",
		Packet: PacketConfig{
			Kind:  PacketGaussian,
			X0:    256,
			Px:    1,
			Sigma: 5,
		},
		Krylov: KrylovConfig{
			Dimension:    20,
			BreakdownTol: 1e-10,
			Solver:       SolverGonum,
		},
		TimeStep: 0.2,
		Refresh:  refresh.StepBudget(refresh.DefaultMaxSteps),
		Eigen: EigenConfig{
			Count:      1,
			Iterations: 10,
			Tolerance:  1e-8,
			Seed:       1,
		},
		Workers: 1,
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrMultipleDocuments
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Is2D reports whether the grid selects the 2D operator.
func (c *Config) Is2D() bool { return c.Grid.Ny > 1 }
