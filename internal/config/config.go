// Package config loads a fourbar run description from YAML: the link set,
// solver settings, render settings, logging and the web listen address.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/render"
)

// Links holds the four lengths by role.
type Links struct {
	Ground  float64 `yaml:"ground"`
	Driver  float64 `yaml:"driver"`
	Coupler float64 `yaml:"coupler"`
	Output  float64 `yaml:"output"`
}

// Solver mirrors kinematics options by name.
type Solver struct {
	Method     string `yaml:"method"`
	Seed       string `yaml:"seed"`
	Resolution int    `yaml:"resolution"`
}

// Render mirrors render options.
type Render struct {
	SizeIn    float64 `yaml:"size_in"`
	DPI       int     `yaml:"dpi"`
	Delay     int     `yaml:"delay"`
	FrameStep int     `yaml:"frame_step"`
	Joints    *bool   `yaml:"joints"`
}

// Log selects the logger setup.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `yaml:"addr"`
}

// Config is the whole file.
type Config struct {
	Links  *Links `yaml:"links"`
	Solver Solver `yaml:"solver"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Solver: Solver{
			Method:     kinematics.Newton.String(),
			Seed:       kinematics.SeedFromPrevious.String(),
			Resolution: kinematics.DefaultResolution,
		},
		Render: Render{
			SizeIn:    float64(render.DefaultSize / vg.Inch),
			DPI:       render.DefaultDPI,
			Delay:     render.DefaultDelay,
			FrameStep: render.DefaultFrameStep,
		},
		Log:    Log{Level: "info"},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads and validates the file at path. Missing keys keep their
// Default values. Failures are *LoadError values carrying the path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Source: path, Phase: PhaseRead, Err: err}
	}

	return decode(path, b)
}

// Decode reads a config from r.
func Decode(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, &LoadError{Source: "reader", Phase: PhaseRead, Err: err}
	}

	return decode("reader", b)
}

func decode(src string, b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &LoadError{Source: src, Phase: PhaseParse, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &LoadError{Source: src, Phase: PhaseValidate, Err: err}
	}

	return cfg, nil
}

// Validate checks every section without solving anything.
func (c Config) Validate() error {
	if c.Links != nil {
		if _, err := c.LinkSet(); err != nil {
			return err
		}
	}
	if _, err := c.SolveOptions(); err != nil {
		return err
	}
	r := c.Render
	if r.SizeIn <= 0 || r.DPI <= 0 || r.Delay < 0 || r.FrameStep < 1 {
		return fmt.Errorf("render: size_in, dpi and frame_step must be positive, delay non-negative")
	}

	return nil
}

// HasLinks reports whether the file named a link set.
func (c Config) HasLinks() bool { return c.Links != nil }

// LinkSet builds the validated link set.
func (c Config) LinkSet() (linkage.LinkSet, error) {
	if c.Links == nil {
		return linkage.LinkSet{}, fmt.Errorf("links: section missing")
	}
	ls, err := linkage.New(c.Links.Ground, c.Links.Driver, c.Links.Coupler, c.Links.Output)
	if err != nil {
		return linkage.LinkSet{}, fmt.Errorf("links: %w", err)
	}

	return ls, nil
}

// SolveOptions translates the solver section.
func (c Config) SolveOptions() ([]kinematics.Option, error) {
	m, err := kinematics.ParseMethod(c.Solver.Method)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	p, err := kinematics.ParseSeedPolicy(c.Solver.Seed)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if c.Solver.Resolution < 1 {
		return nil, fmt.Errorf("solver: resolution must be positive, got %d", c.Solver.Resolution)
	}

	return []kinematics.Option{
		kinematics.WithMethod(m),
		kinematics.WithSeedPolicy(p),
		kinematics.WithResolution(c.Solver.Resolution),
	}, nil
}

// RenderOptions translates the render section. Call Validate first.
func (c Config) RenderOptions() []render.Option {
	r := c.Render
	size := vg.Length(r.SizeIn) * vg.Inch
	opts := []render.Option{
		render.WithSize(size, size),
		render.WithDPI(r.DPI),
		render.WithDelay(r.Delay),
		render.WithFrameStep(r.FrameStep),
	}
	if r.Joints != nil {
		opts = append(opts, render.WithJoints(*r.Joints))
	}

	return opts
}
