package kinematics

import (
	"fmt"

	"github.com/katalvlaran/fourbar/rootfind"
)

// SeedPolicy selects the initial guess of each Freudenstein solve.
type SeedPolicy int

const (
	// SeedFromPrevious seeds the first sample with θ4max and every later
	// sample with the previous root, tracking one continuous branch.
	SeedFromPrevious SeedPolicy = iota

	// SeedFromBound seeds every sample with θ4max.
	SeedFromBound
)

// Method selects the root-finding iteration.
type Method int

const (
	// Newton uses the analytic slope of Freudenstein's equation.
	Newton Method = iota
	// Secant uses a finite-difference slope.
	Secant
)

// Defaults.
const (
	// DefaultResolution is the number of driver steps per revolution
	// (1° steps, 361 samples).
	DefaultResolution = 360

	// DefaultMaxStep caps one root-finder update at 0.5 rad (≈28.6°) so a
	// solve cannot hop to the other assembly branch.
	DefaultMaxStep = 0.5

	// DefaultTolerance is the residual tolerance on the normalized
	// Freudenstein function.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations bounds each per-angle solve.
	DefaultMaxIterations = 50

	// secantOffset is the second secant point, in radians past the seed.
	secantOffset = 1e-3
)

const panicResolutionInvalid = "kinematics: WithResolution: steps must be > 0"

// Option configures Solve.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	Seed       SeedPolicy
	Method     Method
	Resolution int
	Root       []rootfind.Option
}

// DefaultOptions returns Newton, continuation seeding, 1° resolution and
// step-bounded root finding.
func DefaultOptions() Options {
	return Options{
		Seed:       SeedFromPrevious,
		Method:     Newton,
		Resolution: DefaultResolution,
		Root: []rootfind.Option{
			rootfind.WithTolerance(DefaultTolerance),
			rootfind.WithMaxIterations(DefaultMaxIterations),
			rootfind.WithMaxStep(DefaultMaxStep),
		},
	}
}

// WithSeedPolicy selects how each per-angle solve is seeded.
func WithSeedPolicy(p SeedPolicy) Option {
	return func(o *Options) { o.Seed = p }
}

// WithMethod selects Newton or Secant.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithResolution sets the number of driver steps per revolution; the
// profile then holds steps+1 samples.
func WithResolution(steps int) Option {
	if steps <= 0 {
		panic(panicResolutionInvalid)
	}

	return func(o *Options) { o.Resolution = steps }
}

// WithRootOptions appends root-finder options after the defaults.
func WithRootOptions(opts ...rootfind.Option) Option {
	return func(o *Options) { o.Root = append(o.Root, opts...) }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// String returns "newton" or "secant".
func (m Method) String() string {
	switch m {
	case Newton:
		return "newton"
	case Secant:
		return "secant"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "newton", "":
		return Newton, nil
	case "secant":
		return Secant, nil
	default:
		return Newton, fmt.Errorf("kinematics: unknown method %q", s)
	}
}

// String returns "previous" or "bound".
func (p SeedPolicy) String() string {
	switch p {
	case SeedFromPrevious:
		return "previous"
	case SeedFromBound:
		return "bound"
	default:
		return fmt.Sprintf("seed(%d)", int(p))
	}
}

// ParseSeedPolicy is the inverse of SeedPolicy.String.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch s {
	case "previous", "":
		return SeedFromPrevious, nil
	case "bound":
		return SeedFromBound, nil
	default:
		return SeedFromPrevious, fmt.Errorf("kinematics: unknown seed policy %q", s)
	}
}
