package rootfind

import "math"

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultTolerance is the residual bound |f(x)| ≤ tol for convergence.
	DefaultTolerance = 1e-10

	// DefaultStepTolerance is the step size below which the iterate is
	// considered stalled.
	DefaultStepTolerance = 1e-15

	// DefaultMaxIterations bounds the number of updates.
	DefaultMaxIterations = 100

	// DefaultMaxStep disables step capping.
	DefaultMaxStep = 0.0

	// minSlope is the |slope| under which a step is refused.
	minSlope = 1e-14
)

const (
	panicToleranceInvalid = "rootfind: WithTolerance: tol must be finite and > 0"
	panicStepTolInvalid   = "rootfind: WithStepTolerance: tol must be finite and ≥ 0"
	panicMaxIterInvalid   = "rootfind: WithMaxIterations: n must be > 0"
	panicMaxStepInvalid   = "rootfind: WithMaxStep: step must be finite and ≥ 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	Tolerance     float64 // residual bound
	StepTolerance float64 // stall detection
	MaxIterations int     // update budget
	MaxStep       float64 // 0 ⇒ unbounded; otherwise |Δx| is clipped to this
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		StepTolerance: DefaultStepTolerance,
		MaxIterations: DefaultMaxIterations,
		MaxStep:       DefaultMaxStep,
	}
}

// WithTolerance sets the residual tolerance.
func WithTolerance(tol float64) Option {
	if !isFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithStepTolerance sets the stall threshold on |Δx|.
func WithStepTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicStepTolInvalid)
	}

	return func(o *Options) { o.StepTolerance = tol }
}

// WithMaxIterations sets the update budget.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxStep caps a single update to |Δx| ≤ step. Zero removes the cap.
func WithMaxStep(step float64) Option {
	if !isFinite(step) || step < 0 {
		panic(panicMaxStepInvalid)
	}

	return func(o *Options) { o.MaxStep = step }
}

// WithOptions replaces the whole configuration; used by callers that keep
// an Options value around.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
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

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// clip limits |step| to max when max > 0.
func clip(step, max float64) float64 {
	if max <= 0 {
		return step
	}

	return math.Max(-max, math.Min(max, step))
}
