package rootfind

import (
	"fmt"
	"math"
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Result describes a converged (or last) iterate.
type Result struct {
	Root       float64 // final iterate
	Residual   float64 // f(Root)
	Iterations int     // number of updates performed
}

// Newton finds a root of f starting from x0, using the analytic slope df.
//
// Algorithm:
//  1. If |f(x)| ≤ Tolerance, stop.
//  2. Δx = f(x)/f′(x), clipped to MaxStep; x ← x − Δx.
//  3. Stop with ErrNoConvergence if |Δx| ≤ StepTolerance (stalled) or the
//     iteration budget is exhausted.
//
// On error the returned Result still carries the last iterate.
//
// Complexity: O(MaxIterations) evaluations of f and df.
func Newton(f, df Func, x0 float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	x := x0
	fx := f(x)
	for it := 0; ; it++ {
		if !isFinite(fx) {
			return Result{Root: x, Residual: fx, Iterations: it}, fmt.Errorf("%w: f(%g)=%g", ErrNonFinite, x, fx)
		}
		if math.Abs(fx) <= o.Tolerance {
			return Result{Root: x, Residual: fx, Iterations: it}, nil
		}
		if it == o.MaxIterations {
			return Result{Root: x, Residual: fx, Iterations: it},
				fmt.Errorf("%w: %d iterations, x=%g, |f|=%g", ErrNoConvergence, it, x, math.Abs(fx))
		}

		d := df(x)
		if !isFinite(d) {
			return Result{Root: x, Residual: fx, Iterations: it}, fmt.Errorf("%w: f'(%g)=%g", ErrNonFinite, x, d)
		}
		if math.Abs(d) < minSlope {
			return Result{Root: x, Residual: fx, Iterations: it}, fmt.Errorf("%w at x=%g", ErrZeroDerivative, x)
		}

		step := clip(fx/d, o.MaxStep)
		x -= step
		fx = f(x)
		if math.Abs(step) <= o.StepTolerance && math.Abs(fx) > o.Tolerance {
			return Result{Root: x, Residual: fx, Iterations: it + 1},
				fmt.Errorf("%w: stalled at x=%g, |f|=%g", ErrNoConvergence, x, math.Abs(fx))
		}
	}
}

// Secant finds a root of f from two starting points x0 and x1, replacing
// the analytic slope with (f(x1)−f(x0))/(x1−x0).
//
// Complexity: O(MaxIterations) evaluations of f.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	f0, f1 := f(x0), f(x1)
	if !isFinite(f0) {
		return Result{Root: x0, Residual: f0}, fmt.Errorf("%w: f(%g)=%g", ErrNonFinite, x0, f0)
	}
	for it := 0; ; it++ {
		if !isFinite(f1) {
			return Result{Root: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w: f(%g)=%g", ErrNonFinite, x1, f1)
		}
		if math.Abs(f1) <= o.Tolerance {
			return Result{Root: x1, Residual: f1, Iterations: it}, nil
		}
		if it == o.MaxIterations {
			return Result{Root: x1, Residual: f1, Iterations: it},
				fmt.Errorf("%w: %d iterations, x=%g, |f|=%g", ErrNoConvergence, it, x1, math.Abs(f1))
		}

		df := f1 - f0
		if df == 0 || x1 == x0 {
			return Result{Root: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w at x=%g", ErrZeroDerivative, x1)
		}
		slope := df / (x1 - x0)
		if math.Abs(slope) < minSlope {
			return Result{Root: x1, Residual: f1, Iterations: it}, fmt.Errorf("%w at x=%g", ErrZeroDerivative, x1)
		}

		step := clip(f1/slope, o.MaxStep)
		x0, f0 = x1, f1
		x1 -= step
		f1 = f(x1)
		if math.Abs(step) <= o.StepTolerance && math.Abs(f1) > o.Tolerance {
			return Result{Root: x1, Residual: f1, Iterations: it + 1},
				fmt.Errorf("%w: stalled at x=%g, |f|=%g", ErrNoConvergence, x1, math.Abs(f1))
		}
	}
}
