package kinematics

import (
	"fmt"

	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/rootfind"
)

// Solve computes the MotionProfile of ls over one revolution of the driver.
//
// Contract:
//   - ls must pass linkage.LinkSet.Validate (input errors are returned as-is).
//   - ls must pass the Grashof check, else ErrGrashofViolation.
//   - Any bounds, root-finding or coupler failure aborts the solve with a
//     *GeometryFault; no partial profile is returned.
//
// Complexity: O(Resolution · MaxIterations) trigonometric evaluations.
func Solve(ls linkage.LinkSet, opts ...Option) (MotionProfile, error) {
	if err := ls.Validate(); err != nil {
		return MotionProfile{}, err
	}
	if !ls.IsValid() {
		return MotionProfile{}, fmt.Errorf("%w: %s", ErrGrashofViolation, ls)
	}
	o := gatherOptions(opts)

	// Stage 1: feasible band of θ4.
	bounds, err := OutputBounds(ls)
	if err != nil {
		return MotionProfile{}, err
	}

	// Stage 2 + 3: one root solve and one coupler angle per driver step.
	var (
		coef    = NewCoefficients(ls)
		n       = o.Resolution
		step    = 360.0 / float64(n)
		seed    = Radians(bounds.Theta4Max)
		samples = make([]Sample, 0, n+1)
	)
	for i := 0; i <= n; i++ {
		theta2 := float64(i) * step

		root, err := solveOutput(coef, Radians(theta2), seed, o)
		if err != nil {
			return MotionProfile{}, fault(StageOutput, theta2, err)
		}
		theta4 := Normalize360(Degrees(root))
		if !bounds.Contains(theta4) {
			return MotionProfile{}, fault(StageOutput, theta2,
				fmt.Errorf("%w: θ4=%g° not in [%g°, %g°]", ErrOutOfBand, theta4, bounds.Theta4Max, bounds.Theta4Min))
		}

		theta3, branch, err := CouplerAngle(ls, theta2, theta4)
		if err != nil {
			return MotionProfile{}, fault(StageCoupler, theta2, err)
		}

		samples = append(samples, Sample{Theta2: theta2, Theta3: theta3, Theta4: theta4, Branch: branch})
		if o.Seed == SeedFromPrevious {
			seed = root
		}
	}

	return MotionProfile{links: ls, bounds: bounds, samples: samples}, nil
}

// SolveAt computes a single configuration at driver angle theta2 (degrees),
// seeded with seed4 (degrees). It applies the same bounds and coupler
// checks as Solve.
func SolveAt(ls linkage.LinkSet, theta2, seed4 float64, opts ...Option) (Sample, error) {
	if err := ls.Validate(); err != nil {
		return Sample{}, err
	}
	o := gatherOptions(opts)

	bounds, err := OutputBounds(ls)
	if err != nil {
		return Sample{}, err
	}
	root, err := solveOutput(NewCoefficients(ls), Radians(theta2), Radians(seed4), o)
	if err != nil {
		return Sample{}, fault(StageOutput, theta2, err)
	}
	theta4 := Normalize360(Degrees(root))
	if !bounds.Contains(theta4) {
		return Sample{}, fault(StageOutput, theta2, fmt.Errorf("%w: θ4=%g°", ErrOutOfBand, theta4))
	}
	theta3, branch, err := CouplerAngle(ls, theta2, theta4)
	if err != nil {
		return Sample{}, fault(StageCoupler, theta2, err)
	}

	return Sample{Theta2: theta2, Theta3: theta3, Theta4: theta4, Branch: branch}, nil
}

// solveOutput solves the normalized Freudenstein equation for θ4 (radians).
func solveOutput(c Coefficients, theta2, seed float64, o Options) (float64, error) {
	k := c.scale()
	f := func(t4 float64) float64 { return c.Residual(theta2, t4) / k }

	var (
		res rootfind.Result
		err error
	)
	switch o.Method {
	case Secant:
		res, err = rootfind.Secant(f, seed, seed+secantOffset, o.Root...)
	default:
		df := func(t4 float64) float64 { return c.Slope(theta2, t4) / k }
		res, err = rootfind.Newton(f, df, seed, o.Root...)
	}
	if err != nil {
		return 0, err
	}

	return res.Root, nil
}
