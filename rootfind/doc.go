// Package rootfind solves scalar equations f(x) = 0 with small, bounded
// iterative methods.
//
// What:
//
//   - Newton: x ← x − f(x)/f′(x), quadratic convergence near a simple root.
//   - Secant: Newton with a finite-difference slope, for when f′ is not
//     available.
//
// Both methods cap the number of iterations and can cap the size of a single
// step (WithMaxStep). Capping the step keeps the iterate in the basin of the
// root nearest the seed, which matters for periodic functions with several
// roots per period.
//
// Errors:
//
//   - ErrNoConvergence: residual still above tolerance after MaxIterations,
//     or the iterate stopped moving before the residual was small.
//   - ErrZeroDerivative: slope vanished; the step is undefined.
//   - ErrNonFinite: f or f′ produced NaN or ±Inf.
//
// Failures are always reported as errors, never as a NaN root.
//
//	res, err := rootfind.Newton(f, df, 1.0, rootfind.WithTolerance(1e-12))
package rootfind
