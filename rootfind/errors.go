package rootfind

import "errors"

var (
	// ErrNoConvergence indicates the residual did not drop below tolerance.
	ErrNoConvergence = errors.New("rootfind: did not converge")

	// ErrZeroDerivative indicates a (numerically) zero slope.
	ErrZeroDerivative = errors.New("rootfind: derivative is zero")

	// ErrNonFinite indicates f or its slope evaluated to NaN or ±Inf.
	ErrNonFinite = errors.New("rootfind: non-finite value")
)
