package linkage

import "errors"

// Input errors. They are raised while building a LinkSet, before the
// validity check or the solver ever sees the lengths.
var (
	// ErrNonPositiveLength indicates a link length ≤ 0.
	ErrNonPositiveLength = errors.New("linkage: link length must be > 0")

	// ErrNonFiniteLength indicates a NaN or ±Inf link length.
	ErrNonFiniteLength = errors.New("linkage: link length must be finite")

	// ErrMalformedLength indicates textual input that is not a number.
	ErrMalformedLength = errors.New("linkage: link length is not a number")
)
