package kinematics

import (
	"errors"
	"fmt"
)

var (
	// ErrGeometryFault matches every *GeometryFault via errors.Is.
	ErrGeometryFault = errors.New("kinematics: geometry fault")

	// ErrGrashofViolation is returned by Solve for a set that fails the
	// validity check; the solver never runs on such a set.
	ErrGrashofViolation = errors.New("kinematics: link lengths violate the Grashof condition")

	// ErrBoundDomain: an output-angle bound has an acos argument outside [−1, 1].
	ErrBoundDomain = errors.New("kinematics: output-angle bound outside acos domain")

	// ErrOutOfBand: a converged output angle lies outside the feasible band.
	ErrOutOfBand = errors.New("kinematics: output angle outside feasible band")

	// ErrCouplerDomain: the coupler arcsine argument is outside [−1, 1].
	ErrCouplerDomain = errors.New("kinematics: coupler arcsine argument outside [-1, 1]")

	// ErrClosure: a sample's coupler length disagrees with l3.
	ErrClosure = errors.New("kinematics: loop closure violated")
)

// Stage names the solver step that raised a GeometryFault.
type Stage string

const (
	StageBounds  Stage = "bounds"  // Step 1, acos bounds
	StageOutput  Stage = "output"  // Step 2, Freudenstein root
	StageCoupler Stage = "coupler" // Step 3, coupler arcsine
)

// GeometryFault reports that the linkage cannot be assembled for the
// requested motion. Theta2 is the driving angle (degrees) of the failing
// sample; it is meaningless for StageBounds.
type GeometryFault struct {
	Stage  Stage
	Theta2 float64
	Err    error
}

// Error implements error.
func (f *GeometryFault) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Stage == StageBounds {
		return fmt.Sprintf("kinematics: geometry fault at %s: %v", f.Stage, f.Err)
	}

	return fmt.Sprintf("kinematics: geometry fault at %s (theta2=%g°): %v", f.Stage, f.Theta2, f.Err)
}

// Unwrap exposes the cause, including rootfind sentinels.
func (f *GeometryFault) Unwrap() error {
	if f == nil {
		return nil
	}

	return f.Err
}

// Is makes errors.Is(err, ErrGeometryFault) true for any GeometryFault.
func (f *GeometryFault) Is(target error) bool {
	return target == ErrGeometryFault
}

func fault(stage Stage, theta2 float64, err error) *GeometryFault {
	return &GeometryFault{Stage: stage, Theta2: theta2, Err: err}
}
