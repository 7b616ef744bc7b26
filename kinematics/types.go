package kinematics

import (
	"fmt"

	"github.com/katalvlaran/fourbar/linkage"
)

// CouplerBranch tags which of the two arcsine solutions gives the coupler
// heading at a sample.
type CouplerBranch int

const (
	// CouplerRightward: the output tip lies at or right of the driver tip,
	// so the coupler heading is asin(s) ∈ [−90°, 90°].
	CouplerRightward CouplerBranch = iota

	// CouplerLeftward: the driver tip lies right of the output tip, so the
	// coupler points into the left half-plane and its heading is
	// 180° − asin(s) ∈ (90°, 270°).
	CouplerLeftward
)

// String returns "rightward" or "leftward".
func (b CouplerBranch) String() string {
	switch b {
	case CouplerRightward:
		return "rightward"
	case CouplerLeftward:
		return "leftward"
	default:
		return fmt.Sprintf("branch(%d)", int(b))
	}
}

// MarshalText encodes the branch by name.
func (b CouplerBranch) MarshalText() ([]byte, error) {
	if b != CouplerRightward && b != CouplerLeftward {
		return nil, fmt.Errorf("kinematics: invalid coupler branch %d", int(b))
	}

	return []byte(b.String()), nil
}

// Sample is the configuration of the linkage at one driving angle.
// All angles are degrees measured counter-clockwise from +x.
type Sample struct {
	Theta2 float64       `json:"theta2"` // driver angle
	Theta3 float64       `json:"theta3"` // coupler heading, driver tip → output tip
	Theta4 float64       `json:"theta4"` // output angle about (l1, 0), in [0, 360)
	Branch CouplerBranch `json:"branch"` // arcsine branch used for Theta3
}

// Bounds is the feasible band of the output angle.
type Bounds struct {
	Theta4Min float64 // acos of CosLow, degrees
	Theta4Max float64 // acos of CosHigh, degrees
	CosLow    float64 // ((l2−l3)² − l1² − l4²)/(2·l1·l4)
	CosHigh   float64 // ((l2+l3)² − l1² − l4²)/(2·l1·l4)
}

// MotionProfile is the immutable result of Solve: one Sample per driving
// angle, ordered by ascending θ2 from 0° to 360° inclusive.
type MotionProfile struct {
	links   linkage.LinkSet
	bounds  Bounds
	samples []Sample
}

// LinkSet returns the lengths the profile was solved for.
func (p MotionProfile) LinkSet() linkage.LinkSet { return p.links }

// Bounds returns the Step-1 output-angle band.
func (p MotionProfile) Bounds() Bounds { return p.bounds }

// Len returns the number of samples (361 at the default resolution).
func (p MotionProfile) Len() int { return len(p.samples) }

// At returns sample i. It panics if i is out of range, like a slice index.
func (p MotionProfile) At(i int) Sample { return p.samples[i] }

// Samples returns a copy of all samples.
func (p MotionProfile) Samples() []Sample {
	out := make([]Sample, len(p.samples))
	copy(out, p.samples)

	return out
}

// Theta2s returns the driver angles as a fresh slice.
func (p MotionProfile) Theta2s() []float64 {
	return p.column(func(s Sample) float64 { return s.Theta2 })
}

// Theta3s returns the coupler angles as a fresh slice.
func (p MotionProfile) Theta3s() []float64 {
	return p.column(func(s Sample) float64 { return s.Theta3 })
}

// Theta4s returns the output angles as a fresh slice.
func (p MotionProfile) Theta4s() []float64 {
	return p.column(func(s Sample) float64 { return s.Theta4 })
}

func (p MotionProfile) column(get func(Sample) float64) []float64 {
	out := make([]float64, len(p.samples))
	for i, s := range p.samples {
		out[i] = get(s)
	}

	return out
}
