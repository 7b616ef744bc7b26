package kinematics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourbar/linkage"
)

// asinTol absorbs rounding when the coupler is vertical and the arcsine
// argument lands a few ulps beyond ±1.
const asinTol = 1e-9

// SelectCouplerBranch decides which arcsine solution gives θ3.
//
// The coupler is the vector from the driver tip A = (l2 cos θ2, l2 sin θ2)
// to the output tip B = (l1 + l4 cos θ4, l4 sin θ4). Its sine is fixed by
// the y-components, but its cosine has the sign of B.x − A.x:
//
//	l2·cos(360° − θ2) > l1 − l4·cos(180° − θ4)   ⇔   A.x > B.x
//
// in which case the coupler points left (CouplerLeftward); otherwise right.
// Angles are degrees.
func SelectCouplerBranch(ls linkage.LinkSet, theta2, theta4 float64) CouplerBranch {
	if ls.L2*cosd(360-theta2) > ls.L1-ls.L4*cosd(180-theta4) {
		return CouplerLeftward
	}

	return CouplerRightward
}

// CouplerAngle returns θ3 (degrees) and the branch used, given θ2 and θ4.
//
//	s  = (l4 sin θ4 − l2 sin θ2)/l3
//	θ3 = 180° − asin(s)   (CouplerLeftward)
//	θ3 = asin(s)          (CouplerRightward)
//
// An argument beyond ±(1 + 1e-9) returns ErrCouplerDomain.
func CouplerAngle(ls linkage.LinkSet, theta2, theta4 float64) (float64, CouplerBranch, error) {
	s := (ls.L4*sind(theta4) - ls.L2*sind(theta2)) / ls.L3
	if math.IsNaN(s) || math.Abs(s) > 1+asinTol {
		return 0, 0, fmt.Errorf("%w: sin θ3 = %g", ErrCouplerDomain, s)
	}
	s = math.Max(-1, math.Min(1, s))

	branch := SelectCouplerBranch(ls, theta2, theta4)
	a := Degrees(math.Asin(s))
	if branch == CouplerLeftward {
		return 180 - a, branch, nil
	}

	return a, branch, nil
}
