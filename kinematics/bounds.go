package kinematics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourbar/linkage"
)

// bandTol widens the cosine band when checking a converged θ4.
const bandTol = 1e-9

// OutputBounds computes the Step-1 band of the output angle. The band is
// where the distance from the ground pivot O to the output tip B lies in
// [|l2 − l3|, l2 + l3], i.e. where driver and coupler can still reach B.
//
// Returns a *GeometryFault (StageBounds, ErrBoundDomain) when either acos
// argument leaves [−1, 1].
func OutputBounds(ls linkage.LinkSet) (Bounds, error) {
	l1, l2, l3, l4 := ls.L1, ls.L2, ls.L3, ls.L4
	den := 2 * l1 * l4
	sq := l1*l1 + l4*l4

	b := Bounds{
		CosLow:  ((l2-l3)*(l2-l3) - sq) / den,
		CosHigh: ((l2+l3)*(l2+l3) - sq) / den,
	}
	for _, arg := range []float64{b.CosLow, b.CosHigh} {
		if math.IsNaN(arg) || arg < -1 || arg > 1 {
			return Bounds{}, fault(StageBounds, 0, fmt.Errorf("%w: cos θ4 = %g", ErrBoundDomain, arg))
		}
	}
	b.Theta4Min = Degrees(math.Acos(b.CosLow))
	b.Theta4Max = Degrees(math.Acos(b.CosHigh))

	return b, nil
}

// Contains reports whether θ4 (degrees, any range) lies in the band,
// in either half-plane.
func (b Bounds) Contains(theta4 float64) bool {
	c := cosd(theta4)

	return c >= b.CosLow-bandTol && c <= b.CosHigh+bandTol
}
