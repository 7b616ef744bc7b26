package kinematics

import (
	"math"

	"github.com/katalvlaran/fourbar/linkage"
)

// Coefficients are the dimensionless constants of Freudenstein's equation
//
//	K3 + K2·cos θ4 − K1·cos θ2 − cos(θ2 − θ4) = 0
//
// (often written L3, L2, L1). The equation is the loop-closure condition
// |B − A| = l3 for driver tip A and output tip B, divided by 2·l2·l4.
type Coefficients struct {
	K1 float64 // l1/l4
	K2 float64 // l1/l2
	K3 float64 // (l1² + l2² − l3² + l4²)/(2·l2·l4)
}

// NewCoefficients derives the Freudenstein constants of ls.
func NewCoefficients(ls linkage.LinkSet) Coefficients {
	l1, l2, l3, l4 := ls.L1, ls.L2, ls.L3, ls.L4

	return Coefficients{
		K1: l1 / l4,
		K2: l1 / l2,
		K3: (l1*l1 + l2*l2 - l3*l3 + l4*l4) / (2 * l2 * l4),
	}
}

// Residual evaluates the left-hand side at (θ2, θ4) in radians.
func (c Coefficients) Residual(theta2, theta4 float64) float64 {
	return c.K3 + c.K2*math.Cos(theta4) - c.K1*math.Cos(theta2) - math.Cos(theta2-theta4)
}

// Slope is ∂Residual/∂θ4 in radians. It vanishes where the coupler and the
// output link are collinear, the point at which the two assembly branches
// meet.
func (c Coefficients) Slope(theta2, theta4 float64) float64 {
	return -c.K2*math.Sin(theta4) - math.Sin(theta2-theta4)
}

// scale bounds |Residual| from above; dividing by it makes the solver
// tolerance relative to the magnitude of the constants.
func (c Coefficients) scale() float64 {
	return 1 + math.Abs(c.K1) + math.Abs(c.K2) + math.Abs(c.K3)
}
