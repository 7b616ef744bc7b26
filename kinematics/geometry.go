package kinematics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/fourbar/linkage"
)

// Point is a position in the mechanism plane. The ground pivot of the
// driver is the origin; the ground pivot of the output is (l1, 0).
type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Segment is one link drawn between its two joints.
type Segment struct {
	Role     linkage.Role
	From, To Point
}

// Length returns the drawn length of the segment.
func (s Segment) Length() float64 { return s.From.Dist(s.To) }

// DriverTip is the moving joint of link 2 at θ2 (degrees).
func DriverTip(ls linkage.LinkSet, theta2 float64) Point {
	return Point{X: ls.L2 * cosd(theta2), Y: ls.L2 * sind(theta2)}
}

// OutputTip is the moving joint of link 4 at θ4 (degrees).
func OutputTip(ls linkage.LinkSet, theta4 float64) Point {
	return Point{X: ls.L1 + ls.L4*cosd(theta4), Y: ls.L4 * sind(theta4)}
}

// Segments places the four links for sample s, in role order:
// ground, driver, coupler, output.
func Segments(ls linkage.LinkSet, s Sample) [4]Segment {
	o2 := Point{}
	o4 := Point{X: ls.L1}
	a := DriverTip(ls, s.Theta2)
	b := OutputTip(ls, s.Theta4)

	return [4]Segment{
		{Role: linkage.Ground, From: o2, To: o4},
		{Role: linkage.Driver, From: o2, To: a},
		{Role: linkage.Coupler, From: a, To: b},
		{Role: linkage.Output, From: o4, To: b},
	}
}

// CouplerEnds reconstructs the coupler end points from θ3 alone: the far
// end seen from the driver tip and the near end seen from the output tip.
func CouplerEnds(ls linkage.LinkSet, s Sample) (fromDriver, fromOutput Point) {
	a := DriverTip(ls, s.Theta2)
	b := OutputTip(ls, s.Theta4)
	dx, dy := ls.L3*cosd(s.Theta3), ls.L3*sind(s.Theta3)

	return Point{X: a.X + dx, Y: a.Y + dy}, Point{X: b.X - dx, Y: b.Y - dy}
}

// Verify checks loop closure on every sample: the drawn coupler length
// must equal l3, and the coupler reconstructed from θ3 must reach the
// output tip, both within relTol relative to l3.
func (p MotionProfile) Verify(relTol float64) error {
	ls := p.links
	for _, s := range p.samples {
		seg := Segments(ls, s)[linkage.Coupler]
		if !scalar.EqualWithinRel(seg.Length(), ls.L3, relTol) {
			return fmt.Errorf("%w at θ2=%g°: |AB|=%g, l3=%g", ErrClosure, s.Theta2, seg.Length(), ls.L3)
		}
		far, near := CouplerEnds(ls, s)
		if far.Dist(seg.To) > relTol*ls.L3 || near.Dist(seg.From) > relTol*ls.L3 {
			return fmt.Errorf("%w at θ2=%g°: θ3=%g° does not reach the output tip", ErrClosure, s.Theta2, s.Theta3)
		}
	}

	return nil
}
