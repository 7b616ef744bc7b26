// Package kinematics computes the position kinematics of a planar four-bar
// linkage over one full revolution of its driving link.
//
// 🚀 What:
//
//	Given a LinkSet (l1 ground, l2 driver, l3 coupler, l4 output) that passes
//	the Grashof check, Solve returns a MotionProfile of samples
//	(θ2, θ3, θ4) for θ2 = 0°, 1°, …, 360°.
//
// ⚙️ Algorithm:
//
//  1. Bounds: the output angle is confined to the band
//     θ4max ≤ |θ4| ≤ θ4min with
//     θ4min = acos(((l2−l3)² − l1² − l4²)/(2·l1·l4)),
//     θ4max = acos(((l2+l3)² − l1² − l4²)/(2·l1·l4)).
//     An acos argument outside [−1, 1] is a GeometryFault.
//  2. Output angle: for each θ2 solve Freudenstein's equation
//     K3 + K2·cos θ4 − K1·cos θ2 − cos(θ2 − θ4) = 0,
//     K1 = l1/l4, K2 = l1/l2, K3 = (l1² + l2² − l3² + l4²)/(2·l2·l4),
//     with a step-bounded Newton iteration (package rootfind). The first
//     sample is seeded with θ4max; later samples are seeded with the previous
//     root so that one continuous assembly branch is tracked.
//  3. Coupler angle: θ3 is the heading of the vector from the driver tip to
//     the output tip, recovered from its sine and a two-way branch decision
//     (SelectCouplerBranch).
//
// Failure policy:
//
//	All-or-nothing. Any fault aborts the whole solve and no partial profile
//	is returned. Faults are *GeometryFault values matching ErrGeometryFault.
//
// Angles in the public API are degrees. θ4 is reported in [0°, 360°); θ3
// is reported in the arcsine convention (−90°, 270°].
//
//	prof, err := kinematics.Solve(ls)
//	if errors.Is(err, kinematics.ErrGeometryFault) {
//		// ask for another set of lengths
//	}
package kinematics
