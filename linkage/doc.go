// Package linkage models the four link lengths of a planar four-bar
// mechanism and decides whether they satisfy the Grashof full-rotation
// condition.
//
// What:
//
//   - LinkSet holds (l1, l2, l3, l4) = ground, driver, coupler, output.
//   - New / Parse validate raw input (strictly positive, finite numbers).
//   - IsValid implements the Grashof check: shortest + longest ≤ sum of the
//     other two, removing exactly one minimum and one maximum by position.
//   - Classify refines the boolean into the classical Grashof classes.
//
// Why:
//
//   - The angle solver in package kinematics only runs on sets whose driver
//     can complete a full revolution; IsValid is the gate.
//
// Complexity:
//
//   - IsValid, Classify: O(1) (four lengths).
//
// Errors:
//
//   - ErrNonPositiveLength: a length is ≤ 0.
//   - ErrNonFiniteLength:   a length is NaN or ±Inf.
//   - ErrMalformedLength:   a textual length could not be parsed.
//
// A Grashof violation is not an error: IsValid simply returns false.
package linkage
