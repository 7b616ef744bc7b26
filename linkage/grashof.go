package linkage

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// changePointTol is the absolute/relative tolerance under which
// shortest+longest and the sum of the other two are considered equal.
const changePointTol = 1e-12

// Class is the Grashof classification of a LinkSet with respect to the
// fixed role assignment (link 2 drives, link 1 is ground).
type Class int

const (
	// NonGrashof: s + l > p + q; no link can rotate fully.
	NonGrashof Class = iota
	// CrankRocker: Grashof, driver shortest; driver rotates, output rocks.
	CrankRocker
	// DoubleCrank: Grashof, ground shortest; driver and output both rotate.
	DoubleCrank
	// RockerCrank: Grashof, output shortest; output rotates, driver rocks.
	RockerCrank
	// DoubleRocker: Grashof, coupler shortest; neither grounded link rotates.
	DoubleRocker
	// ChangePoint: s + l = p + q; the linkage can fold flat.
	ChangePoint
)

// String returns the hyphenated class name.
func (c Class) String() string {
	switch c {
	case NonGrashof:
		return "non-grashof"
	case CrankRocker:
		return "crank-rocker"
	case DoubleCrank:
		return "double-crank"
	case RockerCrank:
		return "rocker-crank"
	case DoubleRocker:
		return "double-rocker"
	case ChangePoint:
		return "change-point"
	default:
		return "unknown"
	}
}

// DriverRotates reports whether the class lets link 2 complete a revolution.
// Only a crank-rocker, a double-crank or a change-point mechanism qualifies.
func (c Class) DriverRotates() bool {
	return c == CrankRocker || c == DoubleCrank || c == ChangePoint
}

// Extremes is the split of four lengths used by the Grashof condition.
type Extremes struct {
	Shortest float64
	Longest  float64
	Others   [2]float64 // the two lengths left after removing one min and one max

	ShortestRole Role // first occurrence of the minimum
	LongestRole  Role // first occurrence of the maximum
}

// SumExtremes returns shortest + longest.
func (e Extremes) SumExtremes() float64 { return e.Shortest + e.Longest }

// SumOthers returns the sum of the two remaining lengths.
func (e Extremes) SumOthers() float64 { return e.Others[0] + e.Others[1] }

// Split partitions the four lengths into shortest, longest and the two
// others.
//
// Removal is positional: the first occurrence of the maximum is deleted,
// then the first occurrence of the minimum in the shortened list. When
// every length is equal the two deletions hit different links, so exactly
// two lengths always remain.
func Split(l1, l2, l3, l4 float64) Extremes {
	links := []float64{l1, l2, l3, l4}

	posMax, posMin := 0, 0
	for i := 1; i < len(links); i++ {
		if links[i] > links[posMax] {
			posMax = i
		}
		if links[i] < links[posMin] {
			posMin = i
		}
	}
	e := Extremes{
		Shortest:     links[posMin],
		Longest:      links[posMax],
		ShortestRole: Role(posMin),
		LongestRole:  Role(posMax),
	}

	links = append(links[:posMax], links[posMax+1:]...)
	if posMax < posMin {
		posMin--
	}
	links = append(links[:posMin], links[posMin+1:]...)
	e.Others = [2]float64{links[0], links[1]}

	return e
}

// IsValid reports whether shortest + longest ≤ sum of the other two.
//
// The check depends only on the multiset of lengths, never on roles.
// Callers are expected to have rejected non-positive or non-finite input
// already (see New).
func IsValid(l1, l2, l3, l4 float64) bool {
	e := Split(l1, l2, l3, l4)

	return e.SumExtremes() <= e.SumOthers()
}

// IsValid reports whether ls satisfies the Grashof condition.
func (ls LinkSet) IsValid() bool {
	return IsValid(ls.L1, ls.L2, ls.L3, ls.L4)
}

// Classify returns the Grashof class of ls.
//
// Rejection uses the exact comparison of IsValid, so a class that lets the
// driver rotate always implies IsValid. Only among accepted sets are the two
// sums compared within a 1e-12 absolute-or-relative band, so that decimal
// inputs such as (0.1, 0.3, 0.2, 0.2) land on ChangePoint.
func Classify(ls LinkSet) Class {
	e := Split(ls.L1, ls.L2, ls.L3, ls.L4)
	sl, pq := e.SumExtremes(), e.SumOthers()

	if !(sl <= pq) {
		return NonGrashof
	}
	if scalar.EqualWithinAbsOrRel(sl, pq, changePointTol, changePointTol) {
		return ChangePoint
	}

	switch e.ShortestRole {
	case Ground:
		return DoubleCrank
	case Driver:
		return CrankRocker
	case Output:
		return RockerCrank
	default:
		return DoubleRocker
	}
}
