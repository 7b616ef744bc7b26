package linkage

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Role names the semantic position of a link in the mechanism.
type Role int

const (
	// Ground is link 1, fixed between the two ground pivots.
	Ground Role = iota
	// Driver is link 2, the crank rotated through a full revolution.
	Driver
	// Coupler is link 3, the floating link between driver and output tips.
	Coupler
	// Output is link 4, the rocker pinned at (l1, 0).
	Output
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Ground:
		return "ground"
	case Driver:
		return "driver"
	case Coupler:
		return "coupler"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// LinkSet is the four link lengths of a ground-grounded four-bar.
// The zero value is not a valid LinkSet; build one with New or Parse.
type LinkSet struct {
	L1 float64 // ground
	L2 float64 // driver
	L3 float64 // coupler
	L4 float64 // output
}

// New validates the four lengths and returns a LinkSet.
// Every length must be finite and strictly positive.
func New(l1, l2, l3, l4 float64) (LinkSet, error) {
	ls := LinkSet{L1: l1, L2: l2, L3: l3, L4: l4}
	if err := ls.Validate(); err != nil {
		return LinkSet{}, err
	}

	return ls, nil
}

// Parse converts four textual lengths (as typed by a user) into a LinkSet.
// Surrounding whitespace is ignored.
func Parse(l1, l2, l3, l4 string) (LinkSet, error) {
	var (
		raw = [4]string{l1, l2, l3, l4}
		out [4]float64
		err error
	)
	for i, s := range raw {
		if out[i], err = ParseLength(s); err != nil {
			return LinkSet{}, fmt.Errorf("link %d: %w", i+1, err)
		}
	}

	return New(out[0], out[1], out[2], out[3])
}

// ParseLength parses a single positive, finite link length.
func ParseLength(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLength, s)
	}
	if err = checkLength(v); err != nil {
		return 0, err
	}

	return v, nil
}

// Validate reports the first input error among the four lengths, in role order.
func (ls LinkSet) Validate() error {
	for i, v := range ls.Lengths() {
		if err := checkLength(v); err != nil {
			return fmt.Errorf("%s link (l%d=%v): %w", Role(i), i+1, v, err)
		}
	}

	return nil
}

// Lengths returns the lengths in role order (l1, l2, l3, l4).
func (ls LinkSet) Lengths() [4]float64 {
	return [4]float64{ls.L1, ls.L2, ls.L3, ls.L4}
}

// Length returns the length of the link playing role r.
func (ls LinkSet) Length(r Role) float64 {
	switch r {
	case Ground:
		return ls.L1
	case Driver:
		return ls.L2
	case Coupler:
		return ls.L3
	case Output:
		return ls.L4
	default:
		return math.NaN()
	}
}

// Swap returns a copy with the lengths of roles a and b exchanged.
// The multiset of lengths is unchanged, so IsValid is unchanged too.
func (ls LinkSet) Swap(a, b Role) LinkSet {
	l := ls.Lengths()
	l[a], l[b] = l[b], l[a]

	return LinkSet{L1: l[0], L2: l[1], L3: l[2], L4: l[3]}
}

// String renders the set as "l1=… l2=… l3=… l4=…".
func (ls LinkSet) String() string {
	return fmt.Sprintf("l1=%g l2=%g l3=%g l4=%g", ls.L1, ls.L2, ls.L3, ls.L4)
}

func checkLength(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFiniteLength
	}
	if v <= 0 {
		return ErrNonPositiveLength
	}

	return nil
}
