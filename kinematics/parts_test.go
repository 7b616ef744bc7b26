package kinematics_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/rootfind"
)

//----------------------------------------------------------------------------//
// Bounds
//----------------------------------------------------------------------------//

// TestOutputBounds_Example checks the band of the crank-rocker example.
func TestOutputBounds_Example(t *testing.T) {
	b, err := kinematics.OutputBounds(crankRocker)
	require.NoError(t, err)

	assert.InDelta(t, (1.4*1.4-7.29-9)/16.2, b.CosLow, 1e-12)
	assert.InDelta(t, (3.4*3.4-7.29-9)/16.2, b.CosHigh, 1e-12)
	assert.InDelta(t, kinematics.Degrees(math.Acos(b.CosLow)), b.Theta4Min, 1e-12)
	assert.Less(t, b.Theta4Max, b.Theta4Min)

	assert.True(t, b.Contains(130))
	assert.True(t, b.Contains(-130), "band holds in both half-planes")
	assert.False(t, b.Contains(90))
	assert.False(t, b.Contains(170))
}

// TestOutputBounds_AllEqual hits the acos domain edge exactly.
func TestOutputBounds_AllEqual(t *testing.T) {
	b, err := kinematics.OutputBounds(linkage.LinkSet{L1: 1, L2: 1, L3: 1, L4: 1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, b.CosLow)
	assert.Equal(t, 1.0, b.CosHigh)
	assert.InDelta(t, 180, b.Theta4Min, 1e-12)
	assert.InDelta(t, 0, b.Theta4Max, 1e-12)
}

//----------------------------------------------------------------------------//
// Freudenstein
//----------------------------------------------------------------------------//

// TestCoefficients checks the constants and that the residual vanishes on
// a configuration built by hand.
func TestCoefficients(t *testing.T) {
	c := kinematics.NewCoefficients(crankRocker)
	assert.InDelta(t, 0.9, c.K1, 1e-12)
	assert.InDelta(t, 2.7, c.K2, 1e-12)
	assert.InDelta(t, 11.53/6, c.K3, 1e-12)

	// Parallelogram: θ4 = θ2 closes the loop for any θ2.
	sq := kinematics.NewCoefficients(linkage.LinkSet{L1: 2, L2: 1, L3: 2, L4: 1})
	for _, th := range []float64{0, 0.3, 1.7, 4} {
		assert.InDelta(t, 0, sq.Residual(th, th), 1e-12, "θ=%v", th)
	}
}

// TestCoefficients_Slope compares the analytic slope with a central difference.
func TestCoefficients_Slope(t *testing.T) {
	c := kinematics.NewCoefficients(crankRocker)
	const h = 1e-6
	for _, p := range [][2]float64{{0, 2}, {1, 2.3}, {3, -2.1}} {
		num := (c.Residual(p[0], p[1]+h) - c.Residual(p[0], p[1]-h)) / (2 * h)
		assert.InDelta(t, num, c.Slope(p[0], p[1]), 1e-6, "at %v", p)
	}
}

//----------------------------------------------------------------------------//
// Coupler branch
//----------------------------------------------------------------------------//

// TestSelectCouplerBranch exercises both arms with hand-placed tips.
func TestSelectCouplerBranch(t *testing.T) {
	ls := linkage.LinkSet{L1: 2, L2: 1, L3: 1.5, L4: 1}
	// A = (1, 0), B = (2, 1): output tip right of driver tip.
	assert.Equal(t, kinematics.CouplerRightward, kinematics.SelectCouplerBranch(ls, 0, 90))
	// A = (1, 0), B = (1, 0): equal x is not "greater", so rightward.
	assert.Equal(t, kinematics.CouplerRightward, kinematics.SelectCouplerBranch(ls, 0, 180))

	ls = linkage.LinkSet{L1: 1.5, L2: 1, L3: 1.5, L4: 1}
	// A = (1, 0), B = (0.5, 0): driver tip right of output tip.
	assert.Equal(t, kinematics.CouplerLeftward, kinematics.SelectCouplerBranch(ls, 0, 180))
	assert.Equal(t, "leftward", kinematics.CouplerLeftward.String())
}

// TestCouplerAngle checks both formulas against atan2 of the coupler vector.
func TestCouplerAngle(t *testing.T) {
	// Pick tips, then derive l3 so the loop closes exactly.
	cases := []struct{ l1, l2, l4, th2, th4 float64 }{
		{2.7, 1, 3, 0, 126},
		{2.7, 1, 3, 200, 110},
		{4, 1, 2, 30, 60},
		{1, 2, 1, 10, 80},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			ls := linkage.LinkSet{L1: tc.l1, L2: tc.l2, L4: tc.l4}
			a := kinematics.DriverTip(ls, tc.th2)
			b := kinematics.OutputTip(ls, tc.th4)
			ls.L3 = a.Dist(b)

			th3, _, err := kinematics.CouplerAngle(ls, tc.th2, tc.th4)
			require.NoError(t, err)
			want := kinematics.Degrees(math.Atan2(b.Y-a.Y, b.X-a.X))
			assert.InDelta(t, 0, kinematics.AngleDiff(th3, want), 1e-9)
		})
	}
}

// TestCouplerAngle_Domain rejects an arcsine argument beyond ±1.
func TestCouplerAngle_Domain(t *testing.T) {
	ls := linkage.LinkSet{L1: 2, L2: 1, L3: 0.5, L4: 2}
	_, _, err := kinematics.CouplerAngle(ls, 270, 90)
	assert.ErrorIs(t, err, kinematics.ErrCouplerDomain)
}

//----------------------------------------------------------------------------//
// Angles, geometry, errors
//----------------------------------------------------------------------------//

// TestAngles covers wrapping helpers.
func TestAngles(t *testing.T) {
	assert.Equal(t, 0.0, kinematics.Normalize360(360))
	assert.Equal(t, 350.0, kinematics.Normalize360(-10))
	assert.Equal(t, 10.0, kinematics.Normalize360(730))
	assert.Equal(t, 0.0, kinematics.Normalize360(-1e-20))
	assert.Equal(t, -20.0, kinematics.AngleDiff(350, 10))
	assert.Equal(t, 20.0, kinematics.AngleDiff(10, 350))
	assert.Equal(t, 180.0, kinematics.AngleDiff(180, 0))
	assert.InDelta(t, math.Pi, kinematics.Radians(180), 1e-15)
	assert.InDelta(t, 90, kinematics.Degrees(math.Pi/2), 1e-12)
}

// TestSegments places the four links for a hand-checked pose.
func TestSegments(t *testing.T) {
	ls := linkage.LinkSet{L1: 2, L2: 1, L3: 2, L4: 1}
	segs := kinematics.Segments(ls, kinematics.Sample{Theta2: 90, Theta3: 0, Theta4: 90})

	assert.Equal(t, linkage.Ground, segs[0].Role)
	assert.Equal(t, kinematics.Point{X: 2}, segs[0].To)
	assert.InDelta(t, 0, segs[1].To.X, 1e-12)
	assert.InDelta(t, 1, segs[1].To.Y, 1e-12)
	assert.InDelta(t, 2, segs[2].Length(), 1e-12)
	assert.Equal(t, segs[1].To, segs[2].From, "coupler starts at driver tip")
	assert.Equal(t, segs[3].To, segs[2].To, "coupler ends at output tip")
	assert.InDelta(t, 1, segs[3].Length(), 1e-12)
}

// TestGeometryFault_Error checks wrapping and formatting.
func TestGeometryFault_Error(t *testing.T) {
	var err error = &kinematics.GeometryFault{
		Stage:  kinematics.StageOutput,
		Theta2: 42,
		Err:    fmt.Errorf("wrapped: %w", rootfind.ErrNoConvergence),
	}
	assert.ErrorIs(t, err, kinematics.ErrGeometryFault)
	assert.ErrorIs(t, err, rootfind.ErrNoConvergence)
	assert.False(t, errors.Is(err, kinematics.ErrBoundDomain))
	assert.Contains(t, err.Error(), "theta2=42°")

	var nilFault *kinematics.GeometryFault
	assert.Equal(t, "<nil>", nilFault.Error())
}

// TestParseOptions round-trips the textual option names.
func TestParseOptions(t *testing.T) {
	m, err := kinematics.ParseMethod("secant")
	require.NoError(t, err)
	assert.Equal(t, kinematics.Secant, m)
	_, err = kinematics.ParseMethod("bisection")
	assert.Error(t, err)

	p, err := kinematics.ParseSeedPolicy(kinematics.SeedFromBound.String())
	require.NoError(t, err)
	assert.Equal(t, kinematics.SeedFromBound, p)
	_, err = kinematics.ParseSeedPolicy("random")
	assert.Error(t, err)
}
