package linkage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourbar/linkage"
)

// TestNew_InputErrors verifies that every malformed length is rejected.
func TestNew_InputErrors(t *testing.T) {
	cases := []struct {
		name           string
		l1, l2, l3, l4 float64
		err            error
	}{
		{"Zero", 0, 1, 1, 1, linkage.ErrNonPositiveLength},
		{"Negative", 1, -2, 1, 1, linkage.ErrNonPositiveLength},
		{"NaN", 1, 1, math.NaN(), 1, linkage.ErrNonFiniteLength},
		{"Inf", 1, 1, 1, math.Inf(1), linkage.ErrNonFiniteLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linkage.New(tc.l1, tc.l2, tc.l3, tc.l4)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_OK checks the role accessors of a well-formed set.
func TestNew_OK(t *testing.T) {
	ls, err := linkage.New(2.7, 1, 2.4, 3)
	require.NoError(t, err)

	assert.Equal(t, [4]float64{2.7, 1, 2.4, 3}, ls.Lengths())
	assert.Equal(t, 2.7, ls.Length(linkage.Ground))
	assert.Equal(t, 1.0, ls.Length(linkage.Driver))
	assert.Equal(t, 2.4, ls.Length(linkage.Coupler))
	assert.Equal(t, 3.0, ls.Length(linkage.Output))
	assert.Equal(t, "l1=2.7 l2=1 l3=2.4 l4=3", ls.String())
}

// TestParse covers textual input as a user would type it.
func TestParse(t *testing.T) {
	ls, err := linkage.Parse(" 2.7", "1", "2.4 ", "3")
	require.NoError(t, err)
	assert.Equal(t, linkage.LinkSet{L1: 2.7, L2: 1, L3: 2.4, L4: 3}, ls)

	_, err = linkage.Parse("2.7", "one", "2.4", "3")
	assert.ErrorIs(t, err, linkage.ErrMalformedLength)
	assert.Contains(t, err.Error(), "link 2")

	_, err = linkage.Parse("2.7", "1", "-2.4", "3")
	assert.ErrorIs(t, err, linkage.ErrNonPositiveLength)

	_, err = linkage.Parse("2.7", "1", "2.4", "NaN")
	assert.ErrorIs(t, err, linkage.ErrNonFiniteLength)
}

// TestRole_String checks role names used in error messages.
func TestRole_String(t *testing.T) {
	assert.Equal(t, "ground", linkage.Ground.String())
	assert.Equal(t, "driver", linkage.Driver.String())
	assert.Equal(t, "coupler", linkage.Coupler.String())
	assert.Equal(t, "output", linkage.Output.String())
	assert.Equal(t, "role(7)", linkage.Role(7).String())
}
