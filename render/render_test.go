package render_test

import (
	"bytes"
	"encoding/csv"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/render"
)

var crankRocker = linkage.LinkSet{L1: 2.7, L2: 1, L3: 2.4, L4: 3}

//----------------------------------------------------------------------------//
// Suite: a coarse profile (30° steps, 13 samples) keeps rasterizing cheap.
//----------------------------------------------------------------------------//

type RenderSuite struct {
	suite.Suite
	prof kinematics.MotionProfile
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func (s *RenderSuite) SetupSuite() {
	prof, err := kinematics.Solve(crankRocker, kinematics.WithResolution(12))
	s.Require().NoError(err)
	s.Require().Equal(13, prof.Len())
	s.prof = prof
}

func (s *RenderSuite) TestFrames() {
	frames, err := render.Frames(s.prof, 5)
	s.Require().NoError(err)
	s.Require().Len(frames, 3)
	s.Equal([]int{0, 5, 10}, []int{frames[0].Index, frames[1].Index, frames[2].Index})

	all, err := render.Frames(s.prof, 0)
	s.Require().NoError(err)
	s.Len(all, 13)

	for _, f := range all {
		s.InEpsilon(crankRocker.L3, f.Segments[linkage.Coupler].Length(), 1e-6)
		s.Equal(f.Segments[linkage.Driver].To, f.Segments[linkage.Coupler].From)
	}
}

func (s *RenderSuite) TestFrameAt_OutOfRange() {
	_, err := render.FrameAt(s.prof, 13)
	s.ErrorIs(err, render.ErrBadFrameIndex)
	_, err = render.FrameAt(s.prof, -1)
	s.ErrorIs(err, render.ErrBadFrameIndex)
}

func (s *RenderSuite) TestFramePlot_FixedWindow() {
	f, err := render.FrameAt(s.prof, 3)
	s.Require().NoError(err)
	vp := render.NewViewport(crankRocker)

	p, err := render.FramePlot(f, vp)
	s.Require().NoError(err)
	s.Equal(vp.XMin, p.X.Min)
	s.Equal(vp.XMax, p.X.Max)
	s.Equal(vp.YMin, p.Y.Min)
	s.Equal(vp.YMax, p.Y.Max)
	s.Contains(p.Title.Text, "θ2=90°")
}

func (s *RenderSuite) TestWriteFramePNG() {
	var buf bytes.Buffer
	s.Require().NoError(render.WriteFramePNG(&buf, s.prof, 0))

	img, err := png.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(400, img.Bounds().Dx())
	s.Equal(400, img.Bounds().Dy())

	buf.Reset()
	s.Require().NoError(render.WriteFramePNG(&buf, s.prof, 0,
		render.WithSize(2*vg.Inch, 1*vg.Inch), render.WithDPI(50), render.WithJoints(false)))
	img, err = png.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(100, img.Bounds().Dx())
	s.Equal(50, img.Bounds().Dy())
}

func (s *RenderSuite) TestWriteGIF() {
	var buf bytes.Buffer
	err := render.WriteGIF(&buf, s.prof,
		render.WithFrameStep(6), render.WithDPI(20), render.WithDelay(5))
	s.Require().NoError(err)

	anim, err := gif.DecodeAll(&buf)
	s.Require().NoError(err)
	s.Len(anim.Image, 3)
	s.Equal([]int{5, 5, 5}, anim.Delay)
	s.Equal(80, anim.Image[0].Bounds().Dx())
}

func (s *RenderSuite) TestAngleChart() {
	p, err := render.AngleChart(s.prof)
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(render.WritePNG(&buf, p, render.WithDPI(30)))
	_, err = png.Decode(&buf)
	s.NoError(err)
}

func (s *RenderSuite) TestUnwrapDegrees_Profile() {
	for _, raw := range [][]float64{s.prof.Theta3s(), s.prof.Theta4s()} {
		u := render.UnwrapDegrees(raw)
		s.Require().Len(u, len(raw))
		for i := range u {
			s.InDelta(0, kinematics.AngleDiff(u[i], raw[i]), 1e-9, "same angle at %d", i)
			if i > 0 {
				s.LessOrEqual(math.Abs(u[i]-u[i-1]), 180.0, "step %d", i)
			}
		}
	}
}

func (s *RenderSuite) TestWriteCSV() {
	var buf bytes.Buffer
	s.Require().NoError(render.WriteCSV(&buf, s.prof))

	rows, err := csv.NewReader(&buf).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 14)
	s.Equal(render.CSVHeader, rows[0])
	s.Equal("0", rows[1][0])
	s.Equal("30", rows[2][0])
	s.Equal("360", rows[13][0])
	s.Equal(kinematics.CouplerLeftward.String(), rows[1][3])
	s.Equal(rows[1][1:], rows[13][1:], "θ2=0 and θ2=360 agree to six decimals")
}

//----------------------------------------------------------------------------//
// Standalone
//----------------------------------------------------------------------------//

// TestNewViewport follows the margin rule and squares the window.
func TestNewViewport(t *testing.T) {
	vp := render.NewViewport(crankRocker)
	assert.InDelta(t, -1.25, vp.XMin, 1e-12)
	assert.InDelta(t, 7.125, vp.XMax, 1e-12)
	assert.Equal(t, vp.XMin, vp.YMin)
	assert.Equal(t, vp.XMax, vp.YMax)
	assert.Equal(t, vp.Width(), vp.Height())

	// A long driver dominates the lower bound.
	vp = render.NewViewport(linkage.LinkSet{L1: 1, L2: 4, L3: 4, L4: 1})
	assert.InDelta(t, -5, vp.XMin, 1e-12)
	assert.InDelta(t, 2.5, vp.XMax, 1e-12)
}

// TestUnwrapDegrees covers both seams: θ4 crossing 360→0 and θ3 crossing
// −90→270.
func TestUnwrapDegrees(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"Empty", nil, []float64{}},
		{"NoSeam", []float64{10, 20, 30}, []float64{10, 20, 30}},
		{"Up", []float64{350, 355, 2, 10}, []float64{350, 355, 362, 370}},
		{"Down", []float64{5, 1, 358, 350}, []float64{5, 1, -2, -10}},
		{"CouplerSeam", []float64{-80, -89, 268}, []float64{-80, -89, -92}},
		{"FullTurn", []float64{0, 120, 240, 0}, []float64{0, 120, 240, 360}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render.UnwrapDegrees(tc.in)
			require.Len(t, got, len(tc.want))
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

// TestEmptyProfile rejects a zero MotionProfile everywhere.
func TestEmptyProfile(t *testing.T) {
	var empty kinematics.MotionProfile
	var buf bytes.Buffer

	_, err := render.Frames(empty, 1)
	assert.ErrorIs(t, err, render.ErrEmptyProfile)
	_, err = render.AngleChart(empty)
	assert.ErrorIs(t, err, render.ErrEmptyProfile)
	assert.ErrorIs(t, render.WriteCSV(&buf, empty), render.ErrEmptyProfile)
	assert.ErrorIs(t, render.WriteGIF(&buf, empty), render.ErrEmptyProfile)
	assert.Zero(t, buf.Len())
}

// TestDefaultPalette pins the link colours.
func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}, render.DefaultPalette.Color(linkage.Ground))
	assert.Equal(t, color.RGBA{G: 0xff, B: 0xff, A: 0xff}, render.DefaultPalette.Color(linkage.Driver))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}, render.DefaultPalette.Color(linkage.Coupler))
	assert.Equal(t, color.RGBA{G: 0x80, A: 0xff}, render.DefaultPalette.Color(linkage.Output))
}

// TestOptionPanics guards programmer errors.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, vg.Inch) })
	assert.Panics(t, func() { render.WithDPI(0) })
	assert.Panics(t, func() { render.WithDelay(-1) })
	assert.Panics(t, func() { render.WithFrameStep(0) })
	require.NotPanics(t, func() { render.WithFrameStep(1) })
}
