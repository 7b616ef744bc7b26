package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/fourbar/kinematics"
)

// FramePlot builds the plot of one frame inside vp.
func FramePlot(f Frame, vp Viewport, opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts)

	p := plot.New()
	p.Title.Text = f.Title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, seg := range f.Segments {
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg.From.X, Y: seg.From.Y},
			{X: seg.To.X, Y: seg.To.Y},
		})
		if err != nil {
			return nil, fmt.Errorf("render: %s link: %w", seg.Role, err)
		}
		line.LineStyle.Width = o.LineWidth
		line.LineStyle.Color = o.Palette.Color(seg.Role)
		p.Add(line)
	}

	if o.Joints {
		joints, err := plotter.NewScatter(jointXYs(f.Segments))
		if err != nil {
			return nil, fmt.Errorf("render: joints: %w", err)
		}
		joints.GlyphStyle.Shape = draw.CircleGlyph{}
		joints.GlyphStyle.Radius = o.LineWidth
		joints.GlyphStyle.Color = color.Black
		p.Add(joints)
	}

	// Fixed window: Add widens the axes to the data, so set them last.
	p.X.Min, p.X.Max = vp.XMin, vp.XMax
	p.Y.Min, p.Y.Max = vp.YMin, vp.YMax

	return p, nil
}

// jointXYs lists the four revolute joints: O2, O4, A, B.
func jointXYs(segs [4]kinematics.Segment) plotter.XYs {
	return plotter.XYs{
		{X: segs[0].From.X, Y: segs[0].From.Y},
		{X: segs[0].To.X, Y: segs[0].To.Y},
		{X: segs[2].From.X, Y: segs[2].From.Y},
		{X: segs[2].To.X, Y: segs[2].To.Y},
	}
}

// AngleChart plots θ3 and θ4 against θ2 over the whole profile. Both series
// are unwrapped first.
func AngleChart(prof kinematics.MotionProfile) (*plot.Plot, error) {
	if prof.Len() == 0 {
		return nil, ErrEmptyProfile
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Link angles (%s)", prof.LinkSet())
	p.X.Label.Text = "θ2 (deg)"
	p.Y.Label.Text = "angle (deg)"
	p.Add(plotter.NewGrid())

	xs := prof.Theta2s()
	series := []struct {
		name string
		ys   []float64
		c    color.Color
	}{
		{"θ3 coupler", UnwrapDegrees(prof.Theta3s()), DefaultPalette[2]},
		{"θ4 output", UnwrapDegrees(prof.Theta4s()), DefaultPalette[3]},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i].X = xs[i]
			pts[i].Y = s.ys[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", s.name, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = s.c
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	return p, nil
}

// UnwrapDegrees removes the 360° seams from an angle series: each value
// becomes its predecessor plus the shortest signed step to it, so a line
// through the result never strokes across the chart at a wrap.
func UnwrapDegrees(ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		if i == 0 {
			out[i] = y
			continue
		}
		out[i] = out[i-1] + kinematics.AngleDiff(y, ys[i-1])
	}

	return out
}

// Rasterize draws p onto a fresh canvas sized by opts.
func Rasterize(p *plot.Plot, opts ...Option) *vgimg.Canvas {
	o := gatherOptions(opts)
	c := vgimg.NewWith(
		vgimg.UseWH(o.Width, o.Height),
		vgimg.UseDPI(o.DPI),
	)
	p.Draw(draw.New(c))

	return c
}

// WritePNG encodes p as a PNG image.
func WritePNG(w io.Writer, p *plot.Plot, opts ...Option) error {
	pngc := vgimg.PngCanvas{Canvas: Rasterize(p, opts...)}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}

	return nil
}

// FrameImage rasterizes frame f inside vp.
func FrameImage(f Frame, vp Viewport, opts ...Option) (image.Image, error) {
	p, err := FramePlot(f, vp, opts...)
	if err != nil {
		return nil, err
	}

	return Rasterize(p, opts...).Image(), nil
}

// WriteFramePNG writes frame i of prof as a PNG.
func WriteFramePNG(w io.Writer, prof kinematics.MotionProfile, i int, opts ...Option) error {
	f, err := FrameAt(prof, i)
	if err != nil {
		return err
	}
	p, err := FramePlot(f, NewViewport(prof.LinkSet()), opts...)
	if err != nil {
		return err
	}

	return WritePNG(w, p, opts...)
}
