package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
)

// Palette colours each link by role.
type Palette [4]color.Color

// DefaultPalette: ground brown, driver cyan, coupler pink, output green.
var DefaultPalette = Palette{
	linkage.Ground:  color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff},
	linkage.Driver:  color.RGBA{G: 0xff, B: 0xff, A: 0xff},
	linkage.Coupler: color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
	linkage.Output:  color.RGBA{G: 0x80, A: 0xff},
}

// Color returns the colour of role r.
func (p Palette) Color(r linkage.Role) color.Color { return p[r] }

// Frame is one sample laid out for drawing.
type Frame struct {
	Index    int
	Sample   kinematics.Sample
	Segments [4]kinematics.Segment
}

// Title is the caption drawn above a frame.
func (f Frame) Title() string {
	return fmt.Sprintf("θ2=%.0f°  θ3=%.1f°  θ4=%.1f°", f.Sample.Theta2, f.Sample.Theta3, f.Sample.Theta4)
}

// FrameAt lays out sample i of prof.
func FrameAt(prof kinematics.MotionProfile, i int) (Frame, error) {
	if i < 0 || i >= prof.Len() {
		return Frame{}, fmt.Errorf("%w: %d not in [0, %d)", ErrBadFrameIndex, i, prof.Len())
	}
	s := prof.At(i)

	return Frame{Index: i, Sample: s, Segments: kinematics.Segments(prof.LinkSet(), s)}, nil
}

// Frames lays out every step-th sample of prof, always starting at 0.
// step < 1 is treated as 1.
func Frames(prof kinematics.MotionProfile, step int) ([]Frame, error) {
	if prof.Len() == 0 {
		return nil, ErrEmptyProfile
	}
	if step < 1 {
		step = 1
	}
	out := make([]Frame, 0, (prof.Len()+step-1)/step)
	for i := 0; i < prof.Len(); i += step {
		f, err := FrameAt(prof, i)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
