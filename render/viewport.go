package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fourbar/linkage"
)

// margin scales the link lengths that bound the picture.
const margin = 1.25

// Viewport is the axis window shared by every frame of one linkage.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewViewport derives the window from the link lengths alone:
// x in [−1.25·l2, 1.25·(l1+l4)], y in [−1.25·l2, 1.25·l4], then squared
// so that both axes share the wider extent.
func NewViewport(ls linkage.LinkSet) Viewport {
	lo := []float64{-margin * ls.L2, -margin * ls.L2}
	hi := []float64{margin * (ls.L1 + ls.L4), margin * ls.L4}

	min, max := floats.Min(lo), floats.Max(hi)

	return Viewport{XMin: min, XMax: max, YMin: min, YMax: max}
}

// Width is the horizontal extent of the window.
func (v Viewport) Width() float64 { return v.XMax - v.XMin }

// Height is the vertical extent of the window.
func (v Viewport) Height() float64 { return v.YMax - v.YMin }
