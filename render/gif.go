package render

import (
	"fmt"
	"image"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"

	"github.com/katalvlaran/fourbar/kinematics"
)

// Animate rasterizes every FrameStep-th sample of prof into one GIF that
// loops forever.
func Animate(prof kinematics.MotionProfile, opts ...Option) (*gif.GIF, error) {
	o := gatherOptions(opts)
	frames, err := Frames(prof, o.FrameStep)
	if err != nil {
		return nil, err
	}
	vp := NewViewport(prof.LinkSet())

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		img, err := FrameImage(f, vp, opts...)
		if err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", f.Index, err)
		}
		anim.Image = append(anim.Image, toPaletted(img))
		anim.Delay = append(anim.Delay, o.Delay)
	}

	return anim, nil
}

// WriteGIF encodes the animation of prof.
func WriteGIF(w io.Writer, prof kinematics.MotionProfile, opts ...Option) error {
	anim, err := Animate(prof, opts...)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: write gif: %w", err)
	}

	return nil
}

// toPaletted maps img onto the web-safe palette; the link colours are flat
// so no dithering is needed.
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.WebSafe)
	imgdraw.Draw(pm, b, img, b.Min, imgdraw.Src)

	return pm
}
