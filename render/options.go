package render

import "gonum.org/v1/plot/vg"

const (
	// DefaultSize is the edge of a square frame.
	DefaultSize = 4 * vg.Inch
	// DefaultDPI gives 400×400 pixel frames at DefaultSize.
	DefaultDPI = 100
	// DefaultDelay is the GIF frame delay in hundredths of a second.
	DefaultDelay = 2
	// DefaultFrameStep draws every sample.
	DefaultFrameStep = 1
	// DefaultLineWidth is the stroke of a link.
	DefaultLineWidth = vg.Length(4)

	panicSize  = "render: WithSize requires a positive length"
	panicDPI   = "render: WithDPI requires a positive resolution"
	panicDelay = "render: WithDelay requires a non-negative delay"
	panicStep  = "render: WithFrameStep requires step >= 1"
)

// Options controls picture size, animation timing and colours.
type Options struct {
	Width, Height vg.Length
	DPI           int
	Delay         int
	FrameStep     int
	LineWidth     vg.Length
	Palette       Palette
	Joints        bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a square 400 px frame, every sample, joints drawn.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultSize,
		Height:    DefaultSize,
		DPI:       DefaultDPI,
		Delay:     DefaultDelay,
		FrameStep: DefaultFrameStep,
		LineWidth: DefaultLineWidth,
		Palette:   DefaultPalette,
		Joints:    true,
	}
}

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(panicSize)
	}

	return func(o *Options) { o.Width, o.Height = w, h }
}

// WithDPI sets the raster resolution. Panics if dpi <= 0.
func WithDPI(dpi int) Option {
	if dpi <= 0 {
		panic(panicDPI)
	}

	return func(o *Options) { o.DPI = dpi }
}

// WithDelay sets the GIF delay per frame in 1/100 s. Panics if negative.
func WithDelay(centis int) Option {
	if centis < 0 {
		panic(panicDelay)
	}

	return func(o *Options) { o.Delay = centis }
}

// WithFrameStep keeps every step-th sample in animations. Panics if step < 1.
func WithFrameStep(step int) Option {
	if step < 1 {
		panic(panicStep)
	}

	return func(o *Options) { o.FrameStep = step }
}

// WithPalette overrides the link colours.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// WithJoints toggles the joint markers.
func WithJoints(on bool) Option {
	return func(o *Options) { o.Joints = on }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
