package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/render"
)

func renderCmd(a *app) *cobra.Command {
	var (
		sf    solverFlags
		kind  string
		out   string
		frame int
	)

	c := &cobra.Command{
		Use:   "render [l1 l2 l3 l4]",
		Short: "Draw the linkage: animated GIF, single frame, per-frame PNGs or angle chart",
		Args:  linkArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			ls, err := a.linkSet(args)
			if err != nil {
				return err
			}
			opts, err := a.solveOptions(sf)
			if err != nil {
				return err
			}
			prof, err := a.solve(ls, opts...)
			if err != nil {
				return err
			}

			written, err := a.renderProfile(prof, kind, out, frame)
			if err != nil {
				return err
			}
			a.log.Info("render.ok", "kind", kind, "files", written)
			fmt.Fprintf(a.out, "wrote %d file(s) to %s\n", written, out)

			return nil
		},
	}

	sf.register(c)
	c.Flags().StringVar(&kind, "kind", "gif", "What to draw: gif|png|frames|chart")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (directory for --kind=frames)")
	c.Flags().IntVar(&frame, "frame", 0, "png: sample index to draw")
	_ = c.MarkFlagRequired("out")

	return c
}

// renderProfile writes the requested picture(s) and returns the file count.
func (a *app) renderProfile(prof kinematics.MotionProfile, kind, out string, frame int) (int, error) {
	ropts := a.cfg.RenderOptions()

	switch kind {
	case "gif":
		return 1, writeFile(out, func(w io.Writer) error { return render.WriteGIF(w, prof, ropts...) })
	case "png":
		return 1, writeFile(out, func(w io.Writer) error { return render.WriteFramePNG(w, prof, frame, ropts...) })
	case "chart":
		p, err := render.AngleChart(prof)
		if err != nil {
			return 0, err
		}

		return 1, writeFile(out, func(w io.Writer) error { return render.WritePNG(w, p, ropts...) })
	case "frames":
		frames, err := render.Frames(prof, a.cfg.Render.FrameStep)
		if err != nil {
			return 0, err
		}
		vp := render.NewViewport(prof.LinkSet())
		for _, f := range frames {
			p, err := render.FramePlot(f, vp, ropts...)
			if err != nil {
				return 0, err
			}
			name := filepath.Join(out, fmt.Sprintf("frame_%03d.png", f.Index))
			if err := writeFile(name, func(w io.Writer) error { return render.WritePNG(w, p, ropts...) }); err != nil {
				return 0, err
			}
		}

		return len(frames), nil
	default:
		return 0, fmt.Errorf("unsupported kind %q (expected gif|png|frames|chart)", kind)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	return f.Close()
}
