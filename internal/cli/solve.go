package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/render"
)

func solveCmd(a *app) *cobra.Command {
	var (
		sf     solverFlags
		format string
		every  int
	)

	c := &cobra.Command{
		Use:   "solve [l1 l2 l3 l4]",
		Short: "Solve coupler and output angles over one driver revolution",
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

			return a.printProfile(a.out, prof, format, every)
		},
	}

	sf.register(c)
	c.Flags().StringVar(&format, "format", "table", "Output format: table|csv|json")
	c.Flags().IntVar(&every, "every", 1, "table: print every n-th sample")

	return c
}

func (a *app) printProfile(w io.Writer, prof kinematics.MotionProfile, format string, every int) error {
	switch format {
	case "csv":
		return render.WriteCSV(w, prof)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(prof.Samples())
	case "table", "":
		if every < 1 {
			every = 1
		}
		b := prof.Bounds()
		fmt.Fprintln(w, a.theme.Title.Render(prof.LinkSet().String()))
		fmt.Fprintln(w, a.theme.Subtitle.Render(fmt.Sprintf("θ4 band: [%.3f°, %.3f°]", b.Theta4Max, b.Theta4Min)))
		fmt.Fprintln(w, a.theme.Header.Render(fmt.Sprintf("%8s %10s %10s  %s", "θ2", "θ3", "θ4", "branch")))
		for i := 0; i < prof.Len(); i += every {
			s := prof.At(i)
			fmt.Fprintf(w, "%8.1f %10.4f %10.4f  %s\n", s.Theta2, s.Theta3, s.Theta4, s.Branch)
		}

		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|csv|json)", format)
	}
}
