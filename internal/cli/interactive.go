package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func interactiveCmd(a *app) *cobra.Command {
	var (
		sf    solverFlags
		pace  time.Duration
		out   string
		every int
	)

	c := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Guided session: enter link lengths until a linkage solves, then show or animate it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.solveOptions(sf)
			if err != nil {
				return err
			}
			s := NewSession(a.in, a.out, a.theme, a.log, pace, opts...)
			prof, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}

			if out == "" {
				return a.printProfile(a.out, prof, "table", every)
			}
			if _, err := a.renderProfile(prof, "gif", out, 0); err != nil {
				return err
			}
			a.log.Info("render.ok", "kind", "gif", "path", out)

			return nil
		},
	}

	sf.register(c)
	c.Flags().DurationVar(&pace, "pace", 0, "Pause after each message, e.g. 2.75s")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the animation to this GIF instead of printing a table")
	c.Flags().IntVar(&every, "every", 30, "table: print every n-th sample")

	return c
}
