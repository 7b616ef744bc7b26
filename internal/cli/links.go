package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
)

// linkArgs accepts either no positional argument (the config supplies the
// link set) or exactly four lengths.
func linkArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return fmt.Errorf("expected 4 link lengths (l1 l2 l3 l4), got %d", len(args))
	}

	return nil
}

func (a *app) linkSet(args []string) (linkage.LinkSet, error) {
	if len(args) == 4 {
		return linkage.Parse(args[0], args[1], args[2], args[3])
	}
	if !a.cfg.HasLinks() {
		return linkage.LinkSet{}, fmt.Errorf("no link lengths: pass l1 l2 l3 l4 or a --config with a links section")
	}

	return a.cfg.LinkSet()
}

// solverFlags overrides the config's solver section.
type solverFlags struct {
	method     string
	seed       string
	resolution int
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.method, "method", "", "root finder: newton|secant (default from config)")
	cmd.Flags().StringVar(&f.seed, "seed", "", "seed policy: previous|bound (default from config)")
	cmd.Flags().IntVar(&f.resolution, "resolution", 0, "driver steps per revolution (default from config)")
}

func (a *app) solveOptions(f solverFlags) ([]kinematics.Option, error) {
	c := a.cfg
	if f.method != "" {
		c.Solver.Method = f.method
	}
	if f.seed != "" {
		c.Solver.Seed = f.seed
	}
	if f.resolution != 0 {
		c.Solver.Resolution = f.resolution
	}

	return c.SolveOptions()
}

// solve runs the solver and logs the outcome.
func (a *app) solve(ls linkage.LinkSet, opts ...kinematics.Option) (kinematics.MotionProfile, error) {
	prof, err := kinematics.Solve(ls, opts...)
	if err != nil {
		a.log.Warn("solve.fault", "links", ls.String(), "err", err)

		return kinematics.MotionProfile{}, err
	}
	a.log.Info("solve.ok", "links", ls.String(), "samples", prof.Len())

	return prof, nil
}
