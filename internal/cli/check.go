package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/linkage"
)

// errNotGrashof makes `fourbar check` exit non-zero for a rejected set.
var errNotGrashof = errors.New("link lengths violate the Grashof condition")

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [l1 l2 l3 l4]",
		Short: "Check whether four link lengths allow full driver rotation",
		Args:  linkArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			ls, err := a.linkSet(args)
			if err != nil {
				return err
			}
			valid := ls.IsValid()
			a.log.Debug("check", "links", ls.String(), "valid", valid)
			fmt.Fprintln(a.out, a.checkReport(ls, valid))
			if !valid {
				return errNotGrashof
			}

			return nil
		},
	}
}

func (a *app) checkReport(ls linkage.LinkSet, valid bool) string {
	e := linkage.Split(ls.L1, ls.L2, ls.L3, ls.L4)
	verdict := a.theme.OK.Render("valid")
	if !valid {
		verdict = a.theme.Fault.Render("invalid")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", a.theme.Title.Render("Grashof check"), verdict)
	fmt.Fprintf(&b, "links:     %s\n", ls)
	fmt.Fprintf(&b, "s + l:     %g + %g = %g (shortest %s, longest %s)\n",
		e.Shortest, e.Longest, e.SumExtremes(), e.ShortestRole, e.LongestRole)
	fmt.Fprintf(&b, "p + q:     %g\n", e.SumOthers())
	fmt.Fprintf(&b, "class:     %s", linkage.Classify(ls))

	return a.theme.Card.Render(b.String())
}
