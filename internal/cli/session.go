package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
)

// ErrInputClosed ends a session whose input ran out before a linkage
// was solved.
var ErrInputClosed = errors.New("input closed before a linkage was solved")

// Session is the guided dialogue: collect four lengths, check them, solve,
// and start over on any rejection.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	theme Theme
	log   *slog.Logger
	pace  time.Duration
	opts  []kinematics.Option
}

// NewSession reads answers line by line from in. pace is the pause after
// each explanatory message; zero disables pausing.
func NewSession(in io.Reader, out io.Writer, theme Theme, log *slog.Logger, pace time.Duration, opts ...kinematics.Option) *Session {
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		theme: theme,
		log:   log,
		pace:  pace,
		opts:  opts,
	}
}

var prompts = [4]struct{ hint, label string }{
	{"Start with the ground link (l1). Stuck? Try 2.7, 1, 2.4, 3.", "link 1 (ground)"},
	{"Now the driver (l2); it should be shorter than the ground link.", "link 2 (driver)"},
	{"Last, the coupler (l3) and the output (l4). Mind the Grashof condition.", "link 3 (coupler)"},
	{"", "link 4 (output)"},
}

// Run loops until a link set solves, the input closes, or ctx is done.
func (s *Session) Run(ctx context.Context) (kinematics.MotionProfile, error) {
	s.say(ctx, s.theme.Title.Render("four-bar linkage simulator"))
	s.say(ctx, "Enter a length for each of the four links and the motion of the mechanism is computed.")
	s.say(ctx, "Full driver rotation needs shortest + longest <= sum of the other two links.")

	for attempt := 1; ; attempt++ {
		ls, err := s.collect(ctx)
		if err != nil {
			return kinematics.MotionProfile{}, err
		}

		s.say(ctx, "checking the Grashof condition ...")
		if !ls.IsValid() {
			s.log.Info("session.rejected", "attempt", attempt, "links", ls.String())
			s.say(ctx, s.theme.Fault.Render("invalid linkage: shortest + longest exceeds the sum of the other two links."))
			s.say(ctx, "Please enter a new set of lengths.")

			continue
		}
		s.say(ctx, s.theme.OK.Render(fmt.Sprintf("valid %s linkage.", linkage.Classify(ls))))
		s.say(ctx, "solving link positions over one revolution ...")

		prof, err := kinematics.Solve(ls, s.opts...)
		if err != nil {
			if !errors.Is(err, kinematics.ErrGeometryFault) {
				return kinematics.MotionProfile{}, err
			}
			s.log.Info("session.fault", "attempt", attempt, "links", ls.String(), "err", err)
			s.say(ctx, s.theme.Fault.Render("these links cannot be assembled through a full revolution."))
			s.say(ctx, "Please enter a new set of lengths.")

			continue
		}
		s.log.Info("session.solved", "attempt", attempt, "links", ls.String(), "samples", prof.Len())
		s.say(ctx, s.theme.OK.Render(fmt.Sprintf("solved %d positions.", prof.Len())))

		return prof, nil
	}
}

// collect reads four lengths, re-asking for any that fails to parse.
func (s *Session) collect(ctx context.Context) (linkage.LinkSet, error) {
	var l [4]float64
	for i, p := range prompts {
		if p.hint != "" {
			fmt.Fprintln(s.out, s.theme.Help.Render(p.hint))
		}
		for {
			if err := ctx.Err(); err != nil {
				return linkage.LinkSet{}, err
			}
			fmt.Fprintf(s.out, "%s: ", p.label)
			if !s.in.Scan() {
				if err := s.in.Err(); err != nil {
					return linkage.LinkSet{}, fmt.Errorf("read %s: %w", p.label, err)
				}

				return linkage.LinkSet{}, ErrInputClosed
			}
			v, err := linkage.ParseLength(s.in.Text())
			if err == nil {
				l[i] = v

				break
			}
			fmt.Fprintln(s.out, s.theme.Fault.Render(fmt.Sprintf("%v; please enter a positive number.", err)))
		}
	}

	return linkage.New(l[0], l[1], l[2], l[3])
}

// say prints msg and then pauses for the session pace.
func (s *Session) say(ctx context.Context, msg string) {
	fmt.Fprintln(s.out, msg)
	if s.pace <= 0 {
		return
	}
	t := time.NewTimer(s.pace)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
