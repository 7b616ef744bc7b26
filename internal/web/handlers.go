package web

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/render"
)

// badRequest marks errors caused by a malformed request.
type badRequest struct{ err error }

func (e *badRequest) Error() string { return e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }

func invalid(err error) error { return &badRequest{err: err} }

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleCheck runs the Grashof check and classification.
func (s *Server) handleCheck(c *fiber.Ctx) error {
	var req LinksRequest
	if err := c.BodyParser(&req); err != nil {
		return invalid(err)
	}
	ls, err := req.LinkSet()
	if err != nil {
		return invalid(err)
	}

	e := linkage.Split(ls.L1, ls.L2, ls.L3, ls.L4)

	return c.JSON(CheckResponse{
		Valid:    ls.IsValid(),
		Class:    linkage.Classify(ls).String(),
		Shortest: e.Shortest,
		Longest:  e.Longest,
		Others:   e.SumOthers(),
	})
}

// handleSolve returns the full motion profile.
func (s *Server) handleSolve(c *fiber.Ctx) error {
	var req SolveRequest
	if err := c.BodyParser(&req); err != nil {
		return invalid(err)
	}
	ls, err := req.LinkSet()
	if err != nil {
		return invalid(err)
	}
	opts, err := s.solveOptions(req)
	if err != nil {
		return invalid(err)
	}

	prof, err := s.solve(c, ls, opts...)
	if err != nil {
		return err
	}

	b := prof.Bounds()
	resp := SolveResponse{
		Links:   linksOf(ls),
		Class:   linkage.Classify(ls).String(),
		Bounds:  BoundsDTO{Theta4Min: b.Theta4Min, Theta4Max: b.Theta4Max},
		Samples: make([]SampleDTO, 0, prof.Len()),
	}
	for _, smp := range prof.Samples() {
		resp.Samples = append(resp.Samples, sampleOf(smp))
	}

	return c.JSON(resp)
}

// handleFrames renders the profile of the queried link set.
//
//	GET /api/frames?l1=2.7&l2=1&l3=2.4&l4=3&format=png&index=90
//
// format is png (one frame), gif (animation), chart (angle chart) or csv.
func (s *Server) handleFrames(c *fiber.Ctx) error {
	ls, err := linkage.Parse(c.Query("l1"), c.Query("l2"), c.Query("l3"), c.Query("l4"))
	if err != nil {
		return invalid(err)
	}
	prof, err := s.solve(c, ls, s.cfg.Solve...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	format := c.Query("format", "png")
	switch format {
	case "png":
		idx := c.QueryInt("index", 0)
		if err := render.WriteFramePNG(&buf, prof, idx, s.cfg.Render...); err != nil {
			if errors.Is(err, render.ErrBadFrameIndex) {
				return invalid(err)
			}

			return err
		}
		c.Type("png")
	case "gif":
		if err := render.WriteGIF(&buf, prof, s.cfg.Render...); err != nil {
			return err
		}
		c.Type("gif")
	case "chart":
		p, err := render.AngleChart(prof)
		if err != nil {
			return err
		}
		if err := render.WritePNG(&buf, p, s.cfg.Render...); err != nil {
			return err
		}
		c.Type("png")
	case "csv":
		if err := render.WriteCSV(&buf, prof); err != nil {
			return err
		}
		c.Type("csv")
	default:
		return invalid(fmt.Errorf("unknown format %q (expected png|gif|chart|csv)", format))
	}

	return c.Send(buf.Bytes())
}

func (s *Server) solveOptions(req SolveRequest) ([]kinematics.Option, error) {
	opts := append([]kinematics.Option(nil), s.cfg.Solve...)
	if req.Method != "" {
		m, err := kinematics.ParseMethod(req.Method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kinematics.WithMethod(m))
	}
	if req.Seed != "" {
		p, err := kinematics.ParseSeedPolicy(req.Seed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kinematics.WithSeedPolicy(p))
	}
	if req.Resolution < 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", req.Resolution)
	}
	if req.Resolution > 0 {
		opts = append(opts, kinematics.WithResolution(req.Resolution))
	}

	return opts, nil
}

func (s *Server) solve(c *fiber.Ctx, ls linkage.LinkSet, opts ...kinematics.Option) (kinematics.MotionProfile, error) {
	prof, err := kinematics.Solve(ls, opts...)
	if err != nil {
		s.log.Info("solve.fault", "request_id", requestIDOf(c), "links", ls.String(), "err", err)

		return kinematics.MotionProfile{}, err
	}
	s.log.Info("solve.ok", "request_id", requestIDOf(c), "links", ls.String(), "samples", prof.Len())

	return prof, nil
}

// handleError maps domain errors onto status codes and a JSON body.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	body.RequestID = requestIDOf(c)
	if status >= fiber.StatusInternalServerError {
		s.log.Error("http.error", "request_id", body.RequestID, "path", c.Path(), "err", err)
	}

	return c.Status(status).JSON(body)
}

func classify(err error) (int, ErrorResponse) {
	var (
		fe *fiber.Error
		br *badRequest
		gf *kinematics.GeometryFault
	)
	switch {
	case errors.As(err, &gf):
		body := ErrorResponse{Error: err.Error(), Kind: "geometry", Stage: string(gf.Stage)}
		if gf.Stage != kinematics.StageBounds {
			theta2 := gf.Theta2
			body.Theta2 = &theta2
		}

		return fiber.StatusUnprocessableEntity, body
	case errors.Is(err, kinematics.ErrGrashofViolation):
		return fiber.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "grashof"}
	case errors.As(err, &br):
		return fiber.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "input"}
	case errors.As(err, &fe):
		return fe.Code, ErrorResponse{Error: fe.Message, Kind: "http"}
	default:
		return fiber.StatusInternalServerError, ErrorResponse{Error: err.Error(), Kind: "internal"}
	}
}
