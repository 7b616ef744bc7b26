package web

import (
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
)

// handleAnimateWS streams one revolution of the queried link set, one
// FrameMessage per sample, then a final {"done": true}.
//
//	GET /ws/animate?l1=2.7&l2=1&l3=2.4&l4=3
func (s *Server) handleAnimateWS(c *websocket.Conn) {
	defer c.Close()

	ls, err := linkage.Parse(c.Query("l1"), c.Query("l2"), c.Query("l3"), c.Query("l4"))
	if err != nil {
		_ = c.WriteJSON(ErrorResponse{Error: err.Error(), Kind: "input"})

		return
	}
	prof, err := kinematics.Solve(ls, s.cfg.Solve...)
	if err != nil {
		_, body := classify(err)
		_ = c.WriteJSON(body)

		return
	}
	s.log.Debug("ws.animate", "links", ls.String(), "samples", prof.Len())

	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	for i := 0; i < prof.Len(); i++ {
		smp := prof.At(i)
		if err := c.WriteJSON(frameOf(i, smp, kinematics.Segments(ls, smp))); err != nil {
			s.log.Debug("ws.animate.closed", "at", i, "err", err)

			return
		}
		<-ticker.C
	}
	_ = c.WriteJSON(map[string]bool{"done": true})
}
