package web

import (
	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/linkage"
)

// LinksRequest is the body of /api/check.
type LinksRequest struct {
	L1 float64 `json:"l1"`
	L2 float64 `json:"l2"`
	L3 float64 `json:"l3"`
	L4 float64 `json:"l4"`
}

// LinkSet validates the lengths.
func (r LinksRequest) LinkSet() (linkage.LinkSet, error) {
	return linkage.New(r.L1, r.L2, r.L3, r.L4)
}

// SolveRequest is the body of /api/solve. Empty fields keep the server
// defaults.
type SolveRequest struct {
	LinksRequest
	Method     string `json:"method,omitempty"`
	Seed       string `json:"seed,omitempty"`
	Resolution int    `json:"resolution,omitempty"`
}

// CheckResponse reports validity and class.
type CheckResponse struct {
	Valid    bool    `json:"valid"`
	Class    string  `json:"class"`
	Shortest float64 `json:"shortest"`
	Longest  float64 `json:"longest"`
	Others   float64 `json:"others"`
}

// SampleDTO is one solved position, degrees.
type SampleDTO struct {
	Theta2 float64 `json:"theta2"`
	Theta3 float64 `json:"theta3"`
	Theta4 float64 `json:"theta4"`
	Branch string  `json:"branch"`
}

// BoundsDTO is the feasible output band, degrees.
type BoundsDTO struct {
	Theta4Min float64 `json:"theta4_min"`
	Theta4Max float64 `json:"theta4_max"`
}

// SolveResponse carries the whole profile.
type SolveResponse struct {
	Links   LinksRequest `json:"links"`
	Class   string       `json:"class"`
	Bounds  BoundsDTO    `json:"bounds"`
	Samples []SampleDTO  `json:"samples"`
}

// PointDTO is a joint position.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SegmentDTO is one link in a frame.
type SegmentDTO struct {
	Role string   `json:"role"`
	From PointDTO `json:"from"`
	To   PointDTO `json:"to"`
}

// FrameMessage is one websocket animation frame.
type FrameMessage struct {
	Index    int          `json:"index"`
	Sample   SampleDTO    `json:"sample"`
	Segments []SegmentDTO `json:"segments"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Kind      string   `json:"kind"`
	Stage     string   `json:"stage,omitempty"`
	Theta2    *float64 `json:"theta2,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

func linksOf(ls linkage.LinkSet) LinksRequest {
	return LinksRequest{L1: ls.L1, L2: ls.L2, L3: ls.L3, L4: ls.L4}
}

func sampleOf(s kinematics.Sample) SampleDTO {
	return SampleDTO{Theta2: s.Theta2, Theta3: s.Theta3, Theta4: s.Theta4, Branch: s.Branch.String()}
}

func frameOf(i int, s kinematics.Sample, segs [4]kinematics.Segment) FrameMessage {
	out := FrameMessage{Index: i, Sample: sampleOf(s), Segments: make([]SegmentDTO, len(segs))}
	for j, seg := range segs {
		out.Segments[j] = SegmentDTO{
			Role: seg.Role.String(),
			From: PointDTO{X: seg.From.X, Y: seg.From.Y},
			To:   PointDTO{X: seg.To.X, Y: seg.To.Y},
		}
	}

	return out
}
