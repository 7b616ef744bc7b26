// Package fourbar is a position solver for planar four-bar linkages: decide
// whether four link lengths let the driving link turn all the way round,
// and if so compute where every link is for each degree of that turn.
//
// 🚀 What is fourbar?
//
//	A small, dependency-light toolkit built from:
//		• linkage/    link sets, input validation, the Grashof check and class
//		• rootfind/   step-bounded Newton and secant iterations with typed errors
//		• kinematics/ output-angle bounds, Freudenstein's equation, the coupler
//		              branch decision and the 361-sample MotionProfile
//		• render/     frames, viewport, PNG/GIF via gonum/plot, CSV export
//
//	plus a command line (cmd/fourbar) and an HTTP/websocket front end.
//
// ✨ Guarantees
//
//   - All-or-nothing: a solve returns a complete profile or a typed fault.
//   - Loop closure: every sample's coupler spans exactly l3 (to tolerance).
//   - Pure functions: no globals, no logging, no panics on user input.
//
// Quick ASCII example (θ2 = 90°):
//
//	      A───────B
//	      │        ╲
//	      │         ╲
//	      O2─────────O4
//
//	O2 and O4 are the ground pivots, A the driver tip, B the output tip.
//
//	go get github.com/katalvlaran/fourbar
package fourbar
