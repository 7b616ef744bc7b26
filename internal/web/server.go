// Package web serves the solver over HTTP: JSON endpoints for the Grashof
// check and the motion profile, rendered frames, and a websocket stream
// that animates one revolution.
package web

import (
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/katalvlaran/fourbar/internal/logger"
	"github.com/katalvlaran/fourbar/kinematics"
	"github.com/katalvlaran/fourbar/render"
)

// DefaultFrameInterval paces the websocket animation.
const DefaultFrameInterval = 20 * time.Millisecond

// Config wires the server to its collaborators.
type Config struct {
	AppName       string
	Logger        *slog.Logger
	Solve         []kinematics.Option // defaults for every solve
	Render        []render.Option     // defaults for every picture
	FrameInterval time.Duration
}

// Server is the HTTP front end.
type Server struct {
	app *fiber.App
	cfg Config
	log *slog.Logger
}

// New builds the fiber app and registers every route.
func New(cfg Config) *Server {
	if cfg.AppName == "" {
		cfg.AppName = "fourbar"
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	s := &Server{cfg: cfg, log: cfg.Logger}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	app.Use(cors.New())
	app.Use(requestID())
	app.Use(s.accessLog())

	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Post("/check", s.handleCheck)
	api.Post("/solve", s.handleSolve)
	api.Get("/frames", s.handleFrames)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}

		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/animate", websocket.New(s.handleAnimateWS))

	s.app = app

	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("web.listen", "addr", addr)

	return s.app.Listen(addr)
}

// Serve serves on an already bound listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("web.listen", "addr", ln.Addr().String())

	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
