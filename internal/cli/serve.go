package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/internal/web"
)

func serveCmd(a *app) *cobra.Command {
	var (
		sf       solverFlags
		addr     string
		interval time.Duration
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.solveOptions(sf)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			srv := web.New(web.Config{
				Logger:        a.log,
				Solve:         opts,
				Render:        a.cfg.RenderOptions(),
				FrameInterval: interval,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.Listen(addr) }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				a.log.Info("web.shutdown")

				return srv.Shutdown()
			}
		},
	}

	sf.register(c)
	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	c.Flags().DurationVar(&interval, "interval", web.DefaultFrameInterval, "Websocket frame interval")

	return c
}
