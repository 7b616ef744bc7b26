// Package cli is the fourbar command line: one-shot check/solve/render
// commands, the guided interactive session, and the HTTP server.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fourbar/internal/config"
	"github.com/katalvlaran/fourbar/internal/logger"
)

// Execute runs the root command on the process streams and exits with
// status 1 on error; cobra has already printed the message.
func Execute() {
	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	theme Theme
	in    io.Reader
	out   io.Writer
}

// NewRootCmd builds the command tree over the given streams.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		cfgPath  string
		logLevel string
		logJSON  bool
		debug    bool
	)
	a := &app{cfg: config.Default(), log: logger.Discard(), theme: DefaultTheme(), in: in, out: out}

	cmd := &cobra.Command{
		Use:          "fourbar",
		Short:        "fourbar - planar four-bar linkage position solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				a.cfg.Log.Level = logLevel
			}
			if flags.Changed("log-json") {
				a.cfg.Log.JSON = logJSON
			}
			if debug {
				a.cfg.Log.Level = "debug"
			}

			l, err := logger.Setup(logger.Config{Level: a.cfg.Log.Level, JSON: a.cfg.Log.JSON, Writer: errOut})
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML run description (links, solver, render, log, server)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log JSON lines instead of text")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "shorthand for --log-level=debug")

	cmd.AddCommand(
		checkCmd(a),
		solveCmd(a),
		renderCmd(a),
		interactiveCmd(a),
		serveCmd(a),
	)

	return cmd
}
