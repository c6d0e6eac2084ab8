// Package cli is the command-line front end of the admin dashboard. Each
// invocation drives the same screens a browser session would: it moves the
// in-app location, fills the open form and submits it.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/configuration"
)

type rootState struct {
	envFiles []string
	metrics  bool
	format   string
	out      io.Writer
	errOut   io.Writer
	opts     RuntimeOptions
	rt       *Runtime
}

// runtime is set before any subcommand runs.
func (s *rootState) runtime() *Runtime { return s.rt }

func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootState{out: os.Stdout, errOut: os.Stderr})
}

func newRootCommand(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Leafclutch admin dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if state.rt != nil {
				return nil
			}
			conf, err := loadConfiguration(state.envFiles)
			if err != nil {
				return err
			}
			opts := state.opts
			opts.Out = state.errOut
			opts.Metrics = opts.Metrics || state.metrics
			rt, err := NewRuntime(conf, opts)
			if err != nil {
				return err
			}
			state.rt = rt
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if state.rt != nil {
				state.rt.Close()
			}
		},
	}
	cmd.SetOut(state.out)
	cmd.SetErr(state.errOut)
	cmd.PersistentFlags().StringSliceVar(&state.envFiles, "env-file", nil, "dotenv files to load (default .env, .env.local)")
	cmd.PersistentFlags().BoolVar(&state.metrics, "metrics", false, "serve Prometheus metrics while the command runs")
	cmd.PersistentFlags().StringVarP(&state.format, "output", "o", FormatJSON, "result format: json or yaml")

	cmd.AddCommand(
		newLoginCmd(state),
		newLogoutCmd(state),
		newStatsCmd(state),
		newNavCmd(state),
	)
	cmd.AddCommand(entityCommands(state)...)
	return cmd
}

func loadConfiguration(envFiles []string) (*configuration.Configuration, error) {
	if len(envFiles) == 0 {
		return configuration.Use(), nil
	}
	return configuration.Load(envFiles...)
}

func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
