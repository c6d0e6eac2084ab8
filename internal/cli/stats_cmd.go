package cli

import (
	"github.com/spf13/cobra"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules"
	dashboardcontrollers "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/dashboard/presentation/controllers"
)

func newStatsCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := state.runtime()
			if err := rt.RequireSession(); err != nil {
				return err
			}
			c, err := Controller[*dashboardcontrollers.DashboardController](rt, dashboardcontrollers.Key)
			if err != nil {
				return err
			}
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			st, _ := c.Stats()
			return state.write(cmd.OutOrStdout(), st)
		},
	}
}

func newNavCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "List the dashboard's sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.write(cmd.OutOrStdout(), modules.NavLinks)
		},
	}
}
