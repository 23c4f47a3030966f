package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var decisionLimit int

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Show recent scaling decisions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		client, err := rt.RequireSession()
		if err != nil {
			return err
		}

		decisions := console.NewDecisionsController(client, rt.logger)
		if cmd.Flags().Changed("limit") {
			decisions.SetLimit(decisionLimit)
		} else {
			decisions.SetLimit(rt.conf.Dashboard.DecisionLimit)
		}

		err = decisions.Load()
		if err != nil {
			ui.SayFailed()
			return err
		}

		view := decisions.View()
		if len(view.Decisions) == 0 {
			ui.SayMessage("No scaling decisions recorded")
			return nil
		}

		table := ui.NewTable(os.Stdout, []string{"time", "pod", "action", "confidence", "cpu cores", "memory mb", "applied", "reason"})
		for _, decision := range view.Decisions {
			table.Add([]string{
				decision.Timestamp,
				decision.PodName,
				string(decision.Action),
				ftoa(decision.Confidence),
				fmt.Sprintf("%.3f -> %.3f", decision.CurrentCPUCores, decision.ProposedCPUCores),
				fmt.Sprintf("%.1f -> %.1f", decision.CurrentMemoryMB, decision.ProposedMemoryMB),
				btoa(decision.Applied),
				decision.Reason,
			})
		}
		table.Print()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decisionsCmd)

	decisionsCmd.Flags().IntVar(&decisionLimit, "limit", console.DefaultDecisionLimit, "how many decisions to fetch (10, 25, 50 or 100)")
}
