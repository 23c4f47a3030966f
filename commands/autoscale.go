package commands

import (
	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var autoscaleCmd = &cobra.Command{
	Use:   "autoscale",
	Short: "Control the backend's automatic scaling loop",
}

var autoscaleStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the automatic scaling loop",
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

		ack, err := client.StartAutoscale()
		if err != nil {
			ui.SayFailed()
			return err
		}

		renderAck(ack)
		ui.SayOK()
		return nil
	},
}

var autoscaleStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the automatic scaling loop",
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

		ack, err := client.StopAutoscale()
		if err != nil {
			ui.SayFailed()
			return err
		}

		renderAck(ack)
		ui.SayOK()
		return nil
	},
}

var autoscaleStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the automatic scaling loop",
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

		status, err := client.GetAutoscaleStatus()
		if err != nil {
			ui.SayFailed()
			return err
		}

		ui.SayMessage("Enabled:      %t", status.Enabled)
		ui.SayMessage("Running:      %t", status.Running)
		ui.SayMessage("Interval:     %ds", status.IntervalSeconds)
		ui.SayMessage("Thread alive: %t", status.ThreadAlive)
		return nil
	},
}

func renderAck(ack *models.AutoscaleAck) {
	ui.SayMessage("%s", ack.Message)
	if ack.Interval > 0 {
		ui.SayMessage("Interval: %ds", ack.Interval)
	}
}

func init() {
	rootCmd.AddCommand(autoscaleCmd)
	autoscaleCmd.AddCommand(autoscaleStartCmd)
	autoscaleCmd.AddCommand(autoscaleStopCmd)
	autoscaleCmd.AddCommand(autoscaleStatusCmd)
}
