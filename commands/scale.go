package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Run scaling decisions through the backend",
}

var scalePodCmd = &cobra.Command{
	Use:   "pod NAMESPACE POD",
	Short: "Decide and apply scaling for one pod",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		client, err := rt.RequireSession()
		if err != nil {
			return err
		}

		ui.SayMessage("Scaling pod %s/%s...", args[0], args[1])
		decision, err := client.ScalePod(args[0], args[1])
		if err != nil {
			ui.SayFailed()
			return err
		}
		ui.SayOK()

		renderDecision(decision.Normalize())
		return nil
	},
}

var scaleAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run one scaling pass over every monitored pod",
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

		ui.SayMessage("Scaling all monitored pods...")
		result, err := client.ScaleAll()
		if err != nil {
			ui.SayFailed()
			return err
		}
		ui.SayOK()

		ui.SayMessage("Processed %d pod(s)", result.Processed)
		if len(result.Results) > 0 {
			table := ui.NewTable(os.Stdout, []string{"pod", "status", "cpu", "memory", "detail"})
			for _, execution := range result.Results {
				cpu, memory := executionActions(execution)
				table.Add([]string{
					execution.PodName,
					string(execution.Status),
					cpu,
					memory,
					executionDetail(execution),
				})
			}
			table.Print()
		}
		return nil
	},
}

func renderDecision(summary models.DecisionSummary) {
	ui.SayMessage("Pod:        %s", summary.PodName)
	ui.SayMessage("Action:     %s (confidence %.2f)", summary.Action, summary.Confidence)
	ui.SayMessage("CPU:        %.3f -> %.3f cores", summary.CurrentCPUCores, summary.ProposedCPUCores)
	ui.SayMessage("Memory:     %.1f -> %.1f MB", summary.CurrentMemoryMB, summary.ProposedMemoryMB)
	ui.SayMessage("Applied:    %t", summary.Applied)
	ui.SayMessage("Reason:     %s", summary.Reason)
}

func executionActions(execution models.ScaleExecution) (cpu string, memory string) {
	switch {
	case execution.Actions != nil:
		return string(execution.Actions.CPU), string(execution.Actions.Memory)
	default:
		return string(execution.CPUAction), string(execution.MemoryAction)
	}
}

func executionDetail(execution models.ScaleExecution) string {
	switch {
	case execution.Error != "":
		return execution.Error
	case execution.Reason != "":
		return execution.Reason
	default:
		return execution.Message
	}
}

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.AddCommand(scalePodCmd)
	scaleCmd.AddCommand(scaleAllCmd)
}
