package commands

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/ui"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show the DQN model behind the backend",
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

		info, err := client.GetModelInfo()
		if err != nil {
			ui.SayFailed()
			return err
		}

		ui.SayMessage("Model type:     %s", info.ModelType)
		ui.SayMessage("Model path:     %s", info.ModelPath)
		ui.SayMessage("State dim:      %d", info.StateDim)
		ui.SayMessage("Action dim:     %d", info.ActionDim)
		ui.SayMessage("State features: %s", strings.Join(info.StateFeatures, ", "))

		if len(info.Actions) > 0 {
			indexes := make([]string, 0, len(info.Actions))
			for index := range info.Actions {
				indexes = append(indexes, index)
			}
			sort.Strings(indexes)

			table := ui.NewTable(os.Stdout, []string{"index", "action"})
			for _, index := range indexes {
				table.Add([]string{index, string(info.Actions[index])})
			}
			table.Print()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
}
