package commands

import (
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/configvalidator"
	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var (
	setDryRun      bool
	setScaleFactor float64
	setAutoScale   bool
	setInterval    int
	setCooldown    int
	setNamespaces  []string
)

var configUpdateFlags = []string{"dry-run", "scale-factor", "auto-scale", "interval", "cooldown", "namespaces"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the backend scaler configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := newConfigController()
		if err != nil {
			return err
		}

		err = controller.Load()
		if err != nil {
			ui.SayFailed()
			return err
		}

		renderScalerConfig(controller.View().Config)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the editable scaler settings",
	Long: "Fetches the current configuration, applies the given flags on top and " +
		"saves the result. Settings without a flag keep their current value.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		changed := false
		for _, name := range configUpdateFlags {
			if flags.Changed(name) {
				changed = true
				break
			}
		}
		if !changed {
			return fmt.Errorf("nothing to change, pass at least one setting flag")
		}

		controller, err := newConfigController()
		if err != nil {
			return err
		}

		err = controller.Load()
		if err != nil {
			ui.SayFailed()
			return err
		}

		current := controller.View().Config
		update := models.ConfigUpdate{
			DryRun:            current.DryRun,
			ScaleFactor:       current.ScaleFactor,
			AutoScaleEnabled:  current.AutoScaleEnabled,
			AutoScaleInterval: current.AutoScaleInterval,
			ScalingCooldown:   current.ScalingCooldown,
			Namespaces:        current.Namespaces,
		}
		if flags.Changed("dry-run") {
			update.DryRun = setDryRun
		}
		if flags.Changed("scale-factor") {
			update.ScaleFactor = setScaleFactor
		}
		if flags.Changed("auto-scale") {
			update.AutoScaleEnabled = setAutoScale
		}
		if flags.Changed("interval") {
			update.AutoScaleInterval = setInterval
		}
		if flags.Changed("cooldown") {
			update.ScalingCooldown = setCooldown
		}
		if flags.Changed("namespaces") {
			update.Namespaces = setNamespaces
		}

		err = controller.Save(update)
		if err != nil {
			ui.SayFailed()
			return err
		}

		view := controller.View()
		ui.SayMessage("%s", view.Message)
		ui.SayOK()
		renderScalerConfig(view.Config)
		return nil
	},
}

func newConfigController() (*console.ConfigController, error) {
	rt, err := newRuntime()
	if err != nil {
		return nil, err
	}
	client, err := rt.RequireSession()
	if err != nil {
		return nil, err
	}
	return console.NewConfigController(client, configvalidator.NewConfigValidator(), clock.NewClock(), rt.logger), nil
}

func renderScalerConfig(conf *models.ScalerConfig) {
	if conf == nil {
		return
	}

	table := ui.NewTable(os.Stdout, []string{"setting", "value"})
	table.Add([]string{"model_path", conf.ModelPath})
	table.Add([]string{"state_dim", itoa(conf.StateDim)})
	table.Add([]string{"action_dim", itoa(conf.ActionDim)})
	table.Add([]string{"history_window", itoa(conf.HistoryWindow)})
	table.Add([]string{"cpu_range", fmt.Sprintf("%.2f - %.2f cores", conf.MinCPU, conf.MaxCPU)})
	table.Add([]string{"memory_range", fmt.Sprintf("%.0f - %.0f MB", conf.MinMemory, conf.MaxMemory)})
	table.Add([]string{"scale_factor", ftoa(conf.ScaleFactor)})
	table.Add([]string{"dry_run", btoa(conf.DryRun)})
	table.Add([]string{"in_cluster", btoa(conf.InCluster)})
	table.Add([]string{"namespaces", strings.Join(conf.Namespaces, ", ")})
	table.Add([]string{"auto_scale_enabled", btoa(conf.AutoScaleEnabled)})
	table.Add([]string{"auto_scale_interval", fmt.Sprintf("%ds", conf.AutoScaleInterval)})
	table.Add([]string{"scaling_cooldown", fmt.Sprintf("%ds", conf.ScalingCooldown)})
	if len(conf.ExcludedDeployments) > 0 {
		table.Add([]string{"excluded_deployments", strings.Join(conf.ExcludedDeployments, ", ")})
	}
	table.Print()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "predict decisions without applying them")
	configSetCmd.Flags().Float64Var(&setScaleFactor, "scale-factor", 0, "fraction to grow or shrink resources by per step")
	configSetCmd.Flags().BoolVar(&setAutoScale, "auto-scale", false, "run the scaling loop automatically")
	configSetCmd.Flags().IntVar(&setInterval, "interval", 0, "seconds between automatic scaling runs")
	configSetCmd.Flags().IntVar(&setCooldown, "cooldown", 0, "seconds a pod is left alone after a scaling action")
	configSetCmd.Flags().StringSliceVar(&setNamespaces, "namespaces", nil, "namespaces the scaler watches")
}
