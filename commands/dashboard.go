package commands

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/healthendpoint"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var watchDashboard bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show backend statistics, auto-scale status and health",
	Long: "Loads the dashboard once and prints it. With --watch, keeps refreshing " +
		"the statistics every 10 seconds until interrupted, optionally exposing " +
		"prometheus metrics about the refresh loop when dashboard.metrics_port " +
		"is configured.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		client, err := rt.RequireSession()
		if err != nil {
			return err
		}

		dashboard := console.NewDashboardController(client, rt.logger)
		err = dashboard.Load()
		if err != nil {
			ui.SayFailed()
			return err
		}
		renderDashboard(dashboard.View())

		if !watchDashboard {
			return nil
		}
		return watchLoop(rt, dashboard)
	},
}

func watchLoop(rt *runtime, dashboard *console.DashboardController) error {
	logger := rt.logger

	collector := healthendpoint.NewRefreshCollector("scalerctl", "dashboard")
	refresher := console.NewDashboardRefresher(dashboard, collector, clock.NewClock(), logger, func() {
		ui.SayMessage("")
		ui.SayMessage("Refreshed at %s", time.Now().Format(time.RFC1123))
		renderDashboard(dashboard.View())
	})

	members := grouper.Members{
		{Name: "dashboard-refresher", Runner: refresher},
	}
	if rt.conf.Dashboard.MetricsPort > 0 {
		promRegistry := prometheus.NewRegistry()
		healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{collector}, true, logger.Session("scalerctl-prometheus"))
		healthServer, err := healthendpoint.NewServer(logger.Session("health-server"), rt.conf.Dashboard.MetricsPort, promRegistry)
		if err != nil {
			return err
		}
		members = append(members, grouper.Member{Name: "health_server", Runner: healthServer})
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))

	logger.Info("started")

	err := <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}

	logger.Info("exited")
	return nil
}

func renderDashboard(view console.DashboardView) {
	if view.Error != "" {
		ui.SayMessage("Dashboard degraded: %s", view.Error)
	}
	if view.Health != nil {
		ui.SayMessage("Service: %s (%s)", view.Health.Service, view.Health.Status)
	}
	if view.Autoscale != nil {
		ui.SayMessage("Auto-scaling: enabled=%t running=%t interval=%ds thread_alive=%t",
			view.Autoscale.Enabled, view.Autoscale.Running, view.Autoscale.IntervalSeconds, view.Autoscale.ThreadAlive)
	}
	if view.Statistics == nil {
		return
	}

	stats := view.Statistics
	ui.SayMessage("Decisions: %d total, %d applied, scaling rate %.1f%%, %d pods monitored",
		stats.Overview.TotalDecisions, stats.Overview.AppliedDecisions, stats.Overview.ScalingRate, stats.Overview.MonitoredPods)
	ui.SayMessage("System: dry_run=%t cooldown=%dm scale_factor=%.2f",
		stats.System.DryRun, stats.System.CooldownMinutes, stats.System.ScaleFactor)

	table := ui.NewTable(os.Stdout, []string{"resource", "decrease", "maintain", "increase", "avg confidence"})
	table.Add([]string{"cpu",
		itoa(stats.CPUActions.Decrease), itoa(stats.CPUActions.Maintain), itoa(stats.CPUActions.Increase),
		ftoa(stats.AverageConfidence.CPU)})
	table.Add([]string{"memory",
		itoa(stats.MemoryActions.Decrease), itoa(stats.MemoryActions.Maintain), itoa(stats.MemoryActions.Increase),
		ftoa(stats.AverageConfidence.Memory)})
	table.Print()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolVarP(&watchDashboard, "watch", "w", false, "keep refreshing until interrupted")
}
