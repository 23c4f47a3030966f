package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var podsCmd = &cobra.Command{
	Use:   "pods [NAMESPACE POD]",
	Short: "List monitored pods, or show live usage for one pod",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts no arguments, or NAMESPACE and POD, received %d argument(s)", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		client, err := rt.RequireSession()
		if err != nil {
			return err
		}

		pods := console.NewPodsController(client, rt.conf.Dashboard.DetailCacheTTL, rt.logger)

		if len(args) == 2 {
			return showPodDetail(pods, args[0], args[1])
		}
		return listPods(pods)
	},
}

func listPods(pods *console.PodsController) error {
	err := pods.Load()
	if err != nil {
		ui.SayFailed()
		return err
	}

	view := pods.View()
	if len(view.Pods) == 0 {
		ui.SayMessage("No pods are monitored")
		return nil
	}

	table := ui.NewTable(os.Stdout, []string{"namespace", "name", "owner", "uid"})
	for _, pod := range view.Pods {
		owner := "-"
		if pod.Owner != nil {
			owner = fmt.Sprintf("%s/%s", pod.Owner.Kind, pod.Owner.Name)
		}
		table.Add([]string{pod.Namespace, pod.Name, owner, pod.UID})
	}
	table.Print()
	return nil
}

func showPodDetail(pods *console.PodsController, namespace string, podName string) error {
	detail, err := pods.Detail(namespace, podName)
	if err != nil {
		ui.SayFailed()
		return err
	}

	ui.SayMessage("Pod %s", detail.Pod)
	if detail.Metrics != nil {
		ui.SayMessage("CPU usage:       %.3f cores", detail.Metrics.CPUUsageCores)
		ui.SayMessage("Memory usage:    %.1f MB", detail.Metrics.MemoryUsageMB)
	} else {
		ui.SayMessage("No metrics sample available")
	}
	if detail.Resources != nil {
		ui.SayMessage("CPU requests:    %.3f cores", detail.Resources.CPURequestsCores)
		ui.SayMessage("Memory requests: %.1f MB", detail.Resources.MemoryRequestsMB)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(podsCmd)
}
