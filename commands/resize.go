package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var (
	resizeContainer      string
	resizeCPURequest     string
	resizeCPULimit       string
	resizeMemoryRequest  string
	resizeMemoryLimit    string
	noHorizontalFallback bool
)

var resizeCmd = &cobra.Command{
	Use:   "resize NAMESPACE POD",
	Short: "Resize one container's resources in place",
	Long: "Asks the backend to patch the named container's resources, as Kubernetes " +
		"quantity strings (for example 250m or 128Mi). Backends that cannot resize " +
		"in place fall back to recreating the pod through its deployment unless " +
		"--no-horizontal-fallback is given.",
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resizeCPURequest == "" && resizeCPULimit == "" && resizeMemoryRequest == "" && resizeMemoryLimit == "" {
			return fmt.Errorf("at least one of --cpu-request, --cpu-limit, --memory-request or --memory-limit is required")
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

		spec := models.ContainerResourceSpec{}
		if resizeCPURequest != "" || resizeMemoryRequest != "" {
			spec.Requests = map[string]string{}
			if resizeCPURequest != "" {
				spec.Requests["cpu"] = resizeCPURequest
			}
			if resizeMemoryRequest != "" {
				spec.Requests["memory"] = resizeMemoryRequest
			}
		}
		if resizeCPULimit != "" || resizeMemoryLimit != "" {
			spec.Limits = map[string]string{}
			if resizeCPULimit != "" {
				spec.Limits["cpu"] = resizeCPULimit
			}
			if resizeMemoryLimit != "" {
				spec.Limits["memory"] = resizeMemoryLimit
			}
		}
		request := models.ResizeRequest{
			Containers: map[string]models.ContainerResourceSpec{
				resizeContainer: spec,
			},
		}

		ui.SayMessage("Resizing container %s of pod %s/%s...", resizeContainer, args[0], args[1])
		result, err := client.ResizePod(args[0], args[1], request, !noHorizontalFallback)
		if err != nil {
			ui.SayFailed()
			return err
		}
		ui.SayOK()

		ui.SayMessage("%s", result.Message)
		ui.SayMessage("Scaling method: %s", result.ScalingMethod)
		if len(result.Details) > 0 {
			keys := make([]string, 0, len(result.Details))
			for key := range result.Details {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				ui.SayMessage("%s: %v", key, result.Details[key])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resizeCmd)

	resizeCmd.Flags().StringVar(&resizeContainer, "container", "", "container to resize")
	resizeCmd.Flags().StringVar(&resizeCPURequest, "cpu-request", "", "new cpu request, e.g. 250m")
	resizeCmd.Flags().StringVar(&resizeCPULimit, "cpu-limit", "", "new cpu limit, e.g. 500m")
	resizeCmd.Flags().StringVar(&resizeMemoryRequest, "memory-request", "", "new memory request, e.g. 128Mi")
	resizeCmd.Flags().StringVar(&resizeMemoryLimit, "memory-limit", "", "new memory limit, e.g. 256Mi")
	resizeCmd.Flags().BoolVar(&noHorizontalFallback, "no-horizontal-fallback", false, "fail instead of recreating the pod when in-place resize is unsupported")
	_ = resizeCmd.MarkFlagRequired("container")
}
