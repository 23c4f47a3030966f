package commands

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/ui"
)

var waitTimeout time.Duration

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until the scaler API reports healthy",
	Long: "Polls the health endpoint with exponential backoff until it answers, " +
		"or the timeout elapses. Useful as a gate in scripts that bring the " +
		"backend up before operating on it.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		client, err := rt.Client()
		if err != nil {
			return err
		}

		ui.SayMessage(ui.WaitingForAPI, rt.conf.API.URL)

		bf := backoff.NewExponentialBackOff()
		bf.InitialInterval = 500 * time.Millisecond
		bf.MaxInterval = 5 * time.Second
		bf.MaxElapsedTime = waitTimeout

		err = backoff.Retry(func() error {
			_, err := client.CheckHealth()
			return err
		}, bf)
		if err != nil {
			ui.SayFailed()
			return err
		}

		ui.SayMessage(ui.APIHealthy, rt.conf.API.URL)
		ui.SayOK()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)

	waitCmd.Flags().DurationVar(&waitTimeout, "timeout", 2*time.Minute, "how long to keep polling before giving up")
}
