package commands

import (
	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/scalerapi"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var (
	unsetEndpoint     bool
	skipSSLValidation bool
)

var apiCmd = &cobra.Command{
	Use:   "api [URL]",
	Short: "Show, set or unset the scaler API endpoint",
	Long: "Without arguments, shows the endpoint the console talks to. With a URL, " +
		"probes the endpoint's health and stores it so that later commands use it " +
		"instead of the configured one. --unset forgets the stored endpoint.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if unsetEndpoint {
			ui.SayMessage(ui.UnsetAPIEndpoint)
			err = clearEndpoint(rt.logger)
			if err != nil {
				ui.SayFailed()
				return err
			}
			ui.SayOK()
			return nil
		}

		if len(args) == 0 {
			if rt.conf.API.URL == "" {
				ui.SayMessage(ui.NoEndpoint)
				return nil
			}
			ui.SayMessage(ui.APIEndpoint, rt.conf.API.URL)
			return nil
		}

		return setEndpoint(rt, args[0])
	},
}

func setEndpoint(rt *runtime, url string) error {
	ui.SayMessage(ui.SetAPIEndpoint, url)

	conf := rt.conf.API
	conf.URL = url
	conf.SkipSSLValidation = skipSSLValidation
	err := conf.Validate()
	if err != nil {
		ui.SayFailed()
		return err
	}

	client, err := scalerapi.NewScalerClient(&conf, rt.logger)
	if err != nil {
		ui.SayFailed()
		return err
	}
	_, err = client.CheckHealth()
	if err != nil {
		ui.SayFailed()
		return err
	}

	err = writeEndpoint(endpointOverride{URL: conf.URL, SkipSSLValidation: conf.SkipSSLValidation}, rt.logger)
	if err != nil {
		ui.SayFailed()
		return err
	}
	ui.SayOK()
	return nil
}

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().BoolVar(&unsetEndpoint, "unset", false, "forget the stored endpoint and fall back to the configuration file")
	apiCmd.Flags().BoolVar(&skipSSLValidation, "skip-ssl-validation", false, "do not verify the endpoint's TLS certificate")
}
