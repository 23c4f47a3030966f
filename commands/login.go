package commands

import (
	"github.com/spf13/cobra"

	"github.com/shanakama/smart-auto-scaler/session"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the operator console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		guard, err := rt.Guard()
		if err != nil {
			return err
		}

		_, err = guard.Login(loginUsername, loginPassword)
		if err != nil {
			if err == session.ErrInvalidCredentials {
				ui.SayMessage(ui.InvalidCredentials)
			}
			ui.SayFailed()
			return err
		}

		ui.SayMessage(ui.LoggedInAs, loginUsername)
		ui.SayOK()
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		guard, err := rt.Guard()
		if err != nil {
			return err
		}

		err = guard.Logout()
		if err != nil {
			ui.SayFailed()
			return err
		}

		ui.SayMessage(ui.LoggedOut)
		ui.SayOK()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username to log in with")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password to log in with")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}
