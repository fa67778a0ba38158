package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	username string
	password string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Curbwise",
	Long: `Exchanges a username and password for a session credential and persists
it under ~/.curbwise. Subsequent commands reuse the stored session until it
expires or you log out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := provider.Session()
		if err != nil {
			return err
		}
		if username == "" {
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}
		if err := session.Login(cmd.Context(), username, password); err != nil {
			return err
		}
		state := session.State()
		pterm.Success.Println("Login successful")
		if state.Principal != nil {
			pterm.Info.Printf("Authenticated as: %s (%s)\n", state.Principal.Username, state.Principal.Role)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted when omitted)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
}
