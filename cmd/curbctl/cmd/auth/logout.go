package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Curbwise",
	Long: `Discards the stored session credential. The token is not revoked
server-side; it simply expires on its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := provider.Session()
		if err != nil {
			return err
		}
		session.Logout()
		pterm.Success.Println("Logged out")
		return nil
	},
}
