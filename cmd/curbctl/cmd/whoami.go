package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/client"
)

var rootProvider *client.Provider

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := rootProvider.Authenticated()
		if err != nil {
			return err
		}
		if err := session.FetchPrincipal(cmd.Context()); err != nil {
			return err
		}
		state := session.State()
		if state.Principal == nil {
			return fmt.Errorf("session expired, please log in again")
		}
		fmt.Printf("%s (%s) <%s>\n", state.Principal.Username, state.Principal.Role, state.Principal.Email)
		return nil
	},
}
