package auth

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	curbwise "github.com/curbwise/curbwise-go"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := provider.Session()
		if err != nil {
			return err
		}
		state := session.State()
		if !state.Authenticated() {
			pterm.Warning.Println("Not logged in")
			return nil
		}

		pterm.DefaultSection.Println("Authentication Status")
		if claims, err := curbwise.DecodeClaims(state.Token); err == nil && claims.ExpiresAt != nil {
			if claims.Expired(time.Now()) {
				pterm.Warning.Printf("Stored token expired at %s\n", claims.ExpiresAt.Format(time.RFC1123))
			} else {
				pterm.Info.Printf("Token expires at: %s\n", claims.ExpiresAt.Format(time.RFC1123))
			}
		}

		// Resolving the principal revalidates the credential; a stale token
		// silently drops the session here.
		if err := session.FetchPrincipal(cmd.Context()); err != nil {
			return err
		}
		state = session.State()
		if !state.Authenticated() {
			pterm.Warning.Println("Stored session is no longer valid; please log in again")
			return nil
		}
		if state.Principal != nil {
			pterm.Info.Printf("Logged in as: %s (%s)\n", state.Principal.Username, state.Principal.Role)
			pterm.Info.Printf("Email: %s\n", state.Principal.Email)
		}
		return nil
	},
}
