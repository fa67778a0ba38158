// Package auth holds the curbctl authentication commands.
package auth

import (
	"github.com/spf13/cobra"

	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/client"
)

var provider *client.Provider

// AuthCmd is the parent command for auth operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in and out and inspecting session status.`,
}

// SetProvider injects the shared client provider.
func SetProvider(p *client.Provider) {
	provider = p
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}
