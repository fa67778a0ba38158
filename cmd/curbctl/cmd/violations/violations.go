// Package violations holds the curbctl violation workflow commands.
package violations

import (
	"github.com/spf13/cobra"

	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/client"
)

var (
	provider *client.Provider
	output   string
)

// ViolationsCmd is the parent command for violation operations.
var ViolationsCmd = &cobra.Command{
	Use:   "violations",
	Short: "Browse and export violations",
}

// SetProvider injects the shared client provider.
func SetProvider(p *client.Provider) {
	provider = p
}

// SetOutput selects table or json rendering.
func SetOutput(o string) {
	output = o
}

func init() {
	ViolationsCmd.AddCommand(listCmd)
	ViolationsCmd.AddCommand(dashboardCmd)
	ViolationsCmd.AddCommand(exportCmd)
}
