// Package billing holds the curbctl subscription commands.
package billing

import (
	"github.com/spf13/cobra"

	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/client"
)

var provider *client.Provider

// BillingCmd is the parent command for billing operations.
var BillingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Inspect plans and your subscription",
}

// SetProvider injects the shared client provider.
func SetProvider(p *client.Provider) {
	provider = p
}

func init() {
	BillingCmd.AddCommand(plansCmd)
	BillingCmd.AddCommand(subscriptionCmd)
}
