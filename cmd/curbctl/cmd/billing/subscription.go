package billing

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Show your current subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := provider.Authenticated()
		if err != nil {
			return err
		}
		sub, err := api.Billing.MySubscription(cmd.Context())
		if err != nil {
			return err
		}
		pterm.DefaultSection.Println("Subscription")
		pterm.Info.Printf("Plan: %s  Status: %s\n", sub.Plan, sub.Status)
		if sub.CurrentPeriodEnd != nil {
			pterm.Info.Printf("Current period ends: %s\n", sub.CurrentPeriodEnd.Format(time.RFC1123))
		}
		if sub.CancelAtPeriodEnd {
			pterm.Warning.Println("Subscription will cancel at period end")
		}
		return nil
	},
}
