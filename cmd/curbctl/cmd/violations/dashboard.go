package violations

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate violation counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := provider.Authenticated()
		if err != nil {
			return err
		}
		data, err := api.Violations.DashboardData(cmd.Context())
		if err != nil {
			return err
		}
		pterm.DefaultSection.Println("Violations")
		pterm.Info.Printf("Total: %d  Open: %d  Resolved: %d\n",
			data.TotalViolations, data.OpenViolations, data.ResolvedViolations)
		for status, count := range data.ByStatus {
			pterm.Info.Printf("  %s: %d\n", status, count)
		}
		return nil
	},
}
