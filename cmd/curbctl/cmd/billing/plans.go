package billing

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List subscription plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := provider.Session()
		if err != nil {
			return err
		}
		plans, err := api.Billing.Plans(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tINTERVAL\tFEATURES")
		for _, p := range plans {
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n",
				p.ID, p.Name, float64(p.PriceCents)/100, p.Interval, strings.Join(p.Features, ", "))
		}
		return w.Flush()
	},
}
