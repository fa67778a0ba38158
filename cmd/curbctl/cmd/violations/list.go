package violations

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	curbwise "github.com/curbwise/curbwise-go"
)

var (
	statusFilter   string
	severityFilter string
	limit          int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List violations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := provider.Authenticated()
		if err != nil {
			return err
		}
		items, err := api.Violations.List(cmd.Context(), curbwise.ViolationListOptions{
			Status:   curbwise.ViolationStatus(statusFilter),
			Severity: curbwise.ViolationSeverity(severityFilter),
			Limit:    limit,
		})
		if err != nil {
			return err
		}
		if output == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tSEVERITY\tADDRESS")
		for _, v := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Status, v.Severity, v.Address)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&statusFilter, "status", "", "Filter by status (open, in_review, resolved, dismissed)")
	listCmd.Flags().StringVar(&severityFilter, "severity", "", "Filter by severity (low, medium, high)")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")
}
