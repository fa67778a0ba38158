package violations

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export violations as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := provider.Authenticated()
		if err != nil {
			return err
		}
		data, err := api.Violations.ExportCSV(cmd.Context())
		if err != nil {
			return err
		}
		if exportOut == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return err
		}
		pterm.Success.Printf("Wrote %d bytes to %s\n", len(data), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "violations.csv", "Output file ('-' for stdout)")
}
