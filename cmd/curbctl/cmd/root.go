package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curbwise/curbwise-go/cmd/curbctl/cmd/auth"
	"github.com/curbwise/curbwise-go/cmd/curbctl/cmd/billing"
	"github.com/curbwise/curbwise-go/cmd/curbctl/cmd/violations"
	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/client"
	"github.com/curbwise/curbwise-go/cmd/curbctl/internal/config"
)

var (
	serverURL  string
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "curbctl",
	Short: "Curbwise CLI - violation review platform client",
	Long: `curbctl is the command-line interface for Curbwise, a contract and
violation review platform. Use it to log in, browse violations, and manage
your subscription.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if serverURL == "" {
			serverURL = cfg.ServerURL
		}
		provider := client.NewProvider(serverURL, verbose)
		rootProvider = provider
		auth.SetProvider(provider)
		violations.SetProvider(provider)
		violations.SetOutput(cfg.Output)
		billing.SetProvider(provider)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Curbwise API server URL (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.curbwise/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(violations.ViolationsCmd)
	rootCmd.AddCommand(billing.BillingCmd)
	rootCmd.AddCommand(whoamiCmd)
}
