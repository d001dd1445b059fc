package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicemaker/internal/logger"
	"invoicemaker/internal/wizard"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoicemaker",
	Short: "Local invoicing assistant",
	Long: `Invoicemaker walks you through entering a client, project and line
items, renders a Typst invoice document and compiles it to PDF with the
external 'typst' tool.

There is no database. The rendered documents under <data root>/output ARE the
ledger: filenames carry the invoice ID and a _PAID/_VOID status suffix, and
the pay/unpay/void/summary commands recover state by rescanning that tree.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command, translating cancellation into a clean exit.
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		if wizard.IsCanceled(err) {
			fmt.Println("Cancelled")
			return
		}
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
