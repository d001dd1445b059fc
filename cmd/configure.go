package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicemaker/internal/config"
	"invoicemaker/internal/wizard"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the data directory",
	Long: `Stores the business data root in settings.yaml under the OS user
config directory. INVOICE_DATA_ROOT overrides it per invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigWizard()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigWizard() error {
	fmt.Println("\n--- Configuration Setup ---")

	settings, err := config.LoadSettings()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if settings == nil {
		settings = &config.Settings{DataRoot: "~/Documents/Business"}
	}

	root, err := wizard.Input("Root Data Directory:", settings.DataRoot)
	if err != nil {
		return err
	}
	settings.DataRoot = root

	voidPaid, err := wizard.Confirm("Allow voiding invoices already marked PAID?", settings.VoidPaid)
	if err != nil {
		return err
	}
	settings.VoidPaid = voidPaid

	if err := config.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings saved.")
	return nil
}
