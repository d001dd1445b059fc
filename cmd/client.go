package cmd

import (
	"github.com/spf13/cobra"

	"invoicemaker/internal/clients"
	"invoicemaker/internal/config"
	"invoicemaker/internal/wizard"
)

var addClientCmd = &cobra.Command{
	Use:   "add-client",
	Short: "Add a new client",
	Long: `Creates a client record under <data root>/data/clients/<id>/info.yaml.
The ID is a slug of the company name, or of the person's name for clients
without a company.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := clients.NewStore(cfg.ClientsDir())
		if err != nil {
			return err
		}
		_, err = wizard.CreateClient(store)
		return err
	},
}

func init() {
	rootCmd.AddCommand(addClientCmd)
}
