package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"invoicemaker/internal/config"
	"invoicemaker/internal/ledger"
)

var paidCmd = &cobra.Command{
	Use:   "paid",
	Short: "List all PAID invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(true)
	},
}

var unpaidCmd = &cobra.Command{
	Use:   "unpaid",
	Short: "List all UNPAID invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(false)
	},
}

func init() {
	rootCmd.AddCommand(paidCmd)
	rootCmd.AddCommand(unpaidCmd)
}

// runList prints the PDF paths (relative to the output root) of non-void
// invoices with the given paid state.
func runList(paid bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	label := "UNPAID"
	if paid {
		label = "PAID"
	}
	fmt.Printf("--- List of %s Invoices ---\n", label)

	repo := ledger.NewRepository(cfg.OutputRoot())
	docs, err := repo.Scan(ledger.ListedAs(paid))
	if err != nil {
		if errors.Is(err, ledger.ErrNoOutputDir) {
			fmt.Println("(None found)")
			return nil
		}
		return err
	}
	if len(docs) == 0 {
		fmt.Println("(None found)")
		return nil
	}

	for _, doc := range docs {
		fmt.Println(doc.BinaryRelPath())
	}
	return nil
}
