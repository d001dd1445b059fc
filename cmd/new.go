package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"invoicemaker/internal/clients"
	"invoicemaker/internal/config"
	"invoicemaker/internal/ledger"
	"invoicemaker/internal/logger"
	"invoicemaker/internal/render"
	"invoicemaker/internal/wizard"
	"invoicemaker/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new invoice",
	Long: `Walks through client and project selection, line-item entry, invoice
date and tax, then renders the invoice and compiles it to PDF.

The invoice identifier is HI<date>-<NN>, where NN is the next free sequence
for that date across the whole year's output tree. The document is written to
output/<year>/<client-id>/<id>_<project-id>.typ with a .pdf sibling.`,
	Example: `  invoicemaker new`,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("new")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The external compiler is a hard precondition; fail before any
	// prompting or writes.
	compiler, err := render.NewTypstCompiler()
	if err != nil {
		return err
	}

	store, err := clients.NewStore(cfg.ClientsDir())
	if err != nil {
		return err
	}
	sender, err := clients.LoadSender(cfg.SenderPath())
	if err != nil {
		return err
	}

	clientID, err := wizard.SelectOrCreateClient(store)
	if err != nil {
		return err
	}
	fmt.Printf("Selected Client: %s\n", clientID)

	client, project, err := wizard.SelectOrCreateProject(store, clientID)
	if err != nil {
		return err
	}
	projectName := project.Name
	if projectName == "" {
		projectName = "No Name"
	}
	fmt.Printf("Selected Project: %s (%s)\n", projectName, project.Address.Street)

	items, err := wizard.EnterItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No items entered. Aborting.")
		return nil
	}

	date, err := wizard.Date("Invoice Date:", time.Now())
	if err != nil {
		return err
	}
	taxRate, taxStatus, err := wizard.AskTax()
	if err != nil {
		return err
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	taxAmount := subtotal * taxRate
	taxDisplay := taxStatus
	if taxRate > 0 {
		taxDisplay = fmt.Sprintf("$%.2f", taxAmount)
	}

	invoiceID := ledger.NextID(cfg.OutputRoot(), date)
	log.Info().
		Str("invoice_id", invoiceID).
		Str("client", clientID).
		Int("items", len(items)).
		Float64("subtotal", subtotal).
		Msg("Generating invoice")

	// The identifier embeds the chosen invoice date and decides the year
	// bucket; the printed date is always today.
	context := models.InvoiceContext{
		ID:         invoiceID,
		Date:       time.Now().Format("01/02/2006"),
		Sender:     *sender,
		Client:     *client,
		Project:    project,
		Items:      items,
		Total:      subtotal + taxAmount,
		TaxRate:    taxRate,
		TaxDisplay: taxDisplay,
	}

	renderer := render.NewRenderer(cfg.DataRoot)
	source, err := renderer.Render(context)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(cfg.OutputRoot(), date.Format("2006"), clientID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	stem := invoiceID + "_" + project.ID
	sourcePath := filepath.Join(outputDir, stem+ledger.SourceExt)
	binaryPath := filepath.Join(outputDir, stem+ledger.BinaryExt)
	if err := os.WriteFile(sourcePath, []byte(source), 0644); err != nil {
		return fmt.Errorf("failed to write invoice source: %w", err)
	}

	fmt.Println("\nCompiling PDF...")
	if err := compiler.Compile(cmd.Context(), sourcePath, binaryPath); err != nil {
		return err
	}

	fmt.Printf("PDF Generated: %s\n", binaryPath)
	revealInFileManager(binaryPath)
	return nil
}
