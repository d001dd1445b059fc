package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"invoicemaker/internal/config"
	"invoicemaker/internal/ledger"
	"invoicemaker/internal/render"
	"invoicemaker/internal/wizard"
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Mark an invoice as PAID (hides already paid)",
	Long: `Offers every unpaid, non-void invoice, most recently touched first.
Paying rewrites the embedded is_paid flag, renames the document with a _PAID
suffix and recompiles the PDF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, ledger.Paid, ledger.PayCandidates, "Mark as PAID")
	},
}

var unpayCmd = &cobra.Command{
	Use:   "unpay",
	Short: "Revert an invoice to UNPAID (hides unpaid)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, ledger.Unpaid, ledger.UnpayCandidates, "Mark as UNPAID")
	},
}

var voidCmd = &cobra.Command{
	Use:   "void",
	Short: "Void an invoice (terminal)",
	Long: `Voids an invoice: the document gains an is_void flag and a _VOID
filename suffix, and disappears from every candidate list and summary. Void
is terminal. Paid invoices are offered only when void_paid is enabled in the
settings (or INVOICE_VOID_PAID=true).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runStatusChange(cmd, ledger.Void, ledger.VoidCandidates(cfg.VoidPaid), "VOID")
	},
}

func init() {
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(unpayCmd)
	rootCmd.AddCommand(voidCmd)
}

// runStatusChange is the shared select-then-transition flow behind pay,
// unpay and void. Selection happens before any write, so cancellation is
// always a clean no-op.
func runStatusChange(cmd *cobra.Command, target ledger.Status, filter func(ledger.Document) bool, action string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	compiler, err := render.NewTypstCompiler()
	if err != nil {
		return err
	}

	repo := ledger.NewRepository(cfg.OutputRoot())
	fmt.Println("Scanning invoices...")
	docs, err := repo.Scan(filter)
	if err != nil {
		if errors.Is(err, ledger.ErrNoOutputDir) {
			fmt.Println("No output directory found.")
			return nil
		}
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No matching invoices found.")
		return nil
	}

	ledger.SortNewestFirst(docs)
	options := make([]string, len(docs))
	byPath := make(map[string]ledger.Document, len(docs))
	for i, doc := range docs {
		options[i] = doc.RelPath
		byPath[doc.RelPath] = doc
	}

	choice, err := wizard.Select("Select Invoice to "+action+":", options, 10)
	if err != nil {
		return err
	}
	doc := byPath[choice]

	engine := ledger.NewEngine(repo, compiler, cfg.OutputRoot())
	committed, err := engine.Transition(cmd.Context(), doc, target)
	if err != nil {
		if errors.Is(err, ledger.ErrRecompileFailed) {
			// The text and filename are already committed; only the PDF
			// is stale.
			fmt.Printf("Status updated and renamed to %s, but re-compilation failed. Compile %s manually or rerun pay/unpay.\n",
				committed.Stem, committed.RelPath)
		}
		return err
	}

	fmt.Printf("Done! Renamed to: %s\n", committed.Stem)
	revealInFileManager(filepath.Join(cfg.OutputRoot(), filepath.FromSlash(committed.BinaryRelPath())))
	return nil
}
