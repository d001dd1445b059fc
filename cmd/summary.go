package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"invoicemaker/internal/config"
	"invoicemaker/internal/ledger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [year]",
	Short: "Show a summary of invoices",
	Long: `Re-parses every non-void invoice document and prints monthly and
per-client totals for the year, split into paid and unpaid. Months and years
come from the date embedded in each invoice identifier. Defaults to the
current year.`,
	Example: `  invoicemaker summary
  invoicemaker summary 2024`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	year := time.Now().Year()
	if len(args) == 1 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
	}

	fmt.Printf("Scanning invoices for summary (Year: %d)...\n", year)

	repo := ledger.NewRepository(cfg.OutputRoot())
	facts, err := ledger.CollectFacts(repo)
	if err != nil {
		if errors.Is(err, ledger.ErrNoOutputDir) {
			fmt.Println("No output directory found. No invoices to summarize.")
			return nil
		}
		return err
	}
	if len(facts) == 0 {
		fmt.Println("No invoices found.")
		return nil
	}

	summary := ledger.Summarize(facts, year)

	fmt.Printf("\n--- Monthly Invoice Summary (%d) ---\n", year)
	printMonthlyTable(summary)

	fmt.Printf("\n--- Client Summary (%d) ---\n", year)
	printClientTable(summary)
	return nil
}

func printMonthlyTable(summary ledger.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Month", "Paid", "Unpaid", "Total"})

	for _, m := range summary.Months {
		label := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
		table.Rich(
			[]string{label, money(m.Paid), money(m.Unpaid), money(m.Combined())},
			[]tablewriter.Colors{nil, paidColors(m.Paid, false), unpaidColors(m.Unpaid, false), nil},
		)
	}

	total := summary.Overall
	table.Rich(
		[]string{
			fmt.Sprintf("Total (%d)", summary.Year),
			money(total.Paid), money(total.Unpaid), money(total.Combined()),
		},
		[]tablewriter.Colors{
			{tablewriter.Bold},
			paidColors(total.Paid, true),
			unpaidColors(total.Unpaid, true),
			{tablewriter.Bold},
		},
	)
	table.Render()
}

func printClientTable(summary ledger.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Client", "Paid", "Unpaid", "Total"})

	for _, c := range summary.Clients {
		table.Rich(
			[]string{c.Client, money(c.Paid), money(c.Unpaid), money(c.Combined())},
			[]tablewriter.Colors{nil, paidColors(c.Paid, false), unpaidColors(c.Unpaid, false), nil},
		)
	}
	table.Render()
}

// money rounds to two decimals at presentation time only; accumulation keeps
// full precision.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func paidColors(v float64, bold bool) tablewriter.Colors {
	return amountColors(v, tablewriter.FgGreenColor, bold)
}

func unpaidColors(v float64, bold bool) tablewriter.Colors {
	return amountColors(v, tablewriter.FgRedColor, bold)
}

func amountColors(v float64, color int, bold bool) tablewriter.Colors {
	var colors tablewriter.Colors
	if bold {
		colors = append(colors, tablewriter.Bold)
	}
	if v > 0 {
		colors = append(colors, color)
	}
	return colors
}
