package ledger

import (
	"sort"
	"time"

	"invoicemaker/internal/logger"
)

// Totals is a paid/unpaid split of accumulated invoice totals. Accumulation
// keeps full float64 precision; rounding to two decimals happens at
// presentation time only.
type Totals struct {
	Paid   float64
	Unpaid float64
}

// Combined returns paid plus unpaid.
func (t Totals) Combined() float64 {
	return t.Paid + t.Unpaid
}

func (t *Totals) add(f Facts) {
	if f.IsPaid {
		t.Paid += f.Total
	} else {
		t.Unpaid += f.Total
	}
}

// MonthTotals is one monthly summary bucket.
type MonthTotals struct {
	Year  int
	Month time.Month
	Totals
}

// ClientTotals is one per-client summary bucket.
type ClientTotals struct {
	Client string
	Totals
}

// Summary holds both groupings of one year's non-void invoices. The two
// groupings partition the same invoice set, so their paid sums agree, as do
// their unpaid sums.
type Summary struct {
	Year    int
	Months  []MonthTotals  // newest month first
	Clients []ClientTotals // combined total descending
	Overall Totals
}

// InvoiceFact couples one document's extracted facts with the invoice date
// embedded in its identifier. The identifier date decides year and month
// bucketing, not the rendered issue date.
type InvoiceFact struct {
	Date time.Time
	Facts
}

// CollectFacts scans the whole ledger and extracts facts from every non-void
// document whose stem carries a parseable identifier date. An unreadable
// document is skipped with a warning; it never aborts the batch.
func CollectFacts(repo Repository) ([]InvoiceFact, error) {
	log := logger.WithComponent("ledger-facts")

	docs, err := repo.Scan(func(d Document) bool { return d.Status != Void })
	if err != nil {
		return nil, err
	}

	facts := make([]InvoiceFact, 0, len(docs))
	for _, doc := range docs {
		date, ok := DocumentDate(doc.Stem)
		if !ok {
			log.Warn().Str("document", doc.RelPath).Msg("Skipping document without identifier date")
			continue
		}
		content, err := repo.Read(doc)
		if err != nil {
			log.Warn().Err(err).Str("document", doc.RelPath).Msg("Skipping unreadable document")
			continue
		}
		facts = append(facts, InvoiceFact{Date: date, Facts: ParseFacts(string(content))})
	}

	log.Debug().Int("documents", len(docs)).Int("facts", len(facts)).Msg("Ledger facts collected")
	return facts, nil
}

// Summarize filters facts to the target year and produces the monthly and
// per-client groupings.
func Summarize(facts []InvoiceFact, year int) Summary {
	type monthKey struct {
		year  int
		month time.Month
	}
	months := make(map[monthKey]*Totals)
	clients := make(map[string]*Totals)

	summary := Summary{Year: year}
	for _, f := range facts {
		if f.Date.Year() != year {
			continue
		}

		mk := monthKey{f.Date.Year(), f.Date.Month()}
		if months[mk] == nil {
			months[mk] = &Totals{}
		}
		months[mk].add(f.Facts)

		if clients[f.Client] == nil {
			clients[f.Client] = &Totals{}
		}
		clients[f.Client].add(f.Facts)

		summary.Overall.add(f.Facts)
	}

	for mk, t := range months {
		summary.Months = append(summary.Months, MonthTotals{Year: mk.year, Month: mk.month, Totals: *t})
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		a, b := summary.Months[i], summary.Months[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	for name, t := range clients {
		summary.Clients = append(summary.Clients, ClientTotals{Client: name, Totals: *t})
	}
	sort.Slice(summary.Clients, func(i, j int) bool {
		a, b := summary.Clients[i], summary.Clients[j]
		if a.Combined() != b.Combined() {
			return a.Combined() > b.Combined()
		}
		return a.Client < b.Client
	})

	return summary
}
