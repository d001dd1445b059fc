package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fact(t *testing.T, day string, total float64, paid bool, client string) InvoiceFact {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return InvoiceFact{Date: d, Facts: Facts{Total: total, IsPaid: paid, Client: client}}
}

func TestSummarizeJanuaryScenario(t *testing.T) {
	facts := []InvoiceFact{
		fact(t, "2025-01-10", 100, true, "Acme Corp"),
		fact(t, "2025-01-20", 50, false, "Globex"),
	}

	summary := Summarize(facts, 2025)

	require.Len(t, summary.Months, 1)
	jan := summary.Months[0]
	assert.Equal(t, time.January, jan.Month)
	assert.InDelta(t, 100.00, jan.Paid, 1e-9)
	assert.InDelta(t, 50.00, jan.Unpaid, 1e-9)
	assert.InDelta(t, 150.00, jan.Combined(), 1e-9)

	assert.InDelta(t, 100.00, summary.Overall.Paid, 1e-9)
	assert.InDelta(t, 50.00, summary.Overall.Unpaid, 1e-9)
	assert.InDelta(t, 150.00, summary.Overall.Combined(), 1e-9)
}

func TestSummarizeMonthsNewestFirst(t *testing.T) {
	facts := []InvoiceFact{
		fact(t, "2025-02-01", 10, true, "Acme Corp"),
		fact(t, "2025-11-01", 20, true, "Acme Corp"),
		fact(t, "2025-06-01", 30, true, "Acme Corp"),
	}

	summary := Summarize(facts, 2025)

	require.Len(t, summary.Months, 3)
	assert.Equal(t, time.November, summary.Months[0].Month)
	assert.Equal(t, time.June, summary.Months[1].Month)
	assert.Equal(t, time.February, summary.Months[2].Month)
}

func TestSummarizeFiltersYear(t *testing.T) {
	facts := []InvoiceFact{
		fact(t, "2024-12-31", 99, true, "Acme Corp"),
		fact(t, "2025-01-01", 10, false, "Acme Corp"),
	}

	summary := Summarize(facts, 2025)

	require.Len(t, summary.Months, 1)
	assert.InDelta(t, 10.00, summary.Overall.Unpaid, 1e-9)
	assert.InDelta(t, 0.0, summary.Overall.Paid, 1e-9)
}

func TestSummarizeClientsOrderedByCombinedTotal(t *testing.T) {
	facts := []InvoiceFact{
		fact(t, "2025-03-01", 10, true, "Small Co"),
		fact(t, "2025-03-02", 500, false, "Big Co"),
		fact(t, "2025-04-01", 200, true, "Mid Co"),
	}

	summary := Summarize(facts, 2025)

	require.Len(t, summary.Clients, 3)
	assert.Equal(t, "Big Co", summary.Clients[0].Client)
	assert.Equal(t, "Mid Co", summary.Clients[1].Client)
	assert.Equal(t, "Small Co", summary.Clients[2].Client)
}

func TestSummarizeGroupingsPartitionSameSet(t *testing.T) {
	// Both groupings cover the same invoices, so their paid and unpaid
	// sums must agree.
	var facts []InvoiceFact
	for i := 0; i < 12; i++ {
		facts = append(facts,
			fact(t, fmt.Sprintf("2025-%02d-05", i%12+1), float64(i)*13.37, i%2 == 0, fmt.Sprintf("Client %d", i%5)),
		)
	}

	summary := Summarize(facts, 2025)

	var monthPaid, monthUnpaid, clientPaid, clientUnpaid float64
	for _, m := range summary.Months {
		monthPaid += m.Paid
		monthUnpaid += m.Unpaid
	}
	for _, c := range summary.Clients {
		clientPaid += c.Paid
		clientUnpaid += c.Unpaid
	}

	assert.InDelta(t, monthPaid, clientPaid, 1e-9)
	assert.InDelta(t, monthUnpaid, clientUnpaid, 1e-9)
	assert.InDelta(t, monthPaid, summary.Overall.Paid, 1e-9)
	assert.InDelta(t, monthUnpaid, summary.Overall.Unpaid, 1e-9)
}

func TestCollectFactsSkipsVoidAndUnparseable(t *testing.T) {
	repo := newMemRepository()
	repo.put("2025/acme/HI20250301-01_main-st.typ",
		"amount: 100.00\nis_paid: true\nclient: (name: \"Acme Corp\"")
	repo.put("2025/acme/HI20250301-02_main-st_VOID.typ",
		"amount: 999.00\nis_paid: false\nclient: (name: \"Acme Corp\"")
	repo.put("2025/acme/scratch.typ", "amount: 5.00")

	facts, err := CollectFacts(repo)
	require.NoError(t, err)

	require.Len(t, facts, 1)
	assert.InDelta(t, 100.00, facts[0].Total, 1e-9)
	assert.True(t, facts[0].IsPaid)
	assert.Equal(t, "2025-03-01", facts[0].Date.Format("2006-01-02"))
}
