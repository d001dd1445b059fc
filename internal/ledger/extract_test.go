package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDocument = `#let data = (
  id: "HI20250301-01",
  date: "03/01/2025",
  is_paid: false,
  is_void: false,
  tax_rate: 0.08,
  client: (
    name: "Acme Corp",
    attn: "Jane Smith",
  ),
  items: (
    (description: "Demolition", quantity: 1, rate: 10.00, amount: 10.00),
    (description: "Framing", quantity: 1, rate: 20.00, amount: 20.00),
    (description: "Cleanup", quantity: 1, rate: 5.00, amount: 5.00),
  ),
)
`

func TestParseFacts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Facts
	}{
		{
			name:     "three items with tax",
			text:     sampleDocument,
			expected: Facts{Total: 35.00 * 1.08, IsPaid: false, Client: "Acme Corp"},
		},
		{
			name:     "paid flag true",
			text:     "amount: 50.00\ntax_rate: 0\nis_paid: true\nclient: (name: \"Globex\"",
			expected: Facts{Total: 50.00, IsPaid: true, Client: "Globex"},
		},
		{
			name:     "missing tax rate means no tax",
			text:     "amount: 100.00\nis_paid: false\nclient: (name: \"Globex\"",
			expected: Facts{Total: 100.00, Client: "Globex"},
		},
		{
			name:     "missing paid flag defaults to unpaid",
			text:     "amount: 25.50\nclient: (name: \"Globex\"",
			expected: Facts{Total: 25.50, Client: "Globex"},
		},
		{
			name:     "attn label stripped from client name",
			text:     "amount: 10.00\nclient: (\n  name: \"Attn: John Doe\",",
			expected: Facts{Total: 10.00, Client: "John Doe"},
		},
		{
			name:     "missing client name",
			text:     "amount: 10.00\nis_paid: false",
			expected: Facts{Total: 10.00, Client: UnknownClient},
		},
		{
			name:     "no amounts at all",
			text:     "is_paid: true\nclient: (name: \"Globex\"",
			expected: Facts{Total: 0, IsPaid: true, Client: "Globex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := ParseFacts(tt.text)
			assert.InDelta(t, tt.expected.Total, facts.Total, 1e-9)
			assert.Equal(t, tt.expected.IsPaid, facts.IsPaid)
			assert.Equal(t, tt.expected.Client, facts.Client)
		})
	}
}

func TestParseFactsThreeItemsEightPercent(t *testing.T) {
	facts := ParseFacts(sampleDocument)
	assert.InDelta(t, 37.80, facts.Total, 1e-9)
}

func TestDocumentDate(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
		ok   bool
	}{
		{"plain stem", "HI20250301-01_main-st", "2025-03-01", true},
		{"paid stem", "HI20241215-02_elm-ave_PAID", "2024-12-15", true},
		{"no identifier", "notes", "", false},
		{"short digit run", "HI2025-01_main-st", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DocumentDate(tt.stem)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}
