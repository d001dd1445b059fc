package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnknownClient is reported when a document carries no recognizable client
// name field.
const UnknownClient = "Unknown Client"

// Facts are the financial facts recovered from one rendered document. They
// are the only durable record; no structured ledger file exists beside the
// documents themselves.
type Facts struct {
	Total  float64 // line-item sum including tax
	IsPaid bool
	Client string // display name, "Attn:" label stripped
}

// The extraction patterns below are the single coupling between the ledger
// and the rendering template's field syntax (see the package doc). Keep
// every pattern here; do not scatter ad hoc matches elsewhere.
var (
	amountRe = regexp.MustCompile(`amount:\s*([\d.]+)`)
	taxRe    = regexp.MustCompile(`tax_rate:\s*([\d.]+)`)
	paidRe   = regexp.MustCompile(`is_paid:\s*(true|false)`)
	clientRe = regexp.MustCompile(`client:\s*\(\s*name:\s*"([^"]+)"`)
	idDateRe = regexp.MustCompile(IDPrefix + `(\d{8})`)
)

// ParseFacts recovers financial facts from a rendered document's text by
// pattern extraction. Every amount occurrence is summed (multi-item
// documents embed one amount per item); a missing tax_rate means no tax; a
// missing is_paid flag means unpaid (legacy documents predate the flag).
func ParseFacts(text string) Facts {
	var subtotal float64
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			subtotal += v
		}
	}

	var taxRate float64
	if m := taxRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			taxRate = v
		}
	}

	facts := Facts{
		Total:  subtotal * (1 + taxRate),
		Client: UnknownClient,
	}

	if m := paidRe.FindStringSubmatch(text); m != nil {
		facts.IsPaid = m[1] == "true"
	}
	if m := clientRe.FindStringSubmatch(text); m != nil {
		facts.Client = strings.TrimSpace(strings.ReplaceAll(m[1], "Attn:", ""))
	}
	return facts
}

// DocumentDate parses the invoice date embedded in a document's identifier
// (the 8-digit run after the HI prefix). This is the user-chosen invoice
// date, which also decides the year bucket the document lives in; the
// rendered "date:" field is the issue date and may differ.
func DocumentDate(stem string) (time.Time, bool) {
	m := idDateRe.FindStringSubmatch(stem)
	if m == nil {
		return time.Time{}, false
	}
	date, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
