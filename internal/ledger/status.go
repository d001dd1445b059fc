// Package ledger implements the filesystem-backed invoice ledger.
//
// There is no database: the rendered invoice document is the record, and its
// filename is the index. Lifecycle status is encoded twice: as a filename
// suffix (no suffix, "_PAID" or "_VOID") and as boolean flags embedded in the
// rendered text ("is_paid: true", "is_void: true"). Every operation that
// changes one serialization changes the other in the same transition; no code
// outside this package edits either form directly.
//
// Field-syntax contract consumed by the extractor (see ParseFacts):
//
//	amount: <number>        one per line item, summed
//	tax_rate: <fraction>    single occurrence, absent means 0
//	is_paid: true|false     absent means false (legacy documents)
//	is_void: true|false     optional on legacy documents
//	client: ( name: "<display name>" ...
//
// Any change to the rendering template's field syntax breaks extraction and
// must be versioned deliberately.
package ledger

import "strings"

// Status is an invoice lifecycle state. Void is terminal.
type Status int

const (
	Unpaid Status = iota
	Paid
	Void
)

// Filename suffixes, the on-disk serialization of Status.
const (
	paidSuffix = "_PAID"
	voidSuffix = "_VOID"
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case Paid:
		return "PAID"
	case Void:
		return "VOID"
	default:
		return "UNPAID"
	}
}

// Suffix returns the filename-stem serialization of the status.
func (s Status) Suffix() string {
	switch s {
	case Paid:
		return paidSuffix
	case Void:
		return voidSuffix
	default:
		return ""
	}
}

// StatusOfStem classifies a filename stem. A "_VOID" suffix wins over
// "_PAID"; anything else is unpaid.
func StatusOfStem(stem string) Status {
	switch {
	case strings.HasSuffix(stem, voidSuffix):
		return Void
	case strings.HasSuffix(stem, paidSuffix):
		return Paid
	default:
		return Unpaid
	}
}

// ApplyToStem rewrites a filename stem to carry the target status suffix.
// Paying appends "_PAID", unpaying removes it, voiding appends "_VOID" on top
// of whatever the stem carried.
func (s Status) ApplyToStem(stem string) string {
	switch s {
	case Paid:
		return stem + paidSuffix
	case Unpaid:
		return strings.ReplaceAll(stem, paidSuffix, "")
	case Void:
		return stem + voidSuffix
	default:
		return stem
	}
}
