package ledger

import (
	"errors"
	"fmt"
)

// Common ledger errors
var (
	// ErrNoOutputDir is returned when the output root does not exist yet,
	// i.e. no invoice has ever been generated.
	ErrNoOutputDir = errors.New("output directory not found")

	// ErrDocumentNotFound is returned when a transition targets a document
	// that no longer exists on disk.
	ErrDocumentNotFound = errors.New("invoice document not found")

	// ErrAlreadyInStatus is returned when a transition targets the status
	// the document already has.
	ErrAlreadyInStatus = errors.New("invoice already in target status")

	// ErrVoidTerminal is returned when a transition attempts to move a
	// voided invoice to any other status. Void is absorbing.
	ErrVoidTerminal = errors.New("voided invoices cannot change status")

	// ErrRecompileFailed is returned when the status rewrite and rename
	// succeeded but regenerating the PDF did not. The source text and
	// filename are already committed; re-running compilation fixes the
	// stale binary.
	ErrRecompileFailed = errors.New("recompilation failed after status change")
)

// LedgerError wraps errors with the ledger operation and document involved.
type LedgerError struct {
	// Op is the operation that failed (e.g. "Transition", "Scan", "NextID").
	Op string

	// Err is the underlying error.
	Err error

	// Document is the relative path of the document involved, if any.
	Document string
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Document != "" {
		return fmt.Sprintf("ledger: %s failed for %s: %v", e.Op, e.Document, e.Err)
	}
	return fmt.Sprintf("ledger: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *LedgerError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newLedgerError(op string, err error, document string) *LedgerError {
	return &LedgerError{Op: op, Err: err, Document: document}
}
