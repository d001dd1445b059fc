package ledger

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"invoicemaker/internal/logger"
)

// File extensions of the two sibling forms of every invoice document.
const (
	SourceExt = ".typ"
	BinaryExt = ".pdf"
)

// Document is one invoice record in the ledger: a rendered source file plus
// a compiled PDF sibling sharing the same stem.
type Document struct {
	// RelPath is the source file path relative to the output root,
	// e.g. "2025/acme-corp/HI20250301-01_main-st_PAID.typ".
	RelPath string

	// Stem is the filename without extension, carrying the invoice ID,
	// project ID and status suffix.
	Stem string

	// Status is derived from the stem suffix.
	Status Status

	// ModTime is the source file's last modification time, used to order
	// interactive selection lists.
	ModTime time.Time
}

// BinaryRelPath returns the compiled PDF sibling's path relative to the
// output root.
func (d Document) BinaryRelPath() string {
	return strings.TrimSuffix(d.RelPath, SourceExt) + BinaryExt
}

// Repository abstracts the on-disk invoice tree so that scanning, matching
// and transition logic can be exercised against an in-memory tree in tests.
type Repository interface {
	// Scan walks the whole output tree and returns every invoice document
	// matching the filter (nil matches all). Unreadable entries are
	// skipped, never aborting the scan.
	Scan(filter func(Document) bool) ([]Document, error)

	// Read returns the rendered source text of a document.
	Read(doc Document) ([]byte, error)

	// Commit persists content under a new stem in the document's
	// directory, then removes the old source and binary if the stem
	// changed. Writing before deleting means there is never a moment with
	// zero copies of the content, at the cost of transient duplication.
	Commit(doc Document, newStem string, content []byte) (Document, error)
}

// Candidate filters for interactive selection.
var (
	// PayCandidates matches invoices that can be marked paid.
	PayCandidates = func(d Document) bool { return d.Status == Unpaid }

	// UnpayCandidates matches invoices that can be reverted to unpaid.
	UnpayCandidates = func(d Document) bool { return d.Status == Paid }
)

// VoidCandidates matches invoices that can be voided. Paid invoices are
// excluded unless includePaid is set (configurable policy, see config).
func VoidCandidates(includePaid bool) func(Document) bool {
	return func(d Document) bool {
		if d.Status == Void {
			return false
		}
		return includePaid || d.Status != Paid
	}
}

// ListedAs matches non-void invoices with the given paid state, for the
// paid/unpaid listing commands.
func ListedAs(paid bool) func(Document) bool {
	return func(d Document) bool {
		if d.Status == Void {
			return false
		}
		return (d.Status == Paid) == paid
	}
}

// SortNewestFirst orders documents by modification time, most recent first.
func SortNewestFirst(docs []Document) {
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ModTime.After(docs[j].ModTime)
	})
}

type fsRepository struct {
	outputRoot string
	log        zerolog.Logger
}

// NewRepository returns a Repository over <outputRoot>, the directory that
// holds the <year>/<client-id>/ invoice tree. The directory may not exist
// yet; Scan reports ErrNoOutputDir in that case.
func NewRepository(outputRoot string) Repository {
	return &fsRepository{
		outputRoot: outputRoot,
		log:        logger.WithComponent("ledger-repository"),
	}
}

func (r *fsRepository) Scan(filter func(Document) bool) ([]Document, error) {
	const op = "Scan"

	if _, err := os.Stat(r.outputRoot); os.IsNotExist(err) {
		return nil, newLedgerError(op, ErrNoOutputDir, "")
	}

	var docs []Document
	err := filepath.WalkDir(r.outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Partial failure isolation: one unreadable directory must
			// not abort the whole scan.
			r.log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), SourceExt) {
			return nil
		}

		rel, relErr := filepath.Rel(r.outputRoot, path)
		if relErr != nil {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			r.log.Warn().Err(infoErr).Str("path", path).Msg("Skipping unstattable file")
			return nil
		}

		stem := strings.TrimSuffix(d.Name(), SourceExt)
		doc := Document{
			RelPath: filepath.ToSlash(rel),
			Stem:    stem,
			Status:  StatusOfStem(stem),
			ModTime: info.ModTime(),
		}
		if filter == nil || filter(doc) {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, newLedgerError(op, err, "")
	}

	r.log.Debug().Int("documents", len(docs)).Msg("Output tree scanned")
	return docs, nil
}

func (r *fsRepository) Read(doc Document) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(r.outputRoot, filepath.FromSlash(doc.RelPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newLedgerError("Read", ErrDocumentNotFound, doc.RelPath)
		}
		return nil, newLedgerError("Read", err, doc.RelPath)
	}
	return content, nil
}

func (r *fsRepository) Commit(doc Document, newStem string, content []byte) (Document, error) {
	const op = "Commit"

	oldSource := filepath.Join(r.outputRoot, filepath.FromSlash(doc.RelPath))
	dir := filepath.Dir(oldSource)
	newSource := filepath.Join(dir, newStem+SourceExt)

	if err := os.WriteFile(newSource, content, 0644); err != nil {
		return Document{}, newLedgerError(op, err, doc.RelPath)
	}

	if newStem != doc.Stem {
		if err := os.Remove(oldSource); err != nil && !os.IsNotExist(err) {
			r.log.Warn().Err(err).Str("path", oldSource).Msg("Failed to remove old source file")
		}
		oldBinary := strings.TrimSuffix(oldSource, SourceExt) + BinaryExt
		if err := os.Remove(oldBinary); err != nil && !os.IsNotExist(err) {
			r.log.Warn().Err(err).Str("path", oldBinary).Msg("Failed to remove old binary file")
		}
	}

	rel, err := filepath.Rel(r.outputRoot, newSource)
	if err != nil {
		return Document{}, newLedgerError(op, err, doc.RelPath)
	}

	info, err := os.Stat(newSource)
	committed := Document{
		RelPath: filepath.ToSlash(rel),
		Stem:    newStem,
		Status:  StatusOfStem(newStem),
	}
	if err == nil {
		committed.ModTime = info.ModTime()
	}
	return committed, nil
}
