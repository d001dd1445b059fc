package ledger

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"invoicemaker/internal/logger"
)

// Compiler regenerates a document's compiled binary from its source text.
// The real implementation shells out to the external typesetting tool.
type Compiler interface {
	Compile(ctx context.Context, sourcePath, destPath string) error
}

// Engine mutates an invoice's persisted status. Both serializations of
// status (the embedded flag and the filename suffix) change in the same
// transition, never independently.
type Engine struct {
	repo       Repository
	compiler   Compiler
	outputRoot string
	log        zerolog.Logger
}

// NewEngine returns a transition engine over the given repository.
// outputRoot is the directory the repository's relative paths resolve
// against; the compiler receives resolved paths.
func NewEngine(repo Repository, compiler Compiler, outputRoot string) *Engine {
	return &Engine{
		repo:       repo,
		compiler:   compiler,
		outputRoot: outputRoot,
		log:        logger.WithComponent("ledger-engine"),
	}
}

// Transition moves doc to the target status: the embedded flag is rewritten,
// the file is committed under the new stem (old source and binary removed),
// and the binary is recompiled.
//
// A failure before Commit leaves no partial state. A recompilation failure
// after Commit returns the committed document together with
// ErrRecompileFailed: text and filename are already updated, only the binary
// is stale, and re-running compilation later corrects it.
func (e *Engine) Transition(ctx context.Context, doc Document, target Status) (Document, error) {
	const op = "Transition"

	if doc.Status == Void {
		return doc, newLedgerError(op, ErrVoidTerminal, doc.RelPath)
	}
	if doc.Status == target {
		return doc, newLedgerError(op, ErrAlreadyInStatus, doc.RelPath)
	}

	content, err := e.repo.Read(doc)
	if err != nil {
		return doc, err
	}

	rewritten := rewriteStatusFlag(string(content), target)
	newStem := target.ApplyToStem(doc.Stem)

	e.log.Info().
		Str("document", doc.RelPath).
		Str("from", doc.Status.String()).
		Str("to", target.String()).
		Str("new_stem", newStem).
		Msg("Transitioning invoice status")

	committed, err := e.repo.Commit(doc, newStem, []byte(rewritten))
	if err != nil {
		return doc, err
	}

	source := filepath.Join(e.outputRoot, filepath.FromSlash(committed.RelPath))
	binary := filepath.Join(e.outputRoot, filepath.FromSlash(committed.BinaryRelPath()))
	if err := e.compiler.Compile(ctx, source, binary); err != nil {
		e.log.Error().Err(err).Str("document", committed.RelPath).Msg("Recompilation failed after status change")
		return committed, &LedgerError{Op: op, Err: ErrRecompileFailed, Document: committed.RelPath}
	}

	return committed, nil
}

// rewriteStatusFlag flips the embedded boolean serialization of the target
// status by exact substring match of the canonical encoding.
func rewriteStatusFlag(content string, target Status) string {
	switch target {
	case Paid:
		return strings.Replace(content, "is_paid: false", "is_paid: true", 1)
	case Unpaid:
		return strings.Replace(content, "is_paid: true", "is_paid: false", 1)
	case Void:
		if strings.Contains(content, "is_void: false") {
			return strings.Replace(content, "is_void: false", "is_void: true", 1)
		}
		return spliceLegacyVoidFlag(content)
	default:
		return content
	}
}

// spliceLegacyVoidFlag is the legacy-migration path for documents rendered
// before the is_void flag existed: the flag is inserted just before the
// final closing delimiter of the document's outermost structure. Documents
// without any closing delimiter are left untouched; the filename suffix
// still records the void.
func spliceLegacyVoidFlag(content string) string {
	idx := strings.LastIndex(content, ")")
	if idx < 0 {
		return content
	}
	return content[:idx] + ", is_void: true" + content[idx:]
}
