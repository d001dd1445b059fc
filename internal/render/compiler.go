package render

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"

	"invoicemaker/internal/logger"
)

const typstBinary = "typst"

// TypstCompiler compiles rendered invoice source files to PDF by invoking
// the external typst tool. It satisfies ledger.Compiler.
type TypstCompiler struct {
	binary string
	log    zerolog.Logger
}

// NewTypstCompiler locates the typst binary on PATH. Its absence is a hard
// precondition failure (ErrCompilerNotFound) for invoice creation and
// recompilation.
func NewTypstCompiler() (*TypstCompiler, error) {
	path, err := exec.LookPath(typstBinary)
	if err != nil {
		return nil, ErrCompilerNotFound
	}
	return &TypstCompiler{
		binary: path,
		log:    logger.WithComponent("typst"),
	}, nil
}

// Compile runs "typst compile <source> <dest>". It blocks until the
// subprocess exits or the context is canceled.
func (c *TypstCompiler) Compile(ctx context.Context, sourcePath, destPath string) error {
	c.log.Info().Str("source", sourcePath).Str("dest", destPath).Msg("Compiling PDF")

	cmd := exec.CommandContext(ctx, c.binary, "compile", sourcePath, destPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		c.log.Error().
			Err(err).
			Str("source", sourcePath).
			Str("output", string(output)).
			Msg("Compilation failed")
		return fmt.Errorf("%w: %s", ErrCompileFailed, string(output))
	}

	c.log.Debug().Str("dest", destPath).Msg("PDF compiled")
	return nil
}
