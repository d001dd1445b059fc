// Package render turns an invoice context into Typst source text and
// compiles that text to PDF via the external typst tool.
//
// The default template is embedded in the binary and materialized into
// <root>/templates/ on first use, so operators can customize it. The
// rendered text must keep the key:value field syntax the ledger's extractor
// greps for (amount, tax_rate, is_paid, is_void, client name); see the
// ledger package doc before touching the template.
package render

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog"

	"invoicemaker/internal/logger"
	"invoicemaker/pkg/models"
)

//go:embed templates/invoice.typ.tmpl
var defaultTemplate string

const templateName = "invoice.typ.tmpl"

// Renderer renders invoice documents from the template directory under the
// data root.
type Renderer struct {
	templateDir string
	log         zerolog.Logger
}

// NewRenderer returns a renderer using <root>/templates.
func NewRenderer(root string) *Renderer {
	return &Renderer{
		templateDir: filepath.Join(root, "templates"),
		log:         logger.WithComponent("renderer"),
	}
}

// Render produces the Typst source text for one invoice. The default
// template is written to the template directory if none exists yet.
func (r *Renderer) Render(ctx models.InvoiceContext) (string, error) {
	path := filepath.Join(r.templateDir, templateName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.log.Info().Str("path", path).Msg("Initializing default template")
		if err := os.MkdirAll(r.templateDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create template directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
			return "", fmt.Errorf("failed to write default template: %w", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(templateName).Funcs(templateFuncs).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	return out.String(), nil
}

var templateFuncs = template.FuncMap{
	// typstr escapes a Go string for use inside a quoted Typst string.
	"typstr": func(s string) string {
		s = strings.ReplaceAll(s, `\`, `\\`)
		return strings.ReplaceAll(s, `"`, `\"`)
	},
	// money formats a currency value with two decimals.
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	// num formats a number without trailing zeros (quantities, rates).
	"num": func(v float64) string {
		return fmt.Sprintf("%g", v)
	},
}
