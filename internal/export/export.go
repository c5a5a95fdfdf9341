// Package export formats the portfolio as downloadable JSON and HTML files.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/persistence"
	"github.com/thenoetrevino/folio/internal/preview"
)

//go:embed templates/portfolio.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/portfolio.html.tmpl"))

// ToJSON serializes doc with 2-space indentation in declared field order.
// The output is exactly what the persistence slot stores.
func ToJSON(doc models.Portfolio) ([]byte, error) {
	return persistence.Encode(doc)
}

// ToHTML renders doc as a standalone page. year is printed in the footer.
func ToHTML(doc models.Portfolio, year int) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, preview.Build(doc, year)); err != nil {
		return nil, fmt.Errorf("failed to render portfolio page: %w", err)
	}
	return buf.Bytes(), nil
}
