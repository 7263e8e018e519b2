package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// fromPDF extracts the plain text of every page, joined by newlines.
// Pages that fail to decode are skipped; scanned PDFs without a text
// layer therefore come back empty and fail the caller's emptiness check.
func fromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
